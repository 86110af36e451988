// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation. A file watcher supports hot reload while
// the client runs.
//
// Configuration file location:
//   - ~/.parley/config.toml
//   - Built-in defaults when the file is absent
//
// # Usage
//
// Load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Watch for changes:
//
//	watcher, err := config.Watch(path, func(cfg *config.Config) { ... })
//	defer watcher.Close()
package config
