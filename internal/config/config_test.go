// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "auto" {
		t.Errorf("Expected default theme 'auto', got %q", cfg.UI.Theme)
	}
	if !cfg.Storage.JournalEnabled {
		t.Error("Expected journal enabled by default")
	}
	if cfg.Timeline.BackfillBatchSize != 50 {
		t.Errorf("Expected backfill batch size 50, got %d", cfg.Timeline.BackfillBatchSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config must validate, got %v", err)
	}
}

func TestLoadFromPath_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.Profile.UserID != "@local:parley" {
		t.Errorf("Expected default user ID, got %q", cfg.Profile.UserID)
	}
}

func TestLoadFromPath_ReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[profile]
user_id = "@alice:local"
display_name = "Alice"

[ui]
theme = "dark"
show_timestamps = false

[timeline]
backfill_batch_size = 25
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Profile.UserID != "@alice:local" {
		t.Errorf("Expected '@alice:local', got %q", cfg.Profile.UserID)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Expected theme 'dark', got %q", cfg.UI.Theme)
	}
	if cfg.Timeline.BackfillBatchSize != 25 {
		t.Errorf("Expected backfill batch size 25, got %d", cfg.Timeline.BackfillBatchSize)
	}
}

func TestLoadFromPath_InvalidThemeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"sparkly\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected validation error for unknown theme")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PARLEY_USER", "@env:local")
	t.Setenv("PARLEY_THEME", "light")
	t.Setenv("PARLEY_JOURNAL", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Profile.UserID != "@env:local" {
		t.Errorf("Expected env user ID, got %q", cfg.Profile.UserID)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Expected env theme 'light', got %q", cfg.UI.Theme)
	}
	if cfg.Storage.JournalEnabled {
		t.Error("Expected journal disabled via env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"bad theme", func(c *Config) { c.UI.Theme = "sparkly" }, true},
		{"negative cache", func(c *Config) { c.Timeline.MaxCachedMessages = -1 }, true},
		{"bad user id", func(c *Config) { c.Profile.UserID = "alice" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveToPath_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Profile.UserID = "@roundtrip:local"
	cfg.UI.Theme = "dark"
	if err := cfg.SaveToPath(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Profile.UserID != "@roundtrip:local" {
		t.Errorf("Round trip lost user ID: got %q", loaded.Profile.UserID)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("Round trip lost theme: got %q", loaded.UI.Theme)
	}
}
