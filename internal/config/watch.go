// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
//
// This file implements hot reload: a fsnotify watcher on the config
// file re-loads and re-validates it on change, debounced so editors
// that write in several steps trigger a single reload.
package config

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads the configuration when its file changes.
type Watcher struct {
	path     string
	onReload func(*Config)
	watcher  *fsnotify.Watcher
	ctx      context.Context
	cancel   context.CancelFunc

	mu      sync.Mutex
	pending bool
}

// Watch starts watching path and calls onReload with each successfully
// reloaded configuration. Invalid intermediate states are logged and
// skipped; the previous configuration stays in effect.
func Watch(path string, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace the file by rename, which
	// drops a watch set on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		onReload: onReload,
		watcher:  fw,
		ctx:      ctx,
		cancel:   cancel,
	}

	go w.processEvents()
	return w, nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		}
	}
}

// scheduleReload debounces bursts of events into one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = true
	w.mu.Unlock()

	time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		w.pending = false
		w.mu.Unlock()

		select {
		case <-w.ctx.Done():
			return
		default:
		}

		cfg, err := LoadFromPath(w.path)
		if err != nil {
			log.Printf("config: reload skipped: %v", err)
			return
		}
		w.onReload(cfg)
	})
}
