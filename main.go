// parley TUI - A terminal chat client with flicker-free timelines.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/feed"
	"github.com/jeranaias/parley-tui/internal/storage"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/timeline"
	"github.com/jeranaias/parley-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

func main() {
	var (
		conversationID = flag.String("room", "!lobby:parley", "conversation to open")
		showVersion    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("parley %s (%s)\n", Version, GitCommit)
		return
	}

	if err := run(*conversationID); err != nil {
		fmt.Fprintf(os.Stderr, "Error running parley: %v\n", err)
		os.Exit(1)
	}
}

func run(conversationID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Event journal (optional per config).
	var journal *storage.EventJournal
	if cfg.Storage.JournalEnabled {
		path := cfg.Storage.JournalPath
		if path == "" {
			if path, err = storage.DefaultJournalPath(); err != nil {
				return err
			}
		}
		if journal, err = storage.OpenJournal(path); err != nil {
			return err
		}
		defer journal.Close()
	}

	list := store.NewMessageList()

	// Rebuild the timeline from the journal before going live. Replay
	// takes the same batch path live events do.
	if journal != nil {
		if err := replayJournal(journal, conversationID, list, cfg.Timeline); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := feed.New(conversationID, list, journal)
	go func() {
		if err := f.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("feed stopped: %v", err)
		}
	}()

	p := tea.NewProgram(
		chat.New(cfg, conversationID, list, f),
		tea.WithAltScreen(),
	)

	// Redraws are driven by applied batches, not polling.
	list.SetObserver(func(ops []timeline.Op) {
		p.Send(chat.BatchAppliedMsg{Ops: ops})
	})

	// Hot-reload the config while the client runs.
	if path, err := config.ConfigPath(); err == nil {
		if watcher, err := config.Watch(path, func(next *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: next})
		}); err == nil {
			defer watcher.Close()
		}
	}

	_, err = p.Run()
	return err
}

// replayJournal feeds journaled events back through the store in
// backfill-sized Append batches, keeping only the newest events when
// the cache cap is set.
func replayJournal(journal *storage.EventJournal, conversationID string, list *store.MessageList, cfg config.TimelineConfig) error {
	events, err := journal.Replay(conversationID)
	if err != nil {
		if errors.Is(err, storage.ErrNoEvents) {
			return nil
		}
		return err
	}
	if cfg.MaxCachedMessages > 0 && len(events) > cfg.MaxCachedMessages {
		events = events[len(events)-cfg.MaxCachedMessages:]
	}
	batchSize := cfg.BackfillBatchSize
	if batchSize <= 0 {
		batchSize = len(events)
	}
	for start := 0; start < len(events); start += batchSize {
		end := start + batchSize
		if end > len(events) {
			end = len(events)
		}
		data := make([]timeline.SourceDatum, 0, end-start)
		for _, evt := range events[start:end] {
			data = append(data, evt)
		}
		list.ProcessBatch([]timeline.Edit{timeline.Append(data...)})
	}
	return nil
}
