// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed delivers elementary edit batches to a message list.
package feed

import (
	"context"
	"log"

	"golang.org/x/time/rate"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/storage"
	"github.com/jeranaias/parley-tui/internal/timeline"
)

// defaultBatchRate bounds how many batches per second the consumer
// applies; bursts cover interactive use, the steady rate covers
// backfill floods.
var defaultBatchRate = rate.Limit(120)

const defaultBatchBurst = 16

// =============================================================================
// FEED
// =============================================================================

// Feed is the single consumer of edit batches for one conversation.
// Producers call Submit from any goroutine; Run applies batches one at
// a time, so no two minimization passes ever overlap on the list.
type Feed struct {
	conversationID string
	list           *store.MessageList
	journal        *storage.EventJournal // nil disables journaling
	batches        chan []timeline.Edit
	limiter        *rate.Limiter
}

// New creates a feed for a conversation. journal may be nil.
func New(conversationID string, list *store.MessageList, journal *storage.EventJournal) *Feed {
	return &Feed{
		conversationID: conversationID,
		list:           list,
		journal:        journal,
		batches:        make(chan []timeline.Edit, 64),
		limiter:        rate.NewLimiter(defaultBatchRate, defaultBatchBurst),
	}
}

// Submit queues a batch for delivery. Blocks when the queue is full.
func (f *Feed) Submit(batch []timeline.Edit) {
	if len(batch) == 0 {
		return
	}
	f.batches <- batch
}

// Run consumes batches until ctx is cancelled. It returns ctx.Err().
func (f *Feed) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch := <-f.batches:
			if err := f.limiter.Wait(ctx); err != nil {
				return err
			}
			f.deliver(batch)
		}
	}
}

// deliver journals the batch's events and applies it to the list.
func (f *Feed) deliver(batch []timeline.Edit) {
	if f.journal != nil {
		if events := collectEvents(batch); len(events) > 0 {
			if err := f.journal.Append(f.conversationID, events); err != nil {
				// Journaling is best effort; the live list stays correct.
				log.Printf("feed: journal append failed: %v", err)
			}
		}
	}
	f.list.ProcessBatch(batch)
}

// collectEvents extracts the source events carried by a batch, in
// delivery order.
func collectEvents(batch []timeline.Edit) []*model.MessageEvent {
	var events []*model.MessageEvent
	appendDatum := func(data timeline.SourceDatum) {
		if evt, ok := data.(*model.MessageEvent); ok {
			events = append(events, evt)
		}
	}
	for _, e := range batch {
		if e.Data != nil {
			appendDatum(e.Data)
		}
		for _, data := range e.Batch {
			appendDatum(data)
		}
	}
	return events
}
