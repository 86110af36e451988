// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed delivers elementary edit batches to a message list.
package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/timeline"
)

func testEvent(id, body string) *model.MessageEvent {
	return &model.MessageEvent{EventID: id, Sender: "@test:local", Kind: model.EventText, Body: body}
}

func TestFeed_DeliversBatchesInOrder(t *testing.T) {
	list := store.NewMessageList()

	var mu sync.Mutex
	applied := 0
	done := make(chan struct{})
	list.SetObserver(func([]timeline.Op) {
		mu.Lock()
		applied++
		if applied == 2 {
			close(done)
		}
		mu.Unlock()
	})

	f := New("!room:local", list, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.Run(ctx)

	f.Submit([]timeline.Edit{
		timeline.Append(testEvent("$1", "one"), testEvent("$2", "two")),
		timeline.PushBack(testEvent("$3", "three")),
	})
	f.Submit([]timeline.Edit{
		timeline.Remove(0),
		timeline.Set(0, testEvent("$2", "edited")),
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batches not delivered in time")
	}

	msgs := list.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "$2", msgs[0].TimelineID())
	require.Equal(t, "edited", msgs[0].Body)
	require.Equal(t, "$3", msgs[1].TimelineID())
}

func TestFeed_SubmitEmptyBatchIsNoOp(t *testing.T) {
	list := store.NewMessageList()
	f := New("!room:local", list, nil)

	// Must not enqueue; Run is not started so a queued batch would
	// never drain and a later Submit would prove it got dropped.
	f.Submit(nil)
	require.Empty(t, f.batches)
}

func TestFeed_RunStopsOnCancel(t *testing.T) {
	list := store.NewMessageList()
	f := New("!room:local", list, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- f.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestCollectEvents(t *testing.T) {
	batch := []timeline.Edit{
		timeline.Append(testEvent("$1", "a"), testEvent("$2", "b")),
		timeline.Remove(0),
		timeline.Set(0, testEvent("$2", "b2")),
	}

	events := collectEvents(batch)
	require.Len(t, events, 3)
	require.Equal(t, "$1", events[0].EventID)
	require.Equal(t, "$2", events[1].EventID)
	require.Equal(t, "b2", events[2].Body)
}
