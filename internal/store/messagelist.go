// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the presented message list for one conversation.
package store

import (
	"fmt"
	"sync"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/timeline"
)

// Observer is notified after a batch lands in the list. ops is the
// minimal operation list that was applied; a nil ops means the whole
// list was rebuilt and the consumer should redraw from scratch.
type Observer func(ops []timeline.Op)

// =============================================================================
// MESSAGE LIST
// =============================================================================

// MessageList is the canonical ordered message list for one
// conversation. It implements timeline.Store. All mutations go through
// ProcessBatch; the mutex only guards against readers racing the single
// writer, batches themselves are applied one at a time.
type MessageList struct {
	mu       sync.RWMutex
	items    []*model.Message
	observer Observer
}

// NewMessageList creates an empty message list.
func NewMessageList() *MessageList {
	return &MessageList{}
}

// SetObserver registers the callback notified after each applied batch.
func (l *MessageList) SetObserver(fn Observer) {
	l.mu.Lock()
	l.observer = fn
	l.mu.Unlock()
}

// Messages returns a snapshot of the presented messages in order. The
// returned slice is a copy; the message handles are shared.
func (l *MessageList) Messages() []*model.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*model.Message, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of presented messages.
func (l *MessageList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// =============================================================================
// TIMELINE STORE CONTRACT
// =============================================================================

// Items returns the presented items in display order.
func (l *MessageList) Items() []timeline.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]timeline.Item, len(l.items))
	for i, m := range l.items {
		out[i] = m
	}
	return out
}

// CreateItem constructs a new message from an event. The visible list
// is untouched; the engine places the item later via the operation list.
func (l *MessageList) CreateItem(data timeline.SourceDatum) timeline.Item {
	return model.NewMessage(data.(*model.MessageEvent))
}

// UpdateItem refreshes an existing message in place.
func (l *MessageList) UpdateItem(item timeline.Item, data timeline.SourceDatum) {
	item.(*model.Message).ApplyEvent(data.(*model.MessageEvent))
}

// ApplyItemDiffList applies a minimal operation list to the visible
// list, in order. Positions refer to the list's state as of that point
// in the sequence.
func (l *MessageList) ApplyItemDiffList(ops []timeline.Op) {
	l.mu.Lock()
	for _, op := range ops {
		switch op := op.(type) {
		case timeline.SpliceDiff:
			l.splice(op)
		case timeline.UpdateDiff:
			// Items were refreshed in place during the pass; positions
			// only matter to consumers tracking dirty regions.
		}
	}
	observer := l.observer
	l.mu.Unlock()

	if observer != nil {
		observer(ops)
	}
}

func (l *MessageList) splice(op timeline.SpliceDiff) {
	if op.Pos < 0 || op.Pos+op.NumRemovals > len(l.items) {
		panic(fmt.Sprintf("store: splice [%d,%d) out of range (len %d)",
			op.Pos, op.Pos+op.NumRemovals, len(l.items)))
	}
	next := make([]*model.Message, 0, len(l.items)-op.NumRemovals+len(op.Additions))
	next = append(next, l.items[:op.Pos]...)
	for _, it := range op.Additions {
		next = append(next, it.(*model.Message))
	}
	next = append(next, l.items[op.Pos+op.NumRemovals:]...)
	l.items = next
}

// =============================================================================
// BATCH PROCESSING
// =============================================================================

// ProcessBatch applies one elementary edit batch. Eligible batches are
// minimized; everything else rebuilds the list directly and notifies
// the observer with nil ops.
func (l *MessageList) ProcessBatch(batch []timeline.Edit) {
	if len(batch) == 0 {
		return
	}
	if timeline.BatchEligible(batch) {
		timeline.Minimize(l, batch)
		return
	}
	l.rebuild(batch)
}

// rebuild is the non-minimized path: each edit mutates the canonical
// list directly. Events still resolve through the same create/update
// semantics so identity stability holds here too.
func (l *MessageList) rebuild(batch []timeline.Edit) {
	l.mu.Lock()

	known := make(map[string]*model.Message, len(l.items))
	for _, m := range l.items {
		known[m.TimelineID()] = m
	}
	resolve := func(data timeline.SourceDatum) *model.Message {
		evt := data.(*model.MessageEvent)
		if m, ok := known[evt.EventID]; ok {
			m.ApplyEvent(evt)
			return m
		}
		m := model.NewMessage(evt)
		known[m.TimelineID()] = m
		return m
	}

	for _, e := range batch {
		switch e.Kind {
		case timeline.EditAppend:
			for _, data := range e.Batch {
				l.items = append(l.items, resolve(data))
			}
		case timeline.EditPushFront:
			l.items = append([]*model.Message{resolve(e.Data)}, l.items...)
		case timeline.EditPushBack:
			l.items = append(l.items, resolve(e.Data))
		case timeline.EditPopFront:
			l.items = l.items[1:]
		case timeline.EditPopBack:
			l.items = l.items[:len(l.items)-1]
		case timeline.EditInsert:
			l.items = append(l.items, nil)
			copy(l.items[e.Index+1:], l.items[e.Index:])
			l.items[e.Index] = resolve(e.Data)
		case timeline.EditSet:
			l.items[e.Index] = resolve(e.Data)
		case timeline.EditRemove:
			l.items = append(l.items[:e.Index], l.items[e.Index+1:]...)
		case timeline.EditClear:
			l.items = nil
		case timeline.EditTruncate:
			if e.Len < len(l.items) {
				l.items = l.items[:e.Len]
			}
		case timeline.EditReset:
			l.items = make([]*model.Message, 0, len(e.Batch))
			for _, data := range e.Batch {
				l.items = append(l.items, resolve(data))
			}
		}
	}

	observer := l.observer
	l.mu.Unlock()

	if observer != nil {
		observer(nil)
	}
}
