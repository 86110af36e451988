// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline implements diff minimization for an incrementally
// updating message timeline.
//
// This file implements the diff application step: replaying a batch of
// elementary edits against a working identity list while materializing
// items through the store's create/update callbacks.
package timeline

import "fmt"

// =============================================================================
// ITEM RESOLVER
// =============================================================================

// resolver materializes items for one pass. The store's item list is
// loaded once at the start of the pass and cached by identity; every
// datum whose identity is already known refreshes the existing item and
// is recorded in the updated set, every unseen identity creates a new
// item.
type resolver struct {
	store   Store
	known   map[string]Item
	updated map[string]struct{}
}

func newResolver(store Store, items []Item) *resolver {
	r := &resolver{
		store:   store,
		known:   make(map[string]Item, len(items)),
		updated: make(map[string]struct{}),
	}
	for _, it := range items {
		r.known[it.TimelineID()] = it
	}
	return r
}

// resolve returns the item for a datum, updating in place when the
// identity already exists and creating otherwise.
func (r *resolver) resolve(data SourceDatum) Item {
	id := data.TimelineID()
	if it, ok := r.known[id]; ok {
		r.store.UpdateItem(it, data)
		r.updated[id] = struct{}{}
		return it
	}
	it := r.store.CreateItem(data)
	r.known[id] = it
	return it
}

// =============================================================================
// WORKING IDENTITY LIST
// =============================================================================

// workingList simulates the identity order of the presented list while
// a batch replays. It enforces the at-most-one-item-per-identity
// invariant; a duplicate identity means the upstream source is corrupt
// and the pass must die rather than desynchronize the renderer.
type workingList struct {
	ids     []string
	present map[string]struct{}
}

func newWorkingList(ids []string) *workingList {
	w := &workingList{
		ids:     append([]string(nil), ids...),
		present: make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		if _, dup := w.present[id]; dup {
			panic(fmt.Sprintf("timeline: duplicate identity %q in store snapshot", id))
		}
		w.present[id] = struct{}{}
	}
	return w
}

func (w *workingList) add(id string) {
	if _, dup := w.present[id]; dup {
		panic(fmt.Sprintf("timeline: duplicate identity %q produced by edit batch", id))
	}
	w.present[id] = struct{}{}
}

func (w *workingList) drop(id string) {
	delete(w.present, id)
}

func (w *workingList) pushFront(id string) {
	w.add(id)
	w.ids = append([]string{id}, w.ids...)
}

func (w *workingList) pushBack(id string) {
	w.add(id)
	w.ids = append(w.ids, id)
}

func (w *workingList) popFront() {
	if len(w.ids) == 0 {
		panic("timeline: pop_front on empty working list")
	}
	w.drop(w.ids[0])
	w.ids = w.ids[1:]
}

func (w *workingList) popBack() {
	if len(w.ids) == 0 {
		panic("timeline: pop_back on empty working list")
	}
	w.drop(w.ids[len(w.ids)-1])
	w.ids = w.ids[:len(w.ids)-1]
}

func (w *workingList) insert(index int, id string) {
	if index < 0 || index > len(w.ids) {
		panic(fmt.Sprintf("timeline: insert index %d out of range (len %d)", index, len(w.ids)))
	}
	w.add(id)
	w.ids = append(w.ids, "")
	copy(w.ids[index+1:], w.ids[index:])
	w.ids[index] = id
}

func (w *workingList) set(index int, id string) {
	if index < 0 || index >= len(w.ids) {
		panic(fmt.Sprintf("timeline: set index %d out of range (len %d)", index, len(w.ids)))
	}
	old := w.ids[index]
	if old != id {
		w.drop(old)
		w.add(id)
	}
	w.ids[index] = id
}

func (w *workingList) remove(index int) {
	if index < 0 || index >= len(w.ids) {
		panic(fmt.Sprintf("timeline: remove index %d out of range (len %d)", index, len(w.ids)))
	}
	w.drop(w.ids[index])
	w.ids = append(w.ids[:index], w.ids[index+1:]...)
}

// =============================================================================
// DIFF APPLICATION STEP
// =============================================================================

// applyEdits replays an eligible batch over the pre-batch identity
// order and returns the post-batch order. Items are materialized
// through the resolver as a side effect; the resolver's updated set
// records every identity refreshed in place during this pass.
//
// Clear, Truncate and Reset never reach this function: the eligibility
// gate filters them out, and hitting one here is a caller bug.
func applyEdits(res *resolver, oldIDs []string, batch []Edit) []string {
	w := newWorkingList(oldIDs)

	for _, e := range batch {
		switch e.Kind {
		case EditAppend:
			for _, data := range e.Batch {
				w.pushBack(res.resolve(data).TimelineID())
			}
		case EditPushFront:
			w.pushFront(res.resolve(e.Data).TimelineID())
		case EditPushBack:
			w.pushBack(res.resolve(e.Data).TimelineID())
		case EditPopFront:
			w.popFront()
		case EditPopBack:
			w.popBack()
		case EditInsert:
			w.insert(e.Index, res.resolve(e.Data).TimelineID())
		case EditSet:
			w.set(e.Index, res.resolve(e.Data).TimelineID())
		case EditRemove:
			w.remove(e.Index)
		default:
			// Clear/Truncate/Reset are filtered by BatchEligible.
			panic(fmt.Sprintf("timeline: %s edit in minimized batch", e.Kind))
		}
	}

	return w.ids
}
