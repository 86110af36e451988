// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline implements diff minimization for an incrementally
// updating message timeline.
package timeline

// =============================================================================
// IDENTITY CONTRACTS
// =============================================================================

// Item is a presented timeline entry. Items are shared handles owned by
// the store; two items represent the same logical entry iff their
// timeline IDs are equal. An identity is never reused for a different
// logical entry.
type Item interface {
	// TimelineID returns the stable identity of this entry.
	TimelineID() string
}

// SourceDatum is an incoming payload from the data source. It carries
// the same stable identity as the item it creates or refreshes. Data is
// read-only from the engine's perspective.
type SourceDatum interface {
	// TimelineID returns the stable identity of this entry.
	TimelineID() string
}

// =============================================================================
// STORE CONTRACT
// =============================================================================

// Store owns the visible ordered item list. The engine never mutates
// the visible list itself; it materializes items through CreateItem and
// UpdateItem while replaying a batch, then hands the store a minimal
// operation list via ApplyItemDiffList.
//
// A store must not be touched by any other actor while a minimization
// pass is in flight.
type Store interface {
	// Items returns the current presented items in display order.
	Items() []Item

	// CreateItem constructs a new item from a datum whose identity has
	// not been seen before. It must not mutate the visible list.
	CreateItem(data SourceDatum) Item

	// UpdateItem refreshes an existing item in place from a datum with
	// the same identity. It must not change the item's identity or the
	// visible list.
	UpdateItem(item Item, data SourceDatum)

	// ApplyItemDiffList applies the minimal operation list to the
	// visible list, in order. Each operation's position refers to the
	// list's state as of that point in the sequence.
	ApplyItemDiffList(ops []Op)
}

// =============================================================================
// MINIMIZED OPERATIONS
// =============================================================================

// Op is a minimized operation emitted by the engine: either a
// SpliceDiff or an UpdateDiff.
type Op interface {
	isOp()
}

// SpliceDiff removes NumRemovals consecutive items starting at Pos,
// then inserts Additions at Pos. Removal and insertion always happen at
// the same position so adjacent churn collapses into one operation.
type SpliceDiff struct {
	Pos         int
	NumRemovals int
	Additions   []Item
}

func (SpliceDiff) isOp() {}

// UpdateDiff marks the NumItems consecutive items starting at Pos as
// refreshed in place: their content changed, their order did not.
type UpdateDiff struct {
	Pos      int
	NumItems int
}

func (UpdateDiff) isOp() {}
