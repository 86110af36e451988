// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline implements diff minimization for an incrementally
// updating message timeline.
//
// This file defines the elementary edit vocabulary delivered by the
// data source, mirroring the mutation set of an incrementally observed
// ordered collection, plus the eligibility predicate that decides
// whether a batch may be minimized at all.
package timeline

import "fmt"

// =============================================================================
// EDIT KIND
// =============================================================================

// EditKind identifies one elementary mutation of the observed collection.
type EditKind int

const (
	EditAppend EditKind = iota
	EditPushFront
	EditPushBack
	EditPopFront
	EditPopBack
	EditInsert
	EditSet
	EditRemove
	EditClear
	EditTruncate
	EditReset
)

// String returns the string representation of an edit kind.
func (k EditKind) String() string {
	switch k {
	case EditAppend:
		return "append"
	case EditPushFront:
		return "push_front"
	case EditPushBack:
		return "push_back"
	case EditPopFront:
		return "pop_front"
	case EditPopBack:
		return "pop_back"
	case EditInsert:
		return "insert"
	case EditSet:
		return "set"
	case EditRemove:
		return "remove"
	case EditClear:
		return "clear"
	case EditTruncate:
		return "truncate"
	case EditReset:
		return "reset"
	default:
		return "unknown"
	}
}

// =============================================================================
// EDIT
// =============================================================================

// Edit is one elementary mutation. Which fields are meaningful depends
// on Kind; use the constructors below rather than building Edit values
// by hand.
type Edit struct {
	Kind EditKind

	// Index is the target position for Insert, Set and Remove.
	Index int

	// Len is the new length for Truncate.
	Len int

	// Data is the payload for PushFront, PushBack, Insert and Set.
	Data SourceDatum

	// Batch is the payload list for Append and Reset.
	Batch []SourceDatum
}

// Append extends the back of the collection with data, in order.
func Append(data ...SourceDatum) Edit {
	return Edit{Kind: EditAppend, Batch: data}
}

// PushFront prepends a single datum.
func PushFront(data SourceDatum) Edit {
	return Edit{Kind: EditPushFront, Data: data}
}

// PushBack appends a single datum.
func PushBack(data SourceDatum) Edit {
	return Edit{Kind: EditPushBack, Data: data}
}

// PopFront drops the first element.
func PopFront() Edit {
	return Edit{Kind: EditPopFront}
}

// PopBack drops the last element.
func PopBack() Edit {
	return Edit{Kind: EditPopBack}
}

// Insert inserts a datum at index.
func Insert(index int, data SourceDatum) Edit {
	return Edit{Kind: EditInsert, Index: index, Data: data}
}

// Set replaces the element at index with a datum.
func Set(index int, data SourceDatum) Edit {
	return Edit{Kind: EditSet, Index: index, Data: data}
}

// Remove drops the element at index.
func Remove(index int) Edit {
	return Edit{Kind: EditRemove, Index: index}
}

// Clear drops every element. Never eligible for minimization.
func Clear() Edit {
	return Edit{Kind: EditClear}
}

// Truncate drops every element past the first n. Never eligible for
// minimization.
func Truncate(n int) Edit {
	return Edit{Kind: EditTruncate, Len: n}
}

// Reset replaces the whole collection with data. Never eligible for
// minimization.
func Reset(data ...SourceDatum) Edit {
	return Edit{Kind: EditReset, Batch: data}
}

// String returns a short description of the edit for diagnostics.
func (e Edit) String() string {
	switch e.Kind {
	case EditAppend, EditReset:
		return fmt.Sprintf("%s(%d)", e.Kind, len(e.Batch))
	case EditInsert, EditSet, EditRemove:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
	case EditTruncate:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Len)
	default:
		return e.Kind.String()
	}
}

// =============================================================================
// ELIGIBILITY
// =============================================================================

// BatchEligible reports whether a batch may be minimized: it must
// contain more than one edit and no Clear, Truncate or Reset. A batch
// that fails this predicate must be handled through a non-minimized
// path (full list rebuild). The predicate is pure and touches no state.
func BatchEligible(batch []Edit) bool {
	if len(batch) <= 1 {
		return false
	}
	for _, e := range batch {
		switch e.Kind {
		case EditClear, EditTruncate, EditReset:
			return false
		}
	}
	return true
}
