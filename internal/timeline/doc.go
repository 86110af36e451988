// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline implements diff minimization for an incrementally
// updating message timeline.
//
// A data source delivers batches of elementary edits (append, insert,
// set, remove, ...) against an ordered collection. Applying each edit
// directly to the rendered list causes flicker and redundant redraws.
// This package converts an eligible batch into a minimal list of
// coalesced operations (SpliceDiff, UpdateDiff) that the store applies
// in one step:
//
//  1. Snapshot the store's current identity order.
//  2. Replay the batch against a working identity list, materializing
//     items through the store's create/update callbacks.
//  3. Align the old and new identity orders (LCS) and batch adjacent
//     removals/additions into splices and adjacent in-place updates
//     into update runs.
//
// The engine is synchronous and pure with respect to the store: it has
// no goroutines, no I/O, and no recoverable error conditions. Contract
// violations (ineligible batches, out-of-range indices, duplicate
// identities) are programming errors and panic.
package timeline
