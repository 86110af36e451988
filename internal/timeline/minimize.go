// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline implements diff minimization for an incrementally
// updating message timeline.
//
// This file is the orchestrator: it snapshots the store, runs the diff
// application and edit-script steps, and forwards the minimal operation
// list back to the store.
package timeline

// Minimize runs one minimization pass for an eligible batch:
//
//  1. Snapshot the store's items once; their order is the old identity
//     order.
//  2. Replay the batch, materializing items through the store, to
//     obtain the new identity order and the set of identities updated
//     in place.
//  3. Compute the minimal operation list from the two orders.
//  4. Hand the list to the store's ApplyItemDiffList.
//
// Calling Minimize with an ineligible batch (length <= 1, or containing
// Clear/Truncate/Reset) is a contract violation and panics; callers
// gate on BatchEligible and route ineligible batches through a full
// rebuild instead.
func Minimize(store Store, batch []Edit) {
	if !BatchEligible(batch) {
		panic("timeline: Minimize called with ineligible batch")
	}

	items := store.Items()
	oldIDs := make([]string, len(items))
	for i, it := range items {
		oldIDs[i] = it.TimelineID()
	}

	res := newResolver(store, items)
	newIDs := applyEdits(res, oldIDs, batch)
	ops := computeScript(oldIDs, newIDs, res.updated, res.known)

	store.ApplyItemDiffList(ops)
}
