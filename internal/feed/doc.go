// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed delivers elementary edit batches to a message list.
//
// The timeline engine requires that batches apply one at a time with no
// overlapping passes against the same store. Feed enforces that: all
// producers submit batches to a channel, a single consumer goroutine
// journals each batch's events and applies it to the list in order.
// Delivery is rate limited so a flood of tiny batches from backfill
// cannot starve the render loop.
package feed
