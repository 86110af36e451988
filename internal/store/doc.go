// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the presented message list for one conversation.
//
// MessageList is the store collaborator of the timeline engine: it
// holds the canonical ordered messages, materializes them from incoming
// events, and applies the minimal operation lists the engine emits.
// Eligible edit batches flow through timeline.Minimize; batches the
// engine refuses (single edits, clear/truncate/reset) are applied
// through a full rebuild instead.
package store
