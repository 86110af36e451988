// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides event persistence for parley TUI.
//
// This package keeps an append-only journal of timeline events per
// conversation in SQLite, so a restarted client can rebuild its
// timelines by replaying the journal through the same batch path live
// events take.
//
// # Key Types
//
//   - EventJournal: SQLite-backed append/replay journal
//
// # Usage
//
// Open a journal and append events as they arrive:
//
//	journal, err := storage.OpenJournal(path)
//	err = journal.Append("!room:local", events)
//
// Replay a conversation on startup:
//
//	events, err := journal.Replay("!room:local")
//
// # Storage Location
//
// The journal lives at ~/.parley/journal.db by default.
package storage
