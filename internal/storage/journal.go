// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides event persistence for parley TUI.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/parley-tui/internal/model"
)

// ErrNoEvents is returned by Replay for a conversation with no journal
// entries.
var ErrNoEvents = errors.New("no events journaled for conversation")

// schema creates the journal tables. seq is the replay order: events
// are replayed in exactly the order they were appended.
const schema = `
CREATE TABLE IF NOT EXISTS events (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id TEXT NOT NULL,
	event_id        TEXT NOT NULL,
	sender          TEXT NOT NULL,
	kind            TEXT NOT NULL,
	body            TEXT NOT NULL,
	origin_ts       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_conversation ON events(conversation_id, seq);
`

// =============================================================================
// EVENT JOURNAL
// =============================================================================

// EventJournal is an append-only SQLite journal of timeline events,
// keyed by conversation.
type EventJournal struct {
	db *sql.DB
}

// OpenJournal opens (or creates) the journal at path.
func OpenJournal(path string) (*EventJournal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &EventJournal{db: db}, nil
}

// DefaultJournalPath returns the journal location under the user's
// home directory.
func DefaultJournalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parley", "journal.db"), nil
}

// Close closes the underlying database.
func (j *EventJournal) Close() error {
	return j.db.Close()
}

// =============================================================================
// APPEND / REPLAY
// =============================================================================

// Append journals a slice of events for a conversation in one
// transaction, preserving their order.
func (j *EventJournal) Append(conversationID string, events []*model.MessageEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO events (conversation_id, event_id, sender, kind, body, origin_ts)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, evt := range events {
		if _, err := stmt.Exec(
			conversationID,
			evt.EventID,
			evt.Sender,
			string(evt.Kind),
			evt.Body,
			evt.OriginTS.UnixMilli(),
		); err != nil {
			return fmt.Errorf("failed to journal event %s: %w", evt.EventID, err)
		}
	}

	return tx.Commit()
}

// Replay returns every journaled event for a conversation in append
// order. Returns ErrNoEvents if the conversation has no entries.
func (j *EventJournal) Replay(conversationID string) ([]*model.MessageEvent, error) {
	rows, err := j.db.Query(`
		SELECT event_id, sender, kind, body, origin_ts
		FROM events
		WHERE conversation_id = ?
		ORDER BY seq`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*model.MessageEvent
	for rows.Next() {
		var evt model.MessageEvent
		var kind string
		var originMillis int64
		if err := rows.Scan(&evt.EventID, &evt.Sender, &kind, &evt.Body, &originMillis); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		evt.Kind = model.EventKind(kind)
		evt.OriginTS = time.UnixMilli(originMillis)
		events = append(events, &evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}

// Conversations lists the conversation IDs present in the journal, in
// order of first appearance.
func (j *EventJournal) Conversations() ([]string, error) {
	rows, err := j.db.Query(`
		SELECT conversation_id
		FROM events
		GROUP BY conversation_id
		ORDER BY MIN(seq)`)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// EventCount returns the number of journaled events for a conversation.
func (j *EventJournal) EventCount(conversationID string) (int, error) {
	var count int
	err := j.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE conversation_id = ?`,
		conversationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
