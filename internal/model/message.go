// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for timeline events and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// EVENT KIND
// =============================================================================

// EventKind classifies a timeline event.
type EventKind string

const (
	EventText      EventKind = "text"
	EventNotice    EventKind = "notice"
	EventEmote     EventKind = "emote"
	EventRedaction EventKind = "redaction"
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	return string(k)
}

// =============================================================================
// MESSAGE EVENT
// =============================================================================

// MessageEvent is an incoming timeline payload. Events with the same
// ID describe the same logical timeline entry: the first appearance
// creates a Message, every later appearance refreshes it in place.
// Events are read-only once constructed.
type MessageEvent struct {
	EventID  string    `json:"event_id"`
	Sender   string    `json:"sender"`
	Kind     EventKind `json:"kind"`
	Body     string    `json:"body"`
	OriginTS time.Time `json:"origin_ts"`

	// Local marks an event composed on this client and not yet
	// acknowledged by the conversation's source of truth.
	Local bool `json:"-"`
}

// TimelineID returns the stable identity of the entry this event describes.
func (e *MessageEvent) TimelineID() string {
	return e.EventID
}

// NewLocalEvent creates an event for a message composed locally, with a
// generated event ID.
func NewLocalEvent(sender, body string) *MessageEvent {
	return &MessageEvent{
		EventID:  uuid.NewString(),
		Sender:   sender,
		Kind:     EventText,
		Body:     body,
		OriginTS: time.Now(),
		Local:    true,
	}
}

// EditOf returns a copy of this event carrying a new body. The event ID
// is unchanged, so applying the copy refreshes the existing message.
func (e *MessageEvent) EditOf(body string) *MessageEvent {
	edited := *e
	edited.Body = body
	return &edited
}

// =============================================================================
// MESSAGE
// =============================================================================

// Message is a presented timeline entry. Messages are shared handles:
// the store owns the canonical list and everything else holds the same
// pointer, so an in-place refresh is visible everywhere. Two messages
// represent the same entry iff their event IDs match; the ID never
// changes after construction.
type Message struct {
	eventID string

	Sender    string
	Kind      EventKind
	Body      string
	Timestamp time.Time

	// Edited is set once a second event with the same ID changed the body.
	Edited bool
	// Redacted is set when a redaction event replaced the content.
	Redacted bool
	// LocalEcho marks a message shown before the server acknowledged it.
	LocalEcho bool
}

// NewMessage creates a presented message from its first event.
func NewMessage(e *MessageEvent) *Message {
	return &Message{
		eventID:   e.EventID,
		Sender:    e.Sender,
		Kind:      e.Kind,
		Body:      e.Body,
		Timestamp: e.OriginTS,
		LocalEcho: e.Local,
	}
}

// TimelineID returns the stable identity of this message.
func (m *Message) TimelineID() string {
	return m.eventID
}

// ApplyEvent refreshes the message in place from a later event with the
// same ID. The identity never changes.
func (m *Message) ApplyEvent(e *MessageEvent) {
	if e.Kind == EventRedaction {
		m.Redacted = true
		m.Body = ""
		m.LocalEcho = false
		return
	}
	if m.Body != e.Body {
		m.Edited = true
	}
	m.Sender = e.Sender
	m.Kind = e.Kind
	m.Body = e.Body
	m.Timestamp = e.OriginTS
	m.LocalEcho = e.Local
}

// DisplayBody returns the body as it should be rendered.
func (m *Message) DisplayBody() string {
	if m.Redacted {
		return "(message deleted)"
	}
	if m.Kind == EventEmote {
		return "* " + m.Sender + " " + m.Body
	}
	return m.Body
}

// Preview returns a single-line preview of the message body.
func (m *Message) Preview() string {
	body := m.DisplayBody()
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = body[:idx]
	}
	return body
}
