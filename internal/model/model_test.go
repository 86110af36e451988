// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for timeline events and messages.
package model

import (
	"testing"
	"time"
)

// =============================================================================
// MESSAGE EVENT TESTS
// =============================================================================

func TestNewLocalEvent(t *testing.T) {
	evt := NewLocalEvent("@alice:local", "hello")

	if evt.EventID == "" {
		t.Error("Expected generated event ID")
	}
	if evt.Kind != EventText {
		t.Errorf("Expected kind %q, got %q", EventText, evt.Kind)
	}
	if evt.TimelineID() != evt.EventID {
		t.Error("TimelineID must equal EventID")
	}

	other := NewLocalEvent("@alice:local", "hello")
	if other.EventID == evt.EventID {
		t.Error("Two local events must not share an event ID")
	}
}

func TestMessageEvent_EditOf(t *testing.T) {
	evt := NewLocalEvent("@alice:local", "helo")
	edited := evt.EditOf("hello")

	if edited.EventID != evt.EventID {
		t.Error("EditOf must preserve the event ID")
	}
	if edited.Body != "hello" {
		t.Errorf("Expected edited body 'hello', got %q", edited.Body)
	}
	if evt.Body != "helo" {
		t.Error("EditOf must not mutate the original event")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_ApplyEvent(t *testing.T) {
	evt := &MessageEvent{
		EventID:  "$1",
		Sender:   "@bob:local",
		Kind:     EventText,
		Body:     "first",
		OriginTS: time.Now(),
	}
	msg := NewMessage(evt)

	if msg.Edited {
		t.Error("Fresh message must not be marked edited")
	}

	msg.ApplyEvent(evt.EditOf("second"))

	if msg.TimelineID() != "$1" {
		t.Errorf("Identity changed: got %q", msg.TimelineID())
	}
	if msg.Body != "second" {
		t.Errorf("Expected body 'second', got %q", msg.Body)
	}
	if !msg.Edited {
		t.Error("Body change must mark the message edited")
	}
}

func TestMessage_ApplyEvent_SameBody(t *testing.T) {
	evt := &MessageEvent{EventID: "$1", Sender: "@bob:local", Kind: EventText, Body: "same"}
	msg := NewMessage(evt)

	msg.ApplyEvent(evt)

	if msg.Edited {
		t.Error("Refresh with identical body must not mark the message edited")
	}
}

func TestMessage_LocalEchoAcknowledged(t *testing.T) {
	evt := NewLocalEvent("@alice:local", "hi")
	msg := NewMessage(evt)

	if !msg.LocalEcho {
		t.Error("Message from a local event must start as local echo")
	}

	// The acknowledged copy comes back without the local flag.
	acked := *evt
	acked.Local = false
	msg.ApplyEvent(&acked)

	if msg.LocalEcho {
		t.Error("Acknowledged message must clear local echo")
	}
}

func TestMessage_Redaction(t *testing.T) {
	msg := NewMessage(&MessageEvent{EventID: "$1", Sender: "@bob:local", Kind: EventText, Body: "secret"})

	msg.ApplyEvent(&MessageEvent{EventID: "$1", Sender: "@mod:local", Kind: EventRedaction})

	if !msg.Redacted {
		t.Error("Redaction event must mark the message redacted")
	}
	if msg.Body != "" {
		t.Errorf("Redacted message must have empty body, got %q", msg.Body)
	}
	if msg.DisplayBody() != "(message deleted)" {
		t.Errorf("Unexpected display body %q", msg.DisplayBody())
	}
}

func TestMessage_DisplayBody(t *testing.T) {
	tests := []struct {
		name     string
		msg      *Message
		expected string
	}{
		{
			name:     "text",
			msg:      NewMessage(&MessageEvent{EventID: "$1", Sender: "@a:l", Kind: EventText, Body: "hi"}),
			expected: "hi",
		},
		{
			name:     "emote",
			msg:      NewMessage(&MessageEvent{EventID: "$2", Sender: "@a:l", Kind: EventEmote, Body: "waves"}),
			expected: "* @a:l waves",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.DisplayBody(); got != tt.expected {
				t.Errorf("DisplayBody() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewMessage(&MessageEvent{EventID: "$1", Sender: "@a:l", Kind: EventText, Body: "line one\nline two"})
	if got := msg.Preview(); got != "line one" {
		t.Errorf("Preview() = %q, want %q", got, "line one")
	}
}
