// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for timeline events and messages.
//
// This package defines the core domain types used throughout the application
// for representing a conversation timeline.
//
// # Key Types
//
//   - MessageEvent: Incoming payload for one timeline entry (the source datum)
//   - Message: Presented timeline entry, refreshed in place across edits
//   - EventKind: Event kind enumeration (text, notice, emote, redaction)
//
// # Usage
//
// Create a message from an event and refresh it later:
//
//	msg := model.NewMessage(evt)
//	msg.ApplyEvent(edited) // same event ID, new content
//
// Both types carry the stable event ID that the timeline engine keys on:
//
//	msg.TimelineID() == evt.TimelineID()
package model
