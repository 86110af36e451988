// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// The view renders the message list owned by the store and reacts to
// applied-batch notifications from the timeline engine: a redraw only
// happens when a batch actually changed the list, and the viewport
// follows the bottom while new messages append.
package chat
