// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface:
//   - Timeline: applied-batch notifications from the store
//   - Input: user input submission
//   - Config: hot-reload notifications
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/timeline"
)

// =============================================================================
// TIMELINE MESSAGES
// =============================================================================

// BatchAppliedMsg reports that an edit batch landed in the message
// list. Ops is the minimal operation list the engine applied; nil means
// the list was rebuilt and the whole view must redraw.
type BatchAppliedMsg struct {
	Ops []timeline.Op
}

// =============================================================================
// INPUT MESSAGES
// =============================================================================

// SubmitInputMsg signals that the user submitted input.
type SubmitInputMsg struct {
	Content string
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg delivers a hot-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}
