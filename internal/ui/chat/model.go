// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/feed"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view. It never mutates the
// message list directly: input becomes edit batches submitted to the
// feed, and redraws are driven by BatchAppliedMsg notifications.
type Model struct {
	// Styling
	theme *styles.Theme
	cfg   *config.Config

	// Conversation
	conversationID string
	list           *store.MessageList
	feed           *feed.Feed

	// UI components
	viewport viewport.Model
	input    textinput.Model

	// Key bindings
	keyMap KeyMap

	// Dimensions
	width  int
	height int
	ready  bool

	// followBottom keeps the viewport pinned to the newest message
	// until the user scrolls away.
	followBottom bool
}

// New creates the chat view for one conversation.
func New(cfg *config.Config, conversationID string, list *store.MessageList, f *feed.Feed) Model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.CharLimit = 4000
	input.Focus()

	return Model{
		theme:          styles.NewTheme(),
		cfg:            cfg,
		conversationID: conversationID,
		list:           list,
		feed:           f,
		input:          input,
		keyMap:         DefaultKeyMap(),
		followBottom:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
