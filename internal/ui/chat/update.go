// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/timeline"
)

// inputHeight is the rows reserved below the viewport for the input
// box and status bar.
const inputHeight = 4

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewHeight := msg.Height - inputHeight
		if viewHeight < 1 {
			viewHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewHeight
		}
		m.input.Width = msg.Width - 6
		m.refreshViewport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Submit):
			return m.submitInput()
		case key.Matches(msg, m.keyMap.Up):
			m.followBottom = false
			m.viewport.LineUp(1)
		case key.Matches(msg, m.keyMap.Down):
			m.viewport.LineDown(1)
			m.followBottom = m.viewport.AtBottom()
		case key.Matches(msg, m.keyMap.PageUp):
			m.followBottom = false
			m.viewport.ViewUp()
		case key.Matches(msg, m.keyMap.PageDown):
			m.viewport.ViewDown()
			m.followBottom = m.viewport.AtBottom()
		case key.Matches(msg, m.keyMap.Bottom):
			m.followBottom = true
			m.viewport.GotoBottom()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case BatchAppliedMsg:
		// nil ops means a full rebuild; an empty op list means the
		// batch changed nothing visible and the redraw can be skipped.
		if msg.Ops == nil || len(msg.Ops) > 0 {
			m.refreshViewport()
		}

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.refreshViewport()

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submitInput turns the typed text into a local echo event and hands it
// to the feed.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}
	m.input.Reset()

	evt := model.NewLocalEvent(m.cfg.Profile.UserID, content)
	m.feed.Submit([]timeline.Edit{timeline.Append(evt)})
	m.followBottom = true
	return m, nil
}

// refreshViewport re-renders the message list into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if m.followBottom {
		m.viewport.GotoBottom()
	}
}
