// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"fmt"
	"strings"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting parley..."
	}

	var sb strings.Builder
	sb.WriteString(m.theme.Header.Render("parley — " + m.conversationID))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.theme.InputContainer.Width(m.width - 2).Render(
		m.theme.InputPrompt.Render("> ") + m.input.View()))
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())
	return m.theme.App.Render(sb.String())
}

// renderMessages renders the full message list for the viewport.
func (m Model) renderMessages() string {
	msgs := m.list.Messages()
	if len(msgs) == 0 {
		return m.theme.BodyNotice.Render("No messages yet. Say hello!")
	}

	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 && !m.cfg.UI.CompactMode {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderMessage(msg))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderMessage renders one message line-set.
func (m Model) renderMessage(msg *model.Message) string {
	var sb strings.Builder

	sender := m.theme.OtherSender
	name := msg.Sender
	if msg.Sender == m.cfg.Profile.UserID {
		sender = m.theme.OwnSender
		name = m.cfg.Profile.DisplayName
	}
	sb.WriteString(sender.Render(util.TruncateWidth(name, 28)))

	if m.cfg.UI.ShowTimestamps && !msg.Timestamp.IsZero() {
		sb.WriteString(" ")
		sb.WriteString(m.theme.Timestamp.Render(msg.Timestamp.Format("15:04")))
	}
	if msg.Edited {
		sb.WriteString(" ")
		sb.WriteString(m.theme.EditedMark.Render("(edited)"))
	}
	if msg.LocalEcho {
		sb.WriteString(" ")
		sb.WriteString(m.theme.LocalEcho.Render("(sending)"))
	}
	sb.WriteString("\n")

	body := msg.DisplayBody()
	switch {
	case msg.Redacted:
		sb.WriteString(m.theme.Redacted.Render(body))
	case msg.Kind == model.EventNotice:
		sb.WriteString(m.theme.BodyNotice.Render(body))
	case msg.Kind == model.EventEmote:
		sb.WriteString(m.theme.BodyEmote.Render(body))
	default:
		sb.WriteString(m.theme.Body.Render(body))
	}
	return sb.String()
}

// statusBar renders the bottom status line.
func (m Model) statusBar() string {
	left := fmt.Sprintf("%d messages", m.list.Len())
	help := strings.Join([]string{
		m.theme.StatusKey.Render("Enter") + m.theme.StatusDesc.Render(" send"),
		m.theme.StatusKey.Render("PgUp/PgDn") + m.theme.StatusDesc.Render(" scroll"),
		m.theme.StatusKey.Render("C-c") + m.theme.StatusDesc.Render(" quit"),
	}, "  ")
	return m.theme.StatusBar.Width(m.width).Render(left + "  " + help)
}
