// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for parley TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	OwnSender   lipgloss.Style
	OtherSender lipgloss.Style
	Body        lipgloss.Style
	BodyNotice  lipgloss.Style
	BodyEmote   lipgloss.Style
	Redacted    lipgloss.Style
	EditedMark  lipgloss.Style
	LocalEcho   lipgloss.Style
	Timestamp   lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	StatusBar      lipgloss.Style
	StatusKey      lipgloss.Style
	StatusDesc     lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.OwnSender = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.OtherSender = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	t.Body = lipgloss.NewStyle().Foreground(TextPrimary)
	t.BodyNotice = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)
	t.BodyEmote = lipgloss.NewStyle().Foreground(Purple).Italic(true)
	t.Redacted = lipgloss.NewStyle().Foreground(Rose).Italic(true).Faint(true)
	t.EditedMark = lipgloss.NewStyle().Foreground(TextMuted).Faint(true)
	t.LocalEcho = lipgloss.NewStyle().Foreground(Amber).Faint(true)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().Bold(true).Foreground(Cyan)

	t.StatusBar = lipgloss.NewStyle().Background(SurfaceDim).Foreground(TextMuted).Padding(0, 1)
	t.StatusKey = lipgloss.NewStyle().Bold(true).Foreground(Emerald)
	t.StatusDesc = lipgloss.NewStyle().Foreground(TextMuted)
}
