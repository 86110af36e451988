// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for parley TUI.
package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Styles must render without panicking regardless of terminal.
	_ = theme.Header.Render("parley")
	_ = theme.OwnSender.Render("@alice:local")
	_ = theme.Redacted.Render("(message deleted)")
	_ = theme.StatusBar.Render("ready")
}

func TestAdaptiveColorsDefined(t *testing.T) {
	colors := []struct {
		name  string
		light string
		dark  string
	}{
		{"Cyan", Cyan.Light, Cyan.Dark},
		{"Purple", Purple.Light, Purple.Dark},
		{"Rose", Rose.Light, Rose.Dark},
		{"TextPrimary", TextPrimary.Light, TextPrimary.Dark},
	}

	for _, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s must define both light and dark variants", c.name)
		}
	}
}
