// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for parley TUI.
//
// All colors use Lip Gloss AdaptiveColor for automatic light/dark
// detection; the Theme detects the terminal's color capability via
// termenv and holds the configured styles used by the chat view.
package styles
