// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/parley-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete parley configuration.
type Config struct {
	Version string `toml:"version"`

	// Profile identifies the local user.
	Profile ProfileConfig `toml:"profile"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Timeline configuration
	Timeline TimelineConfig `toml:"timeline"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`
}

// ProfileConfig identifies the local user.
type ProfileConfig struct {
	// UserID is the user's stable identifier (e.g. "@alice:local").
	UserID string `toml:"user_id"`
	// DisplayName is shown next to the user's own messages.
	DisplayName string `toml:"display_name"`
}

// UIConfig contains appearance settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme"`
	// ShowTimestamps renders a timestamp next to each message.
	ShowTimestamps bool `toml:"show_timestamps"`
	// CompactMode drops the blank line between messages.
	CompactMode bool `toml:"compact_mode"`
}

// TimelineConfig tunes the timeline engine's surroundings.
type TimelineConfig struct {
	// BackfillBatchSize is how many historical events one backfill
	// batch carries.
	BackfillBatchSize int `toml:"backfill_batch_size"`
	// MaxCachedMessages caps the in-memory message list (0 = unlimited).
	MaxCachedMessages int `toml:"max_cached_messages"`
}

// StorageConfig contains persistence settings.
type StorageConfig struct {
	// JournalEnabled toggles the SQLite event journal.
	JournalEnabled bool `toml:"journal_enabled"`
	// JournalPath overrides the journal location (empty = default
	// ~/.parley/journal.db).
	JournalPath string `toml:"journal_path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Profile: ProfileConfig{
			UserID:      "@local:parley",
			DisplayName: "You",
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: true,
		},
		Timeline: TimelineConfig{
			BackfillBatchSize: 50,
			MaxCachedMessages: 10000,
		},
		Storage: StorageConfig{
			JournalEnabled: true,
		},
	}
}

// ConfigDir returns the parley configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".parley"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the configuration file, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies PARLEY_* environment variables on top of
// the loaded values.
func (c *Config) ApplyEnvOverrides() {
	if user := os.Getenv("PARLEY_USER"); user != "" {
		c.Profile.UserID = user
	}
	if name := os.Getenv("PARLEY_DISPLAY_NAME"); name != "" {
		c.Profile.DisplayName = name
	}
	if theme := os.Getenv("PARLEY_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if journal := os.Getenv("PARLEY_JOURNAL"); journal != "" {
		c.Storage.JournalEnabled = journal == "1" || strings.ToLower(journal) == "true"
	}
	if path := os.Getenv("PARLEY_JOURNAL_PATH"); path != "" {
		c.Storage.JournalPath = path
	}
}

// SetDefaults fills zero values that a hand-edited file may have dropped.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Profile.UserID == "" {
		c.Profile.UserID = "@local:parley"
	}
	if c.Profile.DisplayName == "" {
		c.Profile.DisplayName = "You"
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "auto"
	}
	if c.Timeline.BackfillBatchSize <= 0 {
		c.Timeline.BackfillBatchSize = 50
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the formatted validation error.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return ValidationError{Field: "ui.theme", Message: fmt.Sprintf("unknown theme %q", c.UI.Theme)}
	}
	if c.Timeline.MaxCachedMessages < 0 {
		return ValidationError{Field: "timeline.max_cached_messages", Message: "must not be negative"}
	}
	if !strings.HasPrefix(c.Profile.UserID, "@") {
		return ValidationError{Field: "profile.user_id", Message: "must start with '@'"}
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the default location.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath writes the configuration to an explicit path atomically.
func (c *Config) SaveToPath(path string) error {
	var sb strings.Builder
	sb.WriteString("# parley configuration file\n")
	sb.WriteString("# Generated by parley - edit with care\n\n")

	encoder := toml.NewEncoder(&sb)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
