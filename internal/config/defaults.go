package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/hangman.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Difficulty: "easy",
		Seed:       0,
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Theme: ThemeConfig{
			Accent:  "212",
			Muted:   "245",
			Warning: "214",
			Success: "42",
			Danger:  "196",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
