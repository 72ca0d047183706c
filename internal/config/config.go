// Package config provides YAML-based configuration loading for the
// hangman CLI, the local terminal UI and the SSH server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/hangman"
)

// Config contains all runtime settings.
type Config struct {
	Difficulty string      `yaml:"difficulty"`
	Seed       int64       `yaml:"seed"` // 0 = time based
	Log        LogConfig   `yaml:"log"`
	SSH        SSHConfig   `yaml:"ssh"`
	Theme      ThemeConfig `yaml:"theme"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Local play only; empty discards logs
}

// SSHConfig holds settings for `hangman serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig holds ANSI 256 color codes for the UI.
type ThemeConfig struct {
	Accent  string `yaml:"accent"`
	Muted   string `yaml:"muted"`
	Warning string `yaml:"warning"`
	Success string `yaml:"success"`
	Danger  string `yaml:"danger"`
}

// StartDifficulty returns the configured difficulty.
func (c Config) StartDifficulty() (hangman.Difficulty, error) {
	return hangman.ParseDifficulty(c.Difficulty)
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(c.Log.Level))
}

// Validate checks the values a user can get wrong in a config file.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.StartDifficulty(); err != nil {
		errs = append(errs, fmt.Errorf("difficulty: %w", err))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.SSH.Address == "" {
		errs = append(errs, errors.New("ssh.address: must not be empty"))
	}
	if c.SSH.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout: must be positive, got %s", c.SSH.IdleTimeout))
	}

	return errors.Join(errs...)
}
