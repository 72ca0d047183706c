// hangman is a terminal Hangman game that can also be served over SSH.
//
// Usage:
//
//	hangman play                 - Play in this terminal
//	hangman serve                - Start SSH server for remote play
//	hangman words [difficulty]   - Show the word pools
//	hangman gallows [stage]      - Print gallows frames
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.hangman/config.yaml, ./configs/hangman.yaml)
//	--seed <value>      - Set RNG seed for reproducible word selection
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log file for local play
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the gallows is complete",
	Long: `Hangman in your terminal.

Pick a difficulty, guess one letter at a time and reveal the word
before six wrong guesses complete the figure.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  words    - Show the word pools
  gallows  - Print gallows frames

Examples:
  hangman play
  hangman play --difficulty hard
  hangman serve --ssh :2222
  hangman words medium`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local play (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(gallowsCmd)
}

// loadConfig loads the config file and applies the global flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid config (%s): %w", source, err)
	}
	return cfg, source, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(cfg config.Config, w io.Writer) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           level,
	})
}

// openLogFile opens the local play log file, or returns io.Discard.
// The returned close func is always safe to call.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newRand returns the RNG for word selection. A zero seed uses the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
