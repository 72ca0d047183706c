package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hangman/internal/hangman"
	"github.com/vovakirdan/hangman/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Hangman in this terminal",
	Long: `Start a game of Hangman.

Type a letter and press Enter to guess. After a win or a loss a new
word is picked straight away at the selected difficulty.

Controls:
  Enter          - Guess / close message
  Tab/Shift+Tab  - Change difficulty (applies to the next word)
  Ctrl+R         - New word at the selected difficulty
  F1             - Toggle help
  Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - 3 to 5 letters
  medium - 5 to 8 letters
  hard   - 8 to 10 letters

Examples:
  hangman play
  hangman play --difficulty medium
  hangman play --seed 42 --log-file ~/.hangman/debug.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: hangman play needs an interactive terminal")
		os.Exit(1)
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = flagDifficulty
	}

	difficulty, err := cfg.StartDifficulty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file so they never draw over the game
	out, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, out)
	logger.Debug("config loaded", "source", source, "difficulty", difficulty, "seed", cfg.Seed)

	session := hangman.NewSession(hangman.DefaultPool(), newRand(cfg.Seed))
	opts := tui.Options{
		Difficulty: difficulty,
		Styles:     tui.NewStyles(nil, cfg.Theme),
		Logger:     logger,
	}

	runErr := tui.Run(session, opts)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
