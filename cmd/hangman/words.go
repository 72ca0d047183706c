package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/hangman"
)

var wordsCmd = &cobra.Command{
	Use:   "words [difficulty]",
	Short: "Show the word pools",
	Long: `Shows the words of each difficulty and its length range.
Words outside the range are listed but never picked.

Examples:
  hangman words
  hangman words hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWords,
}

var gallowsCmd = &cobra.Command{
	Use:   "gallows [stage]",
	Short: "Print gallows frames",
	Long: `Prints the gallows figure for a number of wrong guesses (0-6),
or every stage when no number is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGallows,
}

func runWords(_ *cobra.Command, args []string) {
	difficulties := hangman.Difficulties
	if len(args) == 1 {
		d, err := hangman.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulties = []hangman.Difficulty{d}
	}

	pool := hangman.DefaultPool()
	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(formatPool(pool, d))
	}
}

// formatPool renders one difficulty of the pool for the words command.
func formatPool(pool hangman.WordPool, d hangman.Difficulty) string {
	var b strings.Builder

	r, _ := pool.Range(d)
	fmt.Fprintf(&b, "%s (%d-%d letters)\n", d.Title(), r.Min, r.Max)

	candidates, err := pool.Candidates(d)
	if err != nil {
		fmt.Fprintf(&b, "  error: %v\n", err)
	}
	eligible := make(map[string]bool, len(candidates))
	for _, w := range candidates {
		eligible[w] = true
	}

	// Calculate column width
	maxLen := 4 // "Word" header
	for _, w := range pool.Words(d) {
		maxLen = max(maxLen, len(w))
	}

	fmt.Fprintf(&b, "  %-*s  %s\n", maxLen, "Word", "Eligible")
	fmt.Fprintf(&b, "  %-*s  %s\n", maxLen, "----", "--------")
	for _, w := range pool.Words(d) {
		mark := "yes"
		if !eligible[w] {
			mark = "no"
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", maxLen, w, mark)
	}
	return b.String()
}

func runGallows(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		stage, err := strconv.Atoi(args[0])
		if err != nil || stage < 0 || stage > hangman.MaxAttempts {
			fmt.Fprintf(os.Stderr, "Error: stage must be a number from 0 to %d\n", hangman.MaxAttempts)
			os.Exit(1)
		}
		fmt.Println(hangman.Gallows(stage))
		return
	}

	for stage := 0; stage <= hangman.MaxAttempts; stage++ {
		fmt.Printf("Stage %d (%d guesses left)\n", stage, hangman.MaxAttempts-stage)
		fmt.Println(hangman.Gallows(stage))
		fmt.Println()
	}
}
