// Package hangman implements the rules of a Hangman round: word selection,
// guess tracking, win/loss evaluation and the text renderings the UI shows.
// It has no terminal or network dependencies; the platform layer drives it.
package hangman

import (
	"fmt"
	"strings"
)

// Difficulty selects both a word pool and an acceptable word-length range.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in selector order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the lowercase name used in config files and flags.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Title returns the capitalized name shown in the status line.
func (d Difficulty) Title() string {
	s := d.String()
	if !d.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Next returns the following difficulty, wrapping around after Hard.
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(Difficulties))
}

// Prev returns the preceding difficulty, wrapping around before Easy.
func (d Difficulty) Prev() Difficulty {
	n := len(Difficulties)
	return Difficulty((int(d) - 1 + n) % n)
}

// ParseDifficulty converts a name such as "Medium" to a Difficulty.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
