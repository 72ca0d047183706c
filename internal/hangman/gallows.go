package hangman

import "strings"

// Frame lines of the empty gallows.
var gallowsFrame = [7]string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=========",
}

// Gallows returns the 7-line figure for the given number of incorrect guesses.
// Parts are added as the count grows: head at 1, body with both arms at 2,
// one leg at 3 and both legs from 4 on. Counts are clamped to [0, MaxAttempts].
func Gallows(incorrect int) string {
	incorrect = max(0, min(incorrect, MaxAttempts))

	lines := gallowsFrame
	if incorrect >= 1 {
		lines[2] = "  O   |"
	}
	if incorrect >= 2 {
		lines[3] = ` /|\  |`
	}
	if incorrect >= 3 {
		lines[4] = " /    |"
	}
	if incorrect >= 4 {
		lines[4] = ` / \  |`
	}
	return strings.Join(lines[:], "\n")
}
