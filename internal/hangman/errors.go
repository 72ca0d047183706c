package hangman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGuess is returned when the input is not exactly one letter.
	ErrInvalidGuess = errors.New("hangman: guess must be a single letter a-z")

	// ErrDuplicateGuess is returned when the letter was already guessed this round.
	ErrDuplicateGuess = errors.New("hangman: letter already guessed")

	// ErrRoundOver is returned by Guess once the round is won or lost.
	// The caller starts a new round with StartRound.
	ErrRoundOver = errors.New("hangman: round is over")

	// ErrNoRound is returned by Guess before the first StartRound.
	ErrNoRound = errors.New("hangman: no round started")

	// ErrUnknownDifficulty is returned for a difficulty outside Easy..Hard.
	ErrUnknownDifficulty = errors.New("hangman: unknown difficulty")

	// ErrConfiguration is matched by every *ConfigError.
	ErrConfiguration = errors.New("hangman: word pool misconfigured")
)

// ConfigError reports a difficulty whose pool has no word within its length range.
// It only arises from a misconfigured word table, never from DefaultPool.
type ConfigError struct {
	Difficulty Difficulty
	Range      LengthRange
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hangman: no %s word with length %d-%d", e.Difficulty, e.Range.Min, e.Range.Max)
}

// Unwrap lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
