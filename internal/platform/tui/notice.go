package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/hangman/internal/hangman"
)

// NoticeKind selects the look of a notice.
type NoticeKind int

const (
	NoticeWarning NoticeKind = iota
	NoticeInfo
	NoticeWin
	NoticeLoss
)

// Notice is a modal message shown until the player dismisses it.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// noticeForGuessError maps a rejected guess to the message shown to the player.
func noticeForGuessError(err error, input string) Notice {
	switch {
	case errors.Is(err, hangman.ErrDuplicateGuess):
		return Notice{
			Kind:    NoticeInfo,
			Title:   "Duplicate Guess",
			Message: fmt.Sprintf("You already guessed '%s'.", strings.ToLower(input)),
		}
	case errors.Is(err, hangman.ErrInvalidGuess):
		return Notice{
			Kind:    NoticeWarning,
			Title:   "Invalid Guess",
			Message: "Please enter a single alphabetical character.",
		}
	default:
		return Notice{
			Kind:    NoticeWarning,
			Title:   "Error",
			Message: err.Error(),
		}
	}
}

// noticeForResult returns the notice for a round-ending guess.
func noticeForResult(res hangman.Result) (Notice, bool) {
	switch res.Outcome {
	case hangman.Won:
		return Notice{
			Kind:    NoticeWin,
			Title:   "Congratulations!",
			Message: "You guessed the word! You win!",
		}, true
	case hangman.Lost:
		return Notice{
			Kind:    NoticeLoss,
			Title:   "Game Over",
			Message: fmt.Sprintf("Sorry, you ran out of guesses. The word was '%s'.", res.Word),
		}, true
	}
	return Notice{}, false
}
