package hangman

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxAttempts is the number of incorrect guesses allowed per round.
const MaxAttempts = 6

// Source supplies the randomness used to pick a word. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// State is the lifecycle state of the current round.
type State int

const (
	// StateIdle means no round has been started yet.
	StateIdle State = iota
	StateInProgress
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is the result of an accepted guess.
type Outcome int

const (
	Continue Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Result describes an accepted guess.
type Result struct {
	Letter    rune
	Hit       bool // letter occurs in the word
	Outcome   Outcome
	Remaining int
	Word      string // target word, shown to the player on loss
}

// Session holds one round of Hangman at a time.
// It is not safe for concurrent use; the UI owning it calls it sequentially.
type Session struct {
	pool       WordPool
	rng        Source
	difficulty Difficulty
	word       string
	guessed    map[rune]bool
	remaining  int
	state      State
}

// NewSession creates a session that draws words from pool using rng.
// Call StartRound before the first Guess.
func NewSession(pool WordPool, rng Source) *Session {
	return &Session{
		pool:      pool,
		rng:       rng,
		guessed:   make(map[rune]bool),
		remaining: MaxAttempts,
	}
}

// StartRound picks a new word for d and resets attempts and guesses.
// On error the previous round is left untouched.
func (s *Session) StartRound(d Difficulty) error {
	candidates, err := s.pool.Candidates(d)
	if err != nil {
		return err
	}

	s.difficulty = d
	s.word = candidates[s.rng.Intn(len(candidates))]
	s.remaining = MaxAttempts
	clear(s.guessed)
	s.state = StateInProgress
	return nil
}

// Guess applies one raw input string from the player.
//
// The input is lowercased and must then be exactly one letter a-z, otherwise
// ErrInvalidGuess is returned. A letter guessed earlier in the round yields
// ErrDuplicateGuess. Neither error changes the session.
func (s *Session) Guess(input string) (Result, error) {
	switch s.state {
	case StateIdle:
		return Result{}, ErrNoRound
	case StateWon, StateLost:
		return Result{}, ErrRoundOver
	}

	letter, ok := parseLetter(input)
	if !ok {
		return Result{}, ErrInvalidGuess
	}
	if s.guessed[letter] {
		return Result{}, ErrDuplicateGuess
	}

	s.guessed[letter] = true
	hit := strings.ContainsRune(s.word, letter)
	if !hit && s.remaining > 0 {
		s.remaining--
	}

	// Win is checked before loss.
	outcome := Continue
	switch {
	case s.revealed():
		s.state = StateWon
		outcome = Won
	case s.remaining == 0:
		s.state = StateLost
		outcome = Lost
	}

	return Result{
		Letter:    letter,
		Hit:       hit,
		Outcome:   outcome,
		Remaining: s.remaining,
		Word:      s.word,
	}, nil
}

// parseLetter returns the lowercase letter when input is a single a-z letter.
func parseLetter(input string) (rune, bool) {
	lower := strings.ToLower(input)
	if utf8.RuneCountInString(lower) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lower)
	if !isLowerLetter(r) {
		return 0, false
	}
	return r, true
}

// revealed reports whether every distinct letter of the word has been guessed.
func (s *Session) revealed() bool {
	if s.word == "" {
		return false
	}
	for _, r := range s.word {
		if !s.guessed[r] {
			return false
		}
	}
	return true
}

// MaskedWord returns the word with unguessed letters replaced by "_",
// separated by single spaces, e.g. "c _ t".
func (s *Session) MaskedWord() string {
	var b strings.Builder
	b.Grow(len(s.word) * 2)
	for i, r := range s.word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Gallows renders the figure for the current number of incorrect guesses.
func (s *Session) Gallows() string {
	return Gallows(s.Incorrect())
}

// Word returns the target word of the current round.
func (s *Session) Word() string { return s.word }

// Difficulty returns the difficulty of the current round.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Remaining returns the number of incorrect guesses still allowed.
func (s *Session) Remaining() int { return s.remaining }

// Incorrect returns the number of incorrect guesses made this round.
func (s *Session) Incorrect() int { return MaxAttempts - s.remaining }

// State returns the lifecycle state of the round.
func (s *Session) State() State { return s.state }

// Won reports whether the current round has been won.
func (s *Session) Won() bool { return s.state == StateWon }

// Lost reports whether the current round has been lost.
func (s *Session) Lost() bool { return s.state == StateLost }

// Guessed returns the letters guessed this round in alphabetical order.
func (s *Session) Guessed() []rune {
	out := make([]rune, 0, len(s.guessed))
	for r := range s.guessed {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
