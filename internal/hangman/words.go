package hangman

import "slices"

// LengthRange is an inclusive word-length range.
type LengthRange struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (r LengthRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// PoolEntry is the word list and length range for one difficulty.
type PoolEntry struct {
	Range LengthRange
	Words []string
}

// WordPool maps each difficulty to its candidate words and length range.
// A WordPool is immutable once built and safe to share between sessions.
type WordPool struct {
	entries map[Difficulty]PoolEntry
}

// NewWordPool builds a pool from explicit entries. The word slices are copied.
func NewWordPool(entries map[Difficulty]PoolEntry) WordPool {
	p := WordPool{entries: make(map[Difficulty]PoolEntry, len(entries))}
	for d, e := range entries {
		p.entries[d] = PoolEntry{
			Range: e.Range,
			Words: slices.Clone(e.Words),
		}
	}
	return p
}

var defaultPool = NewWordPool(map[Difficulty]PoolEntry{
	Easy: {
		Range: LengthRange{Min: 3, Max: 5},
		Words: []string{"cat", "dog", "sun", "moon", "rain", "fish"},
	},
	Medium: {
		Range: LengthRange{Min: 5, Max: 8},
		Words: []string{"python", "hangman", "apple", "table", "happy", "cloud"},
	},
	Hard: {
		// "programming" and "coding" sit outside the range and are never picked.
		Range: LengthRange{Min: 8, Max: 10},
		Words: []string{"programming", "computer", "software", "developer", "coding"},
	},
})

// DefaultPool returns the built-in word table.
func DefaultPool() WordPool {
	return defaultPool
}

// Range returns the length range configured for d.
func (p WordPool) Range(d Difficulty) (LengthRange, bool) {
	e, ok := p.entries[d]
	return e.Range, ok
}

// Words returns every configured word for d, including ones outside its range.
func (p WordPool) Words(d Difficulty) []string {
	return slices.Clone(p.entries[d].Words)
}

// Candidates returns the words for d that can be chosen: lowercase a-z only and
// with a length inside the difficulty's range. Order follows the table.
func (p WordPool) Candidates(d Difficulty) ([]string, error) {
	if !d.Valid() {
		return nil, ErrUnknownDifficulty
	}
	e, ok := p.entries[d]
	if !ok {
		return nil, &ConfigError{Difficulty: d}
	}

	out := make([]string, 0, len(e.Words))
	for _, w := range e.Words {
		if isLowerWord(w) && e.Range.Contains(len(w)) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, &ConfigError{Difficulty: d, Range: e.Range}
	}
	return out, nil
}

// Validate checks that every difficulty has at least one candidate word.
func (p WordPool) Validate() error {
	for _, d := range Difficulties {
		if _, err := p.Candidates(d); err != nil {
			return err
		}
	}
	return nil
}

func isLowerWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !isLowerLetter(rune(w[i])) {
			return false
		}
	}
	return true
}

func isLowerLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
