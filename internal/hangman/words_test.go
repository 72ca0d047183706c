package hangman

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultPoolCandidates(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want []string
	}{
		{Easy, []string{"cat", "dog", "sun", "moon", "rain", "fish"}},
		{Medium, []string{"python", "hangman", "apple", "table", "happy", "cloud"}},
		{Hard, []string{"computer", "software", "developer"}},
	}

	pool := DefaultPool()
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			got, err := pool.Candidates(tt.d)
			if err != nil {
				t.Fatalf("Candidates() failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Candidates() = %v, want %v", got, tt.want)
			}
		})
	}

	if err := pool.Validate(); err != nil {
		t.Errorf("DefaultPool().Validate() = %v", err)
	}
}

func TestDefaultPoolRanges(t *testing.T) {
	pool := DefaultPool()
	want := map[Difficulty]LengthRange{
		Easy:   {Min: 3, Max: 5},
		Medium: {Min: 5, Max: 8},
		Hard:   {Min: 8, Max: 10},
	}
	for d, w := range want {
		r, ok := pool.Range(d)
		if !ok || r != w {
			t.Errorf("Range(%v) = %v, %v; want %v", d, r, ok, w)
		}
	}
	if got := pool.Words(Hard); len(got) != 5 {
		t.Errorf("Words(Hard) = %v, want all 5 configured words", got)
	}
}

func TestCandidatesSkipsNonLowercaseWords(t *testing.T) {
	pool := NewWordPool(map[Difficulty]PoolEntry{
		Easy: {Range: LengthRange{Min: 3, Max: 5}, Words: []string{"Cat", "d0g", "sun", ""}},
	})
	got, err := pool.Candidates(Easy)
	if err != nil {
		t.Fatalf("Candidates() failed: %v", err)
	}
	if !slices.Equal(got, []string{"sun"}) {
		t.Errorf("Candidates() = %v, want [sun]", got)
	}
}

func TestNewWordPoolCopiesInput(t *testing.T) {
	words := []string{"cat"}
	pool := NewWordPool(map[Difficulty]PoolEntry{
		Easy: {Range: LengthRange{Min: 3, Max: 5}, Words: words},
	})
	words[0] = "zzzzzzzzzz"

	got, _ := pool.Candidates(Easy)
	if !slices.Equal(got, []string{"cat"}) {
		t.Errorf("pool changed through caller slice: %v", got)
	}
}

func TestValidateReportsEmptyDifficulty(t *testing.T) {
	pool := NewWordPool(map[Difficulty]PoolEntry{
		Easy:   {Range: LengthRange{Min: 3, Max: 5}, Words: []string{"cat"}},
		Medium: {Range: LengthRange{Min: 5, Max: 8}, Words: []string{"cat"}},
		Hard:   {Range: LengthRange{Min: 8, Max: 10}, Words: []string{"computer"}},
	})
	err := pool.Validate()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() = %v, want *ConfigError", err)
	}
	if cfgErr.Difficulty != Medium {
		t.Errorf("ConfigError.Difficulty = %v, want medium", cfgErr.Difficulty)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{" HARD ", Hard, false},
		{"normal", Easy, true},
		{"", Easy, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownDifficulty) {
			t.Errorf("ParseDifficulty(%q) error = %v, want ErrUnknownDifficulty", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyCycle(t *testing.T) {
	if Easy.Next() != Medium || Medium.Next() != Hard || Hard.Next() != Easy {
		t.Error("Next() does not cycle easy -> medium -> hard -> easy")
	}
	if Easy.Prev() != Hard || Hard.Prev() != Medium {
		t.Error("Prev() does not cycle backwards")
	}
	if Easy.Title() != "Easy" || Hard.Title() != "Hard" {
		t.Errorf("Title() = %q, %q", Easy.Title(), Hard.Title())
	}
}
