package letters

import (
	"errors"
	"testing"
)

func TestFromWord(t *testing.T) {
	tests := []struct {
		word    string
		letters string
		card    int
	}{
		{"face", "ACEF", 4},
		{"feed", "DEF", 3},
		{"abcdefg", "ABCDEFG", 7},
		{"banana", "ABN", 3},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			set := FromWord(tt.word)
			if got := set.String(); got != tt.letters {
				t.Errorf("FromWord(%q).String() = %q, want %q", tt.word, got, tt.letters)
			}
			if got := set.Cardinality(); got != tt.card {
				t.Errorf("FromWord(%q).Cardinality() = %d, want %d", tt.word, got, tt.card)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	sets := []Set{
		0,
		FromWord("face"),
		FromWord("abcdefg"),
		Set(1<<AlphabetSize - 1),
	}

	for _, set := range sets {
		if got := set.Complement().Complement(); got != set {
			t.Errorf("double complement of %s = %s, want identity", set, got)
		}
		if sum := set.Cardinality() + set.Complement().Cardinality(); sum != AlphabetSize {
			t.Errorf("cardinality of %s plus complement = %d, want %d", set, sum, AlphabetSize)
		}
	}
}

func TestContainsAndMinus(t *testing.T) {
	set := FromWord("grape")
	if !set.Contains('g') || !set.Contains('e') {
		t.Error("expected g and e to be members")
	}
	if set.Contains('z') {
		t.Error("z should not be a member")
	}

	smaller := set.Minus('g')
	if smaller.Contains('g') {
		t.Error("Minus('g') still contains g")
	}
	if smaller.Cardinality() != set.Cardinality()-1 {
		t.Errorf("Minus changed cardinality to %d, want %d", smaller.Cardinality(), set.Cardinality()-1)
	}
	if got := set.Minus('z'); got != set {
		t.Errorf("Minus of absent letter = %s, want unchanged %s", got, set)
	}
}

func TestLettersAscending(t *testing.T) {
	set := FromWord("zebra")
	want := []byte{'a', 'b', 'e', 'r', 'z'}
	got := set.Letters()
	if len(got) != len(want) {
		t.Fatalf("Letters() returned %d letters, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Letters()[%d] = %c, want %c", i, got[i], want[i])
		}
	}

	// A second pass over the same set must see the same sequence.
	again := set.Letters()
	for i := range want {
		if again[i] != want[i] {
			t.Errorf("restarted iteration differs at %d: %c vs %c", i, again[i], want[i])
		}
	}
}

func TestNewPuzzle(t *testing.T) {
	set := FromWord("abcdefg")

	p, err := NewPuzzle(set, 'a')
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	if got := p.String(); got != "[A]BCDEFG" {
		t.Errorf("Puzzle.String() = %q, want %q", got, "[A]BCDEFG")
	}

	_, err = NewPuzzle(set, 'z')
	if !errors.Is(err, ErrRequiredNotInSet) {
		t.Errorf("NewPuzzle with absent letter: err = %v, want ErrRequiredNotInSet", err)
	}
}
