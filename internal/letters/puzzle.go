package letters

import (
	"errors"
	"fmt"
)

// ErrRequiredNotInSet is returned when a puzzle names a required letter that
// its letter set doesn't contain. Enumeration only ever picks required
// letters out of the set itself, so hitting this means a caller bug and
// should be treated as fatal.
var ErrRequiredNotInSet = errors.New("required letter not in letter set")

// Puzzle is a letter set plus the one letter every word must use.
type Puzzle struct {
	Letters  Set
	Required byte
}

// NewPuzzle pairs a letter set with a required letter.
func NewPuzzle(set Set, required byte) (Puzzle, error) {
	if !set.Contains(required) {
		return Puzzle{}, fmt.Errorf("%s does not contain %c: %w", set, required, ErrRequiredNotInSet)
	}
	return Puzzle{Letters: set, Required: required}, nil
}

// String renders the puzzle as the required letter in brackets followed by
// the other six letters, uppercase ascending, e.g. "[G]ABCDEF".
func (p Puzzle) String() string {
	return "[" + string(p.Required-'a'+'A') + "]" + p.Letters.Minus(p.Required).String()
}
