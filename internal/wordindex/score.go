package wordindex

import "github.com/beemax/beemax/internal/letters"

// BoardSize is the number of letters on a Spelling Bee board.
const BoardSize = 7

// Score returns the score of a word: 1 for a four-letter word, length plus 7
// for a pangram, length otherwise. It is a pure function of the word's
// letters and length; the index caches it per word at construction.
func Score(word string) int {
	if len(word) == 4 {
		return 1
	}
	if IsPangram(word) {
		return len(word) + BoardSize
	}
	return len(word)
}

// IsPangram reports whether the word uses exactly 7 distinct letters. This
// is independent of any particular board: a word with 7 distinct letters is
// a pangram of whichever board produced it.
func IsPangram(word string) bool {
	// The length check just skips the mask for short words.
	return len(word) >= BoardSize && letters.FromWord(word).Cardinality() == BoardSize
}
