// Package wordindex holds the word list and the per-letter posting bitmaps
// every candidate set is derived from. The index is built once and read-only
// afterwards; all filtering happens through bitmap algebra, never by
// re-inspecting word strings.
package wordindex

import (
	"github.com/weaviate/sroar"

	"github.com/beemax/beemax/internal/letters"
)

// Index maps each letter to the set of words containing it, and keeps the
// per-word scores computed at construction time.
type Index struct {
	words    []string
	scores   []int
	postings [letters.AlphabetSize]*sroar.Bitmap
}

// New builds an index from the filtered word list. Words with more than 7
// distinct letters can never fit a 7-letter board, so they are dropped here
// before they get an index.
func New(words []string) *Index {
	ix := &Index{}
	for i := range ix.postings {
		ix.postings[i] = sroar.NewBitmap()
	}
	for _, w := range words {
		set := letters.FromWord(w)
		if set.Cardinality() > BoardSize {
			continue
		}
		i := uint64(len(ix.words))
		ix.words = append(ix.words, w)
		ix.scores = append(ix.scores, Score(w))
		for _, c := range set.Letters() {
			ix.postings[c-'a'].Set(i)
		}
	}
	return ix
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Word returns the word at index i.
func (ix *Index) Word(i int) string {
	return ix.words[i]
}

// ScoreOf returns the precomputed score of the word at index i.
func (ix *Index) ScoreOf(i int) int {
	return ix.scores[i]
}

// WordsContaining returns the set of words containing c. The returned set is
// a view over the index's posting bitmap; callers use it as an operand and
// must not mutate it.
func (ix *Index) WordsContaining(c byte) *CandidateSet {
	return &CandidateSet{ix: ix, bm: ix.postings[c-'a'], score: scoreStale}
}

// AllWords returns a fresh set containing every indexed word.
func (ix *Index) AllWords() *CandidateSet {
	if len(ix.words) == 0 {
		return ix.EmptySet()
	}
	return &CandidateSet{ix: ix, bm: sroar.Prefill(uint64(len(ix.words) - 1)), score: scoreStale}
}

// EmptySet returns a fresh set containing no words.
func (ix *Index) EmptySet() *CandidateSet {
	return &CandidateSet{ix: ix, bm: sroar.NewBitmap(), score: scoreStale}
}

// WordsContainingOnly returns the words whose letters are all members of
// set. Starting from the full word list, it removes the postings of every
// letter outside the set, bailing out as soon as nothing is left.
func (ix *Index) WordsContainingOnly(set letters.Set) *CandidateSet {
	candidates := ix.AllWords()
	for _, c := range set.Complement().Letters() {
		candidates.Subtract(ix.WordsContaining(c))
		if candidates.IsEmpty() {
			break
		}
	}
	return candidates
}
