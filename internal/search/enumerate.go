// Package search enumerates the candidate boards and runs the four-extrema
// optimization over them.
package search

import (
	"github.com/beemax/beemax/internal/letters"
	"github.com/beemax/beemax/internal/wordindex"
)

// PangramSets returns the distinct 7-letter sets that occur as the full
// letter set of some indexed word. Every valid board must admit at least one
// pangram, so this is the exact candidate space, far smaller than all
// C(26,7) combinations.
//
// The published puzzles follow two unwritten rules, applied here as filters:
// the board never contains an S, and never both E and R.
//
// First-seen order is preserved; downstream logic doesn't depend on the
// order except for the lowest-score tie rule, which keys off enumeration
// order.
func PangramSets(ix *wordindex.Index) []letters.Set {
	seen := make(map[letters.Set]struct{})
	var sets []letters.Set
	for i := 0; i < ix.Len(); i++ {
		set := letters.FromWord(ix.Word(i))
		if set.Cardinality() != wordindex.BoardSize {
			continue
		}
		if set.Contains('s') {
			continue
		}
		if set.Contains('e') && set.Contains('r') {
			continue
		}
		if _, ok := seen[set]; ok {
			continue
		}
		seen[set] = struct{}{}
		sets = append(sets, set)
	}
	return sets
}
