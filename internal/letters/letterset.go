// Package letters provides the 26-bit letter-set value type the solver is
// built on. A Set is just a bitmask, so copies are free and equality is
// mask equality.
package letters

import (
	"math/bits"
	"strings"
)

// AlphabetSize is the number of letters we deal with. Bit i of a Set
// corresponds to 'a'+i.
const AlphabetSize = 26

const universe = 1<<AlphabetSize - 1

// Set is an immutable set of lowercase letters.
type Set uint32

// FromWord returns the set of distinct letters in word. Word is assumed to
// be lowercase ASCII; anything else sets nonsense bits.
func FromWord(word string) Set {
	var set Set
	for i := 0; i < len(word); i++ {
		set |= 1 << (word[i] - 'a')
	}
	return set
}

// Contains reports whether c is in the set.
func (s Set) Contains(c byte) bool {
	return s&(1<<(c-'a')) != 0
}

// Complement returns the letters not in the set, restricted to the
// 26-letter universe.
func (s Set) Complement() Set {
	return ^s & universe
}

// Minus returns the set without c. No-op if c is not a member.
func (s Set) Minus(c byte) Set {
	return s &^ (1 << (c - 'a'))
}

// Cardinality returns the number of letters in the set.
func (s Set) Cardinality() int {
	return bits.OnesCount32(uint32(s))
}

// Letters returns the members in ascending alphabetical order. Each call
// produces a fresh slice, so iteration is restartable.
func (s Set) Letters() []byte {
	out := make([]byte, 0, s.Cardinality())
	for rem := uint32(s); rem != 0; {
		i := bits.TrailingZeros32(rem)
		rem &^= 1 << i
		out = append(out, byte('a'+i))
	}
	return out
}

// String renders the set as uppercase letters in ascending order.
func (s Set) String() string {
	var b strings.Builder
	for _, c := range s.Letters() {
		b.WriteByte(c - 'a' + 'A')
	}
	return b.String()
}
