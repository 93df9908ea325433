package wordindex

import "github.com/weaviate/sroar"

// scoreStale marks the cached total score as needing recomputation.
const scoreStale = -1

// CandidateSet is a mutable set of word indices with a lazily computed total
// score. Every mutation marks the cache stale; the next Score call walks the
// members again.
type CandidateSet struct {
	ix    *Index
	bm    *sroar.Bitmap
	score int
}

// Clone returns an independent copy of the set.
func (s *CandidateSet) Clone() *CandidateSet {
	return &CandidateSet{ix: s.ix, bm: s.bm.Clone(), score: s.score}
}

// IntersectWith keeps only the words also present in other.
func (s *CandidateSet) IntersectWith(other *CandidateSet) {
	s.bm.And(other.bm)
	s.modified()
}

// Subtract removes every word present in other.
func (s *CandidateSet) Subtract(other *CandidateSet) {
	s.bm.AndNot(other.bm)
	s.modified()
}

// Cardinality returns the number of words in the set.
func (s *CandidateSet) Cardinality() int {
	return s.bm.GetCardinality()
}

// IsEmpty reports whether the set has no words.
func (s *CandidateSet) IsEmpty() bool {
	return s.bm.IsEmpty()
}

// Score returns the sum of the scores of all member words, memoized until
// the next mutation.
func (s *CandidateSet) Score() int {
	if s.score == scoreStale {
		total := 0
		for _, i := range s.bm.ToArray() {
			total += s.ix.scores[i]
		}
		s.score = total
	}
	return s.score
}

// Words returns the member words in index order.
func (s *CandidateSet) Words() []string {
	members := s.bm.ToArray()
	out := make([]string, len(members))
	for i, w := range members {
		out[i] = s.ix.words[w]
	}
	return out
}

func (s *CandidateSet) modified() {
	s.score = scoreStale
}
