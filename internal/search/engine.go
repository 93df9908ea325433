package search

import (
	"github.com/sirupsen/logrus"

	"github.com/beemax/beemax/internal/letters"
	"github.com/beemax/beemax/internal/wordindex"
)

// Result is one winning board together with the word set that earned it.
type Result struct {
	Puzzle letters.Puzzle
	Words  *wordindex.CandidateSet
}

// Results holds the four winners of a search pass.
type Results struct {
	MostWords    Result
	HighestScore Result
	FewestWords  Result
	LowestScore  Result
}

// Positions in Engine.extrema. Kept in this order so a merge replays shard
// winners the same way for every objective.
const (
	mostWords = iota
	highestScore
	fewestWords
	lowestScore
	numExtrema
)

// extremum is a compare-and-replace accumulator for one objective. The beats
// closure decides whether a challenger displaces the incumbent; strictness
// of the comparison is the whole tie-break story.
type extremum struct {
	name   string
	puzzle letters.Puzzle
	words  *wordindex.CandidateSet
	hit    bool
	beats  func(challenger, incumbent *wordindex.CandidateSet) bool
}

func (e *extremum) offer(p letters.Puzzle, words *wordindex.CandidateSet) bool {
	if !e.beats(words, e.words) {
		return false
	}
	e.puzzle = p
	e.words = words
	e.hit = true
	return true
}

// Engine accumulates the four extrema over one pass of the candidate boards.
type Engine struct {
	ix      *wordindex.Index
	log     logrus.FieldLogger
	extrema [numExtrema]extremum
}

// NewEngine returns an engine ready to run over ix. A nil log falls back to
// the standard logger.
func NewEngine(ix *wordindex.Index, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	e := &Engine{ix: ix, log: log}
	// Most/highest start from an empty incumbent so any non-empty candidate
	// displaces them. Fewest/lowest start from the full word list so the
	// first real candidate always wins.
	e.extrema[mostWords] = extremum{
		name:  "most words",
		words: ix.EmptySet(),
		beats: func(c, inc *wordindex.CandidateSet) bool {
			return c.Cardinality() > inc.Cardinality()
		},
	}
	e.extrema[highestScore] = extremum{
		name:  "highest score",
		words: ix.EmptySet(),
		beats: func(c, inc *wordindex.CandidateSet) bool {
			return c.Score() > inc.Score()
		},
	}
	e.extrema[fewestWords] = extremum{
		name:  "fewest words",
		words: ix.AllWords(),
		beats: func(c, inc *wordindex.CandidateSet) bool {
			// Equal-sized sets fall back to the cheaper score.
			return c.Cardinality() < inc.Cardinality() ||
				(c.Cardinality() == inc.Cardinality() && c.Score() < inc.Score())
		},
	}
	e.extrema[lowestScore] = extremum{
		name:  "lowest score",
		words: ix.AllWords(),
		beats: func(c, inc *wordindex.CandidateSet) bool {
			// Non-strict on purpose: the last enumerated board achieving the
			// minimum is the one reported.
			return c.Score() <= inc.Score()
		},
	}
	return e
}

// Run visits every candidate board and each of its 7 required-letter
// variants, updating the four extrema as it goes.
func (e *Engine) Run(sets []letters.Set) (*Results, error) {
	for _, set := range sets {
		candidates := e.ix.WordsContainingOnly(set)
		for _, r := range set.Letters() {
			p, err := letters.NewPuzzle(set, r)
			if err != nil {
				return nil, err
			}
			withRequired := candidates.Clone()
			withRequired.IntersectWith(e.ix.WordsContaining(r))
			e.observe(p, withRequired)
		}
	}
	return e.results(), nil
}

// observe offers the candidate to all four accumulators. The same word set
// may win several of them; it is never mutated after promotion.
func (e *Engine) observe(p letters.Puzzle, words *wordindex.CandidateSet) {
	for k := range e.extrema {
		if e.extrema[k].offer(p, words) {
			e.log.Debugf("%s takes %s with %d words scoring %d",
				p, e.extrema[k].name, words.Cardinality(), words.Score())
		}
	}
}

func (e *Engine) results() *Results {
	return &Results{
		MostWords:    Result{Puzzle: e.extrema[mostWords].puzzle, Words: e.extrema[mostWords].words},
		HighestScore: Result{Puzzle: e.extrema[highestScore].puzzle, Words: e.extrema[highestScore].words},
		FewestWords:  Result{Puzzle: e.extrema[fewestWords].puzzle, Words: e.extrema[fewestWords].words},
		LowestScore:  Result{Puzzle: e.extrema[lowestScore].puzzle, Words: e.extrema[lowestScore].words},
	}
}
