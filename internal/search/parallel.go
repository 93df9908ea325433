package search

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/beemax/beemax/internal/letters"
	"github.com/beemax/beemax/internal/wordindex"
)

// Run searches the candidate boards with the given number of workers. With
// workers <= 1 it is a plain sequential pass. Otherwise the boards are split
// into contiguous shards, each worker accumulates its own extrema, and the
// shard winners are replayed into a final engine in shard order. Replaying
// in ascending shard order with the same comparators reproduces the
// sequential answers exactly, including the last-wins rule of the
// lowest-score objective.
func Run(ix *wordindex.Index, sets []letters.Set, workers int, log logrus.FieldLogger) (*Results, error) {
	if workers <= 1 || len(sets) <= 1 {
		return NewEngine(ix, log).Run(sets)
	}
	if workers > len(sets) {
		workers = len(sets)
	}

	shardSize := (len(sets) + workers - 1) / workers
	numShards := (len(sets) + shardSize - 1) / shardSize
	engines := make([]*Engine, numShards)
	errs := make([]error, numShards)

	var wg sync.WaitGroup
	for i := 0; i < numShards; i++ {
		start := i * shardSize
		end := start + shardSize
		if end > len(sets) {
			end = len(sets)
		}
		engines[i] = NewEngine(ix, log)
		wg.Add(1)
		go func(i int, shard []letters.Set) {
			defer wg.Done()
			_, errs[i] = engines[i].Run(shard)
		}(i, sets[start:end])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := NewEngine(ix, log)
	for _, eng := range engines {
		for k := range eng.extrema {
			if eng.extrema[k].hit {
				merged.extrema[k].offer(eng.extrema[k].puzzle, eng.extrema[k].words)
			}
		}
	}
	return merged.results(), nil
}
