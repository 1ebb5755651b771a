// SPDX-License-Identifier: MIT
// Package density hosts the experimental statistical-density oracle: the
// brute-force enumeration of all maxLength^N length assignments (2^N for
// lengths in {1, 2}) for a fixed turn sequence, used to estimate what fraction of possible length assignments
// solve without self-intersection. It is not part of the solver proper —
// the solver reaches a single valid assignment analytically — but shares
// the same Figure Model and Collision Oracle kernel via IsSolutionValid.
//
// This mirrors the "walk all reachable states, collect into a result
// struct" shape of the lvlath graph library's dfs/bfs traversal packages,
// which this module was adapted from, applied here to
// an exhaustive enumeration of length assignments rather than a graph walk.
//
// Non-goals: this package has no distribution/MPI layer of its own (that
// belongs to a higher-level tool outside this module); EnumerateDensity is
// meant for small N (exhaustive enumeration is O(maxLength^N)).
package density

import (
	"errors"
	"sync"

	"github.com/saxbophone/sxbp/cache"
	"github.com/saxbophone/sxbp/collision"
	"github.com/saxbophone/sxbp/figure"
)

// ErrTooManyLines guards EnumerateDensity against the exponential blow-up of
// enumerating every length assignment for a non-trivial figure.
var ErrTooManyLines = errors.New("density: too many lines to enumerate exhaustively")

// MaxEnumerableLines bounds EnumerateDensity's input size; 2^MaxEnumerableLines
// length assignments is already a substantial brute-force search.
const MaxEnumerableLines = 24

// IsSolutionValid builds a figure from turns, assigns lengths (one per
// non-anchor line, in order), and reports whether the resulting figure is
// free of non-adjacent collisions, checking each line in turn against the
// cache materialised exactly through it — the same protocol the solver
// uses internally — rather than against a single fully-materialised cache,
// since SpiralCollides' tail range is always the cache's last cells. It is
// a thin wrapper exposing the same predicate the solver uses internally,
// for use by exhaustive and statistical callers.
func IsSolutionValid(turns []byte, lengths []int64) (bool, error) {
	f, err := figure.Init(turns)
	if err != nil {
		return false, err
	}
	if len(lengths) != len(f.Lines)-1 {
		return false, figure.ErrBadArgument
	}
	for i, l := range lengths {
		f.Lines[i+1].Length = l
	}

	// SpiralCollides' tail range is always the last L_i+1 cells of the
	// cache, so the cache must be valid through exactly index+1 for each
	// check in turn — the same protocol the solver follows in
	// resizeSpiral, not a single upfront full materialisation.
	for i := 1; i < f.Len(); i++ {
		cache.Invalidate(f, i)
		if err := cache.CacheSpiralPoints(f, i+1); err != nil {
			return false, err
		}
		if collision.SpiralCollides(f, i) {
			return false, nil
		}
	}

	return true, nil
}

// Result summarises an exhaustive density sweep over a fixed turn sequence.
type Result struct {
	Total int // total length assignments enumerated
	Valid int // assignments that solved without self-intersection
}

// EnumerateDensity exhaustively tries every combination of lengths in
// [1, maxLength] for each non-anchor line of a figure derived from turns,
// and reports how many are collision-free. It returns ErrTooManyLines if
// the figure would have more than MaxEnumerableLines non-anchor lines.
//
// Concurrency: candidates are partitioned across the given number of
// workers (at least 1); every IsSolutionValid call builds its own Figure,
// so no locking is needed on the hot path, and results are folded into a
// single Result under a mutex.
func EnumerateDensity(turns []byte, maxLength int64, workers int) (Result, error) {
	f, err := figure.Init(turns)
	if err != nil {
		return Result{}, err
	}
	n := f.Len() - 1
	if n > MaxEnumerableLines {
		return Result{}, ErrTooManyLines
	}
	if workers < 1 {
		workers = 1
	}

	total := int64(1)
	for i := 0; i < n; i++ {
		total *= maxLength
	}

	var (
		mu  sync.Mutex
		res Result
	)
	var wg sync.WaitGroup
	chunk := (total + int64(workers) - 1) / int64(workers)
	for w := 0; w < workers; w++ {
		lo := int64(w) * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int64) {
			defer wg.Done()
			lengths := make([]int64, n)
			localValid := 0
			localTotal := 0
			for combo := lo; combo < hi; combo++ {
				rem := combo
				for i := 0; i < n; i++ {
					lengths[i] = rem%maxLength + 1
					rem /= maxLength
				}
				ok, err := IsSolutionValid(turns, lengths)
				localTotal++
				if err == nil && ok {
					localValid++
				}
			}
			mu.Lock()
			res.Total += localTotal
			res.Valid += localValid
			mu.Unlock()
		}(lo, hi)
	}
	wg.Wait()

	return res, nil
}
