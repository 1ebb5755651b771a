// SPDX-License-Identifier: MIT
package solver

import (
	"time"

	"github.com/saxbophone/sxbp/cache"
	"github.com/saxbophone/sxbp/collision"
	"github.com/saxbophone/sxbp/figure"
	"github.com/saxbophone/sxbp/vector"
)

// PlotSpiral solves every unsolved line of f, from f.SolvedCount up to the
// configured max line (the whole figure by default), by calling
// ResizeSpiral for each in turn. Any failure from ResizeSpiral
// short-circuits and is returned alongside the timing collected so far.
//
// Calling PlotSpiral again on an already-solved figure (or with a max line
// at or below SolvedCount) returns immediately with Stats.Elapsed ≈ 0 and a
// nil error; no lengths are touched.
func PlotSpiral(f *figure.Figure, opts ...Option) (*Stats, error) {
	if f == nil {
		return nil, figure.ErrBadArgument
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	maxIndex := len(f.Lines)
	if cfg.maxLine >= 0 && cfg.maxLine < maxIndex {
		maxIndex = cfg.maxLine
	}

	start := time.Now()
	for i := f.SolvedCount; i < maxIndex; i++ {
		if err := resizeSpiral(f, i, 1, cfg.perfectionThreshold, &cfg); err != nil {
			return &Stats{Elapsed: time.Since(start)}, err
		}
		if cfg.progress != nil {
			cfg.progress(f, i, maxIndex, cfg.userData)
		}
	}

	return &Stats{Elapsed: time.Since(start)}, nil
}

// ResizeSpiral runs the iterative backtracking state machine starting at
// line index with the given initial length: it assigns lengths forward,
// and whenever the latest line collides, grows the line before it by the
// amount suggestResize proposes and retries from there. It returns once
// line index itself is reached with no collision (success), or on
// cancellation, allocation failure, or unsolvability.
func ResizeSpiral(f *figure.Figure, index int, length int64, perfectionThreshold int64) error {
	if f == nil || index < 0 || index >= len(f.Lines) {
		return figure.ErrBadArgument
	}
	cfg := defaultConfig()
	cfg.perfectionThreshold = perfectionThreshold

	return resizeSpiral(f, index, length, perfectionThreshold, &cfg)
}

func resizeSpiral(f *figure.Figure, index int, length int64, perfectionThreshold int64, cfg *config) error {
	if f == nil || index < 0 || index >= len(f.Lines) {
		return figure.ErrBadArgument
	}

	currentIndex := index
	currentLength := length

	for {
		select {
		case <-cfg.ctx.Done():
			return ErrCancelled
		default:
		}

		// 1. Commit the candidate length.
		f.Lines[currentIndex].Length = currentLength
		// 2. Invalidate the cache from this point forward.
		cache.Invalidate(f, currentIndex)
		// 3. Re-materialise coordinates through the new line.
		if err := cache.CacheSpiralPoints(f, currentIndex+1); err != nil {
			return err
		}
		// 4. Check for a collision against everything before it.
		f.Collides = collision.SpiralCollides(f, currentIndex)

		switch {
		case f.Collides:
			// Tell the previous line to grow just enough to clear the
			// collider, then retry from there.
			currentLength = suggestResize(f, currentIndex, perfectionThreshold)
			currentIndex--
			if currentIndex <= 0 {
				// No prior line exists to grow further (or it would be the
				// fixed anchor) — not expected for well-formed input.
				return ErrUnsolvable
			}
		case currentIndex < index:
			// We just fixed up a prior line; move forward to re-attempt
			// the original target with the updated predecessor context.
			currentIndex++
			currentLength = 1
		default:
			// No collision, and we're back at the original target: done.
			f.SolvedCount = index + 1
			return nil
		}
	}
}

// suggestResize computes the length to grow line index-1 to, given that
// line index has just been found to collide with f.Collider.
func suggestResize(f *figure.Figure, index int, perfectionThreshold int64) int64 {
	if perfectionThreshold > 0 && f.Lines[index].Length > perfectionThreshold {
		return f.Lines[index-1].Length + 1
	}

	p := f.Lines[index-1]
	r := f.Lines[f.Collider]
	if int(p.Direction)%2 != int(r.Direction)%2 {
		// Not parallel: no analytic jump is possible.
		return f.Lines[index-1].Length + 1
	}

	pIndex := lineStart(f, index-1)
	rIndex := lineStart(f, f.Collider)
	pa := f.Cache.Cells[pIndex]
	ra := f.Cache.Cells[rIndex]
	rb := f.Cache.Cells[rIndex+int(r.Length)]

	switch {
	case p.Direction == vector.Up && r.Direction == vector.Up:
		return (ra.Y - pa.Y) + r.Length + 1
	case p.Direction == vector.Up && r.Direction == vector.Down:
		return (rb.Y - pa.Y) + r.Length + 1
	case p.Direction == vector.Right && r.Direction == vector.Right:
		return (ra.X - pa.X) + r.Length + 1
	case p.Direction == vector.Right && r.Direction == vector.Left:
		return (rb.X - pa.X) + r.Length + 1
	case p.Direction == vector.Down && r.Direction == vector.Up:
		return (pa.Y - rb.Y) + r.Length + 1
	case p.Direction == vector.Down && r.Direction == vector.Down:
		return (pa.Y - ra.Y) + r.Length + 1
	case p.Direction == vector.Left && r.Direction == vector.Right:
		return (pa.X - rb.X) + r.Length + 1
	case p.Direction == vector.Left && r.Direction == vector.Left:
		return (pa.X - ra.X) + r.Length + 1
	default:
		// Should be impossible given the parallelism gate above.
		return f.Lines[index-1].Length + 1
	}
}

// lineStart returns the cache index of the first cell of line idx.
func lineStart(f *figure.Figure, idx int) int {
	total := 0
	for i := 0; i < idx; i++ {
		total += int(f.Lines[i].Length)
	}

	return total
}

// RefineGrowFromStart is a hook for an alternative refinement strategy that
// grows lines from the start of the figure rather than backtracking from
// each collision. It is intentionally unimplemented, mirroring the original
// implementation's own stub.
func RefineGrowFromStart(f *figure.Figure) error {
	return ErrUnimplemented
}
