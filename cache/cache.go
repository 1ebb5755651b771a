// SPDX-License-Identifier: MIT
// Package cache incrementally re-materialises a figure's coordinate cache:
// the flat list of cells its lines visit, used by the collision package so
// it never has to walk lines from scratch.
//
// Complexity: CacheSpiralPoints(f, upTo) appends one cell per unit of length
// of lines [f.Cache.Validity, upTo), amortised O(1) per cell, after an
// O(f.Cache.Validity) pass over the earlier lines' lengths to find where to
// resume.
//
// Errors:
//   - figure.ErrBadArgument if f is nil or upTo is out of range.
package cache

import (
	"github.com/saxbophone/sxbp/figure"
	"github.com/saxbophone/sxbp/vector"
)

// CacheSpiralPoints ensures f.Cache is valid up to index upTo (exclusive of
// nothing — cells for lines [0, upTo) are guaranteed present). If the cache
// is already valid that far, this is a no-op.
func CacheSpiralPoints(f *figure.Figure, upTo int) error {
	if f == nil || upTo < 0 || upTo > len(f.Lines) {
		return figure.ErrBadArgument
	}
	if f.Cache.Validity >= upTo {
		return nil
	}

	start := f.Cache.Validity
	var cursor vector.Cell
	var cells []vector.Cell
	if start == 0 {
		cursor = vector.Cell{}
		cells = f.Cache.Cells[:0]
	} else {
		// The cache already holds the cells for lines [0, start); truncate
		// to the end of line start-1 and resume from there.
		cells = f.Cache.Cells[:cellCountThrough(f, start)]
		cursor = cells[len(cells)-1]
	}
	if start == 0 {
		cells = append(cells, cursor)
	}

	for i := start; i < upTo; i++ {
		line := f.Lines[i]
		step := vector.UnitVector(line.Direction)
		for s := int64(0); s < line.Length; s++ {
			cursor = cursor.Add(step)
			cells = append(cells, cursor)
		}
	}

	f.Cache.Cells = cells
	f.Cache.Validity = upTo

	return nil
}

// cellCountThrough returns the number of cells the cache holds for lines
// [0, through) — i.e. 1 (the origin) plus the sum of those lines' lengths.
func cellCountThrough(f *figure.Figure, through int) int {
	count := 1
	for i := 0; i < through; i++ {
		count += int(f.Lines[i].Length)
	}

	return count
}

// Invalidate lowers f.Cache.Validity to at most k, the index the solver is
// about to overwrite. It never raises validity.
func Invalidate(f *figure.Figure, k int) {
	if k < f.Cache.Validity {
		f.Cache.Validity = k
	}
}
