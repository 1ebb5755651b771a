// SPDX-License-Identifier: MIT
// Package collision implements the collision oracle: given a figure whose
// coordinate cache is materialised exactly through the line at index (so
// that the cache ends with that line's cells), it decides whether that line
// collides with any earlier line and, if so, identifies the earliest line it
// collides with (the collider).
//
// Complexity: O(k·t) cell comparisons, where k is the number of cells
// scanned before the early-exit rule fires (at most the cache's valid
// prefix) and t is the checked line's length plus one.
package collision

import "github.com/saxbophone/sxbp/figure"

// SpiralCollides reports whether the line at index collides with any
// earlier, non-adjacent line, using f.Cache (which must already be valid
// through index+1 and no further, since the line's cells are read from the
// end of the cache — the caller's precondition). On a positive result,
// f.Collider is set to the index of the earliest colliding line.
//
// Figures with fewer than 4 lines can never self-intersect and always
// report false.
func SpiralCollides(f *figure.Figure, index int) bool {
	totalLines := len(f.Lines)
	if totalLines < 4 {
		return false
	}

	lastCell := len(f.Cache.Cells)
	tailLen := int(f.Lines[index].Length) + 1
	startTail := lastCell - tailLen
	tail := f.Cache.Cells[startTail:lastCell]

	lineCount := 0
	ttl := int(f.Lines[0].Length) + 1
	for i := 0; i < startTail; i++ {
		cell := f.Cache.Cells[i]
		for _, t := range tail {
			if cell == t {
				f.Collider = lineCount
				return true
			}
		}

		ttl--
		if ttl == 0 {
			lineCount++
			if lineCount < totalLines {
				ttl = int(f.Lines[lineCount].Length)
			}
		}
		// The two lines immediately preceding the tail can never collide
		// with it geometrically (forward-adjacent corner); stop early.
		if lineCount == totalLines-3 {
			break
		}
	}

	return false
}
