// SPDX-License-Identifier: MIT
// Package figure defines Line and Figure, the ordered turn-and-length
// sequence an SXBP solve operates on, and the coordinate cache it carries.
//
// What:
//   - Line: a direction plus a length (0 meaning "not yet solved").
//   - Figure: an ordered sequence of Lines, always starting with the anchor
//     line (UP, 3), plus the bookkeeping the solver needs (SolvedCount,
//     Collides, Collider) and a CoordCache of materialised cells.
//   - CoordCache: the flat list of cells the figure's lines visit, valid up
//     to some high-water-mark index.
//
// Errors:
//   - ErrAllocFailed: a buffer could not be grown.
//   - ErrBadArgument: a nil figure or an out-of-range index was passed.
//
// Ownership: a Figure exclusively owns its Lines slice and its CoordCache.
// After construction, line lengths are written by the solver (and by
// density.IsSolutionValid on its own figures), and the cache is filled in
// by the cache package on behalf of the solver, density and render.
package figure

import (
	"errors"

	"github.com/saxbophone/sxbp/vector"
)

// Sentinel errors for figure construction and access.
var (
	// ErrAllocFailed indicates a buffer could not be grown.
	ErrAllocFailed = errors.New("figure: allocation failed")

	// ErrBadArgument indicates a nil figure, a negative length, or an index
	// out of range was passed to an API that requires a valid one.
	ErrBadArgument = errors.New("figure: bad argument")
)

// MaxLength is the largest length a single Line may hold (2^30 - 1), per the
// 30-bit length field in the serialised word format.
const MaxLength = 1<<30 - 1

// Line is one segment of a Figure: a direction and a non-negative length.
// Length 0 means the line has not yet been solved.
type Line struct {
	Direction vector.Direction
	Length    int64
}

// CoordCache is the materialised sequence of cells a Figure's lines visit.
// Validity is the index up to (but not including) which the cached cells are
// known-consistent with the current line lengths; cells beyond it must be
// recomputed before use.
type CoordCache struct {
	Cells    []vector.Cell
	Validity int
}

// Figure is an ordered sequence of Lines describing a planar orthogonal
// polyline, plus the solver's bookkeeping state.
type Figure struct {
	Lines []Line

	// SolvedCount is the index of the first line whose length has not yet
	// been committed. Monotonically non-decreasing during one solve.
	SolvedCount int

	// Collides is the result of the most recent collision check.
	Collides bool

	// Collider is the index of the earliest colliding line, valid only when
	// Collides is true.
	Collider int

	Cache CoordCache
}

// Len returns the number of lines in the figure.
func (f *Figure) Len() int {
	return len(f.Lines)
}

// Solved reports whether every line in the figure has a committed length.
func (f *Figure) Solved() bool {
	return f.SolvedCount >= len(f.Lines)
}
