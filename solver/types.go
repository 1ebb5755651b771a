// SPDX-License-Identifier: MIT
// Package solver implements the backtracking loop that assigns every line of
// a figure a length ≥ 1 such that the resulting polyline never
// self-intersects: PlotSpiral drives ResizeSpiral line by line, and
// ResizeSpiral is an iterative backtracking state machine (not recursion —
// depth is bounded only by the figure's line count, which can be large)
// guided by the suggestResize analytic jump rule.
//
// Options:
//   - WithPerfectionThreshold(n): above this colliding-line length, fall back
//     to a cautious one-step growth instead of the analytic jump.
//   - WithMaxLine(n): stop solving once line n is reached (exclusive).
//   - WithContext(ctx): poll ctx once per backtracking iteration; on
//     cancellation, return ErrCancelled leaving lines [0, SolvedCount) intact
//     and everything from SolvedCount onward as scratch.
//   - WithProgress(fn): called after each successful line commit; fn must
//     not mutate the figure.
//
// Errors:
//   - figure.ErrAllocFailed  if the coordinate cache could not grow.
//   - figure.ErrBadArgument  if figure is nil or index is out of range.
//   - ErrUnsolvable          backtracking exhausted (defensive; not expected
//     for well-formed turn sequences).
//   - ErrCancelled           only if a context is supplied and it is done.
//   - ErrUnimplemented       returned by refinement hooks not yet provided.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/saxbophone/sxbp/figure"
)

// Sentinel errors for the solver.
var (
	// ErrUnsolvable indicates backtracking would require growing before
	// line 0 — not expected for well-formed, bit-derived turn sequences.
	ErrUnsolvable = errors.New("solver: figure is unsolvable")

	// ErrCancelled indicates the caller's context was done mid-solve.
	ErrCancelled = errors.New("solver: cancelled")

	// ErrUnimplemented indicates an alternative refinement strategy that has
	// not yet been provided.
	ErrUnimplemented = errors.New("solver: unimplemented")
)

// ProgressFunc is called after each successful line commit. It must treat
// the figure as read-only.
type ProgressFunc func(f *figure.Figure, latestLine, targetLine int, userData any)

// Option configures a solve.
type Option func(*config)

type config struct {
	perfectionThreshold int64
	maxLine             int
	ctx                 context.Context
	progress            ProgressFunc
	userData            any
}

// DefaultMaxLine is used when WithMaxLine is not supplied: solve through the
// whole figure.
const DefaultMaxLine = -1

func defaultConfig() config {
	return config{
		perfectionThreshold: 0,
		maxLine:             DefaultMaxLine,
		ctx:                 context.Background(),
	}
}

// WithPerfectionThreshold sets the length above which a colliding line
// forces the cautious one-step growth instead of the analytic jump. 0 (the
// default) disables the gate entirely.
func WithPerfectionThreshold(n int64) Option {
	return func(c *config) { c.perfectionThreshold = n }
}

// WithMaxLine stops solving once the given line index is reached
// (exclusive). Negative or greater-than-length values solve the whole
// figure.
func WithMaxLine(n int) Option {
	return func(c *config) { c.maxLine = n }
}

// WithContext supplies a context polled once per backtracking iteration.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithProgress registers a callback invoked after each successful line
// commit, alongside arbitrary user data passed through unmodified.
func WithProgress(fn ProgressFunc, userData any) Option {
	return func(c *config) {
		c.progress = fn
		c.userData = userData
	}
}

// Stats reports timing information about a solve: Elapsed is the wall-clock
// time measured around PlotSpiral's solve loop, a single duration in place
// of the original implementation's manually-accumulated clock-ticks counter.
type Stats struct {
	Elapsed time.Duration
}
