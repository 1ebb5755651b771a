// Package sxbp is your byte-to-polyline playground for turning arbitrary
// data into self-avoiding spiral figures in Go.
//
// What is sxbp?
//
//	A small, dependency-light library that brings together:
//
//	  - Core primitives: turn bytes into directional Lines, grow a Figure
//	  - A coordinate cache: materialise a figure's cells incrementally
//	  - A backtracking solver: give each line the shortest length that keeps
//	    the figure's path from crossing itself, growing an earlier line when
//	    a later one collides
//	  - Density helpers: validate or enumerate alternative solutions
//	  - A binary codec and PBM/PNG/SVG renderers
//
// Why choose sxbp?
//
//   - Deterministic    — the same input always produces the same figure
//   - Resumable        — PlotSpiral can pick up from any partially solved
//     figure, including one just deserialised from disk
//   - Cancellable      — long solves take a context.Context and stop
//     cleanly on cancellation
//   - Pure Go          — no cgo, no image libraries beyond the standard
//     library's image/png
//
// Under the hood, everything is organised under subpackages:
//
//	vector/    — Direction, Rotation and Cell, the geometric primitives
//	figure/    — Line, Figure and CoordCache, the core data model
//	cache/     — incremental materialisation of a figure's cell coordinates
//	collision/ — self-intersection testing for a figure's spiral
//	solver/    — the backtracking PlotSpiral/ResizeSpiral state machine
//	density/   — validating and enumerating candidate line-length solutions
//	codec/     — the SXBP binary serialisation format
//	render/    — PBM, PNG and SVG output
//	cmd/sxbp/  — a command-line driver for solving and rendering figures
//
// Quick example: the byte 0x00 walks up, left, down, right, up, ... starting
// each new line at length 1 and growing the line before it whenever that
// would make the path cross itself.
//
//	go get github.com/saxbophone/sxbp
package sxbp
