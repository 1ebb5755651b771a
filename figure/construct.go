// SPDX-License-Identifier: MIT
package figure

import (
	"math"

	"github.com/saxbophone/sxbp/vector"
)

// AnchorLength is the length of the first line of every figure.
const AnchorLength = 3

// MaxTurnBytes bounds the input size so that the resulting line count, and
// every index into it, fits in a 32-bit step index.
const MaxTurnBytes = (math.MaxInt32 - 1) / 8

// Blank returns a zero-length figure: no lines, nothing solved.
func Blank() *Figure {
	return &Figure{}
}

// Init allocates a Figure from a sequence of turn bits, one bit per
// subsequent line after the anchor. The anchor (line 0) is always
// (Up, AnchorLength). For bit i (0-indexed over turnBits, MSB first within
// each byte), a 1 bit turns clockwise from the previous direction and a 0
// bit turns anti-clockwise; the resulting direction is written to line i+1
// with length 0 (unsolved). SolvedCount is set to 1, since the anchor is
// pre-solved.
//
// Init returns ErrBadArgument if turnBits is long enough that the line count
// would overflow a 32-bit step index.
func Init(turnBits []byte) (*Figure, error) {
	if len(turnBits) > MaxTurnBytes {
		return nil, ErrBadArgument
	}
	lineCount := len(turnBits)*8 + 1
	lines := make([]Line, lineCount)
	lines[0] = Line{Direction: vector.Up, Length: AnchorLength}

	current := vector.Up
	for byteIdx, b := range turnBits {
		for bit := 0; bit < 8; bit++ {
			shift := uint(7 - bit)
			set := (b>>shift)&1 == 1
			rotation := vector.AntiClockwise
			if set {
				rotation = vector.Clockwise
			}
			current = vector.Rotate(current, rotation)
			lines[byteIdx*8+bit+1] = Line{Direction: current, Length: 0}
		}
	}

	return &Figure{
		Lines:       lines,
		SolvedCount: 1,
	}, nil
}

// Clone returns a deep copy of the figure, including its coordinate cache,
// so that mutating the clone never aliases the original's backing arrays.
func (f *Figure) Clone() *Figure {
	clone := &Figure{
		Lines:       make([]Line, len(f.Lines)),
		SolvedCount: f.SolvedCount,
		Collides:    f.Collides,
		Collider:    f.Collider,
		Cache: CoordCache{
			Cells:    make([]vector.Cell, len(f.Cache.Cells)),
			Validity: f.Cache.Validity,
		},
	}
	copy(clone.Lines, f.Lines)
	copy(clone.Cache.Cells, f.Cache.Cells)

	return clone
}
