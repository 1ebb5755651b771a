// SPDX-License-Identifier: MIT
// Package codec implements SXBP's round-trippable serialisation format:
// a small header (magic, version, line count) followed by one packed
// 32-bit word per line (2 bits of direction, 30 bits of length).
//
// Format:
//
//	offset  size  field
//	0       4     magic      "SXBP"
//	4       3     version    major, minor, patch
//	7       8     line count big-endian uint64
//	15      4*N   body       one packed word per line
//
// Errors:
//   - ErrBadHeaderSize: input shorter than the fixed header.
//   - ErrBadMagic:      magic bytes don't match.
//   - ErrBadVersion:    major version newer than this codec supports.
//   - ErrBadDataSize:   body length doesn't match the declared line count.
package codec

import (
	"encoding/binary"
	"errors"

	"github.com/saxbophone/sxbp/figure"
	"github.com/saxbophone/sxbp/vector"
)

// Sentinel errors for deserialisation.
var (
	ErrBadHeaderSize = errors.New("codec: header too small")
	ErrBadMagic      = errors.New("codec: wrong magic bytes")
	ErrBadVersion    = errors.New("codec: unsupported version")
	ErrBadDataSize   = errors.New("codec: body length mismatched to declared line count")
)

// Magic identifies the SXBP binary format.
var Magic = [4]byte{'S', 'X', 'B', 'P'}

// Version is the format version this codec writes. Load accepts any version
// whose major byte is not newer than Version's; minor and patch are not
// checked.
var Version = [3]byte{1, 0, 0}

const (
	headerSize = 4 + 3 + 8
	wordSize   = 4
)

// Dump serialises a figure to the SXBP binary format.
func Dump(f *figure.Figure) ([]byte, error) {
	if f == nil {
		return nil, figure.ErrBadArgument
	}

	buf := make([]byte, headerSize+wordSize*len(f.Lines))
	copy(buf[0:4], Magic[:])
	copy(buf[4:7], Version[:])
	binary.BigEndian.PutUint64(buf[7:15], uint64(len(f.Lines)))

	for i, line := range f.Lines {
		if line.Length < 0 || line.Length > figure.MaxLength {
			return nil, figure.ErrBadArgument
		}
		word := uint32(line.Direction&3)<<30 | uint32(line.Length)&0x3FFFFFFF
		binary.BigEndian.PutUint32(buf[headerSize+i*wordSize:], word)
	}

	return buf, nil
}

// Load deserialises a figure from the SXBP binary format, rejecting a
// header that's too small, wrong magic, an unsupported version, or a body
// whose size doesn't match the declared line count.
func Load(data []byte) (*figure.Figure, error) {
	if len(data) < headerSize {
		return nil, ErrBadHeaderSize
	}
	if string(data[0:4]) != string(Magic[:]) {
		return nil, ErrBadMagic
	}
	if data[4] > Version[0] {
		return nil, ErrBadVersion
	}

	lineCount := binary.BigEndian.Uint64(data[7:15])
	const maxLineCount = (1<<31 - 1) / wordSize
	if lineCount > maxLineCount {
		return nil, ErrBadDataSize
	}
	wantSize := headerSize + wordSize*int(lineCount)
	if len(data) != wantSize {
		return nil, ErrBadDataSize
	}

	lines := make([]figure.Line, lineCount)
	for i := range lines {
		word := binary.BigEndian.Uint32(data[headerSize+i*wordSize:])
		lines[i] = figure.Line{
			Direction: vector.Direction(word >> 30),
			Length:    int64(word & 0x3FFFFFFF),
		}
	}

	solved := 0
	for solved < len(lines) && lines[solved].Length > 0 {
		solved++
	}
	if len(lines) > 0 {
		// The anchor is always pre-solved even if its encoded length were 0.
		solved = max(solved, 1)
	}

	return &figure.Figure{Lines: lines, SolvedCount: solved}, nil
}
