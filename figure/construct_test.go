package figure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saxbophone/sxbp/figure"
	"github.com/saxbophone/sxbp/vector"
)

func TestInit_EmptyBody(t *testing.T) {
	f, err := figure.Init(nil)
	require.NoError(t, err)
	require.Len(t, f.Lines, 1)
	assert.Equal(t, figure.Line{Direction: vector.Up, Length: figure.AnchorLength}, f.Lines[0])
	assert.Equal(t, 1, f.SolvedCount)
}

func TestInit_SingleByteZero(t *testing.T) {
	f, err := figure.Init([]byte{0x00})
	require.NoError(t, err)
	require.Len(t, f.Lines, 9)

	want := []vector.Direction{
		vector.Up, vector.Left, vector.Down, vector.Right,
		vector.Up, vector.Left, vector.Down, vector.Right, vector.Up,
	}
	for i, d := range want {
		assert.Equalf(t, d, f.Lines[i].Direction, "line %d", i)
	}
}

func TestInit_SingleByteFF(t *testing.T) {
	f, err := figure.Init([]byte{0xFF})
	require.NoError(t, err)
	require.Len(t, f.Lines, 9)

	want := []vector.Direction{
		vector.Up, vector.Right, vector.Down, vector.Left,
		vector.Up, vector.Right, vector.Down, vector.Left, vector.Up,
	}
	for i, d := range want {
		assert.Equalf(t, d, f.Lines[i].Direction, "line %d", i)
	}
}

func TestInit_FourByteASCII(t *testing.T) {
	f, err := figure.Init([]byte("SXBP"))
	require.NoError(t, err)
	assert.Len(t, f.Lines, 33)
	assert.Equal(t, vector.Up, f.Lines[0].Direction)
}

func TestInit_TooLarge(t *testing.T) {
	_, err := figure.Init(make([]byte, figure.MaxTurnBytes+1))
	assert.ErrorIs(t, err, figure.ErrBadArgument)
}

func TestClone_Independent(t *testing.T) {
	f, err := figure.Init([]byte{0x00})
	require.NoError(t, err)
	f.Lines[1].Length = 5
	f.Cache.Cells = append(f.Cache.Cells, vector.Cell{X: 1, Y: 1})
	f.Cache.Validity = 1

	clone := f.Clone()
	clone.Lines[1].Length = 9
	clone.Cache.Cells[0] = vector.Cell{X: 99, Y: 99}

	assert.Equal(t, int64(5), f.Lines[1].Length)
	assert.Equal(t, vector.Cell{X: 1, Y: 1}, f.Cache.Cells[0])
}

func TestBlank(t *testing.T) {
	f := figure.Blank()
	assert.Equal(t, 0, f.Len())
	assert.True(t, f.Solved())
}
