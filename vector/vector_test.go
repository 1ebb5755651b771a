package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saxbophone/sxbp/vector"
)

func TestRotate(t *testing.T) {
	cases := []struct {
		d    vector.Direction
		r    vector.Rotation
		want vector.Direction
	}{
		{vector.Up, vector.Clockwise, vector.Right},
		{vector.Right, vector.Clockwise, vector.Down},
		{vector.Down, vector.Clockwise, vector.Left},
		{vector.Left, vector.Clockwise, vector.Up},
		{vector.Up, vector.AntiClockwise, vector.Left},
		{vector.Left, vector.AntiClockwise, vector.Down},
		{vector.Down, vector.AntiClockwise, vector.Right},
		{vector.Right, vector.AntiClockwise, vector.Up},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, vector.Rotate(c.d, c.r))
	}
}

func TestUnitVector(t *testing.T) {
	assert.Equal(t, vector.Cell{X: 0, Y: 1}, vector.UnitVector(vector.Up))
	assert.Equal(t, vector.Cell{X: 1, Y: 0}, vector.UnitVector(vector.Right))
	assert.Equal(t, vector.Cell{X: 0, Y: -1}, vector.UnitVector(vector.Down))
	assert.Equal(t, vector.Cell{X: -1, Y: 0}, vector.UnitVector(vector.Left))
}

func TestCellAdd(t *testing.T) {
	got := vector.Cell{X: 2, Y: -3}.Add(vector.Cell{X: 1, Y: 1})
	assert.Equal(t, vector.Cell{X: 3, Y: -2}, got)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "UP", vector.Up.String())
	assert.Equal(t, "RIGHT", vector.Right.String())
	assert.Equal(t, "DOWN", vector.Down.String())
	assert.Equal(t, "LEFT", vector.Left.String())
	assert.Equal(t, "INVALID", vector.Direction(99).String())
}
