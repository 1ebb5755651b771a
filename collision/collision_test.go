package collision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saxbophone/sxbp/cache"
	"github.com/saxbophone/sxbp/collision"
	"github.com/saxbophone/sxbp/figure"
	"github.com/saxbophone/sxbp/vector"
)

func TestSpiralCollides_TooFewLines(t *testing.T) {
	f, err := figure.Init([]byte{0x00})
	require.NoError(t, err)
	f.Lines = f.Lines[:3]
	for i := range f.Lines {
		f.Lines[i].Length = 1
	}
	require.NoError(t, cache.CacheSpiralPoints(f, 3))
	assert.False(t, collision.SpiralCollides(f, 2))
}

// A tight square: UP 1, RIGHT 1, DOWN 1, LEFT 1 returns to the origin,
// colliding line 3 with line 0.
func TestSpiralCollides_Square(t *testing.T) {
	f := &figure.Figure{Lines: []figure.Line{
		{Direction: vector.Up, Length: 1},
		{Direction: vector.Right, Length: 1},
		{Direction: vector.Down, Length: 1},
		{Direction: vector.Left, Length: 1},
	}}
	require.NoError(t, cache.CacheSpiralPoints(f, 4))
	assert.True(t, collision.SpiralCollides(f, 3))
	assert.Equal(t, 0, f.Collider)
}

func TestSpiralCollides_NoCollision(t *testing.T) {
	f := &figure.Figure{Lines: []figure.Line{
		{Direction: vector.Up, Length: 3},
		{Direction: vector.Right, Length: 1},
		{Direction: vector.Down, Length: 1},
		{Direction: vector.Right, Length: 1},
		{Direction: vector.Down, Length: 1},
	}}
	require.NoError(t, cache.CacheSpiralPoints(f, 5))
	assert.False(t, collision.SpiralCollides(f, 4))
}
