package direction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procedural-go/wfc/direction"
)

func TestOpposite(t *testing.T) {
	cases := []struct {
		in, want direction.Direction
	}{
		{direction.Down, direction.Up},
		{direction.Up, direction.Down},
		{direction.Left, direction.Right},
		{direction.Right, direction.Left},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.in.Opposite(), "opposite of %s", c.in)
		require.Equal(t, c.in, c.in.Opposite().Opposite(), "opposite is an involution for %s", c.in)
	}
}

func TestUnit(t *testing.T) {
	cases := []struct {
		d      direction.Direction
		dy, dx int
	}{
		{direction.Down, -1, 0},
		{direction.Left, 0, -1},
		{direction.Right, 0, 1},
		{direction.Up, 1, 0},
	}
	for _, c := range cases {
		dy, dx := c.d.Unit()
		require.Equal(t, c.dy, dy, "dy for %s", c.d)
		require.Equal(t, c.dx, dx, "dx for %s", c.d)
	}
}

func TestDirectionsCoversAll(t *testing.T) {
	all := direction.Directions()
	require.Len(t, all, 4)
	seen := map[direction.Direction]bool{}
	for _, d := range all {
		require.True(t, d.Valid())
		seen[d] = true
	}
	require.Len(t, seen, 4)
}

func TestIndexIsStableEnumerationOrder(t *testing.T) {
	require.Equal(t, 0, direction.Down.Index())
	require.Equal(t, 1, direction.Left.Index())
	require.Equal(t, 2, direction.Right.Index())
	require.Equal(t, 3, direction.Up.Index())
}
