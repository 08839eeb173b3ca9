package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadlgit/gridsearch/gridgraph"
)

//----------------------------------------------------------------------------//
// New, Parse and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later writes to the source slice do not leak in.
func TestNew_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.New(src)
	require.NoError(t, err)
	src[0][0] = 99
	assert.Equal(t, 1, g.At(gridgraph.Point{}))
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
}

func TestParse(t *testing.T) {
	g, err := gridgraph.Parse([]string{"123", "456", ""}, gridgraph.Digits)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height) // trailing blank line dropped
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 6, g.At(gridgraph.Point{Row: 1, Col: 2}))

	_, err = gridgraph.Parse([]string{"12", "3x"}, gridgraph.Digits)
	require.ErrorIs(t, err, gridgraph.ErrBadCell)
	assert.Contains(t, err.Error(), "row 1 col 1")

	_, err = gridgraph.Parse([]string{"ab", "c"}, gridgraph.Runes)
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// Tiled addressing
//----------------------------------------------------------------------------//

func TestWrap(t *testing.T) {
	g, err := gridgraph.New([][]rune{
		[]rune("abc"),
		[]rune("def"),
	})
	require.NoError(t, err)

	cases := []struct {
		in, want gridgraph.Point
	}{
		{gridgraph.Point{Row: 0, Col: 0}, gridgraph.Point{Row: 0, Col: 0}},
		{gridgraph.Point{Row: 1, Col: 2}, gridgraph.Point{Row: 1, Col: 2}},
		{gridgraph.Point{Row: 2, Col: 3}, gridgraph.Point{Row: 0, Col: 0}},
		{gridgraph.Point{Row: -1, Col: -1}, gridgraph.Point{Row: 1, Col: 2}},
		{gridgraph.Point{Row: -2, Col: -3}, gridgraph.Point{Row: 0, Col: 0}},
		{gridgraph.Point{Row: -5, Col: -7}, gridgraph.Point{Row: 1, Col: 2}},
		{gridgraph.Point{Row: 1_000_001, Col: 1_000_000}, gridgraph.Point{Row: 1, Col: 1}},
	}
	for _, tc := range cases {
		got := g.Wrap(tc.in)
		assert.Equal(t, tc.want, got, "Wrap(%v)", tc.in)
		assert.True(t, g.InBounds(got))
	}
	assert.Equal(t, 'f', g.AtWrapped(gridgraph.Point{Row: -1, Col: -1}))
}

//----------------------------------------------------------------------------//
// Neighbors, Find and indexing
//----------------------------------------------------------------------------//

func TestNeighbors(t *testing.T) {
	g, err := gridgraph.New([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Point{{0, 1}, {1, 0}}, g.Neighbors(gridgraph.Point{}))
	assert.Len(t, g.Neighbors(gridgraph.Point{Row: 1, Col: 1}), 4)
	assert.Equal(t, []gridgraph.Point{{1, 2}, {2, 1}}, g.Neighbors(g.Corner()))
}

func TestFindAndIndex(t *testing.T) {
	g, err := gridgraph.Parse([]string{"..S", "S.."}, gridgraph.Runes)
	require.NoError(t, err)

	starts := g.Find(func(r rune) bool { return r == 'S' })
	assert.Equal(t, []gridgraph.Point{{0, 2}, {1, 0}}, starts)

	for i := 0; i < g.Width*g.Height; i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, 3, g.Index(gridgraph.Point{Row: 1, Col: 0}))
}

//----------------------------------------------------------------------------//
// Points and directions
//----------------------------------------------------------------------------//

func TestDirection(t *testing.T) {
	for _, d := range gridgraph.Directions {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.Equal(t, d.Reverse(), d.TurnRight().TurnRight())
		assert.NotEqual(t, d.Horizontal(), d.TurnLeft().Horizontal())
		back := gridgraph.Point{}.Move(d, 3).Move(d.Reverse(), 3)
		assert.Equal(t, gridgraph.Point{}, back)
	}
	assert.Equal(t, gridgraph.Right, gridgraph.Up.TurnRight())
	assert.Equal(t, gridgraph.Left, gridgraph.Up.TurnLeft())
	assert.Equal(t, [2]gridgraph.Direction{gridgraph.Up, gridgraph.Down}, gridgraph.Right.Perpendicular())
	assert.Equal(t, "down", gridgraph.Down.String())
	assert.Equal(t, gridgraph.Point{Row: 2, Col: -4}, gridgraph.Point{Row: 2}.Move(gridgraph.Left, 4))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, gridgraph.Manhattan(gridgraph.Point{Row: 3, Col: 4}, gridgraph.Point{Row: 3, Col: 4}))
	assert.Equal(t, 7, gridgraph.Manhattan(gridgraph.Point{}, gridgraph.Point{Row: -3, Col: 4}))
	assert.Equal(t, 7, gridgraph.Manhattan(gridgraph.Point{Row: -3, Col: 4}, gridgraph.Point{}))
}
