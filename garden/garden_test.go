package garden_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nadlgit/gridsearch/garden"
	"github.com/nadlgit/gridsearch/gridgraph"
	"github.com/nadlgit/gridsearch/search"
)

var example = []string{
	"...........",
	".....###.#.",
	".###.##..#.",
	"..#.#...#..",
	"....#.#....",
	".##..S####.",
	".##..#...#.",
	".......##..",
	".##.#.####.",
	".##..##.##.",
	"...........",
}

// openExample is a square tile with clear borders and a clear start row and
// column, on which the plot count grows quadratically.
var openExample = []string{
	".................",
	"..#..............",
	"...##........###.",
	".............##..",
	"..#....#.#.......",
	".......#.........",
	"......##.##......",
	"...##.#.....#....",
	"........S........",
	"....#....###.#...",
	"......#..#.#.....",
	".....#.#..#......",
	".#...............",
	".#.....#.#....#..",
	"...#.........#.#.",
	"...........#..#..",
	".................",
}

func pts(rc ...int) []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, gridgraph.Point{Row: rc[i], Col: rc[i+1]})
	}
	return out
}

//----------------------------------------------------------------------------//
// Parse and NextPlots
//----------------------------------------------------------------------------//

func TestParse(t *testing.T) {
	g, err := garden.Parse([]string{".....", "..S..", "....."})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 2}, g.Start)
	assert.False(t, g.Rocks.At(g.Start))

	_, err = garden.Parse([]string{"...", ".#."})
	require.ErrorIs(t, err, garden.ErrNoStart)

	_, err = garden.Parse([]string{"S..", ".x."})
	require.ErrorIs(t, err, gridgraph.ErrBadCell)
}

func TestNextPlots(t *testing.T) {
	open, err := garden.Parse([]string{".....", "..S..", "....."})
	require.NoError(t, err)
	assert.ElementsMatch(t, pts(0, 2, 1, 3, 2, 2, 1, 1), open.NextPlots(gridgraph.Point{Row: 1, Col: 2}))

	rocky, err := garden.Parse([]string{"..#..", ".#S#.", "..#.."})
	require.NoError(t, err)
	assert.Empty(t, rocky.NextPlots(rocky.Start))
}

// TestNextPlots_InfiniteMap checks that a rock right of the centre repeats on
// every copy of the tile, however far away.
func TestNextPlots_InfiniteMap(t *testing.T) {
	g, err := garden.Parse([]string{".....", "...#.", "..S.."})
	require.NoError(t, err)

	for _, n := range []int{1, 2, 1234567} {
		for _, shift := range []gridgraph.Point{{Col: 5 * n}, {Col: -5 * n}, {Row: 3 * n}, {Row: -3 * n}} {
			from := gridgraph.Point{Row: 1 + shift.Row, Col: 2 + shift.Col}
			assert.ElementsMatch(t,
				[]gridgraph.Point{from.Move(gridgraph.Up, 1), from.Move(gridgraph.Down, 1), from.Move(gridgraph.Left, 1)},
				g.NextPlots(from), "from %v", from)
		}
	}
}

//----------------------------------------------------------------------------//
// Plot counting
//----------------------------------------------------------------------------//

type PlotsSuite struct {
	suite.Suite
	small   *garden.Garden
	example *garden.Garden
	open    *garden.Garden
}

func (s *PlotsSuite) SetupSuite() {
	var err error
	s.small, err = garden.Parse([]string{
		".....",
		".#...",
		".#S..",
		"...#.",
		".....",
	})
	s.Require().NoError(err)
	s.example, err = garden.Parse(example)
	s.Require().NoError(err)
	s.open, err = garden.Parse(openExample)
	s.Require().NoError(err)
}

func (s *PlotsSuite) TestReachablePlots_Small() {
	cases := []struct {
		steps int
		want  []gridgraph.Point
	}{
		{0, pts(2, 2)},
		{1, pts(1, 2, 2, 3, 3, 2)},
		{2, pts(0, 2, 1, 3, 2, 2, 2, 4, 3, 1, 4, 2)},
		{3, pts(-1, 2, 0, 1, 0, 3, 1, 2, 1, 4, 2, 3, 2, 5, 3, 0, 3, 2, 3, 4, 4, 1, 4, 3, 5, 2)},
		{5, pts(
			-3, 2, -2, 1, -1, 0, -1, 2, -1, 4, 0, -1, 0, 1, 0, 3, 0, 5,
			1, 0, 1, 2, 1, 4, 2, -1, 2, 3, 2, 5, 3, 0, 3, 2, 3, 4, 3, 6,
			4, -1, 4, 1, 4, 3, 4, 5, 5, 0, 5, 2, 5, 4, 6, 3, 7, 2,
		)},
	}
	for _, tc := range cases {
		got, err := garden.ReachablePlots(s.small, tc.steps)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "steps=%d", tc.steps)
	}
}

func (s *PlotsSuite) TestReachablePlots_Example() {
	got, err := garden.ReachablePlots(s.example, 6)
	s.Require().NoError(err)
	s.Equal(pts(
		2, 8, 3, 1, 3, 3, 3, 5, 3, 7, 4, 0, 4, 2, 4, 8,
		5, 3, 5, 5, 6, 4, 6, 6, 7, 1, 7, 3, 7, 5, 9, 3,
	), got)
}

func (s *PlotsSuite) TestCountReachablePlots() {
	cases := []struct{ steps, want int }{
		{0, 1},
		{6, 16},
		{10, 50},
		{50, 1594},
		{100, 6536},
		{500, 167004},
	}
	for _, tc := range cases {
		got, err := garden.CountReachablePlots(s.example, tc.steps)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "steps=%d", tc.steps)
	}
}

// TestBothReachabilityShapesAgree compares the best-first and the layered
// reachability drivers step by step.
func (s *PlotsSuite) TestBothReachabilityShapesAgree() {
	for steps := 0; steps <= 40; steps++ {
		plots, err := garden.ReachablePlots(s.example, steps)
		s.Require().NoError(err)
		n, err := garden.CountReachablePlots(s.example, steps)
		s.Require().NoError(err)
		s.Len(plots, n, "steps=%d", steps)
	}
}

func (s *PlotsSuite) TestExtrapolatePlots() {
	cases := []struct{ steps, want int }{
		{7, 52},
		{8, 68},
		{25, 576},
		{42, 1576},
		{59, 3068},
		{76, 5052},
		{1180148, 1185525742508},
	}
	for _, tc := range cases {
		got, err := garden.ExtrapolatePlots(s.open, tc.steps)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "steps=%d", tc.steps)
	}
}

func (s *PlotsSuite) TestExtrapolatePlots_Errors() {
	_, err := garden.ExtrapolatePlots(s.open, 30)
	s.ErrorIs(err, garden.ErrMisalignedSteps)

	rect, err := garden.Parse([]string{".....", "..S..", "....."})
	s.Require().NoError(err)
	_, err = garden.ExtrapolatePlots(rect, 100)
	s.ErrorIs(err, garden.ErrNotSquare)
}

func (s *PlotsSuite) TestNegativeSteps() {
	for _, steps := range []int{-1, -2} {
		_, err := garden.ReachablePlots(s.example, steps)
		s.ErrorIs(err, search.ErrBadBudget)
		_, err = garden.CountReachablePlots(s.example, steps)
		s.ErrorIs(err, search.ErrBadBudget)
	}
}

func TestPlotsSuite(t *testing.T) {
	suite.Run(t, new(PlotsSuite))
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "example.txt")
	require.NoError(t, os.WriteFile(small, []byte(strings.Join(example, "\n")+"\n"), 0o600))
	open := filepath.Join(dir, "open.txt")
	require.NoError(t, os.WriteFile(open, []byte(strings.Join(openExample, "\n")+"\n"), 0o600))

	got, err := garden.SolvePart1(small, 6)
	require.NoError(t, err)
	assert.Equal(t, 16, got)

	got, err = garden.SolvePart2(open, 1180148)
	require.NoError(t, err)
	assert.Equal(t, 1185525742508, got)
}
