// Package garden counts the garden plots an elf can stand on after an exact
// number of steps across a map that repeats infinitely in every direction.
//
// Positions are logical and unbounded: (-1, 0) is the last row of the tile
// above the original one. Every map lookup folds the logical position back
// into the tile through gridgraph.Grid.Wrap.
package garden

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/nadlgit/gridsearch/gridgraph"
	"github.com/nadlgit/gridsearch/internal/extrapolate"
	"github.com/nadlgit/gridsearch/internal/input"
	"github.com/nadlgit/gridsearch/search"
)

var (
	// ErrNoStart indicates the map has no 'S' cell.
	ErrNoStart = errors.New("garden: no start position")
	// ErrNotSquare indicates a tile whose width and height differ.
	ErrNotSquare = errors.New("garden: tile must be square to extrapolate")
	// ErrMisalignedSteps indicates a step count that does not land on a
	// tile edge, so the quadratic growth does not apply.
	ErrMisalignedSteps = errors.New("garden: steps must be an edge distance plus a whole number of tiles")
)

// Garden is one tile of the infinite map. Rocks marks the cells that cannot
// be stepped on.
type Garden struct {
	Rocks *gridgraph.Grid[bool]
	Start gridgraph.Point
}

// Parse reads a tile: '.' and 'S' are plots, '#' is a rock. The first 'S'
// in row-major order is the start.
func Parse(lines []string) (*Garden, error) {
	chars, err := gridgraph.Parse(lines, func(ch rune) (rune, error) {
		switch ch {
		case '.', '#', 'S':
			return ch, nil
		}
		return 0, fmt.Errorf("%w: %q is not a plot or a rock", gridgraph.ErrBadCell, ch)
	})
	if err != nil {
		return nil, err
	}
	starts := chars.Find(func(ch rune) bool { return ch == 'S' })
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	rocks := make([][]bool, chars.Height)
	for r, row := range chars.Cells {
		rocks[r] = make([]bool, chars.Width)
		for c, ch := range row {
			rocks[r][c] = ch == '#'
		}
	}
	g := &Garden{Start: starts[0]}
	if g.Rocks, err = gridgraph.New(rocks); err != nil {
		return nil, err
	}

	return g, nil
}

// NextPlots returns the plots one step away from p on the infinite map.
func (g *Garden) NextPlots(p gridgraph.Point) []gridgraph.Point {
	out := make([]gridgraph.Point, 0, 4)
	for _, d := range gridgraph.Directions {
		if n := p.Move(d, 1); !g.Rocks.AtWrapped(n) {
			out = append(out, n)
		}
	}

	return out
}

func (g *Garden) walk() search.Walk[gridgraph.Point, gridgraph.Point] {
	return search.Walk[gridgraph.Point, gridgraph.Point]{
		Next: g.NextPlots,
		Key:  func(p gridgraph.Point) gridgraph.Point { return p },
	}
}

// ReachablePlots returns the logical positions reachable in exactly steps
// steps, sorted row-major.
func ReachablePlots(g *Garden, steps int) ([]gridgraph.Point, error) {
	// an unbounded flood never ends on an infinite map
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", search.ErrBadBudget, steps)
	}
	reach, err := search.Reachable(g.walk(), []gridgraph.Point{g.Start}, steps)
	if err != nil {
		return nil, err
	}
	plots := reach.Exact()
	slices.SortFunc(plots, func(a, b gridgraph.Point) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	return plots, nil
}

// CountReachablePlots returns how many plots are reachable in exactly steps
// steps.
func CountReachablePlots(g *Garden, steps int) (int, error) {
	return search.CountLayers(g.walk(), []gridgraph.Point{g.Start}, steps)
}

// ExtrapolatePlots answers CountReachablePlots for step counts too large to
// flood.
//
// Once the frontier leaves the first tile, the count grows quadratically in
// the number of tiles crossed, provided the start sits in the middle of a
// square tile whose centre row, centre column and border are clear of rocks.
// The count is sampled at edge, edge+side and edge+2·side steps and
// extrapolated to x = (steps-edge)/side, where edge = (side-1)/2. steps must
// be of that form; smaller counts are computed directly.
func ExtrapolatePlots(g *Garden, steps int) (int, error) {
	side := g.Rocks.Width
	if g.Rocks.Height != side {
		return 0, fmt.Errorf("%w: %d×%d", ErrNotSquare, g.Rocks.Height, side)
	}
	edge := (side - 1) / 2
	if steps <= edge {
		return CountReachablePlots(g, steps)
	}
	if (steps-edge)%side != 0 {
		return 0, fmt.Errorf("%w: %d is not %d + k×%d", ErrMisalignedSteps, steps, edge, side)
	}

	var y [3]int
	for x := range y {
		n, err := CountReachablePlots(g, edge+x*side)
		if err != nil {
			return 0, err
		}
		y[x] = n
	}

	return extrapolate.Quadratic(y[0], y[1], y[2], (steps-edge)/side), nil
}

// SolvePart1 reads the tile at path and counts the plots reachable in
// exactly steps steps.
func SolvePart1(path string, steps int) (int, error) {
	g, err := read(path)
	if err != nil {
		return 0, err
	}
	plots, err := ReachablePlots(g, steps)
	if err != nil {
		return 0, err
	}
	return len(plots), nil
}

// SolvePart2 reads the tile at path and extrapolates the plot count.
func SolvePart2(path string, steps int) (int, error) {
	g, err := read(path)
	if err != nil {
		return 0, err
	}
	return ExtrapolatePlots(g, steps)
}

func read(path string) (*Garden, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
