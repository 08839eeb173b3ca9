// Package hill finds the fewest steps up a heightmap where each step may
// climb at most one level.
package hill

import (
	"errors"
	"fmt"
	"math"

	"github.com/nadlgit/gridsearch/gridgraph"
	"github.com/nadlgit/gridsearch/internal/input"
	"github.com/nadlgit/gridsearch/search"
)

var (
	// ErrNoStart indicates the map has no 'S' cell.
	ErrNoStart = errors.New("hill: no start position")
	// ErrNoEnd indicates the map has no 'E' cell.
	ErrNoEnd = errors.New("hill: no end position")
)

// Map is a heightmap with elevations 0 ('a') through 25 ('z').
type Map struct {
	Grid  *gridgraph.Grid[int]
	Start gridgraph.Point
	End   gridgraph.Point
}

// Parse reads a heightmap. 'S' marks the start at elevation 'a' and 'E'
// the end at elevation 'z'. When several are present the first one in
// row-major order wins.
func Parse(lines []string) (*Map, error) {
	grid, err := gridgraph.Parse(lines, gridgraph.Runes)
	if err != nil {
		return nil, err
	}
	m := &Map{}
	var hasStart, hasEnd bool
	elevations := make([][]int, grid.Height)
	for r := range elevations {
		elevations[r] = make([]int, grid.Width)
	}
	for p, ch := range grid.All() {
		switch {
		case ch == 'S':
			if !hasStart {
				m.Start, hasStart = p, true
			}
			ch = 'a'
		case ch == 'E':
			if !hasEnd {
				m.End, hasEnd = p, true
			}
			ch = 'z'
		case ch < 'a' || ch > 'z':
			return nil, fmt.Errorf("row %d col %d: %w: %q is not an elevation", p.Row, p.Col, gridgraph.ErrBadCell, ch)
		}
		elevations[p.Row][p.Col] = int(ch - 'a')
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if !hasEnd {
		return nil, ErrNoEnd
	}
	if m.Grid, err = gridgraph.New(elevations); err != nil {
		return nil, err
	}

	return m, nil
}

// Elevation returns the height at p.
func (m *Map) Elevation(p gridgraph.Point) int { return m.Grid.At(p) }

// Lowest returns every position at elevation 'a', start included.
func (m *Map) Lowest() []gridgraph.Point {
	return m.Grid.Find(func(e int) bool { return e == 0 })
}

// NextSteps returns the orthogonal neighbors of p that are at most one
// level higher than p.
func (m *Map) NextSteps(p gridgraph.Point) []gridgraph.Point {
	return m.neighbors(p, func(from, to int) bool { return to <= from+1 })
}

// prevSteps inverts NextSteps: the neighbors from which p can be reached.
func (m *Map) prevSteps(p gridgraph.Point) []gridgraph.Point {
	return m.neighbors(p, func(from, to int) bool { return from <= to+1 })
}

func (m *Map) neighbors(p gridgraph.Point, allowed func(from, to int) bool) []gridgraph.Point {
	out := m.Grid.Neighbors(p)
	n := 0
	for _, q := range out {
		if allowed(m.Elevation(p), m.Elevation(q)) {
			out[n] = q
			n++
		}
	}
	return out[:n]
}

func unitSteps(next []gridgraph.Point) []search.Step[gridgraph.Point, int] {
	steps := make([]search.Step[gridgraph.Point, int], len(next))
	for i, q := range next {
		steps[i] = search.Step[gridgraph.Point, int]{State: q, Cost: 1}
	}
	return steps
}

func identity(p gridgraph.Point) gridgraph.Point { return p }

// FewestSteps returns the fewest steps from Start to End, or math.MaxInt if
// End cannot be reached. The frontier is ordered by steps plus the
// Manhattan distance to End.
func FewestSteps(m *Map) (int, error) {
	res, err := search.Shortest(search.Problem[gridgraph.Point, gridgraph.Point, int]{
		Expand: func(p gridgraph.Point) []search.Step[gridgraph.Point, int] { return unitSteps(m.NextSteps(p)) },
		Key:    identity,
		IsGoal: func(p gridgraph.Point) bool { return p == m.End },
		Priority: func(p gridgraph.Point, n int) int {
			return n + gridgraph.Manhattan(p, m.End)
		},
	}, search.From[int](m.Start))

	return fewest(res, err)
}

// FewestStepsFromAnyLowest returns the fewest steps to End from any
// elevation 'a' position, or math.MaxInt if none can reach it.
//
// It walks once backward from End with the climb rule inverted and keeps
// the cheapest lowest position it meets.
func FewestStepsFromAnyLowest(m *Map) (int, error) {
	res, err := search.BestOf(search.Problem[gridgraph.Point, gridgraph.Point, int]{
		Expand: func(p gridgraph.Point) []search.Step[gridgraph.Point, int] { return unitSteps(m.prevSteps(p)) },
		Key:    identity,
		IsGoal: func(p gridgraph.Point) bool { return m.Elevation(p) == 0 },
	}, search.From[int](m.End))

	return fewest(res, err)
}

func fewest(res search.Result[gridgraph.Point, int], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return math.MaxInt, nil
	}
	return res.Cost, nil
}

// SolvePart1 reads the map at path and climbs from S to E.
func SolvePart1(path string) (int, error) { return solve(path, FewestSteps) }

// SolvePart2 reads the map at path and climbs from the best lowest position.
func SolvePart2(path string) (int, error) { return solve(path, FewestStepsFromAnyLowest) }

func solve(path string, climb func(*Map) (int, error)) (int, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return 0, err
	}
	m, err := Parse(lines)
	if err != nil {
		return 0, err
	}

	return climb(m)
}
