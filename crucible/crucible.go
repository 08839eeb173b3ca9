// Package crucible finds the least heat loss path of a crucible pushed
// across a city of digit-weighted blocks.
//
// A crucible never reverses and never continues straight after a run: each
// move turns 90° and then travels between MinRun and MaxRun blocks. Every
// block entered adds its weight to the heat loss. The search runs on
// (position, heading) states, so two arrivals at the same block from
// different axes are never merged.
package crucible

import (
	"math"

	"github.com/nadlgit/gridsearch/gridgraph"
	"github.com/nadlgit/gridsearch/internal/input"
	"github.com/nadlgit/gridsearch/search"
)

// Mode selects the run length limits of a crucible.
type Mode uint8

const (
	// Basic crucibles move 1 to 3 blocks per run.
	Basic Mode = iota
	// Ultra crucibles move 4 to 10 blocks per run.
	Ultra
)

// MinRun returns the fewest blocks a run must cover.
func (m Mode) MinRun() int {
	if m == Ultra {
		return 4
	}
	return 1
}

// MaxRun returns the most blocks a run may cover.
func (m Mode) MaxRun() int {
	if m == Ultra {
		return 10
	}
	return 3
}

func (m Mode) String() string {
	if m == Ultra {
		return "ultra"
	}
	return "basic"
}

// State is a crucible resting on Pos after a run toward Dir.
type State struct {
	Pos gridgraph.Point
	Dir gridgraph.Direction
}

// City is the grid of block weights.
type City = gridgraph.Grid[int]

// Parse reads a city from lines of digits.
func Parse(lines []string) (*City, error) {
	return gridgraph.Parse(lines, gridgraph.Digits)
}

// NextSteps returns every run available from s: for both headings
// perpendicular to s.Dir, each block from MinRun through MaxRun away, with
// the heat lost along the way. Runs stop at the city edge.
func NextSteps(city *City, s State, mode Mode) []search.Step[State, int] {
	steps := make([]search.Step[State, int], 0, 2*(mode.MaxRun()-mode.MinRun()+1))
	for _, dir := range s.Dir.Perpendicular() {
		pos, loss := s.Pos, 0
		for run := 1; run <= mode.MaxRun(); run++ {
			pos = pos.Move(dir, 1)
			if !city.InBounds(pos) {
				break
			}
			loss += city.At(pos)
			if run >= mode.MinRun() {
				steps = append(steps, search.Step[State, int]{
					State: State{Pos: pos, Dir: dir},
					Cost:  loss,
				})
			}
		}
	}

	return steps
}

// Problem builds the search problem from the top-left block to the
// bottom-right one. The priority adds to the heat lost so far the Manhattan
// distance to the goal times the lightest block, which never overestimates.
func Problem(city *City, mode Mode) search.Problem[State, State, int] {
	goal := city.Corner()
	lightest := math.MaxInt
	for _, w := range city.All() {
		lightest = min(lightest, w)
	}

	return search.Problem[State, State, int]{
		Expand: func(s State) []search.Step[State, int] { return NextSteps(city, s, mode) },
		Key:    func(s State) State { return s },
		IsGoal: func(s State) bool { return s.Pos == goal },
		Priority: func(s State, cost int) int {
			return cost + lightest*gridgraph.Manhattan(s.Pos, goal)
		},
	}
}

// Seeds returns the two starting states: top-left facing right and down.
func Seeds() []search.Seed[State, int] {
	return search.From[int](
		State{Dir: gridgraph.Right},
		State{Dir: gridgraph.Down},
	)
}

// Route runs the search and returns the full result.
func Route(city *City, mode Mode, opts ...search.Option) (search.Result[State, int], error) {
	return search.Shortest(Problem(city, mode), Seeds(), opts...)
}

// LeastHeatLoss returns the minimum heat loss to reach the bottom-right block,
// or math.MaxInt if the crucible cannot get there.
func LeastHeatLoss(city *City, mode Mode) (int, error) {
	res, err := Route(city, mode)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return math.MaxInt, nil
	}

	return res.Cost, nil
}

// SolvePart1 reads the city at path and routes a basic crucible.
func SolvePart1(path string) (int, error) { return solve(path, Basic) }

// SolvePart2 reads the city at path and routes an ultra crucible.
func SolvePart2(path string) (int, error) { return solve(path, Ultra) }

func solve(path string, mode Mode) (int, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return 0, err
	}
	city, err := Parse(lines)
	if err != nil {
		return 0, err
	}

	return LeastHeatLoss(city, mode)
}
