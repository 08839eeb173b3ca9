// Package beam traces light beams through a grid of mirrors and splitters
// and counts the tiles they energize.
//
// A beam head is a position plus the heading it travels with. Heads are
// expanded by the exhaustive flood of search.Reachable keyed on the whole
// head, so a beam that loops back onto a (position, heading) pair it has
// already traced stops there.
package beam

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/nadlgit/gridsearch/gridgraph"
	"github.com/nadlgit/gridsearch/internal/input"
	"github.com/nadlgit/gridsearch/ledger"
	"github.com/nadlgit/gridsearch/search"
)

// Grid is a contraption of tiles.
type Grid = gridgraph.Grid[Tile]

// Head is a beam on Pos, heading toward Dir, not yet deflected by the tile
// at Pos.
type Head struct {
	Pos gridgraph.Point
	Dir gridgraph.Direction
}

// Parse reads a contraption.
func Parse(lines []string) (*Grid, error) {
	return gridgraph.Parse(lines, ParseTile)
}

// NextHeads applies the tile under h and moves every outgoing beam one
// cell. Beams leaving the grid are dropped, so the result has 0, 1 or 2
// heads.
func NextHeads(grid *Grid, h Head) []Head {
	dirs := grid.At(h.Pos).Route(h.Dir).Headings(h.Dir)
	next := make([]Head, 0, len(dirs))
	for _, d := range dirs {
		if p := h.Pos.Move(d, 1); grid.InBounds(p) {
			next = append(next, Head{Pos: p, Dir: d})
		}
	}

	return next
}

// Energized returns the number of distinct tiles crossed by a beam
// entering at entry.
func Energized(grid *Grid, entry Head) (int, error) {
	reach, err := search.Reachable(search.Walk[Head, Head]{
		Next: func(h Head) []Head { return NextHeads(grid, h) },
		Key:  func(h Head) Head { return h },
	}, []Head{entry}, search.Unbounded)
	if err != nil {
		return 0, err
	}

	tiles := make(ledger.Set[gridgraph.Point], reach.Len())
	for _, h := range reach.Visited() {
		tiles.Add(h.Pos)
	}

	return tiles.Len(), nil
}

// Entries returns every head entering the grid from its border: down
// through the top row, up through the bottom row, right through the left
// column and left through the right column.
func Entries(grid *Grid) []Head {
	out := make([]Head, 0, 2*(grid.Width+grid.Height))
	for c := 0; c < grid.Width; c++ {
		out = append(out,
			Head{Pos: gridgraph.Point{Row: 0, Col: c}, Dir: gridgraph.Down},
			Head{Pos: gridgraph.Point{Row: grid.Height - 1, Col: c}, Dir: gridgraph.Up},
		)
	}
	for r := 0; r < grid.Height; r++ {
		out = append(out,
			Head{Pos: gridgraph.Point{Row: r, Col: 0}, Dir: gridgraph.Right},
			Head{Pos: gridgraph.Point{Row: r, Col: grid.Width - 1}, Dir: gridgraph.Left},
		)
	}

	return out
}

// MaxEnergized traces a beam from every entry of Entries and returns the
// largest number of energized tiles. Each entry is an independent search;
// at most workers of them run at once (workers < 1 means GOMAXPROCS).
func MaxEnergized(ctx context.Context, grid *Grid, workers int) (int, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	entries := Entries(grid)
	counts := make([]int, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := Energized(grid, entry)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return slices.Max(counts), nil
}

// SolvePart1 reads the contraption at path and enters at the top-left
// corner heading right.
func SolvePart1(path string) (int, error) {
	grid, err := read(path)
	if err != nil {
		return 0, err
	}
	return Energized(grid, Head{Dir: gridgraph.Right})
}

// SolvePart2 reads the contraption at path and tries every entry.
func SolvePart2(ctx context.Context, path string, workers int) (int, error) {
	grid, err := read(path)
	if err != nil {
		return 0, err
	}
	return MaxEnergized(ctx, grid, workers)
}

func read(path string) (*Grid, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
