// Package gridgraph treats a rectangular 2D grid of cells as an implicit
// graph. It does not build vertices or edges: searches ask for a cell's
// value and its neighbors on demand.
//
// Two addressing modes coexist:
//
//   - Bounded: InBounds/At address the grid as a finite rectangle.
//   - Tiled:   Wrap/AtWrapped treat the grid as one tile of an infinite
//     repetition in every direction. Wrap is the only place where logical
//     coordinates are folded back into the tile.
package gridgraph

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is an immutable rectangular grid. Cells[row][col] holds the value.
type Grid[T any] struct {
	Width, Height int
	Cells         [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], values[r])
	}

	return &Grid[T]{Width: w, Height: h, Cells: cells}, nil
}

// Parse builds a Grid from text lines, converting each character with cell.
// Trailing blank lines are ignored. A cell error is wrapped with its position.
func Parse[T any](lines []string, cell func(ch rune) (T, error)) (*Grid[T], error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	values := make([][]T, len(lines))
	for r, line := range lines {
		row := make([]T, 0, len(line))
		for c, ch := range []rune(line) {
			v, err := cell(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			row = append(row, v)
		}
		values[r] = row
	}

	return New(values)
}

// Runes is a Parse cell converter that keeps characters as they are.
func Runes(ch rune) (rune, error) { return ch, nil }

// Digits is a Parse cell converter for '0'..'9'.
func Digits(ch rune) (int, error) {
	if ch < '0' || ch > '9' {
		return 0, fmt.Errorf("%w: %q is not a digit", ErrBadCell, ch)
	}
	return int(ch - '0'), nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the value at p. p must be in bounds.
func (g *Grid[T]) At(p Point) T {
	return g.Cells[p.Row][p.Col]
}

// Wrap maps a logical point of the infinite tiling onto its cell of the
// backing tile. Negative and arbitrarily large coordinates are accepted.
func (g *Grid[T]) Wrap(p Point) Point {
	return Point{Row: wrap(p.Row, g.Height), Col: wrap(p.Col, g.Width)}
}

// AtWrapped returns the value at logical point p of the infinite tiling.
func (g *Grid[T]) AtWrapped(p Point) T {
	return g.At(g.Wrap(p))
}

// wrap folds v into [0, size).
func wrap(v, size int) int {
	m := v % size
	if m < 0 {
		m += size
	}
	return m
}

// Neighbors returns the in-bounds orthogonal neighbors of p, clockwise from Up.
func (g *Grid[T]) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		if n := p.Add(d.Delta()); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// All iterates over every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for r, row := range g.Cells {
			for c, v := range row {
				if !yield(Point{Row: r, Col: c}, v) {
					return
				}
			}
		}
	}
}

// Find returns every point whose value satisfies match, in row-major order.
func (g *Grid[T]) Find(match func(v T) bool) []Point {
	var out []Point
	for p, v := range g.All() {
		if match(v) {
			out = append(out, p)
		}
	}
	return out
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Corner returns the bottom-right cell.
func (g *Grid[T]) Corner() Point {
	return Point{Row: g.Height - 1, Col: g.Width - 1}
}
