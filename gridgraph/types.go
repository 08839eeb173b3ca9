package gridgraph

// Point is a logical cell coordinate. Row grows downward, Col grows rightward.
// Points may lie outside a grid (negative or huge) when the grid is treated
// as an infinite tiling; see Grid.Wrap.
type Point struct {
	Row, Col int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Move returns p moved n cells toward dir.
func (p Point) Move(dir Direction, n int) Point {
	d := dir.Delta()
	return Point{Row: p.Row + n*d.Row, Col: p.Col + n*d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func Manhattan(p, q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is one of the four orthogonal headings, listed clockwise.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four headings clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4]Point{
	Up:    {Row: -1},
	Right: {Col: 1},
	Down:  {Row: 1},
	Left:  {Col: -1},
}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point { return deltas[d&3] }

// TurnRight returns the heading 90° clockwise from d.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft returns the heading 90° counter-clockwise from d.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Perpendicular returns the two headings at right angles to d.
func (d Direction) Perpendicular() [2]Direction {
	return [2]Direction{d.TurnLeft(), d.TurnRight()}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}
