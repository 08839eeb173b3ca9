package beam

import (
	"fmt"

	"github.com/nadlgit/gridsearch/gridgraph"
)

// Tile is one cell of the contraption. The set of tiles is closed.
type Tile uint8

const (
	Empty           Tile = iota // .
	MirrorSlash                 // /
	MirrorBackslash             // \
	SplitterV                   // |
	SplitterH                   // -
)

// ParseTile maps a character onto its tile.
func ParseTile(ch rune) (Tile, error) {
	switch ch {
	case '.':
		return Empty, nil
	case '/':
		return MirrorSlash, nil
	case '\\':
		return MirrorBackslash, nil
	case '|':
		return SplitterV, nil
	case '-':
		return SplitterH, nil
	}
	return 0, fmt.Errorf("%w: %q is not a tile", gridgraph.ErrBadCell, ch)
}

func (t Tile) String() string {
	return [...]string{".", "/", "\\", "|", "-"}[t]
}

// Route is what a tile does to a beam arriving with a given heading.
type Route uint8

const (
	Straight     Route = iota // keep heading
	ReflectLeft               // turn 90° counter-clockwise
	ReflectRight              // turn 90° clockwise
	Split                     // leave along both perpendicular headings
)

// Route returns how t treats a beam heading toward dir.
func (t Tile) Route(dir gridgraph.Direction) Route {
	switch t {
	case MirrorSlash:
		if dir.Horizontal() {
			return ReflectLeft
		}
		return ReflectRight
	case MirrorBackslash:
		if dir.Horizontal() {
			return ReflectRight
		}
		return ReflectLeft
	case SplitterV:
		if dir.Horizontal() {
			return Split
		}
		return Straight
	case SplitterH:
		if dir.Horizontal() {
			return Straight
		}
		return Split
	}
	return Straight
}

// Headings returns the headings a beam leaves with after r is applied to dir.
func (r Route) Headings(dir gridgraph.Direction) []gridgraph.Direction {
	switch r {
	case ReflectLeft:
		return []gridgraph.Direction{dir.TurnLeft()}
	case ReflectRight:
		return []gridgraph.Direction{dir.TurnRight()}
	case Split:
		p := dir.Perpendicular()
		return p[:]
	}
	return []gridgraph.Direction{dir}
}
