package floorplan

import (
	"errors"
	"fmt"
)

// Orientation of a wall segment
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
	Corner
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Corner:
		return "corner"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler so dumps carry readable names
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Cell addresses one floor plan cell
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Segment is a maximal run of same-orientation wall cells.
// Horizontal runs extend to +X from Origin, vertical runs to +Y; corners have Length 1.
type Segment struct {
	Origin      Cell        `json:"origin" yaml:"origin"`
	Length      int         `json:"length" yaml:"length"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
}

// Cells returns every cell the segment covers, in run order
func (s Segment) Cells() []Cell {
	cells := make([]Cell, s.Length)
	for i := range cells {
		switch s.Orientation {
		case Vertical:
			cells[i] = Cell{X: s.Origin.X, Y: s.Origin.Y + i}
		default:
			cells[i] = Cell{X: s.Origin.X + i, Y: s.Origin.Y}
		}
	}
	return cells
}

// Segmentize merges the classified cells of plan into wall segments.
//
// Three fixed scans: horizontal runs row by row, vertical runs column by column,
// then corners row by row. The merge is greedy, not globally minimal, and the same
// plan always yields the same list in the same order.
func Segmentize(plan *FloorPlan) []Segment {
	if plan == nil {
		return nil
	}

	segments := make([]Segment, 0)

	for y := 0; y < plan.Height; y++ {
		for x := 0; x < plan.Width; {
			if plan.At(x, y) != CellHWall {
				x++
				continue
			}
			start := x
			for x < plan.Width && plan.At(x, y) == CellHWall {
				x++
			}
			segments = append(segments, Segment{Origin: Cell{X: start, Y: y}, Length: x - start, Orientation: Horizontal})
		}
	}

	for x := 0; x < plan.Width; x++ {
		for y := 0; y < plan.Height; {
			if plan.At(x, y) != CellVWall {
				y++
				continue
			}
			start := y
			for y < plan.Height && plan.At(x, y) == CellVWall {
				y++
			}
			segments = append(segments, Segment{Origin: Cell{X: x, Y: start}, Length: y - start, Orientation: Vertical})
		}
	}

	for y := 0; y < plan.Height; y++ {
		for x := 0; x < plan.Width; x++ {
			if plan.At(x, y) == CellCorner {
				segments = append(segments, Segment{Origin: Cell{X: x, Y: y}, Length: 1, Orientation: Corner})
			}
		}
	}

	return segments
}

// Stats counts segments and covered cells per orientation
type Stats struct {
	Horizontal int `json:"horizontal" yaml:"horizontal"`
	Vertical   int `json:"vertical" yaml:"vertical"`
	Corners    int `json:"corners" yaml:"corners"`
	Cells      int `json:"cells" yaml:"cells"`
}

// Total returns the number of segments
func (s Stats) Total() int {
	return s.Horizontal + s.Vertical + s.Corners
}

// Summarize returns per-orientation counts for segments
func Summarize(segments []Segment) Stats {
	var st Stats
	for _, seg := range segments {
		switch seg.Orientation {
		case Horizontal:
			st.Horizontal++
		case Vertical:
			st.Vertical++
		case Corner:
			st.Corners++
		}
		st.Cells += seg.Length
	}
	return st
}

// ErrCoverage is wrapped by every VerifyCoverage failure
var ErrCoverage = errors.New("segments do not cover floor plan")

// VerifyCoverage checks that segments cover every non-empty cell of plan exactly once
// and that each covered cell carries the kind matching the segment orientation.
func VerifyCoverage(plan *FloorPlan, segments []Segment) error {
	covered := make([]int, plan.Width*plan.Height)

	for i, seg := range segments {
		if seg.Length <= 0 {
			return fmt.Errorf("%w: segment %d has length %d", ErrCoverage, i, seg.Length)
		}
		want := kindFor(seg.Orientation)
		for _, c := range seg.Cells() {
			if c.X < 0 || c.X >= plan.Width || c.Y < 0 || c.Y >= plan.Height {
				return fmt.Errorf("%w: segment %d leaves the plan at (%d,%d)", ErrCoverage, i, c.X, c.Y)
			}
			if got := plan.At(c.X, c.Y); got != want {
				return fmt.Errorf("%w: segment %d covers %s cell (%d,%d) as %s", ErrCoverage, i, got, c.X, c.Y, seg.Orientation)
			}
			covered[c.Y*plan.Width+c.X]++
		}
	}

	for y := 0; y < plan.Height; y++ {
		for x := 0; x < plan.Width; x++ {
			n := covered[y*plan.Width+x]
			switch {
			case plan.At(x, y) != CellEmpty && n == 0:
				return fmt.Errorf("%w: cell (%d,%d) not covered", ErrCoverage, x, y)
			case n > 1:
				return fmt.Errorf("%w: cell (%d,%d) covered %d times", ErrCoverage, x, y, n)
			}
		}
	}

	return nil
}

func kindFor(o Orientation) CellKind {
	switch o {
	case Horizontal:
		return CellHWall
	case Vertical:
		return CellVWall
	default:
		return CellCorner
	}
}
