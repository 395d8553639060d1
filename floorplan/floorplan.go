// Package floorplan rasterizes a tile maze into a finer grid of classified wall cells and
// merges those cells into wall segments.
//
// Everything here is a pure function of its inputs: no rendering context, no logging,
// no shared state.
package floorplan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrInvalidResolution is returned when the resolution is outside 1..MaxResolution or
	// the rasterized grid would not fit in memory
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrMalformedMaze is returned for a nil, empty or non-rectangular maze
	ErrMalformedMaze = errors.New("malformed maze")
	// ErrInvalidBoundary is returned for an unknown boundary policy
	ErrInvalidBoundary = errors.New("unknown boundary policy")
)

// TileMaze is the read-only view of the game maze the builder consumes
type TileMaze interface {
	Rows() int
	Cols() int
	IsWall(row, col int) bool
	IsDoor(row, col int) bool
}

// Validator is implemented by mazes that can check their own shape
type Validator interface {
	Validate() error
}

const (
	// MaxResolution is the largest number of cells per tile side Build accepts
	MaxResolution = 64
	// MaxCells caps the total number of floor plan cells
	MaxCells = 1 << 26
)

// CellKind tags one floor plan cell
type CellKind uint8

const (
	CellEmpty  CellKind = iota // open space or a wall cell with no visible face
	CellHWall                  // wall face towards open space above or below
	CellVWall                  // wall face towards open space left or right
	CellCorner                 // wall touching open space only diagonally
)

var cellKindNames = [...]string{"empty", "hwall", "vwall", "corner"}

func (k CellKind) String() string {
	if int(k) < len(cellKindNames) {
		return cellKindNames[k]
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Glyph returns the character used when printing a floor plan
func (k CellKind) Glyph() rune {
	switch k {
	case CellHWall:
		return '-'
	case CellVWall:
		return '|'
	case CellCorner:
		return '+'
	default:
		return ' '
	}
}

// Options controls floor plan construction
type Options struct {
	// Resolution is the number of cells per tile side
	Resolution int
	// Boundary decides what lies beyond the grid edge
	Boundary Boundary
}

// FloorPlan is an immutable grid of classified cells, Width = cols*R, Height = rows*R
type FloorPlan struct {
	Resolution int
	Width      int
	Height     int
	Boundary   Boundary
	cells      []CellKind
}

// At returns the kind of cell (x, y); out-of-range cells are empty
func (p *FloorPlan) At(x, y int) CellKind {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return CellEmpty
	}
	return p.cells[y*p.Width+x]
}

// Count returns how many cells carry kind
func (p *FloorPlan) Count(kind CellKind) int {
	n := 0
	for _, c := range p.cells {
		if c == kind {
			n++
		}
	}
	return n
}

// WallCells returns the number of non-empty cells
func (p *FloorPlan) WallCells() int {
	return len(p.cells) - p.Count(CellEmpty)
}

// Row returns one line of glyphs for row y
func (p *FloorPlan) Row(y int) string {
	var b strings.Builder
	b.Grow(p.Width)
	for x := 0; x < p.Width; x++ {
		b.WriteRune(p.At(x, y).Glyph())
	}
	return b.String()
}

// String renders the plan one glyph per cell, rows separated by newlines
func (p *FloorPlan) String() string {
	rows := make([]string, p.Height)
	for y := range rows {
		rows[y] = p.Row(y)
	}
	return strings.Join(rows, "\n")
}

// CheckResolution reports whether r is usable as a resolution
func CheckResolution(r int) error {
	if r <= 0 || r > MaxResolution {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidResolution, r, MaxResolution)
	}
	return nil
}

// checkGridSize rejects grids whose cell count overflows int or exceeds MaxCells
func checkGridSize(cols, rows, r int) error {
	if cols > MaxCells/r || rows > MaxCells/r {
		return fmt.Errorf("%w: %dx%d tiles at %d cells per tile is too large", ErrInvalidResolution, cols, rows, r)
	}
	if w, h := cols*r, rows*r; w > MaxCells/h {
		return fmt.Errorf("%w: %dx%d cells exceeds %d", ErrInvalidResolution, w, h, MaxCells)
	}
	return nil
}

// CheckMaze reports whether maze has a usable shape
func CheckMaze(maze TileMaze) error {
	if isNil(maze) {
		return fmt.Errorf("%w: maze is nil", ErrMalformedMaze)
	}
	if maze.Rows() <= 0 || maze.Cols() <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrMalformedMaze, maze.Cols(), maze.Rows())
	}
	if v, ok := maze.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedMaze, err)
		}
	}
	return nil
}

// Build rasterizes maze at opts.Resolution and classifies every cell.
// Arguments are validated before anything is allocated.
func Build(maze TileMaze, opts Options) (*FloorPlan, error) {
	if err := CheckResolution(opts.Resolution); err != nil {
		return nil, err
	}
	if err := CheckMaze(maze); err != nil {
		return nil, err
	}
	if err := opts.Boundary.Validate(); err != nil {
		return nil, err
	}
	if err := checkGridSize(maze.Cols(), maze.Rows(), opts.Resolution); err != nil {
		return nil, err
	}

	r := opts.Resolution
	g := grid{
		maze:     maze,
		r:        r,
		width:    maze.Cols() * r,
		height:   maze.Rows() * r,
		boundary: opts.Boundary,
	}

	plan := &FloorPlan{
		Resolution: r,
		Width:      g.width,
		Height:     g.height,
		Boundary:   opts.Boundary,
		cells:      make([]CellKind, g.width*g.height),
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			plan.cells[y*g.width+x] = g.classify(x, y)
		}
	}

	return plan, nil
}

// grid answers wall queries at cell resolution, resolving the boundary policy
type grid struct {
	maze          TileMaze
	r             int
	width, height int
	boundary      Boundary
}

func (g grid) wall(x, y int) bool {
	if y < 0 || y >= g.height {
		return g.boundary.outsideIsWall()
	}
	if x < 0 || x >= g.width {
		if g.boundary == BoundaryWrap {
			x = ((x % g.width) + g.width) % g.width
		} else {
			return g.boundary.outsideIsWall()
		}
	}
	return g.maze.IsWall(y/g.r, x/g.r)
}

func (g grid) classify(x, y int) CellKind {
	if !g.wall(x, y) {
		return CellEmpty
	}
	if !g.wall(x, y-1) || !g.wall(x, y+1) {
		return CellHWall
	}
	if !g.wall(x-1, y) || !g.wall(x+1, y) {
		return CellVWall
	}
	if !g.wall(x-1, y-1) || !g.wall(x+1, y-1) || !g.wall(x-1, y+1) || !g.wall(x+1, y+1) {
		return CellCorner
	}
	return CellEmpty
}

func isNil(maze TileMaze) bool {
	if maze == nil {
		return true
	}
	v := reflect.ValueOf(maze)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
