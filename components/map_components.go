package components

import (
	"fmt"

	"maze3d/floorplan"
)

// MapComponent stores the tile maze
type MapComponent struct {
	Width  int
	Height int
	Tiles  [][]int
}

// Tile types
const (
	TileFloor = iota
	TileWall
	TileDoor
	TileHouse // inside of the ghost house; open like floor
)

// TileGlyph is the ASCII character for each tile type in maze files
var TileGlyph = map[int]rune{
	TileFloor: '.',
	TileWall:  '#',
	TileDoor:  '-',
	TileHouse: 'h',
}

// NewMapComponent creates a new map with the given dimensions
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([][]int, height),
	}

	// Initialize the tiles
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]int, width)
		for x := 0; x < width; x++ {
			// Start with walls everywhere
			m.Tiles[y][x] = TileWall
		}
	}

	return m
}

// Rows implements floorplan.TileMaze
func (m *MapComponent) Rows() int { return m.Height }

// Cols implements floorplan.TileMaze
func (m *MapComponent) Cols() int { return m.Width }

// Tile returns the tile at (x, y); out of bounds reads as wall
func (m *MapComponent) Tile(x, y int) int {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TileWall
	}
	return m.Tiles[y][x]
}

// IsWall reports whether the tile at (row, col) is a wall
func (m *MapComponent) IsWall(row, col int) bool {
	return m.Tile(col, row) == TileWall
}

// IsDoor reports whether the tile at (row, col) is a door
func (m *MapComponent) IsDoor(row, col int) bool {
	return m.Tile(col, row) == TileDoor
}

// SetTile sets the tile at the given position
func (m *MapComponent) SetTile(x, y, tileType int) {
	if x >= 0 && x < m.Width && y >= 0 && y < m.Height {
		m.Tiles[y][x] = tileType
	}
}

// Validate checks that the tile grid is rectangular and matches Width and Height
func (m *MapComponent) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map is %dx%d", m.Width, m.Height)
	}
	if len(m.Tiles) != m.Height {
		return fmt.Errorf("map has %d rows, want %d", len(m.Tiles), m.Height)
	}
	for y, row := range m.Tiles {
		if len(row) != m.Width {
			return fmt.Errorf("row %d has %d tiles, want %d", y, len(row), m.Width)
		}
	}
	return nil
}

// String renders the map using TileGlyph, one line per row
func (m *MapComponent) String() string {
	buf := make([]rune, 0, (m.Width+1)*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			g, ok := TileGlyph[m.Tile(x, y)]
			if !ok {
				g = '?'
			}
			buf = append(buf, g)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

var _ floorplan.TileMaze = (*MapComponent)(nil)
var _ floorplan.Validator = (*MapComponent)(nil)
