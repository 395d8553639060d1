package generation

import (
	"fmt"
	"os"
	"strings"

	"maze3d/components"
	"maze3d/floorplan"
)

// ParseMaze reads an ASCII maze: '#' is wall, '-' is a door, 'h' is ghost house floor and
// anything else is open floor. Every line must have the same width.
func ParseMaze(lines []string) (*components.MapComponent, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", floorplan.ErrMalformedMaze)
	}

	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", floorplan.ErrMalformedMaze)
	}

	mapComp := components.NewMapComponent(width, len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", floorplan.ErrMalformedMaze, y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case '#':
				mapComp.SetTile(x, y, components.TileWall)
			case '-':
				mapComp.SetTile(x, y, components.TileDoor)
			case 'h':
				mapComp.SetTile(x, y, components.TileHouse)
			default:
				mapComp.SetTile(x, y, components.TileFloor)
			}
		}
	}

	return mapComp, nil
}

// LoadMazeFile parses an ASCII maze file. Trailing blank lines and CR line endings are ignored.
func LoadMazeFile(path string) (*components.MapComponent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading maze file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	mapComp, err := ParseMaze(lines)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return mapComp, nil
}
