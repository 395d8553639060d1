package generation

import (
	"fmt"

	"maze3d/components"
	"maze3d/config"
)

// Default size of random mazes when the settings leave it at zero
const (
	DefaultRandomCols = 28
	DefaultRandomRows = 31
)

// MazeSource produces the tile maze the geometry is built from
type MazeSource interface {
	Load() (*components.MapComponent, error)
	Describe() string
}

// FileSource reads an ASCII maze file
type FileSource struct{ Path string }

func (s FileSource) Load() (*components.MapComponent, error) {
	return LoadMazeFile(s.Path)
}

func (s FileSource) Describe() string {
	return "file " + s.Path
}

// LayoutSource parses rows given inline
type LayoutSource struct{ Rows []string }

func (s LayoutSource) Load() (*components.MapComponent, error) {
	return ParseMaze(s.Rows)
}

func (s LayoutSource) Describe() string {
	return fmt.Sprintf("inline layout (%d rows)", len(s.Rows))
}

// RandomSource runs the seeded room-and-corridor generator
type RandomSource struct {
	Seed       int64
	Cols, Rows int
}

func (s RandomSource) Load() (*components.MapComponent, error) {
	return NewMazeGenerator(s.Seed).GenerateRoomsAndCorridors(s.Cols, s.Rows)
}

func (s RandomSource) Describe() string {
	return fmt.Sprintf("random %dx%d seed %d", s.Cols, s.Rows, s.Seed)
}

// ArcadeSource is the built-in layout
type ArcadeSource struct{}

func (ArcadeSource) Load() (*components.MapComponent, error) {
	return Arcade(), nil
}

func (ArcadeSource) Describe() string {
	return "built-in arcade layout"
}

// SourceFor picks the source selected by the settings: file, then inline layout, then
// random, falling back to the arcade layout.
func SourceFor(m config.MazeSource) MazeSource {
	switch {
	case m.File != "":
		return FileSource{Path: m.File}
	case len(m.Layout) > 0:
		return LayoutSource{Rows: m.Layout}
	case m.Random != nil:
		s := RandomSource{Seed: m.Random.Seed, Cols: m.Random.Cols, Rows: m.Random.Rows}
		if s.Cols == 0 {
			s.Cols = DefaultRandomCols
		}
		if s.Rows == 0 {
			s.Rows = DefaultRandomRows
		}
		return s
	default:
		return ArcadeSource{}
	}
}
