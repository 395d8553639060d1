package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the complete configuration file of the maze3d tools
type Settings struct {
	// TileSize is the edge length of one maze tile in world units
	TileSize     float64            `yaml:"tileSize"`
	Maze         MazeSource         `yaml:"maze"`
	Topology     TopologyParameters `yaml:"topology"`
	Render       RenderParameters   `yaml:"render"`
	Doors        DoorParameters     `yaml:"doors"`
	MaterialsDir string             `yaml:"materialsDir"`
	Logging      LoggingConfig      `yaml:"logging"`
	Window       WindowConfig       `yaml:"window"`
}

// MazeSource selects where the tile maze comes from. The first non-empty of File,
// Layout and Random wins; with none set the built-in arcade layout is used.
type MazeSource struct {
	File   string      `yaml:"file"`
	Layout []string    `yaml:"layout"`
	Random *RandomMaze `yaml:"random"`
}

// RandomMaze configures the seeded room-and-corridor generator
type RandomMaze struct {
	Seed int64 `yaml:"seed"`
	Cols int   `yaml:"cols"`
	Rows int   `yaml:"rows"`
}

// LoggingConfig selects the zap logger flavour
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// WindowConfig sizes the viewer window
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// Default returns settings that need no file at all
func Default() Settings {
	return Settings{
		TileSize: TileSize,
		Topology: DefaultTopologyParameters(),
		Render:   DefaultRenderParameters(),
		Doors:    DefaultDoorParameters(),
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		Window:   WindowConfig{Width: WindowWidth, Height: WindowHeight},
	}
}

// Load reads a YAML settings file on top of Default and validates the result
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks every group
func (s Settings) Validate() error {
	if !positive(s.TileSize) {
		return fmt.Errorf("%w: tileSize must be positive, got %g", ErrInvalidParameter, s.TileSize)
	}
	if err := s.Topology.Validate(); err != nil {
		return err
	}
	if err := s.Render.Validate(); err != nil {
		return err
	}
	if err := s.Doors.Validate(); err != nil {
		return err
	}
	if r := s.Maze.Random; r != nil && (r.Cols < 0 || r.Rows < 0) {
		return fmt.Errorf("%w: maze.random dimensions must not be negative", ErrInvalidParameter)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window dimensions must be positive", ErrInvalidParameter)
	}
	switch s.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidParameter, s.Logging.Format)
	}
	return nil
}

// Save writes settings as YAML
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
