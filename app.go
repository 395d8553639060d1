package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"maze3d/config"
	"maze3d/data"
	"maze3d/ecs"
	"maze3d/floorplan"
	"maze3d/generation"
	"maze3d/geometry"
	"maze3d/systems"
)

// options are the flags shared by every command
type options struct {
	configPath string
	mazeFile   string
	seed       int64
	resolution int
	boundary   string
	format     string
}

// settings loads the config file, if any, and applies flag overrides on top
func (o *options) settings(cmd *cobra.Command) (config.Settings, error) {
	s := config.Default()
	if o.configPath != "" {
		var err error
		if s, err = config.Load(o.configPath); err != nil {
			return s, err
		}
	}

	if o.mazeFile != "" {
		s.Maze = config.MazeSource{File: o.mazeFile}
	}
	if f := cmd.Flag("random"); f != nil && f.Changed {
		s.Maze = config.MazeSource{Random: &config.RandomMaze{Seed: o.seed}}
	}
	if o.resolution != 0 {
		s.Topology.Resolution = o.resolution
	}
	if o.boundary != "" {
		b, err := floorplan.ParseBoundary(o.boundary)
		if err != nil {
			return s, err
		}
		s.Topology.Boundary = b
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// app is the assembled pipeline shared by the viewer and the headless commands
type app struct {
	settings  config.Settings
	logger    *zap.Logger
	world     *ecs.World
	params    *systems.ParameterStore
	materials *geometry.MaterialLibrary
	maze      *systems.MazeSystem
	source    generation.MazeSource
}

// newApp wires materials, parameters and the maze assembly, then loads the configured maze
func newApp(s config.Settings, loader geometry.TextureLoader, logger *zap.Logger) (*app, error) {
	world := ecs.NewWorld()
	params := systems.NewParameterStore(world.GetEventManager(), s)

	templates := data.NewMaterialTemplateManager()
	if s.MaterialsDir != "" {
		if err := templates.LoadTemplatesFromDirectory(s.MaterialsDir); err != nil {
			return nil, fmt.Errorf("loading materials: %w", err)
		}
	}
	lib := geometry.NewMaterialLibrary(loader, logger.Named("materials"))
	templates.Populate(lib)

	maze := systems.NewMazeSystem(params, geometry.NewBuilder(s.TileSize, lib), logger.Named("maze"))
	maze.Initialize(world)

	source := generation.SourceFor(s.Maze)
	m, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", source.Describe(), err)
	}
	if err := maze.Load(world, m, source.Describe()); err != nil {
		return nil, err
	}

	return &app{
		settings:  s,
		logger:    logger,
		world:     world,
		params:    params,
		materials: lib,
		maze:      maze,
		source:    source,
	}, nil
}
