package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"maze3d/generation"
	"maze3d/screens"
	"maze3d/spawners"
	"maze3d/systems"
)

// Demo patrol tuning
const (
	patrolSpeedTiles = 3.0 // tiles per second
	patrolPause      = 1.5 // seconds at each waypoint
)

// Game implements ebiten.Game interface.
type Game struct {
	*app
	screens  *screens.ScreenStack
	messages *systems.MessageLog
}

// NewGame wires the viewer systems around an assembled pipeline
func NewGame(a *app, textures *systems.TextureCache) *Game {
	messages := systems.NewMessageLog()
	messages.Subscribe(a.world.GetEventManager())

	cameraSystem := systems.NewCameraSystem()
	cameraSystem.SetViewport(a.settings.Window.Width, a.settings.Window.Height)
	renderSystem := systems.NewRenderSystem(textures, a.maze, a.params, messages)

	// Connect the camera system to the render system
	renderSystem.SetCameraSystem(cameraSystem)

	// Register systems with the world that need to be updated during the loop
	a.world.AddSystem(systems.NewGhostPatrolSystem())
	a.world.AddSystem(a.maze)
	a.world.AddSystem(cameraSystem)
	a.world.AddSystem(renderSystem)

	game := &Game{
		app:      a,
		screens:  screens.NewScreenStack(),
		messages: messages,
	}
	game.screens.Push(screens.NewMazeScreen(a.world, a.params, cameraSystem, renderSystem, messages))

	// Initialize the viewer world
	game.initialize()
	return game
}

// initialize creates the camera and the demo ghost
func (g *Game) initialize() {
	spawner := spawners.NewEntitySpawner(g.world, g.logger.Named("spawner"))
	spawner.CreateCamera()

	ts := g.settings.TileSize
	m := g.maze.TileMaze(g.world)
	runs := generation.FindDoorRuns(m)
	center, hasHouse := generation.HouseCenter(m, ts)
	if len(runs) > 0 && hasHouse {
		waypoints, states := systems.DemoPatrol(runs[0].Center(ts), center, ts)
		spawner.CreatePatrolGhost("blinky", waypoints, states, patrolSpeedTiles*ts, patrolPause)
	} else {
		g.messages.AddTyped("No ghost house in this maze, doors stay closed", systems.MessageTypeAlert)
	}

	g.messages.AddTyped(fmt.Sprintf("Loaded %s", g.source.Describe()), systems.MessageTypeSystem)
	g.messages.Add("Press H for keys")
}

// Update updates the viewer state.
func (g *Game) Update() error {
	return g.screens.Update()
}

// Draw draws the viewer screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}

func runView(cmd *cobra.Command, opts *options) error {
	s, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	textures := systems.NewTextureCache()
	a, err := newApp(s, textures, logger)
	if err != nil {
		return err
	}
	game := NewGame(a, textures)

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(s.Window.Fullscreen)
	ebiten.SetWindowTitle("maze3d - " + a.source.Describe())

	logger.Info("viewer started", zap.String("maze", a.source.Describe()))
	return ebiten.RunGame(game)
}
