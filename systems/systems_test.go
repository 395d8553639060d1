package systems

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"maze3d/components"
	"maze3d/config"
	"maze3d/data"
	"maze3d/ecs"
	"maze3d/generation"
	"maze3d/geometry"
)

type fixture struct {
	world  *ecs.World
	params *ParameterStore
	maze   *MazeSystem
	events map[ecs.EventType]int
}

// newFixture loads m with default settings and counts every emitted event
func newFixture(t *testing.T, m *components.MapComponent) *fixture {
	t.Helper()

	world := ecs.NewWorld()
	params := NewParameterStore(world.GetEventManager(), config.Default())

	lib := geometry.NewMaterialLibrary(nil, zaptest.NewLogger(t))
	data.NewMaterialTemplateManager().Populate(lib)
	maze := NewMazeSystem(params, geometry.NewBuilder(config.TileSize, lib), zaptest.NewLogger(t))

	f := &fixture{world: world, params: params, maze: maze, events: make(map[ecs.EventType]int)}
	for _, et := range []ecs.EventType{
		EventRenderParametersChanged, EventTopologyChanged, EventDoorParametersChanged,
		EventMazeRebuilt, EventDoorChanged, EventHouseLight, EventGhostState,
	} {
		et := et
		world.GetEventManager().Subscribe(et, func(ecs.Event) { f.events[et]++ })
	}

	if err := maze.Load(world, m, "test"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return f
}

func arcadeFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, generation.Arcade())
}

// arcadeEntry is the centre of the arcade door run
var arcadeEntry = geometry.Vec2{X: 14 * config.TileSize, Z: 12.5 * config.TileSize}

// below returns a point d world units south of p
func below(p geometry.Vec2, d float64) geometry.Vec2 {
	return geometry.Vec2{X: p.X, Z: p.Z + d}
}

func doorStates(t *testing.T, f *fixture) (open, closed int) {
	t.Helper()
	for _, col := range []int{13, 14} {
		isOpen, found := f.maze.DoorOpen(f.world, 12, col)
		if !found {
			t.Fatalf("no door at row 12 col %d", col)
		}
		if isOpen {
			open++
		} else {
			closed++
		}
	}
	return open, closed
}
