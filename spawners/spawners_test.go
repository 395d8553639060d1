package spawners

import (
	"testing"

	"maze3d/components"
	"maze3d/config"
	"maze3d/ecs"
	"maze3d/floorplan"
	"maze3d/generation"
	"maze3d/geometry"
)

func TestCreateDoorsSharesEntryPoint(t *testing.T) {
	world := ecs.NewWorld()
	s := NewEntitySpawner(world, nil)

	doors := s.CreateDoors(generation.Arcade(), config.TileSize, 3, 1, geometry.DefaultMaterial)
	if len(doors) != 2 {
		t.Fatalf("doors = %d", len(doors))
	}

	want := geometry.Vec2{X: 14 * config.TileSize, Z: 12.5 * config.TileSize}
	for i, e := range doors {
		if !e.HasTag(components.TagDoor) {
			t.Errorf("door %d is not tagged", i)
		}
		comp, _ := world.GetComponent(e.ID, components.Door)
		door := comp.(*components.DoorComponent)
		if door.EntryPoint != want || !door.Horizontal || door.Row != 12 || door.Col != 13+i {
			t.Errorf("door %d = %+v", i, door)
		}
		if door.Wing == nil || door.Wing.Orientation != floorplan.Horizontal || door.Wing.Size.Z != 0.5 {
			t.Errorf("door %d wing = %+v", i, door.Wing)
		}
	}
}

func TestCreatePatrolGhostStartsOnLastWaypoint(t *testing.T) {
	world := ecs.NewWorld()
	s := NewEntitySpawner(world, nil)

	waypoints := []geometry.Vec2{{X: 1}, {X: 2}, {X: 3}}
	states := []components.GhostState{components.GhostLeavingHouse, components.GhostHuntingPac, components.GhostReturningHome}
	e := s.CreatePatrolGhost("blinky", waypoints, states, 4, 0.5)

	comp, _ := world.GetComponent(e.ID, components.Ghost)
	ghost := comp.(*components.GhostComponent)
	if ghost.Position != waypoints[2] || ghost.State != components.GhostLeavingHouse || !ghost.Visible {
		t.Errorf("ghost = %+v", ghost)
	}
	if !world.HasComponent(e.ID, components.Patrol) {
		t.Error("no patrol component")
	}
	if name, ok := world.GetComponent(e.ID, components.Name); !ok || name.(*components.NameComponent).Name != "blinky" {
		t.Error("name not set")
	}
}

func TestCreateMazeAndCamera(t *testing.T) {
	world := ecs.NewWorld()
	s := NewEntitySpawner(world, nil)

	m := components.NewMapComponent(3, 3)
	maze := s.CreateMaze(m, "walls")
	if world.FirstWithTag(components.TagMaze) != maze {
		t.Error("maze entity not tagged")
	}
	if comp, _ := world.GetComponent(maze.ID, components.MapComponentID); comp != m {
		t.Error("map component not attached")
	}

	house := s.CreateHouse(geometry.Vec2{X: 5, Z: 5})
	if comp, ok := world.GetComponent(house.ID, components.HouseLight); !ok || comp.(*components.HouseLightComponent).Lit {
		t.Error("house should start dark")
	}

	camera := s.CreateCamera()
	if !camera.HasTag("camera") {
		t.Error("camera not tagged")
	}
}
