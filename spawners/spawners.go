package spawners

import (
	"go.uber.org/zap"

	"maze3d/components"
	"maze3d/ecs"
	"maze3d/generation"
	"maze3d/geometry"
)

// EntitySpawner manages the creation of maze entities
type EntitySpawner struct {
	world  *ecs.World
	logger *zap.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logger *zap.Logger) *EntitySpawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntitySpawner{
		world:  world,
		logger: logger,
	}
}

// CreateMaze creates the entity that owns the tile maze and, later, its geometry
func (s *EntitySpawner) CreateMaze(mapComp *components.MapComponent, name string) *ecs.Entity {
	mazeEntity := s.world.CreateEntity()
	s.world.TagEntity(mazeEntity.ID, components.TagMaze)

	s.world.AddComponent(mazeEntity.ID, components.MapComponentID, mapComp)
	s.world.AddComponent(mazeEntity.ID, components.Name, components.NewNameComponent(name))

	s.logger.Debug("maze entity created",
		zap.Uint64("entity", uint64(mazeEntity.ID)),
		zap.Int("cols", mapComp.Width),
		zap.Int("rows", mapComp.Height))

	return mazeEntity
}

// CreateDoors creates one door entity per door tile. Tiles of one run share the run's
// centre as entry point. Wings start closed with the given dimensions.
func (s *EntitySpawner) CreateDoors(mapComp *components.MapComponent, tileSize, height, thickness float64, m geometry.Material) []*ecs.Entity {
	var doors []*ecs.Entity

	for _, run := range generation.FindDoorRuns(mapComp) {
		entry := run.Center(tileSize)
		for _, tile := range run.Tiles() {
			col, row := tile[0], tile[1]
			doorEntity := s.world.CreateEntity()
			s.world.TagEntity(doorEntity.ID, components.TagDoor)

			s.world.AddComponent(doorEntity.ID, components.Door, &components.DoorComponent{
				Row:        row,
				Col:        col,
				EntryPoint: entry,
				Horizontal: run.Horizontal,
				Wing:       geometry.NewDoorWing(row, col, tileSize, run.Horizontal, height, thickness, m),
			})
			doors = append(doors, doorEntity)
		}
	}

	s.logger.Debug("doors created", zap.Int("count", len(doors)))
	return doors
}

// CreateHouse creates the ghost house light entity
func (s *EntitySpawner) CreateHouse(center geometry.Vec2) *ecs.Entity {
	houseEntity := s.world.CreateEntity()
	s.world.TagEntity(houseEntity.ID, components.TagHouse)

	s.world.AddComponent(houseEntity.ID, components.HouseLight, &components.HouseLightComponent{
		Center: center,
	})
	return houseEntity
}

// CreateGhost creates a ghost entity at the given world position
func (s *EntitySpawner) CreateGhost(name string, pos geometry.Vec2, state components.GhostState, visible bool) *ecs.Entity {
	ghostEntity := s.world.CreateEntity()
	s.world.TagEntity(ghostEntity.ID, components.TagGhost)

	s.world.AddComponent(ghostEntity.ID, components.Ghost, &components.GhostComponent{
		Position: pos,
		Visible:  visible,
		State:    state,
	})
	s.world.AddComponent(ghostEntity.ID, components.Name, components.NewNameComponent(name))

	s.logger.Debug("ghost created",
		zap.String("name", name),
		zap.Stringer("state", state),
		zap.Float64("x", pos.X),
		zap.Float64("z", pos.Z))

	return ghostEntity
}

// CreatePatrolGhost creates a visible ghost that walks waypoints, taking states[i] while
// heading for waypoints[i]. It starts on the last waypoint.
func (s *EntitySpawner) CreatePatrolGhost(name string, waypoints []geometry.Vec2, states []components.GhostState, speed, pause float64) *ecs.Entity {
	start := waypoints[len(waypoints)-1]
	ghostEntity := s.CreateGhost(name, start, states[0], true)

	s.world.AddComponent(ghostEntity.ID, components.Patrol, &components.PatrolComponent{
		Waypoints: waypoints,
		States:    states,
		Speed:     speed,
		Pause:     pause,
	})
	return ghostEntity
}

// CreateCamera creates the top-down camera entity
func (s *EntitySpawner) CreateCamera() *ecs.Entity {
	cameraEntity := s.world.CreateEntity()
	s.world.TagEntity(cameraEntity.ID, "camera")

	s.world.AddComponent(cameraEntity.ID, components.Camera, &components.CameraComponent{Zoom: 1})
	return cameraEntity
}
