package systems

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"maze3d/components"
	"maze3d/ecs"
	"maze3d/floorplan"
	"maze3d/generation"
	"maze3d/geometry"
	"maze3d/spawners"
)

// ErrNoMaze is returned when an operation needs a loaded maze
var ErrNoMaze = errors.New("no maze loaded")

// MazeSystem assembles the pipeline tile maze -> floor plan -> segments -> geometry and
// keeps the result in sync with the parameter store.
//
// Render parameter changes are applied to the existing primitives. Topology changes
// rebuild everything derived from the tile maze and swap it in with one component
// assignment; if the rebuild fails the previous geometry stays in place.
type MazeSystem struct {
	params   *ParameterStore
	builder  *geometry.Builder
	doors    *DoorSystem
	spawner  *spawners.EntitySpawner
	logger   *zap.Logger
	mazeID   ecs.EntityID
	builds   int
	subs     map[ecs.EventType]ecs.SubscriptionID
	lastErr  error
	tileSize float64
}

// NewMazeSystem wires the assembly. The door system receives the same parameters and
// materials as the geometry.
func NewMazeSystem(params *ParameterStore, builder *geometry.Builder, logger *zap.Logger) *MazeSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MazeSystem{
		params:   params,
		builder:  builder,
		doors:    NewDoorSystem(params, builder.Materials(), builder.TileSize(), logger.Named("doors")),
		logger:   logger,
		subs:     make(map[ecs.EventType]ecs.SubscriptionID),
		tileSize: builder.TileSize(),
	}
}

// Doors returns the door controller driven by Update
func (s *MazeSystem) Doors() *DoorSystem {
	return s.doors
}

// Initialize subscribes to parameter changes. Calling it again before Shutdown is a no-op.
func (s *MazeSystem) Initialize(world *ecs.World) {
	if s.spawner == nil {
		s.spawner = spawners.NewEntitySpawner(world, s.logger.Named("spawner"))
	}
	if len(s.subs) > 0 {
		return
	}
	em := world.GetEventManager()

	s.subs[EventRenderParametersChanged] = em.Subscribe(EventRenderParametersChanged, func(e ecs.Event) {
		ev := e.(RenderParametersChangedEvent)
		if err := s.applyRender(world); err != nil {
			s.logger.Error("applying render parameters", zap.Error(err))
			return
		}
		s.logger.Debug("render parameters applied",
			zap.Float64("height", ev.New.WallHeight),
			zap.Float64("thickness", ev.New.WallThickness))
	})

	s.subs[EventTopologyChanged] = em.Subscribe(EventTopologyChanged, func(e ecs.Event) {
		ev := e.(TopologyChangedEvent)
		if err := s.Rebuild(world); err != nil {
			s.logger.Error("rebuild failed, keeping previous geometry",
				zap.Int("resolution", ev.New.Resolution),
				zap.Stringer("boundary", ev.New.Boundary),
				zap.Error(err))
			s.params.rejectTopology(ev.Old, err)
		}
	})
}

// Shutdown removes the subscriptions made by Initialize
func (s *MazeSystem) Shutdown(world *ecs.World) {
	em := world.GetEventManager()
	for eventType, id := range s.subs {
		em.Unsubscribe(eventType, id)
	}
	s.subs = make(map[ecs.EventType]ecs.SubscriptionID)
}

// Load replaces the current maze with mapComp, builds its geometry and creates the doors
// and the house light. Doors keep their entities across later rebuilds.
func (s *MazeSystem) Load(world *ecs.World, mapComp *components.MapComponent, name string) error {
	if s.spawner == nil {
		s.Initialize(world)
	}
	if err := floorplan.CheckMaze(mapComp); err != nil {
		return fmt.Errorf("loading maze %q: %w", name, err)
	}

	s.unload(world)

	maze := s.spawner.CreateMaze(mapComp, name)
	s.mazeID = maze.ID
	s.builds = 0
	if err := s.Rebuild(world); err != nil {
		s.unload(world)
		return fmt.Errorf("loading maze %q: %w", name, err)
	}

	rp := s.params.Render()
	doorMaterial := s.builder.Materials().Resolve(rp.DoorMaterial)
	doors := s.spawner.CreateDoors(mapComp, s.tileSize, rp.WallHeight, rp.WallThickness, doorMaterial)

	if center, ok := generation.HouseCenter(mapComp, s.tileSize); ok {
		s.spawner.CreateHouse(center)
	}

	s.logger.Info("maze loaded",
		zap.String("name", name),
		zap.Int("cols", mapComp.Width),
		zap.Int("rows", mapComp.Height),
		zap.Int("doors", len(doors)))
	return nil
}

func (s *MazeSystem) unload(world *ecs.World) {
	if s.mazeID != 0 {
		world.RemoveEntity(s.mazeID)
		s.mazeID = 0
	}
	for _, tag := range []string{components.TagDoor, components.TagHouse} {
		for _, e := range world.GetEntitiesWithTag(tag) {
			world.RemoveEntity(e.ID)
		}
	}
}

// Rebuild reruns the pipeline at the current topology. The new geometry is built
// completely before it replaces the old one.
func (s *MazeSystem) Rebuild(world *ecs.World) error {
	mapComp, err := s.tileMaze(world)
	if err != nil {
		s.lastErr = err
		return err
	}

	tp := s.params.Topology()
	plan, err := floorplan.Build(mapComp, tp.Options())
	if err != nil {
		s.lastErr = fmt.Errorf("building floor plan: %w", err)
		return s.lastErr
	}
	segments := floorplan.Segmentize(plan)

	walls, err := s.builder.Build(plan, segments, s.params.Render())
	if err != nil {
		s.lastErr = fmt.Errorf("building geometry: %w", err)
		return s.lastErr
	}

	world.AddComponent(s.mazeID, components.MazeGeometry, &components.MazeGeometryComponent{
		Resolution: plan.Resolution,
		Plan:       plan,
		Segments:   segments,
		Walls:      walls,
	})
	s.builds++
	s.lastErr = nil

	stats := floorplan.Summarize(segments)
	s.logger.Info("maze geometry built",
		zap.Int("resolution", plan.Resolution),
		zap.Stringer("boundary", plan.Boundary),
		zap.Int("horizontal", stats.Horizontal),
		zap.Int("vertical", stats.Vertical),
		zap.Int("corners", stats.Corners),
		zap.Int("primitives", len(walls.Primitives())))

	world.EmitEvent(MazeRebuiltEvent{
		MazeID:     s.mazeID,
		Resolution: plan.Resolution,
		Segments:   len(segments),
		Primitives: len(walls.Primitives()),
	})
	return nil
}

func (s *MazeSystem) applyRender(world *ecs.World) error {
	if g := s.Geometry(world); g != nil {
		if err := g.Walls.Apply(s.params.Render()); err != nil {
			return err
		}
	}
	s.doors.RefreshWings(world)
	return nil
}

func (s *MazeSystem) tileMaze(world *ecs.World) (*components.MapComponent, error) {
	if s.mazeID == 0 {
		return nil, ErrNoMaze
	}
	comp, ok := world.GetComponent(s.mazeID, components.MapComponentID)
	if !ok {
		return nil, ErrNoMaze
	}
	return comp.(*components.MapComponent), nil
}

// Update implements ecs.System; it runs the door controller
func (s *MazeSystem) Update(world *ecs.World, dt float64) {
	if s.mazeID == 0 {
		return
	}
	s.doors.Update(world, dt)
}

// MazeEntity returns the entity holding the tile maze and geometry, or 0
func (s *MazeSystem) MazeEntity() ecs.EntityID {
	return s.mazeID
}

// TileMaze returns the loaded tile maze, or nil
func (s *MazeSystem) TileMaze(world *ecs.World) *components.MapComponent {
	m, _ := s.tileMaze(world)
	return m
}

// Geometry returns the current geometry component, or nil before the first build
func (s *MazeSystem) Geometry(world *ecs.World) *components.MazeGeometryComponent {
	if s.mazeID == 0 {
		return nil
	}
	comp, ok := world.GetComponent(s.mazeID, components.MazeGeometry)
	if !ok {
		return nil
	}
	return comp.(*components.MazeGeometryComponent)
}

// Primitives returns every drawable primitive: the floor, the walls, then one wing per door
func (s *MazeSystem) Primitives(world *ecs.World) []*geometry.Primitive {
	var prims []*geometry.Primitive
	if g := s.Geometry(world); g != nil {
		prims = g.Walls.Primitives()
	}
	for _, e := range world.GetEntitiesWithTag(components.TagDoor) {
		if comp, ok := world.GetComponent(e.ID, components.Door); ok {
			if wing := comp.(*components.DoorComponent).Wing; wing != nil {
				prims = append(prims, wing)
			}
		}
	}
	return prims
}

// DoorOpen reports the state of the door on tile (row, col); found is false when there is
// no door there
func (s *MazeSystem) DoorOpen(world *ecs.World, row, col int) (open, found bool) {
	for _, e := range world.GetEntitiesWithTag(components.TagDoor) {
		comp, ok := world.GetComponent(e.ID, components.Door)
		if !ok {
			continue
		}
		door := comp.(*components.DoorComponent)
		if door.Row == row && door.Col == col {
			return door.Open, true
		}
	}
	return false, false
}

// HouseLit reports whether the ghost house light is on
func (s *MazeSystem) HouseLit(world *ecs.World) bool {
	house := world.FirstWithTag(components.TagHouse)
	if house == nil {
		return false
	}
	comp, ok := world.GetComponent(house.ID, components.HouseLight)
	return ok && comp.(*components.HouseLightComponent).Lit
}

// RebuildCount returns how many times geometry was built for the current maze,
// counting the initial build done by Load
func (s *MazeSystem) RebuildCount() int {
	return s.builds
}

// LastError returns the error of the most recent failed rebuild, nil after a success
func (s *MazeSystem) LastError() error {
	return s.lastErr
}
