package systems

import (
	"go.uber.org/zap"

	"maze3d/components"
	"maze3d/config"
	"maze3d/ecs"
	"maze3d/geometry"
)

// GhostInfo is the ghost data the door controller reads each tick
type GhostInfo struct {
	Position geometry.Vec2
	Visible  bool
	State    components.GhostState
}

// GhostQuery supplies the current ghosts; the AI layer that moves them lives elsewhere
type GhostQuery interface {
	Ghosts() []GhostInfo
}

// WorldGhostQuery reads ghost entities from an ECS world
type WorldGhostQuery struct {
	World *ecs.World
}

// Ghosts implements GhostQuery
func (q WorldGhostQuery) Ghosts() []GhostInfo {
	entities := q.World.GetEntitiesWithComponent(components.Ghost)
	ghosts := make([]GhostInfo, 0, len(entities))
	for _, e := range entities {
		comp, _ := q.World.GetComponent(e.ID, components.Ghost)
		g := comp.(*components.GhostComponent)
		ghosts = append(ghosts, GhostInfo{Position: g.Position, Visible: g.Visible, State: g.State})
	}
	return ghosts
}

// ShouldOpen reports whether a door with the given entry point must be open. Only visible
// ghosts heading into or out of the house count: within the leave radius while leaving,
// within the enter radius while returning home or entering.
func ShouldOpen(entry geometry.Vec2, ghosts []GhostInfo, dp config.DoorParameters, tileSize float64) bool {
	for _, g := range ghosts {
		if !g.Visible {
			continue
		}
		var radius float64
		switch g.State {
		case components.GhostLeavingHouse:
			radius = dp.LeaveRadiusTiles * tileSize
		case components.GhostReturningHome, components.GhostEnteringHouse:
			radius = dp.EnterRadiusTiles * tileSize
		default:
			continue
		}
		if g.Position.Dist(entry) <= radius {
			return true
		}
	}
	return false
}

// HouseLit reports whether any visible ghost is inside or passing through the house
func HouseLit(ghosts []GhostInfo) bool {
	for _, g := range ghosts {
		if !g.Visible {
			continue
		}
		switch g.State {
		case components.GhostLocked, components.GhostLeavingHouse, components.GhostEnteringHouse:
			return true
		}
	}
	return false
}

// DoorSystem opens and closes house doors and switches the house light. The decision is
// recomputed from scratch every tick; there is no hysteresis.
type DoorSystem struct {
	params    *ParameterStore
	materials *geometry.MaterialLibrary
	tileSize  float64
	query     GhostQuery
	logger    *zap.Logger
}

// NewDoorSystem creates a door controller. Until SetGhostQuery is called ghosts are read
// from the world passed to Update.
func NewDoorSystem(params *ParameterStore, materials *geometry.MaterialLibrary, tileSize float64, logger *zap.Logger) *DoorSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DoorSystem{
		params:    params,
		materials: materials,
		tileSize:  tileSize,
		logger:    logger,
	}
}

// SetGhostQuery replaces the ghost source
func (s *DoorSystem) SetGhostQuery(q GhostQuery) {
	s.query = q
}

// Update implements ecs.System
func (s *DoorSystem) Update(world *ecs.World, dt float64) {
	query := s.query
	if query == nil {
		query = WorldGhostQuery{World: world}
	}
	ghosts := query.Ghosts()
	dp := s.params.Doors()

	for _, e := range world.GetEntitiesWithTag(components.TagDoor) {
		comp, ok := world.GetComponent(e.ID, components.Door)
		if !ok {
			continue
		}
		door := comp.(*components.DoorComponent)

		open := ShouldOpen(door.EntryPoint, ghosts, dp, s.tileSize)
		angle := 0.0
		if open {
			angle = dp.OpenWingAngle
		}
		if open == door.Open && angle == door.WingAngle {
			continue
		}

		door.Open = open
		door.WingAngle = angle
		s.updateWing(door)

		s.logger.Debug("door switched",
			zap.Int("row", door.Row),
			zap.Int("col", door.Col),
			zap.Bool("open", open))
		world.EmitEvent(DoorChangedEvent{DoorID: e.ID, Row: door.Row, Col: door.Col, Open: open})
	}

	lit := HouseLit(ghosts)
	for _, e := range world.GetEntitiesWithTag(components.TagHouse) {
		comp, ok := world.GetComponent(e.ID, components.HouseLight)
		if !ok {
			continue
		}
		house := comp.(*components.HouseLightComponent)
		if house.Lit == lit {
			continue
		}
		house.Lit = lit
		world.EmitEvent(HouseLightEvent{HouseID: e.ID, Lit: lit})
	}
}

// RefreshWings re-applies the render parameters to every door wing
func (s *DoorSystem) RefreshWings(world *ecs.World) {
	for _, e := range world.GetEntitiesWithTag(components.TagDoor) {
		if comp, ok := world.GetComponent(e.ID, components.Door); ok {
			s.updateWing(comp.(*components.DoorComponent))
		}
	}
}

func (s *DoorSystem) updateWing(door *components.DoorComponent) {
	if door.Wing == nil {
		return
	}
	rp := s.params.Render()
	geometry.UpdateDoorWing(door.Wing, rp.WallHeight, rp.WallThickness, door.WingAngle, s.materials.Resolve(rp.DoorMaterial))
}
