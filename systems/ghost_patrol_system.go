package systems

import (
	"maze3d/components"
	"maze3d/ecs"
	"maze3d/geometry"
)

// GhostPatrolSystem walks demo ghosts along their patrol routes so the doors and the house
// light can be watched without a game-rule layer
type GhostPatrolSystem struct{}

// NewGhostPatrolSystem creates a new patrol system
func NewGhostPatrolSystem() *GhostPatrolSystem {
	return &GhostPatrolSystem{}
}

// Update implements ecs.System
func (s *GhostPatrolSystem) Update(world *ecs.World, dt float64) {
	for _, e := range world.GetEntitiesWithComponent(components.Patrol) {
		patrolComp, _ := world.GetComponent(e.ID, components.Patrol)
		ghostComp, ok := world.GetComponent(e.ID, components.Ghost)
		if !ok {
			continue
		}
		patrol := patrolComp.(*components.PatrolComponent)
		ghost := ghostComp.(*components.GhostComponent)
		if len(patrol.Waypoints) == 0 {
			continue
		}

		target := patrol.Waypoints[patrol.Next]
		if !moveTowards(&ghost.Position, target, patrol.Speed*dt) {
			continue
		}
		if !patrol.Wait(dt) {
			continue
		}

		patrol.Next = (patrol.Next + 1) % len(patrol.Waypoints)
		next := ghost.State
		if patrol.Next < len(patrol.States) {
			next = patrol.States[patrol.Next]
		}
		if next == ghost.State {
			continue
		}

		from := ghost.State
		ghost.State = next
		name := ""
		if comp, ok := world.GetComponent(e.ID, components.Name); ok {
			name = comp.(*components.NameComponent).Name
		}
		world.EmitEvent(GhostStateEvent{GhostID: e.ID, Name: name, From: from, To: next})
	}
}

// moveTowards advances pos by at most step and reports whether it reached target
func moveTowards(pos *geometry.Vec2, target geometry.Vec2, step float64) bool {
	d := pos.Dist(target)
	if d <= step {
		*pos = target
		return true
	}
	pos.X += (target.X - pos.X) / d * step
	pos.Z += (target.Z - pos.Z) / d * step
	return false
}

// DemoPatrol builds a route that enters the house, waits locked inside, leaves, roams
// away from the door and comes back. entry is the door entry point and center the house
// centre; the route steps just outside the door and then four tiles to the side.
func DemoPatrol(entry, center geometry.Vec2, tileSize float64) ([]geometry.Vec2, []components.GhostState) {
	dx, dz := entry.X-center.X, entry.Z-center.Z
	d := entry.Dist(center)
	if d == 0 {
		dx, dz, d = 0, -1, 1
	}
	dx, dz = dx/d, dz/d

	outside := geometry.Vec2{X: entry.X + dx*1.25*tileSize, Z: entry.Z + dz*1.25*tileSize}
	away := geometry.Vec2{X: outside.X - dz*4*tileSize, Z: outside.Z + dx*4*tileSize}

	waypoints := []geometry.Vec2{center, center, outside, away, outside}
	states := []components.GhostState{
		components.GhostEnteringHouse,
		components.GhostLocked,
		components.GhostLeavingHouse,
		components.GhostHuntingPac,
		components.GhostReturningHome,
	}
	return waypoints, states
}
