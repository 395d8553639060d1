package components

import (
	"maze3d/floorplan"
	"maze3d/geometry"
)

// MazeGeometryComponent holds everything derived from the map at one resolution.
// It is swapped as a whole on rebuild so readers never see a plan from one
// resolution next to segments from another.
type MazeGeometryComponent struct {
	Resolution int
	Plan       *floorplan.FloorPlan
	Segments   []floorplan.Segment
	Walls      *geometry.MazeGeometry
}

// DoorComponent is one door tile of the ghost house
type DoorComponent struct {
	Row, Col int
	// EntryPoint is the centre of the door run the tile belongs to
	EntryPoint geometry.Vec2
	// Horizontal is true when the door closes a gap in a horizontal wall
	Horizontal bool
	Open       bool
	WingAngle  float64 // degrees
	Wing       *geometry.Primitive
}

// GhostState is the behaviour a ghost is in
type GhostState int

const (
	GhostLocked GhostState = iota
	GhostLeavingHouse
	GhostHuntingPac
	GhostFrightened
	GhostReturningHome
	GhostEnteringHouse
)

var ghostStateNames = [...]string{
	"locked", "leaving-house", "hunting-pac", "frightened", "returning-home", "entering-house",
}

func (s GhostState) String() string {
	if s < 0 || int(s) >= len(ghostStateNames) {
		return "unknown"
	}
	return ghostStateNames[s]
}

// GhostComponent is what the door controller needs to know about a ghost
type GhostComponent struct {
	Position geometry.Vec2
	Visible  bool
	State    GhostState
}

// HouseLightComponent is the light inside the ghost house
type HouseLightComponent struct {
	Lit bool
	// Center of the house floor; the viewer draws the glow there
	Center geometry.Vec2
}

// PatrolComponent drives a demo ghost along waypoints, switching state at each one
type PatrolComponent struct {
	Waypoints []geometry.Vec2
	States    []GhostState // state to adopt when heading for the matching waypoint
	Next      int
	Speed     float64 // world units per second
	Pause     float64 // seconds to wait at each waypoint
	waited    float64
}

// Wait accumulates dt and reports whether the pause at the current waypoint is over
func (p *PatrolComponent) Wait(dt float64) bool {
	p.waited += dt
	if p.waited < p.Pause {
		return false
	}
	p.waited = 0
	return true
}

// CameraComponent maps world coordinates to screen pixels for the top-down viewer
type CameraComponent struct {
	Zoom             float64 // pixels per world unit
	OffsetX, OffsetY float64 // screen position of world origin
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{
		Name: name,
	}
}
