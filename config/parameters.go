package config

import (
	"errors"
	"fmt"
	"math"

	"maze3d/floorplan"
)

// ErrInvalidParameter is wrapped by every parameter validation failure
var ErrInvalidParameter = errors.New("invalid parameter")

// RenderParameters are bound live to existing primitives; changing them never rebuilds
// the floor plan or the wall segments.
type RenderParameters struct {
	WallHeight       float64 `yaml:"wallHeight" json:"wallHeight"`
	WallThickness    float64 `yaml:"wallThickness" json:"wallThickness"`
	WallBaseMaterial string  `yaml:"wallBaseMaterial" json:"wallBaseMaterial"`
	WallTopMaterial  string  `yaml:"wallTopMaterial" json:"wallTopMaterial"`
	CornerMaterial   string  `yaml:"cornerMaterial" json:"cornerMaterial"`
	DoorMaterial     string  `yaml:"doorMaterial" json:"doorMaterial"`
	FloorMaterial    string  `yaml:"floorMaterial" json:"floorMaterial"`
}

// DefaultRenderParameters returns the arcade look: short blue walls on a dark floor
func DefaultRenderParameters() RenderParameters {
	return RenderParameters{
		WallHeight:       3.5,
		WallThickness:    1.0,
		WallBaseMaterial: "wall_base",
		WallTopMaterial:  "wall_top",
		CornerMaterial:   "wall_base",
		DoorMaterial:     "door",
		FloorMaterial:    "floor",
	}
}

// Validate checks the numeric parameters; material names are resolved later and fall back
// to a default when unknown.
func (p RenderParameters) Validate() error {
	if !positive(p.WallHeight) {
		return fmt.Errorf("%w: render.wallHeight must be positive, got %g", ErrInvalidParameter, p.WallHeight)
	}
	if !positive(p.WallThickness) {
		return fmt.Errorf("%w: render.wallThickness must be positive, got %g", ErrInvalidParameter, p.WallThickness)
	}
	return nil
}

// TopologyParameters change the floor plan itself; any change triggers a full rebuild
type TopologyParameters struct {
	// Resolution is the number of floor plan cells per tile side
	Resolution int                `yaml:"resolution" json:"resolution"`
	Boundary   floorplan.Boundary `yaml:"boundary" json:"boundary"`
}

// DefaultTopologyParameters returns resolution 4 with walls continuing past the maze edge
func DefaultTopologyParameters() TopologyParameters {
	return TopologyParameters{
		Resolution: 4,
		Boundary:   floorplan.BoundaryWall,
	}
}

// Validate applies the same checks the floor plan builder applies
func (p TopologyParameters) Validate() error {
	if err := floorplan.CheckResolution(p.Resolution); err != nil {
		return fmt.Errorf("%w: topology.resolution: %w", ErrInvalidParameter, err)
	}
	if err := p.Boundary.Validate(); err != nil {
		return fmt.Errorf("%w: topology.boundary: %w", ErrInvalidParameter, err)
	}
	return nil
}

// Options converts the group into floor plan builder options
func (p TopologyParameters) Options() floorplan.Options {
	return floorplan.Options{Resolution: p.Resolution, Boundary: p.Boundary}
}

// DoorParameters tune the house door controller. Radii are in tiles.
type DoorParameters struct {
	// EnterRadiusTiles is the capture radius for ghosts returning to or entering the house
	EnterRadiusTiles float64 `yaml:"enterRadiusTiles" json:"enterRadiusTiles"`
	// LeaveRadiusTiles is the radius for a ghost leaving the house; it starts next to the door
	LeaveRadiusTiles float64 `yaml:"leaveRadiusTiles" json:"leaveRadiusTiles"`
	// OpenWingAngle is the wing rotation in degrees while the door is open
	OpenWingAngle float64 `yaml:"openWingAngle" json:"openWingAngle"`
}

// DefaultDoorParameters returns the stock radii
func DefaultDoorParameters() DoorParameters {
	return DoorParameters{
		EnterRadiusTiles: 3.0,
		LeaveRadiusTiles: 1.0,
		OpenWingAngle:    90,
	}
}

// Validate keeps the leaving radius tighter than the entering radius
func (p DoorParameters) Validate() error {
	if !positive(p.EnterRadiusTiles) || !positive(p.LeaveRadiusTiles) {
		return fmt.Errorf("%w: door radii must be positive", ErrInvalidParameter)
	}
	if math.IsNaN(p.OpenWingAngle) || math.IsInf(p.OpenWingAngle, 0) {
		return fmt.Errorf("%w: doors.openWingAngle must be finite, got %g", ErrInvalidParameter, p.OpenWingAngle)
	}
	if p.LeaveRadiusTiles > p.EnterRadiusTiles {
		return fmt.Errorf("%w: doors.leaveRadiusTiles (%g) exceeds doors.enterRadiusTiles (%g)",
			ErrInvalidParameter, p.LeaveRadiusTiles, p.EnterRadiusTiles)
	}
	return nil
}

// positive is false for NaN and infinities
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
