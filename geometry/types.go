// Package geometry turns wall segments into 3D primitives and keeps them bound to the live
// render parameters.
//
// World axes: X grows east (floor plan x), Z grows south (floor plan y), Y points up.
// The floor sits at Y = 0.
package geometry

import (
	"fmt"
	"math"

	"maze3d/floorplan"
)

// Vec2 is a position on the floor plane
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// Dist returns the Euclidean distance between two floor positions
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}

// Vec3 is a 3D vector
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// BoundingBox defines an axis-aligned bounding box
type BoundingBox struct {
	Min Vec3 `json:"min" yaml:"min"`
	Max Vec3 `json:"max" yaml:"max"`
}

// Extend grows b to include the box of p, ignoring rotation
func (b *BoundingBox) Extend(p *Primitive) {
	lo := Vec3{p.Position.X - p.Size.X/2, p.Position.Y - p.Size.Y/2, p.Position.Z - p.Size.Z/2}
	hi := Vec3{p.Position.X + p.Size.X/2, p.Position.Y + p.Size.Y/2, p.Position.Z + p.Size.Z/2}
	b.Min = Vec3{math.Min(b.Min.X, lo.X), math.Min(b.Min.Y, lo.Y), math.Min(b.Min.Z, lo.Z)}
	b.Max = Vec3{math.Max(b.Max.X, hi.X), math.Max(b.Max.Y, hi.Y), math.Max(b.Max.Z, hi.Z)}
}

// Part identifies what a primitive represents
type Part uint8

const (
	PartBase Part = iota
	PartTop
	PartFloor
	PartDoorWing
)

func (p Part) String() string {
	switch p {
	case PartBase:
		return "base"
	case PartTop:
		return "top"
	case PartFloor:
		return "floor"
	case PartDoorWing:
		return "door"
	}
	return fmt.Sprintf("Part(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler
func (p Part) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Primitive is one axis-aligned box handed to the rendering layer.
// Dimensions and materials are mutated in place when render parameters change.
type Primitive struct {
	ID   string `json:"id" yaml:"id"`
	Part Part   `json:"part" yaml:"part"`
	// Segment indexes the wall segment the primitive belongs to, -1 for floor and doors
	Segment     int                   `json:"segment" yaml:"segment"`
	Orientation floorplan.Orientation `json:"orientation" yaml:"orientation"`
	// Position is the box centre
	Position Vec3 `json:"position" yaml:"position"`
	// Size holds the full extents along X, Y and Z before rotation
	Size Vec3 `json:"size" yaml:"size"`
	// Yaw is the rotation around Y in degrees
	Yaw      float64  `json:"yaw" yaml:"yaw"`
	Material Material `json:"material" yaml:"material"`
}

// Footprint returns the rectangle covered on the floor plane, ignoring rotation
func (p *Primitive) Footprint() (min, max Vec2) {
	return Vec2{p.Position.X - p.Size.X/2, p.Position.Z - p.Size.Z/2},
		Vec2{p.Position.X + p.Size.X/2, p.Position.Z + p.Size.Z/2}
}
