package geometry

import (
	"fmt"

	"maze3d/floorplan"
)

// NewDoorWing creates the wing for the door tile at (row, col). The wing spans the tile
// across its opening and is half a wall thick. horizontal is true when the doorway runs
// east-west, i.e. the door sits between walls on its left and right.
func NewDoorWing(row, col int, tileSize float64, horizontal bool, height, thickness float64, m Material) *Primitive {
	p := &Primitive{
		ID:       fmt.Sprintf("door-%d-%d", row, col),
		Part:     PartDoorWing,
		Segment:  -1,
		Position: Vec3{X: (float64(col) + 0.5) * tileSize, Z: (float64(row) + 0.5) * tileSize},
		Material: m,
	}
	if horizontal {
		p.Orientation = floorplan.Horizontal
		p.Size.X = tileSize
	} else {
		p.Orientation = floorplan.Vertical
		p.Size.Z = tileSize
	}
	UpdateDoorWing(p, height, thickness, 0, m)
	return p
}

// UpdateDoorWing applies wall dimensions and the current swing angle in degrees
func UpdateDoorWing(p *Primitive, height, thickness, angle float64, m Material) {
	if p.Orientation == floorplan.Horizontal {
		p.Size.Z = thickness / 2
	} else {
		p.Size.X = thickness / 2
	}
	p.Size.Y = height
	p.Position.Y = height / 2
	p.Yaw = angle
	p.Material = m
}
