package geometry

import (
	"errors"
	"fmt"

	"maze3d/config"
	"maze3d/floorplan"
)

const (
	// TopThickness is the height of the flat cap placed on every wall
	TopThickness = 0.1
	// FloorThickness is the height of the floor slab below Y = 0
	FloorThickness = 0.1
)

// ErrNoFloorPlan is returned when Build is called without a plan
var ErrNoFloorPlan = errors.New("no floor plan")

// Builder instantiates primitives for wall segments
type Builder struct {
	tileSize  float64
	materials *MaterialLibrary
}

// NewBuilder creates a builder for tiles of tileSize world units
func NewBuilder(tileSize float64, materials *MaterialLibrary) *Builder {
	if materials == nil {
		materials = NewMaterialLibrary(nil, nil)
	}
	return &Builder{tileSize: tileSize, materials: materials}
}

// TileSize returns the tile edge length in world units
func (b *Builder) TileSize() float64 {
	return b.tileSize
}

// Materials returns the library the builder resolves names with
func (b *Builder) Materials() *MaterialLibrary {
	return b.materials
}

// MazeGeometry is the wall geometry of one floor plan. The floor plan and segment list
// are fixed for its lifetime; only render parameters are applied after construction.
type MazeGeometry struct {
	Resolution int
	BrickSize  float64
	Width      float64 // world extent along X
	Depth      float64 // world extent along Z

	segments  []floorplan.Segment
	walls     []*Primitive
	floor     *Primitive
	params    config.RenderParameters
	materials *MaterialLibrary
}

// Build creates base and top primitives for every segment plus one floor slab.
// plan must be the plan segments were derived from.
func (b *Builder) Build(plan *floorplan.FloorPlan, segments []floorplan.Segment, rp config.RenderParameters) (*MazeGeometry, error) {
	if plan == nil {
		return nil, ErrNoFloorPlan
	}
	if b.tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %g", config.ErrInvalidParameter, b.tileSize)
	}
	if err := rp.Validate(); err != nil {
		return nil, err
	}

	brick := b.tileSize / float64(plan.Resolution)
	g := &MazeGeometry{
		Resolution: plan.Resolution,
		BrickSize:  brick,
		Width:      float64(plan.Width) * brick,
		Depth:      float64(plan.Height) * brick,
		segments:   append([]floorplan.Segment(nil), segments...),
		walls:      make([]*Primitive, 0, 2*len(segments)),
		materials:  b.materials,
	}

	for i, seg := range g.segments {
		base := layoutSegment(plan, seg, brick)
		base.ID = fmt.Sprintf("wall-%d-base", i)
		base.Part = PartBase
		base.Segment = i

		top := *base
		top.ID = fmt.Sprintf("wall-%d-top", i)
		top.Part = PartTop

		g.walls = append(g.walls, base, &top)
	}

	g.floor = &Primitive{
		ID:       "floor",
		Part:     PartFloor,
		Segment:  -1,
		Position: Vec3{X: g.Width / 2, Y: -FloorThickness / 2, Z: g.Depth / 2},
		Size:     Vec3{X: g.Width, Y: FloorThickness, Z: g.Depth},
	}

	if err := g.Apply(rp); err != nil {
		return nil, err
	}
	return g, nil
}

// layoutSegment places the run along its long axis. Straight runs reach half a brick into
// a neighbouring wall cell at either end so they meet corners and crossing runs at the
// cell centre; against open space they stop at the cell edge.
func layoutSegment(plan *floorplan.FloorPlan, seg floorplan.Segment, brick float64) *Primitive {
	p := &Primitive{Orientation: seg.Orientation}
	x, y := float64(seg.Origin.X), float64(seg.Origin.Y)
	n := float64(seg.Length)

	switch seg.Orientation {
	case floorplan.Horizontal:
		before := joinExtent(plan, seg.Origin.X-1, seg.Origin.Y, brick)
		after := joinExtent(plan, seg.Origin.X+seg.Length, seg.Origin.Y, brick)
		length := n*brick + before + after
		p.Position.X = x*brick - before + length/2
		p.Position.Z = (y + 0.5) * brick
		p.Size.X = length
	case floorplan.Vertical:
		before := joinExtent(plan, seg.Origin.X, seg.Origin.Y-1, brick)
		after := joinExtent(plan, seg.Origin.X, seg.Origin.Y+seg.Length, brick)
		length := n*brick + before + after
		p.Position.X = (x + 0.5) * brick
		p.Position.Z = y*brick - before + length/2
		p.Size.Z = length
	default:
		p.Position.X = (x + 0.5) * brick
		p.Position.Z = (y + 0.5) * brick
	}
	return p
}

func joinExtent(plan *floorplan.FloorPlan, x, y int, brick float64) float64 {
	if plan.At(x, y) == floorplan.CellEmpty {
		return 0
	}
	return brick / 2
}

// Apply binds new render parameters to the existing primitives in place
func (g *MazeGeometry) Apply(rp config.RenderParameters) error {
	if err := rp.Validate(); err != nil {
		return err
	}

	base := g.materials.Resolve(rp.WallBaseMaterial)
	corner := g.materials.Resolve(rp.CornerMaterial)
	top := g.materials.Resolve(rp.WallTopMaterial)

	for _, p := range g.walls {
		switch p.Orientation {
		case floorplan.Horizontal:
			p.Size.Z = rp.WallThickness
		case floorplan.Vertical:
			p.Size.X = rp.WallThickness
		default:
			p.Size.X = rp.WallThickness
			p.Size.Z = rp.WallThickness
		}

		if p.Part == PartTop {
			p.Size.Y = TopThickness
			p.Position.Y = rp.WallHeight + TopThickness/2
			p.Material = top
			continue
		}
		p.Size.Y = rp.WallHeight
		p.Position.Y = rp.WallHeight / 2
		if p.Orientation == floorplan.Corner {
			p.Material = corner
		} else {
			p.Material = base
		}
	}

	g.floor.Material = g.materials.Resolve(rp.FloorMaterial)
	g.params = rp
	return nil
}

// Params returns the render parameters currently applied
func (g *MazeGeometry) Params() config.RenderParameters {
	return g.params
}

// Segments returns a copy of the segment list the geometry was built from
func (g *MazeGeometry) Segments() []floorplan.Segment {
	return append([]floorplan.Segment(nil), g.segments...)
}

// Pieces returns the number of wall pieces (one base+top pair per segment)
func (g *MazeGeometry) Pieces() int {
	return len(g.segments)
}

// Walls returns the wall primitives, base then top for each segment in segment order
func (g *MazeGeometry) Walls() []*Primitive {
	return g.walls
}

// Floor returns the floor slab
func (g *MazeGeometry) Floor() *Primitive {
	return g.floor
}

// Primitives returns the floor followed by every wall primitive
func (g *MazeGeometry) Primitives() []*Primitive {
	all := make([]*Primitive, 0, len(g.walls)+1)
	all = append(all, g.floor)
	return append(all, g.walls...)
}

// Bounds returns the box enclosing every primitive
func (g *MazeGeometry) Bounds() BoundingBox {
	bb := BoundingBox{}
	for i, p := range g.Primitives() {
		if i == 0 {
			min, max := p.Footprint()
			bb.Min = Vec3{min.X, p.Position.Y - p.Size.Y/2, min.Z}
			bb.Max = Vec3{max.X, p.Position.Y + p.Size.Y/2, max.Z}
			continue
		}
		bb.Extend(p)
	}
	return bb
}
