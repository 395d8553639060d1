package geometry

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"maze3d/config"
	"maze3d/floorplan"
)

type gridMaze []string

func (m gridMaze) Rows() int { return len(m) }
func (m gridMaze) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
func (m gridMaze) IsWall(row, col int) bool { return m[row][col] == '#' }
func (m gridMaze) IsDoor(row, col int) bool { return m[row][col] == '-' }

var room = gridMaze{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"#####",
}

type failingLoader struct{ calls int }

func (l *failingLoader) LoadTexture(path string) error {
	l.calls++
	return errors.New("no such texture")
}

func buildRoom(t *testing.T, resolution int, lib *MaterialLibrary) *MazeGeometry {
	t.Helper()
	plan, err := floorplan.Build(room, floorplan.Options{Resolution: resolution})
	if err != nil {
		t.Fatalf("floorplan.Build: %v", err)
	}
	g, err := NewBuilder(config.TileSize, lib).Build(plan, floorplan.Segmentize(plan), config.DefaultRenderParameters())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRoomProducesEightPieces(t *testing.T) {
	g := buildRoom(t, 1, nil)

	if g.Pieces() != 8 {
		t.Fatalf("pieces = %d, want 8", g.Pieces())
	}
	if len(g.Walls()) != 16 {
		t.Errorf("wall primitives = %d, want 16", len(g.Walls()))
	}
	if len(g.Primitives()) != 17 {
		t.Errorf("primitives = %d, want 17 including the floor", len(g.Primitives()))
	}

	var bases, tops int
	for _, p := range g.Walls() {
		switch p.Part {
		case PartBase:
			bases++
		case PartTop:
			tops++
		default:
			t.Errorf("unexpected part %v among walls", p.Part)
		}
	}
	if bases != 8 || tops != 8 {
		t.Errorf("bases=%d tops=%d, want 8 each", bases, tops)
	}
}

func TestStraightRunsReachCornerCentres(t *testing.T) {
	g := buildRoom(t, 1, nil)
	rp := config.DefaultRenderParameters()
	b := g.BrickSize

	for _, p := range g.Walls() {
		if p.Part != PartBase {
			continue
		}
		switch p.Orientation {
		case floorplan.Horizontal:
			// three cells plus half a corner cell on each side
			if !approx(p.Size.X, 4*b) || !approx(p.Size.Z, rp.WallThickness) {
				t.Errorf("%s size = %+v", p.ID, p.Size)
			}
		case floorplan.Vertical:
			if !approx(p.Size.Z, 4*b) || !approx(p.Size.X, rp.WallThickness) {
				t.Errorf("%s size = %+v", p.ID, p.Size)
			}
		case floorplan.Corner:
			if !approx(p.Size.X, rp.WallThickness) || !approx(p.Size.Z, rp.WallThickness) {
				t.Errorf("%s size = %+v", p.ID, p.Size)
			}
		}
		if !approx(p.Size.Y, rp.WallHeight) || !approx(p.Position.Y, rp.WallHeight/2) {
			t.Errorf("%s height = %g at %g", p.ID, p.Size.Y, p.Position.Y)
		}
	}

	// the top run starts at the centre of the corner at (0,0)
	first := g.Walls()[0]
	min, max := first.Footprint()
	if first.Orientation != floorplan.Horizontal || !approx(min.X, b/2) || !approx(max.X, 4.5*b) {
		t.Errorf("first run spans %g..%g, want %g..%g", min.X, max.X, b/2, 4.5*b)
	}
}

func TestTopsSitOnBases(t *testing.T) {
	g := buildRoom(t, 2, nil)
	walls := g.Walls()
	for i := 0; i < len(walls); i += 2 {
		base, top := walls[i], walls[i+1]
		if base.Segment != top.Segment || base.Part != PartBase || top.Part != PartTop {
			t.Fatalf("walls %d/%d are not a base/top pair", i, i+1)
		}
		if !approx(top.Position.Y-top.Size.Y/2, base.Size.Y) {
			t.Errorf("top %s floats at %g, base height %g", top.ID, top.Position.Y-top.Size.Y/2, base.Size.Y)
		}
		if top.Position.X != base.Position.X || top.Position.Z != base.Position.Z {
			t.Errorf("top %s is not above its base", top.ID)
		}
	}
}

func TestApplyKeepsPrimitivesAndSegments(t *testing.T) {
	g := buildRoom(t, 2, nil)
	before := g.Primitives()
	segs := g.Segments()

	rp := config.DefaultRenderParameters()
	rp.WallHeight = 7
	rp.WallThickness = 0.25
	if err := g.Apply(rp); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	after := g.Primitives()
	if len(after) != len(before) {
		t.Fatalf("primitive count changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("primitive %d was replaced", i)
		}
	}
	got := g.Segments()
	if len(got) != len(segs) {
		t.Fatalf("segment count changed")
	}
	for i := range got {
		if got[i] != segs[i] {
			t.Errorf("segment %d changed: %+v -> %+v", i, segs[i], got[i])
		}
	}

	for _, p := range g.Walls() {
		if p.Part == PartBase && !approx(p.Size.Y, 7) {
			t.Errorf("%s height = %g, want 7", p.ID, p.Size.Y)
		}
		if p.Orientation == floorplan.Horizontal && !approx(p.Size.Z, 0.25) {
			t.Errorf("%s thickness = %g, want 0.25", p.ID, p.Size.Z)
		}
	}
	if g.Params() != rp {
		t.Errorf("Params = %+v, want %+v", g.Params(), rp)
	}
}

func TestApplyRejectsInvalidParameters(t *testing.T) {
	g := buildRoom(t, 1, nil)
	rp := config.DefaultRenderParameters()
	rp.WallHeight = 0
	if err := g.Apply(rp); !errors.Is(err, config.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if g.Params() != config.DefaultRenderParameters() {
		t.Error("failed Apply changed the stored parameters")
	}
}

func TestUnknownMaterialFallsBack(t *testing.T) {
	lib := NewMaterialLibrary(nil, nil)
	lib.Define(Material{Name: "wall_base", Color: color.RGBA{B: 255, A: 255}})
	g := buildRoom(t, 1, lib)

	for _, p := range g.Walls() {
		if p.Part == PartTop && p.Material != DefaultMaterial {
			t.Errorf("%s material = %+v, want default", p.ID, p.Material)
		}
		if p.Part == PartBase && p.Material.Name != "wall_base" {
			t.Errorf("%s material = %q, want wall_base", p.ID, p.Material.Name)
		}
	}
	// wall_top and floor are missing; each is reported once thanks to the cache
	if lib.Fallbacks() != 2 {
		t.Errorf("fallbacks = %d, want 2", lib.Fallbacks())
	}
}

func TestBrokenTextureKeepsColour(t *testing.T) {
	loader := &failingLoader{}
	lib := NewMaterialLibrary(loader, nil)
	blue := color.RGBA{B: 200, A: 255}
	lib.Define(Material{Name: "wall_base", Color: blue, Texture: "missing.png"})

	m := lib.Resolve("wall_base")
	if m.Texture != "" || m.Color != blue {
		t.Errorf("resolved = %+v, want plain blue", m)
	}
	lib.Resolve("wall_base")
	if loader.calls != 1 {
		t.Errorf("texture loaded %d times, want 1", loader.calls)
	}
}

func TestEmptySegmentListBuildsOnlyFloor(t *testing.T) {
	open := gridMaze{"...", "...", "..."}
	plan, err := floorplan.Build(open, floorplan.Options{Resolution: 2, Boundary: floorplan.BoundaryOpen})
	if err != nil {
		t.Fatal(err)
	}
	segs := floorplan.Segmentize(plan)
	if len(segs) != 0 {
		t.Fatalf("open maze produced %d segments", len(segs))
	}
	g, err := NewBuilder(8, nil).Build(plan, segs, config.DefaultRenderParameters())
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Walls()) != 0 || len(g.Primitives()) != 1 {
		t.Errorf("walls=%d primitives=%d, want 0 and 1", len(g.Walls()), len(g.Primitives()))
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	if _, err := NewBuilder(8, nil).Build(nil, nil, config.DefaultRenderParameters()); !errors.Is(err, ErrNoFloorPlan) {
		t.Errorf("nil plan: err = %v", err)
	}
	plan, _ := floorplan.Build(room, floorplan.Options{Resolution: 1})
	if _, err := NewBuilder(0, nil).Build(plan, nil, config.DefaultRenderParameters()); !errors.Is(err, config.ErrInvalidParameter) {
		t.Errorf("zero tile size: err = %v", err)
	}
}

func TestBoundsCoverMaze(t *testing.T) {
	g := buildRoom(t, 4, nil)
	bb := g.Bounds()
	if !approx(bb.Min.X, 0) || !approx(bb.Min.Z, 0) {
		t.Errorf("min = %+v, want origin", bb.Min)
	}
	if !approx(bb.Max.X, 5*config.TileSize) || !approx(bb.Max.Z, 5*config.TileSize) {
		t.Errorf("max = %+v", bb.Max)
	}
	want := config.DefaultRenderParameters().WallHeight + TopThickness
	if !approx(bb.Max.Y, want) || !approx(bb.Min.Y, -FloorThickness) {
		t.Errorf("height range %g..%g, want %g..%g", bb.Min.Y, bb.Max.Y, -FloorThickness, want)
	}
}

func TestDoorWing(t *testing.T) {
	m := Material{Name: "door"}
	w := NewDoorWing(2, 3, 8, true, 3.5, 1, m)
	if w.Part != PartDoorWing || w.Orientation != floorplan.Horizontal {
		t.Fatalf("wing = %+v", w)
	}
	if !approx(w.Position.X, 28) || !approx(w.Position.Z, 20) {
		t.Errorf("wing centre = %+v", w.Position)
	}
	if !approx(w.Size.X, 8) || !approx(w.Size.Z, 0.5) || w.Yaw != 0 {
		t.Errorf("closed wing size=%+v yaw=%g", w.Size, w.Yaw)
	}

	UpdateDoorWing(w, 5, 2, 90, m)
	if w.Yaw != 90 || !approx(w.Size.Y, 5) || !approx(w.Size.Z, 1) {
		t.Errorf("opened wing size=%+v yaw=%g", w.Size, w.Yaw)
	}

	v := NewDoorWing(0, 0, 8, false, 3.5, 1, m)
	if v.Orientation != floorplan.Vertical || !approx(v.Size.Z, 8) || !approx(v.Size.X, 0.5) {
		t.Errorf("vertical wing = %+v", v)
	}
}
