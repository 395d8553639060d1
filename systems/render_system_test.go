package systems

import (
	"math"
	"strings"
	"testing"

	"maze3d/components"
	"maze3d/config"
	"maze3d/floorplan"
	"maze3d/geometry"
)

func near(a, b geometry.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestWingLine(t *testing.T) {
	closed := geometry.NewDoorWing(12, 13, 8, true, 3, 1, geometry.DefaultMaterial)
	a, b, width := WingLine(closed)
	if !near(a, geometry.Vec2{X: 104, Z: 100}) || !near(b, geometry.Vec2{X: 112, Z: 100}) || width != 0.5 {
		t.Errorf("closed wing = %+v %+v %v", a, b, width)
	}

	geometry.UpdateDoorWing(closed, 3, 1, 90, geometry.DefaultMaterial)
	a, b, _ = WingLine(closed)
	if !near(a, geometry.Vec2{X: 108, Z: 96}) || !near(b, geometry.Vec2{X: 108, Z: 104}) {
		t.Errorf("open wing = %+v %+v", a, b)
	}

	vertical := geometry.NewDoorWing(0, 0, 8, false, 3, 1, geometry.DefaultMaterial)
	if vertical.Orientation != floorplan.Vertical {
		t.Fatal("orientation")
	}
	a, b, _ = WingLine(vertical)
	if !near(a, geometry.Vec2{X: 4, Z: 0}) || !near(b, geometry.Vec2{X: 4, Z: 8}) {
		t.Errorf("vertical wing = %+v %+v", a, b)
	}
}

func TestGhostColorDistinguishesHouseStates(t *testing.T) {
	if GhostColor(components.GhostLocked) != GhostColor(components.GhostEnteringHouse) {
		t.Error("house states should share a colour")
	}
	if GhostColor(components.GhostHuntingPac) == GhostColor(components.GhostFrightened) {
		t.Error("frightened must differ from hunting")
	}
}

func TestStatusLines(t *testing.T) {
	f := arcadeFixture(t)
	lines := StatusLines(f.params, f.maze, f.world)
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.Contains(lines[0], "Resolution 4") || !strings.Contains(lines[0], "Boundary wall") {
		t.Errorf("parameter line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Rebuilds 1") {
		t.Errorf("stats line = %q", lines[1])
	}

	m := f.maze.TileMaze(f.world)
	m.Tiles[0] = nil
	_ = f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 1 })
	lines = StatusLines(f.params, f.maze, f.world)
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "Last rebuild failed") {
		t.Errorf("lines after failure = %q", lines)
	}
	if !strings.Contains(lines[0], "Resolution 4") {
		t.Errorf("parameter line shows a topology that was never built: %q", lines[0])
	}
}
