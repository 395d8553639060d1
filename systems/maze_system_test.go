package systems

import (
	"errors"
	"testing"

	"maze3d/components"
	"maze3d/config"
	"maze3d/ecs"
	"maze3d/floorplan"
	"maze3d/generation"
	"maze3d/geometry"
)

func primitiveSet(prims []*geometry.Primitive) map[*geometry.Primitive]bool {
	set := make(map[*geometry.Primitive]bool, len(prims))
	for _, p := range prims {
		set[p] = true
	}
	return set
}

func TestLoadBuildsOnce(t *testing.T) {
	f := arcadeFixture(t)

	if f.maze.RebuildCount() != 1 || f.events[EventMazeRebuilt] != 1 {
		t.Fatalf("builds = %d, events = %d", f.maze.RebuildCount(), f.events[EventMazeRebuilt])
	}
	g := f.maze.Geometry(f.world)
	if g == nil || g.Resolution != config.DefaultTopologyParameters().Resolution {
		t.Fatalf("geometry = %+v", g)
	}
	if g.Plan.Resolution != g.Resolution {
		t.Error("plan and component disagree on resolution")
	}
	if err := floorplan.VerifyCoverage(g.Plan, g.Segments); err != nil {
		t.Error(err)
	}

	doors := f.world.GetEntitiesWithTag(components.TagDoor)
	if len(doors) != 2 {
		t.Errorf("doors = %d, want 2", len(doors))
	}
	if f.world.FirstWithTag(components.TagHouse) == nil {
		t.Error("no house entity")
	}

	// floor, two boxes per segment, one wing per door
	want := 1 + 2*len(g.Segments) + len(doors)
	if n := len(f.maze.Primitives(f.world)); n != want {
		t.Errorf("primitives = %d, want %d", n, want)
	}
}

func TestRenderChangeDoesNotRebuild(t *testing.T) {
	f := arcadeFixture(t)
	g := f.maze.Geometry(f.world)
	before := primitiveSet(f.maze.Primitives(f.world))
	segments := len(g.Segments)

	if err := f.params.UpdateRender(func(rp *config.RenderParameters) {
		rp.WallHeight = 6
		rp.WallThickness = 0.5
	}); err != nil {
		t.Fatal(err)
	}

	if f.maze.RebuildCount() != 1 || f.events[EventMazeRebuilt] != 1 {
		t.Fatalf("render change rebuilt: count %d", f.maze.RebuildCount())
	}
	if f.events[EventRenderParametersChanged] != 1 || f.events[EventTopologyChanged] != 0 {
		t.Errorf("events = %v", f.events)
	}
	if f.maze.Geometry(f.world) != g || len(g.Segments) != segments {
		t.Error("geometry component was replaced")
	}

	after := f.maze.Primitives(f.world)
	for _, p := range after {
		if !before[p] {
			t.Fatalf("primitive %s is new", p.ID)
		}
		switch p.Part {
		case geometry.PartBase:
			if p.Size.Y != 6 {
				t.Errorf("%s height = %v", p.ID, p.Size.Y)
			}
		case geometry.PartDoorWing:
			if p.Size.Y != 6 {
				t.Errorf("%s height = %v", p.ID, p.Size.Y)
			}
			if p.Orientation == floorplan.Horizontal && p.Size.Z != 0.25 {
				t.Errorf("%s thickness = %v", p.ID, p.Size.Z)
			}
		}
	}

	// same values again is not a change
	if err := f.params.SetRender(f.params.Render()); err != nil {
		t.Fatal(err)
	}
	if f.events[EventRenderParametersChanged] != 1 {
		t.Error("unchanged render parameters emitted an event")
	}
}

func TestTopologyChangeRebuilds(t *testing.T) {
	f := arcadeFixture(t)
	old := f.maze.Geometry(f.world)
	doors := f.world.GetEntitiesWithTag(components.TagDoor)

	if err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 2 }); err != nil {
		t.Fatal(err)
	}

	if f.maze.RebuildCount() != 2 || f.events[EventMazeRebuilt] != 2 {
		t.Fatalf("builds = %d", f.maze.RebuildCount())
	}
	g := f.maze.Geometry(f.world)
	if g == old || g.Resolution != 2 || g.Plan.Resolution != 2 {
		t.Fatalf("geometry not swapped: %+v", g)
	}
	if err := floorplan.VerifyCoverage(g.Plan, g.Segments); err != nil {
		t.Error(err)
	}

	// doors survive the rebuild
	after := f.world.GetEntitiesWithTag(components.TagDoor)
	if len(after) != len(doors) || after[0].ID != doors[0].ID {
		t.Error("door entities were recreated")
	}

	if err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Boundary = floorplan.BoundaryWrap }); err != nil {
		t.Fatal(err)
	}
	if f.maze.RebuildCount() != 3 || f.maze.Geometry(f.world).Plan.Boundary != floorplan.BoundaryWrap {
		t.Error("boundary change did not rebuild")
	}
}

func TestInvalidChangeEmitsNothing(t *testing.T) {
	f := arcadeFixture(t)

	err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 0 })
	if !errors.Is(err, config.ErrInvalidParameter) {
		t.Errorf("resolution 0: err = %v", err)
	}
	err = f.params.UpdateRender(func(rp *config.RenderParameters) { rp.WallHeight = -1 })
	if !errors.Is(err, config.ErrInvalidParameter) {
		t.Errorf("negative height: err = %v", err)
	}
	dp := f.params.Doors()
	dp.LeaveRadiusTiles = dp.EnterRadiusTiles + 1
	if err := f.params.SetDoors(dp); !errors.Is(err, config.ErrInvalidParameter) {
		t.Errorf("leave radius: err = %v", err)
	}

	if f.events[EventTopologyChanged]+f.events[EventRenderParametersChanged]+f.events[EventDoorParametersChanged] != 0 {
		t.Errorf("invalid changes emitted events: %v", f.events)
	}
	if f.params.Topology().Resolution != config.DefaultTopologyParameters().Resolution {
		t.Error("invalid topology was stored")
	}
	if f.maze.RebuildCount() != 1 {
		t.Error("invalid change rebuilt")
	}
}

func TestFailedRebuildKeepsGeometry(t *testing.T) {
	f := arcadeFixture(t)
	old := f.maze.Geometry(f.world)
	oldTopology := f.params.Topology()

	m := f.maze.TileMaze(f.world)
	row := m.Tiles[3]
	m.Tiles[3] = row[:5]

	err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 2 })
	if !errors.Is(err, floorplan.ErrMalformedMaze) {
		t.Fatalf("UpdateTopology err = %v, want the rebuild error", err)
	}

	if f.maze.Geometry(f.world) != old {
		t.Error("failed rebuild replaced the geometry")
	}
	if f.params.Topology() != oldTopology {
		t.Errorf("topology = %+v, want the built %+v", f.params.Topology(), oldTopology)
	}
	if f.maze.RebuildCount() != 1 {
		t.Errorf("builds = %d", f.maze.RebuildCount())
	}
	if !errors.Is(f.maze.LastError(), floorplan.ErrMalformedMaze) {
		t.Errorf("LastError = %v", f.maze.LastError())
	}
	if f.events[EventMazeRebuilt] != 1 {
		t.Error("failed rebuild emitted a rebuild event")
	}

	// once the maze is repaired the same change can be retried
	m.Tiles[3] = row
	if err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 2 }); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if g := f.maze.Geometry(f.world); g == old || g.Resolution != 2 {
		t.Error("retry did not rebuild at resolution 2")
	}
	if f.maze.LastError() != nil || f.maze.RebuildCount() != 2 {
		t.Errorf("after retry: builds = %d, err = %v", f.maze.RebuildCount(), f.maze.LastError())
	}
}

func TestLoadRejectsMalformedMaze(t *testing.T) {
	f := arcadeFixture(t)
	broken := components.NewMapComponent(4, 4)
	broken.Tiles = broken.Tiles[:2]

	if err := f.maze.Load(f.world, broken, "broken"); !errors.Is(err, floorplan.ErrMalformedMaze) {
		t.Fatalf("err = %v", err)
	}
	// the previous maze is untouched
	if f.maze.TileMaze(f.world) == broken || f.maze.Geometry(f.world) == nil {
		t.Error("malformed maze replaced the loaded one")
	}
}

func TestRebuildWithoutMaze(t *testing.T) {
	world := ecs.NewWorld()
	params := NewParameterStore(world.GetEventManager(), config.Default())
	maze := NewMazeSystem(params, geometry.NewBuilder(config.TileSize, nil), nil)
	maze.Initialize(world)

	if err := maze.Rebuild(world); !errors.Is(err, ErrNoMaze) {
		t.Errorf("err = %v", err)
	}
	if maze.Geometry(world) != nil || len(maze.Primitives(world)) != 0 {
		t.Error("geometry without a maze")
	}
	maze.Update(world, 1)
}

func TestReloadReplacesEntities(t *testing.T) {
	f := arcadeFixture(t)
	room, err := generation.ParseMaze([]string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.maze.Load(f.world, room, "room"); err != nil {
		t.Fatal(err)
	}
	if n := len(f.world.GetEntitiesWithTag(components.TagMaze)); n != 1 {
		t.Errorf("maze entities = %d", n)
	}
	if n := len(f.world.GetEntitiesWithTag(components.TagDoor)); n != 0 {
		t.Errorf("doors left over = %d", n)
	}
	if f.world.FirstWithTag(components.TagHouse) != nil {
		t.Error("house left over")
	}
	if f.maze.RebuildCount() != 1 {
		t.Errorf("builds after reload = %d", f.maze.RebuildCount())
	}
	if _, found := f.maze.DoorOpen(f.world, 12, 13); found {
		t.Error("stale door found")
	}
}

func TestShutdownUnsubscribes(t *testing.T) {
	f := arcadeFixture(t)
	em := f.world.GetEventManager()
	before := em.HandlerCount(EventTopologyChanged)

	f.maze.Shutdown(f.world)
	if em.HandlerCount(EventTopologyChanged) != before-1 {
		t.Fatal("topology handler still registered")
	}
	if err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 3 }); err != nil {
		t.Fatal(err)
	}
	if f.maze.RebuildCount() != 1 {
		t.Error("rebuilt after shutdown")
	}
}

func TestInitializeTwiceSubscribesOnce(t *testing.T) {
	f := arcadeFixture(t)
	em := f.world.GetEventManager()
	before := em.HandlerCount(EventTopologyChanged)

	f.maze.Initialize(f.world)
	if em.HandlerCount(EventTopologyChanged) != before {
		t.Fatal("second Initialize subscribed again")
	}
	if err := f.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution = 2 }); err != nil {
		t.Fatal(err)
	}
	if f.maze.RebuildCount() != 2 {
		t.Errorf("builds = %d, want one rebuild per change", f.maze.RebuildCount())
	}

	f.maze.Shutdown(f.world)
	if em.HandlerCount(EventTopologyChanged) != before-1 {
		t.Error("Shutdown left a topology handler behind")
	}
	f.maze.Initialize(f.world)
	if em.HandlerCount(EventTopologyChanged) != before {
		t.Error("Initialize after Shutdown did not subscribe")
	}
}
