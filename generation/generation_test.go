package generation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"maze3d/components"
	"maze3d/config"
	"maze3d/floorplan"
	"maze3d/geometry"
)

func TestParseMaze(t *testing.T) {
	m, err := ParseMaze([]string{
		"#####",
		"#.-h#",
		"# x #",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	if m.Cols() != 5 || m.Rows() != 4 {
		t.Fatalf("dims = %dx%d", m.Cols(), m.Rows())
	}
	checks := []struct {
		x, y, want int
	}{
		{0, 0, components.TileWall},
		{1, 1, components.TileFloor},
		{2, 1, components.TileDoor},
		{3, 1, components.TileHouse},
		{1, 2, components.TileFloor},
		{2, 2, components.TileFloor},
	}
	for _, c := range checks {
		if got := m.Tile(c.x, c.y); got != c.want {
			t.Errorf("tile (%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestParseMazeRejectsMalformed(t *testing.T) {
	tests := map[string][]string{
		"no rows":   nil,
		"empty row": {""},
		"ragged":    {"###", "#.", "###"},
	}
	for name, lines := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseMaze(lines); !errors.Is(err, floorplan.ErrMalformedMaze) {
				t.Errorf("err = %v, want ErrMalformedMaze", err)
			}
		})
	}
}

func TestLoadMazeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.txt")
	if err := os.WriteFile(path, []byte("###\r\n#.#\r\n###\r\n\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMazeFile(path)
	if err != nil {
		t.Fatalf("LoadMazeFile: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 3 || m.IsWall(1, 1) {
		t.Errorf("unexpected maze:\n%s", m)
	}

	if _, err := LoadMazeFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestArcadeLayout(t *testing.T) {
	m := Arcade()
	if m.Cols() != 28 || m.Rows() != 31 {
		t.Fatalf("arcade is %dx%d", m.Cols(), m.Rows())
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}

	runs := FindDoorRuns(m)
	if len(runs) != 1 {
		t.Fatalf("door runs = %+v, want one", runs)
	}
	run := runs[0]
	if run.X != 13 || run.Y != 12 || run.Length != 2 || !run.Horizontal {
		t.Errorf("run = %+v", run)
	}
	if c := run.Center(config.TileSize); c != (geometry.Vec2{X: 14 * config.TileSize, Z: 12.5 * config.TileSize}) {
		t.Errorf("entry point = %+v", c)
	}

	centre, ok := HouseCenter(m, config.TileSize)
	if !ok || centre != (geometry.Vec2{X: 14 * config.TileSize, Z: 14.5 * config.TileSize}) {
		t.Errorf("house centre = %+v, %v", centre, ok)
	}

	// every layout row must survive a floor plan build at every boundary
	for _, b := range []floorplan.Boundary{floorplan.BoundaryWall, floorplan.BoundaryOpen, floorplan.BoundaryWrap} {
		plan, err := floorplan.Build(m, floorplan.Options{Resolution: 2, Boundary: b})
		if err != nil {
			t.Fatalf("%v: %v", b, err)
		}
		if err := floorplan.VerifyCoverage(plan, floorplan.Segmentize(plan)); err != nil {
			t.Errorf("%v: %v", b, err)
		}
	}
}

func TestFindDoorRunsOrientation(t *testing.T) {
	m, err := ParseMaze([]string{
		"#######",
		"#.....#",
		"###-###",
		"#.....#",
		"#-#####",
		"#-#####",
		"#.....#",
		"#######",
	})
	if err != nil {
		t.Fatal(err)
	}

	runs := FindDoorRuns(m)
	if len(runs) != 2 {
		t.Fatalf("runs = %+v", runs)
	}
	if r := runs[0]; r.X != 3 || r.Y != 2 || r.Length != 1 || !r.Horizontal {
		t.Errorf("single door between walls = %+v", r)
	}
	if r := runs[1]; r.X != 1 || r.Y != 4 || r.Length != 2 || r.Horizontal {
		t.Errorf("vertical run = %+v", r)
	}
	if got := runs[1].Center(10); got != (geometry.Vec2{X: 15, Z: 50}) {
		t.Errorf("vertical centre = %+v", got)
	}
	if tiles := runs[1].Tiles(); len(tiles) != 2 || tiles[1] != [2]int{1, 5} {
		t.Errorf("tiles = %v", tiles)
	}
}

func TestHouseCenterWithoutHouse(t *testing.T) {
	m, _ := ParseMaze([]string{"#-#", "#.#"})
	if c, ok := HouseCenter(m, 2); !ok || c != (geometry.Vec2{X: 3, Z: 1}) {
		t.Errorf("centre = %+v, %v", c, ok)
	}
	m, _ = ParseMaze([]string{"...", "..."})
	if _, ok := HouseCenter(m, 2); ok {
		t.Error("open field has no house")
	}
}

func TestRandomMazeIsDeterministic(t *testing.T) {
	a, err := NewMazeGenerator(42).GenerateRoomsAndCorridors(28, 31)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewMazeGenerator(42).GenerateRoomsAndCorridors(28, 31)
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
	c, _ := NewMazeGenerator(43).GenerateRoomsAndCorridors(28, 31)
	if a.String() == c.String() {
		t.Error("different seeds produced the same maze")
	}
}

func TestRandomMazeStructure(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m, err := NewMazeGenerator(seed).GenerateRoomsAndCorridors(MinRandomCols, MinRandomRows)
		if err != nil {
			t.Fatal(err)
		}

		for x := 0; x < m.Width; x++ {
			if !m.IsWall(0, x) || !m.IsWall(m.Height-1, x) {
				t.Fatalf("seed %d: outer wall broken at column %d", seed, x)
			}
		}
		if n := CountTiles(m, components.TileDoor); n != 2 {
			t.Errorf("seed %d: %d door tiles, want 2", seed, n)
		}
		if runs := FindDoorRuns(m); len(runs) != 1 || !runs[0].Horizontal {
			t.Errorf("seed %d: door runs %+v", seed, runs)
		}
		if unreachable := unreachableOpenTiles(m); unreachable > 0 {
			t.Errorf("seed %d: %d open tiles unreachable:\n%s", seed, unreachable, m)
		}
	}
}

func TestRandomMazeTooSmall(t *testing.T) {
	_, err := NewMazeGenerator(1).GenerateRoomsAndCorridors(10, 10)
	if !errors.Is(err, floorplan.ErrMalformedMaze) {
		t.Errorf("err = %v", err)
	}
}

func TestSourceFor(t *testing.T) {
	tests := []struct {
		name string
		in   config.MazeSource
		want string
	}{
		{"default", config.MazeSource{}, "built-in arcade layout"},
		{"file wins", config.MazeSource{File: "x.txt", Layout: []string{"#"}}, "file x.txt"},
		{"layout", config.MazeSource{Layout: []string{"#"}}, "inline layout (1 rows)"},
		{"random defaults", config.MazeSource{Random: &config.RandomMaze{Seed: 7}}, "random 28x31 seed 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceFor(tt.in).Describe(); got != tt.want {
				t.Errorf("Describe = %q, want %q", got, tt.want)
			}
		})
	}

	m, err := SourceFor(config.MazeSource{Random: &config.RandomMaze{Seed: 3}}).Load()
	if err != nil || m.Cols() != DefaultRandomCols {
		t.Errorf("random load: %v", err)
	}
}

func TestHasAdjacentFloor(t *testing.T) {
	m, _ := ParseMaze([]string{"###", "#.#", "###"})
	if !HasAdjacentFloor(m, 1, 0) || HasAdjacentFloor(m, 0, 0) {
		t.Error("HasAdjacentFloor misread the neighbourhood")
	}
	if !IsFloorType(components.TileHouse) || IsFloorType(components.TileDoor) {
		t.Error("IsFloorType")
	}
}

// unreachableOpenTiles flood fills from the first open tile, walking through doors
func unreachableOpenTiles(m *components.MapComponent) int {
	start := [2]int{-1, -1}
	open := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsWall(y, x) {
				open++
				if start[0] < 0 {
					start = [2]int{x, y}
				}
			}
		}
	}
	if open == 0 {
		return 0
	}

	seen := map[[2]int]bool{start: true}
	queue := [][2]int{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{c[0] + d[0], c[1] + d[1]}
			if seen[n] || m.IsWall(n[1], n[0]) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return open - len(seen)
}
