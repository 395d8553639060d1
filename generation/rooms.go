package generation

import (
	"fmt"
	"math/rand"

	"maze3d/components"
	"maze3d/floorplan"
)

// Smallest maze the room generator can fit a ghost house and its walkway into
const (
	MinRandomCols = 20
	MinRandomRows = 15
)

// Ghost house footprint including its walls
const (
	houseWidth  = 8
	houseHeight = 5
)

// MazeGenerator handles procedural generation of maze layouts
type MazeGenerator struct {
	rng *rand.Rand
}

// NewMazeGenerator creates a generator; the same seed always yields the same maze
func NewMazeGenerator(seed int64) *MazeGenerator {
	return &MazeGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GenerateRoomsAndCorridors creates random rooms, connects them with corridors and
// places a ghost house with a two-tile door in the middle of the map.
func (g *MazeGenerator) GenerateRoomsAndCorridors(width, height int) (*components.MapComponent, error) {
	if width < MinRandomCols || height < MinRandomRows {
		return nil, fmt.Errorf("%w: random maze must be at least %dx%d, got %dx%d",
			floorplan.ErrMalformedMaze, MinRandomCols, MinRandomRows, width, height)
	}

	// Start with walls everywhere
	mapComp := components.NewMapComponent(width, height)

	numRooms := 5 + g.rng.Intn(5) // 5-9 rooms
	minRoomSize := 3
	maxRoomSize := 7

	var rooms [][4]int // Store rooms as [x, y, width, height]

	for i := 0; i < numRooms; i++ {
		roomWidth := minRoomSize + g.rng.Intn(maxRoomSize-minRoomSize+1)
		roomHeight := minRoomSize + g.rng.Intn(maxRoomSize-minRoomSize+1)

		// Random room position (leaving space for the outer wall)
		roomX := g.rng.Intn(width-roomWidth-1) + 1
		roomY := g.rng.Intn(height-roomHeight-1) + 1

		rooms = append(rooms, [4]int{roomX, roomY, roomWidth, roomHeight})

		for y := roomY; y < roomY+roomHeight; y++ {
			for x := roomX; x < roomX+roomWidth; x++ {
				mapComp.SetTile(x, y, components.TileFloor)
			}
		}

		// If this isn't the first room, connect it to the previous room
		if i > 0 {
			currentX := roomX + roomWidth/2
			currentY := roomY + roomHeight/2

			prevRoom := rooms[i-1]
			prevX := prevRoom[0] + prevRoom[2]/2
			prevY := prevRoom[1] + prevRoom[3]/2

			g.CreateCorridor(mapComp, currentX, currentY, prevX, prevY)
		}
	}

	hx := (width - houseWidth) / 2
	hy := (height - houseHeight) / 2

	// Link the walkway above the door to the first room. The corridor may cut through the
	// house area; stamping the house afterwards restores it, and the walkway ring keeps
	// every corridor that crossed it connected.
	first := rooms[0]
	g.CreateCorridor(mapComp, hx+houseWidth/2, hy-1, first[0]+first[2]/2, first[1]+first[3]/2)

	g.placeHouse(mapComp, hx, hy)

	return mapComp, nil
}

// placeHouse stamps the ghost house with its top-left wall corner at (hx, hy), surrounded
// by a one-tile walkway
func (g *MazeGenerator) placeHouse(mapComp *components.MapComponent, hx, hy int) {
	for y := hy - 1; y <= hy+houseHeight; y++ {
		for x := hx - 1; x <= hx+houseWidth; x++ {
			mapComp.SetTile(x, y, components.TileFloor)
		}
	}

	for y := hy; y < hy+houseHeight; y++ {
		for x := hx; x < hx+houseWidth; x++ {
			edge := x == hx || x == hx+houseWidth-1 || y == hy || y == hy+houseHeight-1
			if edge {
				mapComp.SetTile(x, y, components.TileWall)
			} else {
				mapComp.SetTile(x, y, components.TileHouse)
			}
		}
	}

	mid := hx + houseWidth/2
	mapComp.SetTile(mid-1, hy, components.TileDoor)
	mapComp.SetTile(mid, hy, components.TileDoor)
}

// CreateCorridor creates a corridor between two points
func (g *MazeGenerator) CreateCorridor(mapComp *components.MapComponent, x1, y1, x2, y2 int) {
	// Randomly choose between horizontal-first or vertical-first
	if g.rng.Intn(2) == 0 {
		g.createHorizontalCorridor(mapComp, x1, x2, y1)
		g.createVerticalCorridor(mapComp, y1, y2, x2)
	} else {
		g.createVerticalCorridor(mapComp, y1, y2, x1)
		g.createHorizontalCorridor(mapComp, x1, x2, y2)
	}
}

// createHorizontalCorridor creates a horizontal corridor from x1 to x2 at y, inside the outer wall
func (g *MazeGenerator) createHorizontalCorridor(mapComp *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if x > 0 && x < mapComp.Width-1 && y > 0 && y < mapComp.Height-1 {
			mapComp.SetTile(x, y, components.TileFloor)
		}
	}
}

// createVerticalCorridor creates a vertical corridor from y1 to y2 at x, inside the outer wall
func (g *MazeGenerator) createVerticalCorridor(mapComp *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if x > 0 && x < mapComp.Width-1 && y > 0 && y < mapComp.Height-1 {
			mapComp.SetTile(x, y, components.TileFloor)
		}
	}
}
