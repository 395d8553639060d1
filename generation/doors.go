package generation

import (
	"maze3d/components"
	"maze3d/geometry"
)

// DoorRun is a straight line of adjacent door tiles
type DoorRun struct {
	X, Y   int // first tile
	Length int
	// Horizontal runs extend to +X and close a gap in a horizontal wall
	Horizontal bool
}

// Tiles returns the (x, y) tiles of the run
func (r DoorRun) Tiles() [][2]int {
	tiles := make([][2]int, r.Length)
	for i := range tiles {
		if r.Horizontal {
			tiles[i] = [2]int{r.X + i, r.Y}
		} else {
			tiles[i] = [2]int{r.X, r.Y + i}
		}
	}
	return tiles
}

// Center returns the world position of the middle of the run
func (r DoorRun) Center(tileSize float64) geometry.Vec2 {
	if r.Horizontal {
		return geometry.Vec2{
			X: (float64(r.X) + float64(r.Length)/2) * tileSize,
			Z: (float64(r.Y) + 0.5) * tileSize,
		}
	}
	return geometry.Vec2{
		X: (float64(r.X) + 0.5) * tileSize,
		Z: (float64(r.Y) + float64(r.Length)/2) * tileSize,
	}
}

// FindDoorRuns groups door tiles into runs, scanning row by row.
// A run goes horizontal when the next tile to the right is a door, or when a single door
// sits between walls on its left and right; otherwise it goes down.
func FindDoorRuns(mapComp *components.MapComponent) []DoorRun {
	seen := make(map[[2]int]bool)
	var runs []DoorRun

	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] != components.TileDoor || seen[[2]int{x, y}] {
				continue
			}

			run := DoorRun{X: x, Y: y, Length: 1}
			right := mapComp.Tile(x+1, y) == components.TileDoor
			down := mapComp.Tile(x, y+1) == components.TileDoor
			mask := CalculateWallMask(mapComp, x, y)
			run.Horizontal = right || (!down && mask&(WallConnectLeft|WallConnectRight) == WallConnectLeft|WallConnectRight)

			for {
				nx, ny := x+run.Length, y
				if !run.Horizontal {
					nx, ny = x, y+run.Length
				}
				if mapComp.Tile(nx, ny) != components.TileDoor || seen[[2]int{nx, ny}] {
					break
				}
				run.Length++
			}

			for _, t := range run.Tiles() {
				seen[t] = true
			}
			runs = append(runs, run)
		}
	}

	return runs
}

// FindHouse returns the tile bounds of the ghost house interior (inclusive)
func FindHouse(mapComp *components.MapComponent) (minX, minY, maxX, maxY int, ok bool) {
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] != components.TileHouse {
				continue
			}
			if !ok {
				minX, minY, maxX, maxY, ok = x, y, x, y, true
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	return
}

// HouseCenter returns the world centre of the ghost house. Without house tiles the first
// door run's centre is used; ok is false when the map has neither.
func HouseCenter(mapComp *components.MapComponent, tileSize float64) (geometry.Vec2, bool) {
	if minX, minY, maxX, maxY, ok := FindHouse(mapComp); ok {
		return geometry.Vec2{
			X: float64(minX+maxX+1) / 2 * tileSize,
			Z: float64(minY+maxY+1) / 2 * tileSize,
		}, true
	}
	if runs := FindDoorRuns(mapComp); len(runs) > 0 {
		return runs[0].Center(tileSize), true
	}
	return geometry.Vec2{}, false
}
