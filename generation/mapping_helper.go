package generation

import (
	"maze3d/components"
)

// Wall connection constants used for door orientation
const (
	WallConnectTop    = 1
	WallConnectRight  = 2
	WallConnectBottom = 4
	WallConnectLeft   = 8
)

// CalculateWallMask calculates the bitmask value for a tile
// based on which adjacent tiles are walls or doors
func CalculateWallMask(mapComp *components.MapComponent, x, y int) int {
	mask := 0

	// Check for walls in each direction and set appropriate bits
	if IsWallOrDoor(mapComp, x, y-1) { // Top
		mask |= WallConnectTop
	}
	if IsWallOrDoor(mapComp, x+1, y) { // Right
		mask |= WallConnectRight
	}
	if IsWallOrDoor(mapComp, x, y+1) { // Bottom
		mask |= WallConnectBottom
	}
	if IsWallOrDoor(mapComp, x-1, y) { // Left
		mask |= WallConnectLeft
	}

	return mask
}

// HasAdjacentFloor checks if a position has at least one adjacent open tile
func HasAdjacentFloor(mapComp *components.MapComponent, x, y int) bool {
	return CalculateWallMask(mapComp, x, y) != WallConnectTop|WallConnectRight|WallConnectBottom|WallConnectLeft
}

// IsWallOrDoor checks if a tile is a wall or a door
func IsWallOrDoor(mapComp *components.MapComponent, x, y int) bool {
	// Out-of-bounds reads as wall
	tileType := mapComp.Tile(x, y)
	return tileType == components.TileWall || tileType == components.TileDoor
}

// IsFloorType checks if a tile is open space a ghost can stand on
func IsFloorType(tileType int) bool {
	return tileType == components.TileFloor || tileType == components.TileHouse
}

// CountTiles returns how many tiles of tileType the map holds
func CountTiles(mapComp *components.MapComponent, tileType int) int {
	n := 0
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] == tileType {
				n++
			}
		}
	}
	return n
}
