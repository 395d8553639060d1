package components

import (
	"maze3d/ecs"
)

// Define component IDs for the maze world
const (
	MapComponentID ecs.ComponentID = iota
	MazeGeometry                   // Floor plan, segments and primitives built from the map
	Door                           // One per door tile
	Ghost                          // Ghost position, visibility and state
	HouseLight                     // Ghost house light
	Patrol                         // Demo route for a ghost
	Camera                         // Camera component for viewport management
	Name                           // Name component for storing entity display names
)

// Entity tags
const (
	TagMaze  = "maze"
	TagDoor  = "door"
	TagGhost = "ghost"
	TagHouse = "house"
)
