package systems

import (
	"maze3d/components"
	"maze3d/config"
	"maze3d/ecs"
)

// Event type constants
const (
	EventRenderParametersChanged ecs.EventType = "render_parameters_changed"
	EventTopologyChanged         ecs.EventType = "topology_changed"
	EventDoorParametersChanged   ecs.EventType = "door_parameters_changed"
	EventMazeRebuilt             ecs.EventType = "maze_rebuilt"
	EventDoorChanged             ecs.EventType = "door_changed"
	EventHouseLight              ecs.EventType = "house_light"
	EventGhostState              ecs.EventType = "ghost_state"
	EventCameraUpdate            ecs.EventType = "camera_update"
)

// RenderParametersChangedEvent is emitted after the render group changed
type RenderParametersChangedEvent struct {
	Old, New config.RenderParameters
}

// Type returns the event type
func (e RenderParametersChangedEvent) Type() ecs.EventType {
	return EventRenderParametersChanged
}

// TopologyChangedEvent is emitted after the topology group changed
type TopologyChangedEvent struct {
	Old, New config.TopologyParameters
}

// Type returns the event type
func (e TopologyChangedEvent) Type() ecs.EventType {
	return EventTopologyChanged
}

// DoorParametersChangedEvent is emitted after the door radii or wing angle changed
type DoorParametersChangedEvent struct {
	Old, New config.DoorParameters
}

// Type returns the event type
func (e DoorParametersChangedEvent) Type() ecs.EventType {
	return EventDoorParametersChanged
}

// MazeRebuiltEvent is emitted after new geometry replaced the old one
type MazeRebuiltEvent struct {
	MazeID     ecs.EntityID
	Resolution int
	Segments   int
	Primitives int
}

// Type returns the event type
func (e MazeRebuiltEvent) Type() ecs.EventType {
	return EventMazeRebuilt
}

// DoorChangedEvent is emitted when a door opens or closes
type DoorChangedEvent struct {
	DoorID   ecs.EntityID
	Row, Col int
	Open     bool
}

// Type returns the event type
func (e DoorChangedEvent) Type() ecs.EventType {
	return EventDoorChanged
}

// HouseLightEvent is emitted when the ghost house light switches
type HouseLightEvent struct {
	HouseID ecs.EntityID
	Lit     bool
}

// Type returns the event type
func (e HouseLightEvent) Type() ecs.EventType {
	return EventHouseLight
}

// GhostStateEvent is emitted when a patrolling ghost switches state
type GhostStateEvent struct {
	GhostID  ecs.EntityID
	Name     string
	From, To components.GhostState
}

// Type returns the event type
func (e GhostStateEvent) Type() ecs.EventType {
	return EventGhostState
}

// CameraUpdateEvent is emitted when the camera zoom or offset changes
type CameraUpdateEvent struct {
	CameraID         ecs.EntityID // ID of the camera entity
	Zoom             float64
	OffsetX, OffsetY float64
	ViewportW        int
	ViewportH        int
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
