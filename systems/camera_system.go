package systems

import (
	"math"

	"maze3d/components"
	"maze3d/config"
	"maze3d/ecs"
	"maze3d/geometry"
)

// CameraSystem fits the maze into the viewport below the HUD
type CameraSystem struct {
	viewportW, viewportH int
	margin               float64
}

// NewCameraSystem creates a new camera system for the default window size
func NewCameraSystem() *CameraSystem {
	w, h := config.GetWindowSize()
	return &CameraSystem{viewportW: w, viewportH: h, margin: 16}
}

// SetViewport changes the viewport size; the camera refits on the next update
func (s *CameraSystem) SetViewport(w, h int) {
	s.viewportW, s.viewportH = w, h
}

// Update recomputes zoom and offset of every camera from the current maze bounds
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	cameraEntities := world.GetEntitiesWithTag("camera")
	if len(cameraEntities) == 0 {
		return
	}

	bounds, ok := mazeBounds(world)
	if !ok {
		return
	}
	zoom, offX, offY := s.Fit(bounds)

	for _, cameraEntity := range cameraEntities {
		cameraComp, exists := world.GetComponent(cameraEntity.ID, components.Camera)
		if !exists {
			continue
		}
		camera := cameraComp.(*components.CameraComponent)

		if camera.Zoom == zoom && camera.OffsetX == offX && camera.OffsetY == offY {
			continue
		}
		camera.Zoom, camera.OffsetX, camera.OffsetY = zoom, offX, offY

		world.EmitEvent(CameraUpdateEvent{
			CameraID:  cameraEntity.ID,
			Zoom:      zoom,
			OffsetX:   offX,
			OffsetY:   offY,
			ViewportW: s.viewportW,
			ViewportH: s.viewportH,
		})
	}
}

// Fit returns the zoom and offset that center bounds in the viewport area below the HUD
func (s *CameraSystem) Fit(bounds geometry.BoundingBox) (zoom, offsetX, offsetY float64) {
	areaW := float64(s.viewportW) - 2*s.margin
	areaH := float64(s.viewportH-config.HUDHeight) - 2*s.margin
	w := bounds.Max.X - bounds.Min.X
	d := bounds.Max.Z - bounds.Min.Z
	if w <= 0 || d <= 0 || areaW <= 0 || areaH <= 0 {
		return 1, 0, float64(config.HUDHeight)
	}

	zoom = math.Min(areaW/w, areaH/d)
	offsetX = s.margin + (areaW-w*zoom)/2 - bounds.Min.X*zoom
	offsetY = float64(config.HUDHeight) + s.margin + (areaH-d*zoom)/2 - bounds.Min.Z*zoom
	return zoom, offsetX, offsetY
}

// WorldToScreen converts floor coordinates to screen pixels
func (s *CameraSystem) WorldToScreen(world *ecs.World, p geometry.Vec2) (screenX, screenY float64) {
	camera := activeCamera(world)
	if camera == nil {
		// If no camera, just pass through the coordinates
		return p.X, p.Z
	}
	return p.X*camera.Zoom + camera.OffsetX, p.Z*camera.Zoom + camera.OffsetY
}

// ScreenToWorld converts screen pixels to floor coordinates
func (s *CameraSystem) ScreenToWorld(world *ecs.World, screenX, screenY float64) geometry.Vec2 {
	camera := activeCamera(world)
	if camera == nil || camera.Zoom == 0 {
		return geometry.Vec2{X: screenX, Z: screenY}
	}
	return geometry.Vec2{
		X: (screenX - camera.OffsetX) / camera.Zoom,
		Z: (screenY - camera.OffsetY) / camera.Zoom,
	}
}

func activeCamera(world *ecs.World) *components.CameraComponent {
	cameraEntity := world.FirstWithTag("camera")
	if cameraEntity == nil {
		return nil
	}
	comp, exists := world.GetComponent(cameraEntity.ID, components.Camera)
	if !exists {
		return nil
	}
	return comp.(*components.CameraComponent)
}

func mazeBounds(world *ecs.World) (geometry.BoundingBox, bool) {
	maze := world.FirstWithTag(components.TagMaze)
	if maze == nil {
		return geometry.BoundingBox{}, false
	}
	comp, ok := world.GetComponent(maze.ID, components.MazeGeometry)
	if !ok {
		return geometry.BoundingBox{}, false
	}
	return comp.(*components.MazeGeometryComponent).Walls.Bounds(), true
}
