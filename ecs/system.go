package ecs

// System is updated once per host frame, before the frame is drawn
type System interface {
	// Update is called each frame with the elapsed time in seconds
	Update(world *World, dt float64)
}
