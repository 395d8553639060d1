package config

// Viewer layout configuration
const (
	// TileSize is the default edge length of one maze tile in world units
	TileSize = 8.0

	// Default window dimensions in pixels
	WindowWidth  = 1280
	WindowHeight = 800

	// Pixels reserved at the top of the viewer for the status line and message log
	HUDHeight = 96

	// Number of log lines shown in the viewer overlay
	HUDMessageLines = 5
)

// GetWindowSize returns the default window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
