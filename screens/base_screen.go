package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BaseScreen provides the size bookkeeping shared by all screens
type BaseScreen struct {
	// Screen dimensions
	width  int
	height int
}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout implements the Screen interface; the logical size follows the window
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width = outsideWidth
	s.height = outsideHeight
	return outsideWidth, outsideHeight
}

// Size returns the last laid out size
func (s *BaseScreen) Size() (width, height int) {
	return s.width, s.height
}

// centered returns the top-left corner that centres a w x h box on screen
func centered(screen *ebiten.Image, w, h int) (x, y int) {
	b := screen.Bounds()
	return (b.Dx() - w) / 2, (b.Dy() - h) / 2
}
