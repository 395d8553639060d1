package screens

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	lines      []string
	width      int
	height     int
	closeKeys  []ebiten.Key
	background color.Color
	modal      *ebiten.Image
}

// NewModalScreen creates a new modal screen closed by any of closeKeys
func NewModalScreen(title string, lines []string, closeKeys ...ebiten.Key) *ModalScreen {
	width := len(title)*6 + 40
	for _, l := range lines {
		if w := len(l)*6 + 20; w > width {
			width = w
		}
	}
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		lines:      lines,
		width:      width,
		height:     40 + len(lines)*16 + 10,
		closeKeys:  closeKeys,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
	}
}

// HelpLines lists the viewer key bindings
func HelpLines() []string {
	var lines []string
	for _, b := range keyBindings {
		// unlabelled bindings share the line above
		if b.keys == "" {
			continue
		}
		lines = append(lines, b.keys+strings.Repeat(" ", 10-len(b.keys))+b.help)
	}
	return lines
}

// NewHelpScreen shows the key bindings; H or Esc closes it
func NewHelpScreen() *ModalScreen {
	return NewModalScreen("KEYS", HelpLines(), ebiten.KeyH, ebiten.KeyEscape)
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, k := range s.closeKeys {
		if inpututil.IsKeyJustPressed(k) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	x, y := centered(screen, s.width, s.height)

	if s.modal == nil {
		s.modal = ebiten.NewImage(s.width, s.height)
	}
	s.modal.Fill(s.background)

	// Draw border
	vector.StrokeRect(s.modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, color.White, false)

	// Draw title
	titleX := (s.width - len(s.title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(s.modal, s.title, titleX, 10)

	for i, line := range s.lines {
		ebitenutil.DebugPrintAt(s.modal, line, 10, 40+i*16)
	}

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(s.modal, op)
}
