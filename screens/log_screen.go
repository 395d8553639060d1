package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"maze3d/systems"
)

// LogScreen shows the full message log in a scrollable window
type LogScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	modal        *ebiten.Image
	lineImg      *ebiten.Image
}

const (
	logStartY     = 30
	logLineHeight = 16
)

// NewLogScreen creates a log window over log
func NewLogScreen(log *systems.MessageLog) *LogScreen {
	return &LogScreen{
		BaseScreen: NewBaseScreen(),
		log:        log,
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
	}
}

// Update handles input for the log screen
func (s *LogScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.ScrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.ScrollDown()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// ScrollUp moves the view up by one line
func (s *LogScreen) ScrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// ScrollDown moves the view down by one line
func (s *LogScreen) ScrollDown() {
	if s.scrollOffset < len(s.log.Messages)-s.maxLines() {
		s.scrollOffset++
	}
}

func (s *LogScreen) maxLines() int {
	return (s.height - logStartY - 20) / logLineHeight
}

// Visible returns the messages currently shown, oldest first
func (s *LogScreen) Visible() []systems.ColoredMessage {
	messages := s.log.Messages
	startIdx := s.scrollOffset
	if startIdx > len(messages)-s.maxLines() {
		startIdx = len(messages) - s.maxLines()
	}
	if startIdx < 0 {
		startIdx = 0
	}
	end := startIdx + s.maxLines()
	if end > len(messages) {
		end = len(messages)
	}
	return messages[startIdx:end]
}

// Draw renders the log screen
func (s *LogScreen) Draw(screen *ebiten.Image) {
	x, y := centered(screen, s.width, s.height)

	if s.modal == nil {
		s.modal = ebiten.NewImage(s.width, s.height)
		s.lineImg = ebiten.NewImage(s.width, logLineHeight)
	}
	s.modal.Fill(s.background)

	// Draw frame
	vector.StrokeRect(s.modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, color.White, false)

	title := "MESSAGE LOG"
	ebitenutil.DebugPrintAt(s.modal, title, (s.width-len(title)*6)/2, 8)

	// Draw each line in its message colour
	for i, msg := range s.Visible() {
		s.lineImg.Clear()
		ebitenutil.DebugPrintAt(s.lineImg, msg.Text, 10, 0)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(0, float64(logStartY+i*logLineHeight))
		s.modal.DrawImage(s.lineImg, op)
	}

	// Draw scroll indicator if needed
	if n := len(s.log.Messages); n > s.maxLines() {
		area := float32(s.height - logStartY - 20)
		barHeight := float32(s.maxLines()) / float32(n) * area
		barY := float32(logStartY) + float32(s.scrollOffset)/float32(n)*area
		vector.DrawFilledRect(s.modal, float32(s.width-10), barY, 5, barHeight, color.White, false)
	}

	ebitenutil.DebugPrintAt(s.modal, "Up/Down: Scroll  F1/ESC: Close", 10, s.height-20)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(s.modal, op)
}
