package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"maze3d/config"
	"maze3d/ecs"
	"maze3d/systems"
)

// Action is a viewer command bound to a key
type Action int

const (
	ActionResolutionUp Action = iota
	ActionResolutionDown
	ActionHeightUp
	ActionHeightDown
	ActionThicknessUp
	ActionThicknessDown
	ActionCycleBoundary
	ActionHelp
	ActionLog
	ActionQuit
)

// Parameter steps per key press
const (
	HeightStep    = 0.5
	ThicknessStep = 0.25
)

type keyBinding struct {
	keys   string
	help   string
	action Action
	ebiten []ebiten.Key
}

var keyBindings = []keyBinding{
	{"+ / -", "resolution (rebuilds)", ActionResolutionUp, []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
	{"", "", ActionResolutionDown, []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
	{"Up/Down", "wall height", ActionHeightUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{"", "", ActionHeightDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{"[ / ]", "wall thickness", ActionThicknessDown, []ebiten.Key{ebiten.KeyBracketLeft}},
	{"", "", ActionThicknessUp, []ebiten.Key{ebiten.KeyBracketRight}},
	{"B", "boundary policy (rebuilds)", ActionCycleBoundary, []ebiten.Key{ebiten.KeyB}},
	{"H", "this help", ActionHelp, []ebiten.Key{ebiten.KeyH}},
	{"F1", "message log", ActionLog, []ebiten.Key{ebiten.KeyF1}},
	{"Esc", "quit", ActionQuit, []ebiten.Key{ebiten.KeyEscape}},
}

// MazeScreen shows the maze and edits its parameters
type MazeScreen struct {
	*BaseScreen
	world    *ecs.World
	params   *systems.ParameterStore
	camera   *systems.CameraSystem
	render   *systems.RenderSystem
	messages *systems.MessageLog
	overlays *ScreenStack
}

// NewMazeScreen creates the main viewer screen
func NewMazeScreen(world *ecs.World, params *systems.ParameterStore, camera *systems.CameraSystem,
	render *systems.RenderSystem, messages *systems.MessageLog) *MazeScreen {
	return &MazeScreen{
		BaseScreen: NewBaseScreen(),
		world:      world,
		params:     params,
		camera:     camera,
		render:     render,
		messages:   messages,
		overlays:   NewScreenStack(),
	}
}

// Overlays returns the stack of popups drawn over the maze
func (s *MazeScreen) Overlays() *ScreenStack {
	return s.overlays
}

// Update handles input and advances the world
func (s *MazeScreen) Update() error {
	// Overlays take the input and pause the world
	if s.overlays.Len() > 0 {
		return s.overlays.Update()
	}

	for _, b := range keyBindings {
		for _, k := range b.ebiten {
			if inpututil.IsKeyJustPressed(k) {
				if err := s.Apply(b.action); err != nil {
					return err
				}
			}
		}
	}

	s.world.Update(1.0 / 60.0)
	return nil
}

// Apply runs one viewer command. Rejected parameter values are reported in the message
// log; only quitting returns an error.
func (s *MazeScreen) Apply(action Action) error {
	var err error
	switch action {
	case ActionResolutionUp, ActionResolutionDown:
		delta := 1
		if action == ActionResolutionDown {
			delta = -1
		}
		old := s.params.Topology().Resolution
		err = s.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Resolution += delta })
		if err == nil {
			s.messages.AddTyped(fmt.Sprintf("Resolution %d -> %d", old, s.params.Topology().Resolution), systems.MessageTypeParameter)
		}
	case ActionHeightUp, ActionHeightDown:
		delta := HeightStep
		if action == ActionHeightDown {
			delta = -delta
		}
		err = s.params.UpdateRender(func(rp *config.RenderParameters) { rp.WallHeight += delta })
		if err == nil {
			s.messages.AddTyped(fmt.Sprintf("Wall height %.2f", s.params.Render().WallHeight), systems.MessageTypeParameter)
		}
	case ActionThicknessUp, ActionThicknessDown:
		delta := ThicknessStep
		if action == ActionThicknessDown {
			delta = -delta
		}
		err = s.params.UpdateRender(func(rp *config.RenderParameters) { rp.WallThickness += delta })
		if err == nil {
			s.messages.AddTyped(fmt.Sprintf("Wall thickness %.2f", s.params.Render().WallThickness), systems.MessageTypeParameter)
		}
	case ActionCycleBoundary:
		err = s.params.UpdateTopology(func(tp *config.TopologyParameters) { tp.Boundary = tp.Boundary.Next() })
		if err == nil {
			s.messages.AddTyped(fmt.Sprintf("Boundary %s", s.params.Topology().Boundary), systems.MessageTypeParameter)
		}
	case ActionHelp:
		s.overlays.Push(NewHelpScreen())
	case ActionLog:
		s.overlays.Push(NewLogScreen(s.messages))
	case ActionQuit:
		return ebiten.Termination
	}

	if err != nil {
		s.messages.AddTyped(err.Error(), systems.MessageTypeAlert)
	}
	return nil
}

// Draw draws the maze and any overlays
func (s *MazeScreen) Draw(screen *ebiten.Image) {
	s.render.Draw(s.world, screen)
	s.overlays.Draw(screen)
}

// Layout keeps the camera fitted to the window
func (s *MazeScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.BaseScreen.Layout(outsideWidth, outsideHeight)
	s.camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
