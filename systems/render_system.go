package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"maze3d/components"
	"maze3d/config"
	"maze3d/ecs"
	"maze3d/floorplan"
	"maze3d/geometry"
)

const lineHeight = 16

// RenderSystem draws the maze geometry top-down together with doors, ghosts and the HUD
type RenderSystem struct {
	textures     *TextureCache
	maze         *MazeSystem
	params       *ParameterStore
	messages     *MessageLog
	cameraSystem *CameraSystem // Reference to the camera system
	textImage    *ebiten.Image
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(textures *TextureCache, maze *MazeSystem, params *ParameterStore, messages *MessageLog) *RenderSystem {
	return &RenderSystem{
		textures:     textures,
		maze:         maze,
		params:       params,
		messages:     messages,
		cameraSystem: nil, // Will be set via SetCameraSystem
	}
}

// SetCameraSystem sets the camera system to be used for rendering
func (s *RenderSystem) SetCameraSystem(cameraSystem *CameraSystem) {
	s.cameraSystem = cameraSystem
}

// Update finds the camera system when none was set
func (s *RenderSystem) Update(world *ecs.World, dt float64) {
	if s.cameraSystem == nil {
		// Find a camera system by iterating through the world's systems
		for _, system := range world.GetSystems() {
			if cameraSystem, ok := system.(*CameraSystem); ok {
				s.cameraSystem = cameraSystem
				break
			}
		}
	}
}

// Draw renders the maze and the HUD
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	// Clear the screen
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if s.cameraSystem != nil {
		s.drawMaze(world, screen)
		s.drawHouse(world, screen)
		s.drawGhosts(world, screen)
	}

	s.drawStatus(world, screen)
	s.drawMessages(screen)
}

func (s *RenderSystem) drawMaze(world *ecs.World, screen *ebiten.Image) {
	g := s.maze.Geometry(world)
	if g == nil {
		return
	}

	floor := g.Walls.Floor()
	s.drawBox(world, screen, floor)

	// bases first so the caps are drawn over them
	walls := g.Walls.Walls()
	for _, p := range walls {
		if p.Part == geometry.PartBase {
			s.drawBox(world, screen, p)
		}
	}
	for _, p := range walls {
		if p.Part == geometry.PartTop {
			s.strokeBox(world, screen, p)
		}
	}

	for _, e := range world.GetEntitiesWithTag(components.TagDoor) {
		comp, ok := world.GetComponent(e.ID, components.Door)
		if !ok {
			continue
		}
		door := comp.(*components.DoorComponent)
		if door.Wing != nil {
			s.drawWing(world, screen, door)
		}
	}
}

// drawBox fills the footprint of p, textured when the material has a loaded texture
func (s *RenderSystem) drawBox(world *ecs.World, screen *ebiten.Image, p *geometry.Primitive) {
	lo, hi := p.Footprint()
	x0, y0 := s.cameraSystem.WorldToScreen(world, lo)
	x1, y1 := s.cameraSystem.WorldToScreen(world, hi)
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	if p.Material.Texture != "" && s.textures != nil {
		if tex := s.textures.Image(p.Material.Texture); tex != nil {
			b := tex.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
			op.GeoM.Translate(x0, y0)
			op.ColorScale.ScaleWithColor(p.Material.Color)
			screen.DrawImage(tex, op)
			return
		}
	}

	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(w), float32(h), p.Material.Color, false)
}

func (s *RenderSystem) strokeBox(world *ecs.World, screen *ebiten.Image, p *geometry.Primitive) {
	lo, hi := p.Footprint()
	x0, y0 := s.cameraSystem.WorldToScreen(world, lo)
	x1, y1 := s.cameraSystem.WorldToScreen(world, hi)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, p.Material.Color, false)
}

func (s *RenderSystem) drawWing(world *ecs.World, screen *ebiten.Image, door *components.DoorComponent) {
	a, b, width := WingLine(door.Wing)
	x0, y0 := s.cameraSystem.WorldToScreen(world, a)
	x1, y1 := s.cameraSystem.WorldToScreen(world, b)
	zoom, _ := s.cameraSystem.WorldToScreen(world, geometry.Vec2{X: 1})
	origin, _ := s.cameraSystem.WorldToScreen(world, geometry.Vec2{})
	w := float32(width * (zoom - origin))
	if w < 1 {
		w = 1
	}

	clr := door.Wing.Material.Color
	if door.Open {
		clr.A = 140
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), w, clr, true)
}

// WingLine returns the floor-plane centre line of a door wing after its swing and the
// wing thickness. The wing rotates around its centre.
func WingLine(p *geometry.Primitive) (a, b geometry.Vec2, width float64) {
	var dx, dz float64
	if p.Orientation == floorplan.Horizontal {
		dx, width = p.Size.X/2, p.Size.Z
	} else {
		dz, width = p.Size.Z/2, p.Size.X
	}

	rad := p.Yaw * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rx, rz := dx*cos-dz*sin, dx*sin+dz*cos

	c := geometry.Vec2{X: p.Position.X, Z: p.Position.Z}
	return geometry.Vec2{X: c.X - rx, Z: c.Z - rz}, geometry.Vec2{X: c.X + rx, Z: c.Z + rz}, width
}

func (s *RenderSystem) drawHouse(world *ecs.World, screen *ebiten.Image) {
	house := world.FirstWithTag(components.TagHouse)
	if house == nil {
		return
	}
	comp, ok := world.GetComponent(house.ID, components.HouseLight)
	if !ok || !comp.(*components.HouseLightComponent).Lit {
		return
	}
	light := comp.(*components.HouseLightComponent)

	tile := s.maze.builder.TileSize()
	glow := s.maze.builder.Materials().Resolve("house_lit").Color
	glow.A = 90
	cx, cy := s.cameraSystem.WorldToScreen(world, light.Center)
	rx, _ := s.cameraSystem.WorldToScreen(world, geometry.Vec2{X: light.Center.X + 2*tile, Z: light.Center.Z})
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(rx-cx), glow, true)
}

func (s *RenderSystem) drawGhosts(world *ecs.World, screen *ebiten.Image) {
	tile := s.maze.builder.TileSize()
	for _, e := range world.GetEntitiesWithComponent(components.Ghost) {
		comp, _ := world.GetComponent(e.ID, components.Ghost)
		ghost := comp.(*components.GhostComponent)
		if !ghost.Visible {
			continue
		}

		cx, cy := s.cameraSystem.WorldToScreen(world, ghost.Position)
		rx, _ := s.cameraSystem.WorldToScreen(world, geometry.Vec2{X: ghost.Position.X + tile*0.4, Z: ghost.Position.Z})
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(rx-cx), GhostColor(ghost.State), true)
	}
}

// GhostColor picks the marker colour for a ghost state
func GhostColor(state components.GhostState) color.RGBA {
	switch state {
	case components.GhostFrightened:
		return color.RGBA{33, 33, 222, 255}
	case components.GhostReturningHome:
		return color.RGBA{230, 230, 230, 255}
	case components.GhostLocked, components.GhostEnteringHouse, components.GhostLeavingHouse:
		return color.RGBA{255, 184, 82, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}

// StatusLines summarises the parameters and the current build for the HUD
func StatusLines(params *ParameterStore, maze *MazeSystem, world *ecs.World) []string {
	rp, tp := params.Render(), params.Topology()
	lines := []string{
		fmt.Sprintf("Resolution %d  Boundary %s  Height %.2f  Thickness %.2f",
			tp.Resolution, tp.Boundary, rp.WallHeight, rp.WallThickness),
	}

	stats := "no geometry"
	if g := maze.Geometry(world); g != nil {
		stats = fmt.Sprintf("Segments %d  Primitives %d  Rebuilds %d  Material fallbacks %d",
			len(g.Segments), len(maze.Primitives(world)), maze.RebuildCount(), maze.builder.Materials().Fallbacks())
	}
	lines = append(lines, stats)

	if err := maze.LastError(); err != nil {
		lines = append(lines, "Last rebuild failed: "+err.Error())
	}
	return lines
}

func (s *RenderSystem) drawStatus(world *ecs.World, screen *ebiten.Image) {
	for i, line := range StatusLines(s.params, s.maze, world) {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+i*lineHeight)
	}
}

// drawMessages draws the newest log lines in their message colours
func (s *RenderSystem) drawMessages(screen *ebiten.Image) {
	if s.messages == nil {
		return
	}

	w := screen.Bounds().Dx()
	if s.textImage == nil || s.textImage.Bounds().Dx() != w {
		s.textImage = ebiten.NewImage(w, lineHeight)
	}

	top := config.HUDHeight - config.HUDMessageLines*lineHeight
	for i, msg := range s.messages.RecentMessages(config.HUDMessageLines) {
		// DebugPrint only draws white text; tint a scratch line instead
		s.textImage.Clear()
		ebitenutil.DebugPrintAt(s.textImage, msg.Text, 0, 0)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(w/2), float64(top+i*lineHeight))
		op.ColorScale.ScaleWithColor(msg.GetColor())
		screen.DrawImage(s.textImage, op)
	}
}
