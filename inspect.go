package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"maze3d/config"
	"maze3d/floorplan"
)

// inspector shows the current floor plan in a terminal and edits the topology
type inspector struct {
	screen     tcell.Screen
	app        *app
	offX, offY int
	status     string
}

func newInspector(screen tcell.Screen, a *app) *inspector {
	return &inspector{screen: screen, app: a}
}

func runInspect(a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ins := newInspector(screen, a)
	for {
		ins.draw()
		if !ins.handle(screen.PollEvent()) {
			return nil
		}
	}
}

// inspectRows returns the h rows of plan visible through a w wide window at (offX, offY)
func inspectRows(plan *floorplan.FloorPlan, offX, offY, w, h int) []string {
	rows := make([]string, 0, h)
	for y := offY; y < offY+h && y < plan.Height; y++ {
		row := []rune(plan.Row(y))
		if offX >= len(row) {
			rows = append(rows, "")
			continue
		}
		end := offX + w
		if end > len(row) {
			end = len(row)
		}
		rows = append(rows, string(row[offX:end]))
	}
	return rows
}

func glyphStyle(r rune) tcell.Style {
	switch r {
	case floorplan.CellHWall.Glyph():
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case floorplan.CellVWall.Glyph():
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	case floorplan.CellCorner.Glyph():
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault
	}
}

func (ins *inspector) header() string {
	tp := ins.app.params.Topology()
	line := fmt.Sprintf("R=%d boundary=%s builds=%d  +/- resolution  b boundary  arrows scroll  q quit",
		tp.Resolution, tp.Boundary, ins.app.maze.RebuildCount())
	if ins.status != "" {
		line += "  | " + ins.status
	}
	return line
}

func (ins *inspector) draw() {
	ins.screen.Clear()
	w, h := ins.screen.Size()

	for x, r := range []rune(ins.header()) {
		if x >= w {
			break
		}
		ins.screen.SetContent(x, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}

	if g := ins.app.maze.Geometry(ins.app.world); g != nil {
		for y, row := range inspectRows(g.Plan, ins.offX, ins.offY, w, h-1) {
			for x, r := range []rune(row) {
				ins.screen.SetContent(x, y+1, r, nil, glyphStyle(r))
			}
		}
	}
	ins.screen.Show()
}

// handle applies one event and reports whether the inspector keeps running
func (ins *inspector) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		ins.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			ins.scroll(0, -1)
		case tcell.KeyDown:
			ins.scroll(0, 1)
		case tcell.KeyLeft:
			ins.scroll(-1, 0)
		case tcell.KeyRight:
			ins.scroll(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				ins.topology(func(tp *config.TopologyParameters) { tp.Resolution++ })
			case '-':
				ins.topology(func(tp *config.TopologyParameters) { tp.Resolution-- })
			case 'b':
				ins.topology(func(tp *config.TopologyParameters) { tp.Boundary = tp.Boundary.Next() })
			}
		}
	}
	return true
}

func (ins *inspector) topology(fn func(*config.TopologyParameters)) {
	ins.status = ""
	if err := ins.app.params.UpdateTopology(fn); err != nil {
		ins.status = err.Error()
		return
	}
	if err := ins.app.maze.LastError(); err != nil {
		ins.status = err.Error()
	}
	ins.offX, ins.offY = 0, 0
}

func (ins *inspector) scroll(dx, dy int) {
	g := ins.app.maze.Geometry(ins.app.world)
	if g == nil {
		return
	}
	ins.offX = clamp(ins.offX+dx, 0, g.Plan.Width-1)
	ins.offY = clamp(ins.offY+dy, 0, g.Plan.Height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
