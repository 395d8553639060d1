package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"maze3d/components"
	"maze3d/config"
	"maze3d/floorplan"
	"maze3d/geometry"
)

var (
	errNoGeometry    = errors.New("no geometry built")
	errSegmentsStale = errors.New("stored segments differ from a fresh segmentation")
)

// buildReport is what `build` prints
type buildReport struct {
	Source            string                    `json:"source" yaml:"source"`
	Cols              int                       `json:"cols" yaml:"cols"`
	Rows              int                       `json:"rows" yaml:"rows"`
	Topology          config.TopologyParameters `json:"topology" yaml:"topology"`
	Render            config.RenderParameters   `json:"render" yaml:"render"`
	Stats             floorplan.Stats           `json:"stats" yaml:"stats"`
	Doors             int                       `json:"doors" yaml:"doors"`
	Primitives        int                       `json:"primitives" yaml:"primitives"`
	MaterialFallbacks int                       `json:"materialFallbacks" yaml:"materialFallbacks"`
	Bounds            geometry.BoundingBox      `json:"bounds" yaml:"bounds"`
	Segments          []floorplan.Segment       `json:"segments" yaml:"segments"`
}

func newBuildReport(a *app) (*buildReport, error) {
	g := a.maze.Geometry(a.world)
	m := a.maze.TileMaze(a.world)
	if g == nil || m == nil {
		return nil, errNoGeometry
	}

	return &buildReport{
		Source:            a.source.Describe(),
		Cols:              m.Cols(),
		Rows:              m.Rows(),
		Topology:          a.params.Topology(),
		Render:            a.params.Render(),
		Stats:             floorplan.Summarize(g.Segments),
		Doors:             len(a.world.GetEntitiesWithTag(components.TagDoor)),
		Primitives:        len(a.maze.Primitives(a.world)),
		MaterialFallbacks: a.materials.Fallbacks(),
		Bounds:            g.Walls.Bounds(),
		Segments:          g.Segments,
	}, nil
}

func writeBuild(w io.Writer, a *app, format string) error {
	r, err := newBuildReport(a)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return writeBuildText(w, r)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func writeBuildText(w io.Writer, r *buildReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Maze\t%s (%dx%d tiles)\n", r.Source, r.Cols, r.Rows)
	fmt.Fprintf(tw, "Resolution\t%d\n", r.Topology.Resolution)
	fmt.Fprintf(tw, "Boundary\t%s\n", r.Topology.Boundary)
	fmt.Fprintf(tw, "Wall\theight %.2f, thickness %.2f\n", r.Render.WallHeight, r.Render.WallThickness)
	fmt.Fprintf(tw, "Segments\t%d (horizontal %d, vertical %d, corners %d)\n",
		r.Stats.Total(), r.Stats.Horizontal, r.Stats.Vertical, r.Stats.Corners)
	fmt.Fprintf(tw, "Wall cells\t%d\n", r.Stats.Cells)
	fmt.Fprintf(tw, "Doors\t%d\n", r.Doors)
	fmt.Fprintf(tw, "Primitives\t%d\n", r.Primitives)
	fmt.Fprintf(tw, "Material fallbacks\t%d\n", r.MaterialFallbacks)
	fmt.Fprintf(tw, "Bounds\t(%.1f, %.1f, %.1f) - (%.1f, %.1f, %.1f)\n",
		r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Min.Z, r.Bounds.Max.X, r.Bounds.Max.Y, r.Bounds.Max.Z)
	return tw.Flush()
}

// runValidate checks the stored segments cover the floor plan and match a fresh
// segmentation of the same plan
func runValidate(w io.Writer, a *app) error {
	g := a.maze.Geometry(a.world)
	if g == nil {
		return errNoGeometry
	}
	if err := floorplan.VerifyCoverage(g.Plan, g.Segments); err != nil {
		return err
	}
	if fresh := floorplan.Segmentize(g.Plan); !reflect.DeepEqual(fresh, g.Segments) {
		return fmt.Errorf("%w: %d stored, %d fresh", errSegmentsStale, len(g.Segments), len(fresh))
	}
	if n := g.Walls.Pieces(); n != len(g.Segments) {
		return fmt.Errorf("geometry has %d wall pieces for %d segments", n, len(g.Segments))
	}

	fmt.Fprintf(w, "Result: VALID (%s, %d segments over %d wall cells, %d material fallbacks)\n",
		a.source.Describe(), len(g.Segments), g.Plan.WallCells(), a.materials.Fallbacks())
	return nil
}
