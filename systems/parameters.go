package systems

import (
	"fmt"

	"maze3d/config"
	"maze3d/ecs"
)

// ParameterStore holds the parameter groups that drive the maze. Render parameters are
// applied to the existing geometry; topology parameters cause a rebuild. Each setter
// validates first and emits its change event only when the value actually changed.
type ParameterStore struct {
	events   *ecs.EventManager
	render   config.RenderParameters
	topology config.TopologyParameters
	doors    config.DoorParameters
	// set by a subscriber that could not rebuild at the new topology
	topologyErr error
}

// NewParameterStore creates a store seeded from settings
func NewParameterStore(events *ecs.EventManager, s config.Settings) *ParameterStore {
	return &ParameterStore{
		events:   events,
		render:   s.Render,
		topology: s.Topology,
		doors:    s.Doors,
	}
}

// Render returns the current render parameters
func (p *ParameterStore) Render() config.RenderParameters {
	return p.render
}

// Topology returns the current topology parameters
func (p *ParameterStore) Topology() config.TopologyParameters {
	return p.topology
}

// Doors returns the current door parameters
func (p *ParameterStore) Doors() config.DoorParameters {
	return p.doors
}

// SetRender replaces the render group
func (p *ParameterStore) SetRender(rp config.RenderParameters) error {
	if err := rp.Validate(); err != nil {
		return err
	}
	if rp == p.render {
		return nil
	}

	old := p.render
	p.render = rp
	p.events.Emit(RenderParametersChangedEvent{Old: old, New: rp})
	return nil
}

// SetTopology replaces the topology group; subscribers rebuild synchronously. If a
// subscriber rejects the new group the previous one is restored and the rebuild error
// is returned, so Topology always describes the geometry actually built.
func (p *ParameterStore) SetTopology(tp config.TopologyParameters) error {
	if err := tp.Validate(); err != nil {
		return err
	}
	if tp == p.topology {
		return nil
	}

	old := p.topology
	p.topology = tp
	p.topologyErr = nil
	p.events.Emit(TopologyChangedEvent{Old: old, New: tp})
	if err := p.topologyErr; err != nil {
		p.topologyErr = nil
		return fmt.Errorf("applying topology (resolution %d, boundary %s): %w", tp.Resolution, tp.Boundary, err)
	}
	return nil
}

// rejectTopology restores old after a subscriber failed to apply the current group
func (p *ParameterStore) rejectTopology(old config.TopologyParameters, cause error) {
	p.topology = old
	p.topologyErr = cause
}

// SetDoors replaces the door group
func (p *ParameterStore) SetDoors(dp config.DoorParameters) error {
	if err := dp.Validate(); err != nil {
		return err
	}
	if dp == p.doors {
		return nil
	}

	old := p.doors
	p.doors = dp
	p.events.Emit(DoorParametersChangedEvent{Old: old, New: dp})
	return nil
}

// UpdateRender applies fn to a copy of the render group and stores the result
func (p *ParameterStore) UpdateRender(fn func(*config.RenderParameters)) error {
	rp := p.render
	fn(&rp)
	return p.SetRender(rp)
}

// UpdateTopology applies fn to a copy of the topology group and stores the result
func (p *ParameterStore) UpdateTopology(fn func(*config.TopologyParameters)) error {
	tp := p.topology
	fn(&tp)
	return p.SetTopology(tp)
}
