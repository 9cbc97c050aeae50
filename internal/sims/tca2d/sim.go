package tca2d

import (
	"fmt"

	"cellauto/internal/ccl"
	"cellauto/internal/core"
)

// Sim runs an Engine in rolling mode behind the core.Sim contract.
type Sim struct {
	name   string
	cfg    Config
	engine *Engine

	labels     *core.Lattice
	components int
}

var (
	_ core.Labeller = (*Sim)(nil)
	_ core.Titler   = (*Sim)(nil)
)

// NewSim builds a rolling simulation seeded from cfg.Seed.
func NewSim(name string, cfg Config) (*Sim, error) {
	cfg.Depth = 1
	engine, err := NewEngine(cfg, cfg.RandomLattice(cfg.Seed))
	if err != nil {
		return nil, err
	}
	s := &Sim{name: name, cfg: cfg, engine: engine}
	s.relabel()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.engine.Size() }

// Engine exposes the underlying engine.
func (s *Sim) Engine() *Engine { return s.engine }

// Reset draws a fresh initial configuration. A zero seed reuses the config seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	// Dimensions come from the engine's own config, so Reseed cannot fail.
	_ = s.engine.Reseed(s.cfg.RandomLattice(seed))
	s.relabel()
}

// Step advances the live page by one generation.
func (s *Sim) Step() {
	s.engine.Roll()
	s.relabel()
}

// Cells exposes component labels when labelling is on, the raw states otherwise.
func (s *Sim) Cells() []uint {
	if s.cfg.Label {
		return s.labels.Cells()
	}
	return s.engine.Page(0).Cells()
}

// States exposes the raw states of the live page.
func (s *Sim) States() *core.Lattice { return s.engine.Page(0) }

// Labels returns the consecutive component labels of the live page.
func (s *Sim) Labels() *core.Lattice { return s.labels }

// Components returns the number of components on the live page.
func (s *Sim) Components() int { return s.components }

// SetLabel toggles component colouring.
func (s *Sim) SetLabel(on bool) { s.cfg.Label = on }

// Labelling reports whether Cells returns component labels.
func (s *Sim) Labelling() bool { return s.cfg.Label }

// Title summarises rule, geometry and progress in a single line.
func (s *Sim) Title() string {
	return fmt.Sprintf("code:%d|moore:%t|totalistic:%t|width:%d|height:%d|generation:%d|#components:%d",
		s.engine.Rule(), s.engine.Neighborhood() == core.Moore, s.engine.Mode() == OuterTotalistic,
		s.cfg.Width, s.cfg.Height, s.engine.Generation(), s.components)
}

// Parameters reports the current configuration for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.IntParam("rule", "Code", int(s.engine.Rule())),
				core.StringParam("neighborhood", "Neighbourhood", s.engine.Neighborhood().String()),
				core.StringParam("mode", "Mode", s.engine.Mode().String()),
				core.StringParam("boundary", "Boundary", s.cfg.Boundary.String()),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.IntParam("seed", "Seed", int(s.cfg.Seed)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.engine.Generation()),
				core.IntParam("components", "Components", s.components),
				core.BoolParam("label", "Label colours", s.cfg.Label),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "rule", Label: "Code", Min: 0, Max: 1<<18 - 1, Step: 1}}
}

// SetIntParameter updates the rule code from the HUD.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule":
		if value < 0 || value >= 1<<18 {
			return false
		}
		s.engine.SetRule(core.Rule(value))
		return true
	}
	return false
}

func (s *Sim) relabel() {
	s.labels = ccl.Label(s.engine.Page(0), ccl.ConnectivityFor(s.engine.Neighborhood()), true)
	s.components = ccl.Count(s.labels)
}

func init() {
	core.Register("tca2d", func(cfg map[string]string) (core.Sim, error) {
		return NewSim("tca2d", FromMap(cfg))
	})
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Rule = 224
		c.Neighborhood = core.Moore
		c.Mode = OuterTotalistic
		return NewSim("life", c)
	})
}
