package elementary

import (
	"fmt"

	"cellauto/internal/core"
)

// Sim scrolls an elementary automaton one generation per step. Once the
// universe is full the history moves up and the newest row stays at the bottom.
type Sim struct {
	cfg    Config
	a      *Automaton
	filled int
}

// NewSim creates a scrolling simulation from c.
func NewSim(c Config) (*Sim, error) {
	a, err := NewFromConfig(c)
	if err != nil {
		return nil, err
	}
	return &Sim{cfg: c, a: a}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (s *Sim) Size() core.Size { return s.a.Size() }

// Cells exposes the render buffer.
func (s *Sim) Cells() []uint { return s.a.Universe().Cells() }

// Automaton exposes the driven automaton.
func (s *Sim) Automaton() *Automaton { return s.a }

// Reset restarts from the first row. With a random first row a non-zero seed
// draws a new one.
func (s *Sim) Reset(seed int64) {
	if s.cfg.Random && seed != 0 {
		s.cfg.Seed = seed
		s.a.initial = s.cfg.InitialRow()
	}
	s.a.Reset()
	s.filled = 0
}

// Step computes the next generation, scrolling once the universe is full.
func (s *Sim) Step() {
	a := s.a
	if a.h == 1 {
		buf := make([]uint, a.w)
		a.next(buf, a.row(0))
		copy(a.row(0), buf)
		return
	}
	if s.filled < a.h-1 {
		a.next(a.row(s.filled+1), a.row(s.filled))
		s.filled++
		return
	}
	cells := a.universe.Cells()
	copy(cells, cells[a.w:])
	a.next(a.row(a.h-1), a.row(a.h-2))
}

// Title summarises the rule and geometry.
func (s *Sim) Title() string {
	return fmt.Sprintf("rule:%d|periodic:%t|width:%d|height:%d", s.a.rule, s.a.periodic, s.a.w, s.a.h)
}

// Parameters reports the rule for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Rule",
		Params: []core.Parameter{
			core.IntParam("rule", "Code", int(s.a.rule)),
			core.BoolParam("periodic", "Periodic", s.a.periodic),
			core.IntParam("w", "Width", s.a.w),
			core.IntParam("h", "Height", s.a.h),
		},
	}}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "rule", Label: "Code", Min: 0, Max: 255, Step: 1}}
}

// SetIntParameter updates the rule code from the HUD.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	s.a.rule = uint8(value)
	s.cfg.Rule = uint8(value)
	return true
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return NewSim(FromMap(cfg))
	})
}
