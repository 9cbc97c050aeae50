package tca2d

import (
	"slices"
	"strings"
	"testing"

	"cellauto/internal/ccl"
	"cellauto/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "16",
		"h":        "9",
		"rule":     "0x3ffff",
		"moore":    "sometimes",
		"outer":    "no",
		"boundary": "torus",
		"density":  "1.5",
		"label":    "false",
		"depth":    "-2",
	})
	if c.Width != 16 || c.Height != 9 {
		t.Fatalf("size %dx%d", c.Width, c.Height)
	}
	if c.Rule != 1<<18-1 {
		t.Fatalf("rule %d", c.Rule)
	}
	if c.Neighborhood != core.Moore || c.Mode != OuterTotalistic {
		t.Fatal("unparseable booleans should keep defaults")
	}
	if c.Boundary != core.BoundaryTorus {
		t.Fatalf("boundary %s", c.Boundary)
	}
	if c.Density != DefaultConfig().Density || c.Depth != 1 || c.Label {
		t.Fatalf("unexpected config %+v", c)
	}
	c = FromMap(map[string]string{"moore": "false", "outer": "false"})
	if c.Neighborhood != core.VonNeumann || c.Mode != Totalistic {
		t.Fatal("explicit false should switch models")
	}
}

func TestLifeFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life is not registered")
	}
	sim, err := factory(map[string]string{"w": "12", "h": "10", "rule": "3"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	s := sim.(*Sim)
	if s.Engine().Rule() != 224 || s.Size() != (core.Size{W: 12, H: 10}) {
		t.Fatalf("life preset not applied: rule=%d size=%v", s.Engine().Rule(), s.Size())
	}
	if !slices.Contains(core.SimNames(), "tca2d") {
		t.Fatal("tca2d is not registered")
	}

	if _, err := core.Sims()["tca2d"](map[string]string{"boundary": "klein"}); err == nil {
		t.Fatal("an unsupported boundary must fail construction")
	}
}

func TestSimStepRelabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	s, err := NewSim("life", cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	for i := 0; i < 5; i++ {
		s.Step()
	}
	if s.Engine().Generation() != 5 || len(s.Engine().Pages()) != 1 {
		t.Fatalf("generation=%d pages=%d", s.Engine().Generation(), len(s.Engine().Pages()))
	}
	want := ccl.Label(s.States(), ccl.Eight, true)
	if !want.Equal(s.Labels()) || s.Components() != ccl.Count(want) {
		t.Fatal("labels are stale after Step")
	}
	if !slices.Equal(s.Cells(), s.Labels().Cells()) {
		t.Fatal("Cells should expose labels when labelling is on")
	}
	s.SetLabel(false)
	if !slices.Equal(s.Cells(), s.States().Cells()) {
		t.Fatal("Cells should expose states when labelling is off")
	}

	title := s.Title()
	for _, part := range []string{"code:224", "moore:true", "generation:5", "#components:"} {
		if !strings.Contains(title, part) {
			t.Fatalf("title %q lacks %q", title, part)
		}
	}
}

func TestSimResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	s, _ := NewSim("life", cfg)
	initial := append([]uint(nil), s.States().Cells()...)

	s.Step()
	s.Step()
	s.Reset(0)
	if !slices.Equal(initial, s.States().Cells()) || s.Engine().Generation() != 0 {
		t.Fatal("Reset(0) should reproduce the config seed")
	}

	s.Reset(777)
	seeded := append([]uint(nil), s.States().Cells()...)
	s.Reset(777)
	if !slices.Equal(seeded, s.States().Cells()) {
		t.Fatal("Reset with an explicit seed is not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different configurations")
	}
}

func TestSimParameters(t *testing.T) {
	s, _ := NewSim("tca2d", DefaultConfig())
	if !s.SetIntParameter("rule", 6152) {
		t.Fatal("rule should be adjustable")
	}
	if s.SetIntParameter("rule", 1<<18) || s.SetIntParameter("width", 3) {
		t.Fatal("out-of-range or unknown keys must be rejected")
	}
	snap := s.Parameters()
	if v, ok := snap.Lookup("rule"); !ok || v != "6152" {
		t.Fatalf("rule parameter %q", v)
	}
	if v, _ := snap.Lookup("boundary"); v != "null" {
		t.Fatalf("boundary parameter %q", v)
	}
}
