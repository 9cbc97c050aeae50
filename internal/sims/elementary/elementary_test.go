package elementary

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"cellauto/internal/core"
)

func rows(a *Automaton) [][]uint {
	out := make([][]uint, a.h)
	for i := range out {
		out[i] = append([]uint(nil), a.row(i)...)
	}
	return out
}

func TestRule90Sierpinski(t *testing.T) {
	a, err := New(90, 7, 4, []uint{0, 0, 0, 1, 0, 0, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Generate()
	want := [][]uint{
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0},
		{1, 0, 1, 0, 1, 0, 1},
	}
	got := rows(a)
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Fatalf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNullAndPeriodicEdges(t *testing.T) {
	a, _ := New(2, 5, 2, []uint{1, 0, 0, 0, 0})
	a.Generate()
	if got := a.row(1); !slices.Equal(got, []uint{0, 0, 0, 0, 0}) {
		t.Fatalf("null edge: row 1 = %v", got)
	}

	a.SetPeriodic(true)
	a.Reset()
	a.Generate()
	if got := a.row(1); !slices.Equal(got, []uint{0, 0, 0, 0, 1}) {
		t.Fatalf("periodic edge: row 1 = %v", got)
	}
}

func TestLookup(t *testing.T) {
	a, _ := New(110, 3, 1, make([]uint, 3))
	cases := map[[3]uint]uint{
		{1, 1, 1}: 0, {1, 1, 0}: 1, {1, 0, 1}: 1, {1, 0, 0}: 0,
		{0, 1, 1}: 1, {0, 1, 0}: 1, {0, 0, 1}: 1, {0, 0, 0}: 0,
	}
	for in, want := range cases {
		if got := a.Lookup(in[0], in[1], in[2]); got != want {
			t.Fatalf("Lookup%v=%d, want %d", in, got, want)
		}
	}
}

func TestResetAndComponents(t *testing.T) {
	a, _ := New(90, 7, 4, []uint{0, 0, 0, 1, 0, 0, 0})
	a.Generate()
	if got := a.ConnectedComponents(); got != 9 {
		t.Fatalf("rule 90 triangle has %d components, want 9", got)
	}
	a.Reset()
	if !slices.Equal(a.row(0), []uint{0, 0, 0, 1, 0, 0, 0}) || a.Universe().Max() != 1 {
		t.Fatal("Reset should restore the binary first row")
	}
	for i := 1; i < 4; i++ {
		if slices.ContainsFunc(a.row(i), func(v uint) bool { return v != 0 }) {
			t.Fatalf("row %d not cleared", i)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(30, 4, 4, make([]uint, 3)); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := New(30, 0, 4, nil); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestPixels(t *testing.T) {
	a, _ := New(0, 2, 1, []uint{0, 1})
	want := []byte{0xff, 0xff, 0xff, 0xff, 0x01, 0x00, 0x00, 0xff}
	if got := a.Pixels(); !slices.Equal(got, want) {
		t.Fatalf("Pixels()=%x, want %x", got, want)
	}
}

func TestInequivalentRules(t *testing.T) {
	if !slices.IsSorted(InequivalentRules[:]) {
		t.Fatal("rule table should be sorted")
	}
	for _, r := range []uint8{30, 90, 110, 184} {
		if !slices.Contains(InequivalentRules[:], r) {
			t.Fatalf("rule %d missing", r)
		}
	}
	if slices.Contains(InequivalentRules[:], 255) {
		t.Fatal("rule 255 is equivalent to rule 0")
	}
}

func TestSimScrolls(t *testing.T) {
	cfg := Config{Width: 7, Height: 4, Rule: 90}
	s, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	for i := 0; i < 3; i++ {
		s.Step()
	}
	full := rows(s.Automaton())
	s.Step()
	after := rows(s.Automaton())
	for i := 0; i < 3; i++ {
		if !slices.Equal(after[i], full[i+1]) {
			t.Fatalf("row %d after scroll = %v, want %v", i, after[i], full[i+1])
		}
	}
	if !slices.Equal(after[3], make([]uint, 7)) {
		t.Fatalf("newest row = %v", after[3])
	}

	s.Reset(0)
	if !slices.Equal(s.Cells()[:7], []uint{0, 0, 0, 1, 0, 0, 0}) {
		t.Fatalf("Reset lost the seed row: %v", s.Cells()[:7])
	}
	if !s.SetIntParameter("rule", 30) || s.Automaton().Rule() != 30 {
		t.Fatal("rule should be adjustable")
	}
	if s.SetIntParameter("rule", 256) {
		t.Fatal("rule above 255 must be rejected")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "31", "rule": "300", "periodic": "true", "random": "1", "seed": "5"})
	if c.Width != 31 || c.Rule != 110 || !c.Periodic || !c.Random || c.Seed != 5 {
		t.Fatalf("unexpected config %+v", c)
	}
	if got := len(c.InitialRow()); got != 31 {
		t.Fatalf("initial row length %d", got)
	}
}

func TestGenerateRules(t *testing.T) {
	base := Config{Width: 9, Height: 5}
	var mu sync.Mutex
	seen := map[uint8][]uint{}
	err := GenerateRules(context.Background(), base, InequivalentRules[:12], BatchOptions{Workers: 3}, func(a *Automaton) error {
		mu.Lock()
		defer mu.Unlock()
		seen[a.Rule()] = append([]uint(nil), a.Universe().Cells()...)
		return nil
	})
	if err != nil {
		t.Fatalf("GenerateRules: %v", err)
	}
	if len(seen) != 12 {
		t.Fatalf("expected 12 automata, got %d", len(seen))
	}
	for rule, cells := range seen {
		a, _ := NewFromConfig(Config{Width: 9, Height: 5, Rule: rule})
		a.Generate()
		if !slices.Equal(cells, a.Universe().Cells()) {
			t.Fatalf("rule %d differs from a sequential run", rule)
		}
	}

	boom := errors.New("boom")
	err = GenerateRules(context.Background(), base, AllRules(), BatchOptions{Workers: 2}, func(a *Automaton) error {
		if a.Rule() == 7 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
}
