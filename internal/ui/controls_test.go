package ui

import (
	"testing"

	"cellauto/internal/core"
)

func TestAdjustClampsToRange(t *testing.T) {
	ctrl := core.ParameterControl{Key: "rule", Min: 0, Max: 255, Step: 1}
	cases := []struct {
		current, dir int
		want         int
		ok           bool
	}{
		{current: 10, dir: 1, want: 11, ok: true},
		{current: 10, dir: -1, want: 9, ok: true},
		{current: 0, dir: -1, want: 0, ok: false},
		{current: 255, dir: 1, want: 255, ok: false},
		{current: 7, dir: 0, want: 7, ok: false},
	}
	for _, tc := range cases {
		got, ok := adjust(ctrl, tc.current, tc.dir)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("adjust(%d, %d) = (%d, %t), want (%d, %t)", tc.current, tc.dir, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAdjustDefaultsStep(t *testing.T) {
	got, ok := adjust(core.ParameterControl{Max: 10}, 3, 1)
	if !ok || got != 4 {
		t.Fatalf("expected step of 1, got (%d, %t)", got, ok)
	}
}

func TestSnapshotLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Rule",
		Params: []core.Parameter{core.IntParam("rule", "Code", 224), core.BoolParam("label", "Label", true)},
	}}}
	lines := snapshotLines(snap)
	want := []string{"Rule", "  Code: 224", "  Label: true"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: want %q, got %q", i, want[i], lines[i])
		}
	}
}
