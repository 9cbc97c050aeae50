package ui

import (
	"fmt"

	"cellauto/internal/core"
)

// adjust returns the value one step from current in direction dir, clamped to
// the control's range. ok is false when the value would not change.
func adjust(ctrl core.ParameterControl, current, dir int) (int, bool) {
	if dir == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + dir*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.Max > ctrl.Min && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != current
}

// snapshotLines flattens a parameter snapshot into display rows.
func snapshotLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
