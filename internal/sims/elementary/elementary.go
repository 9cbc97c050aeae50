// Package elementary implements one-dimensional Wolfram-code automata whose
// history is laid out top to bottom in a lattice.
package elementary

import (
	"fmt"
	"strconv"

	"cellauto/internal/ccl"
	"cellauto/internal/core"
	"cellauto/internal/render"
)

// InequivalentRules lists one representative of each of the 88 equivalence
// classes of elementary rules under reflection and complement.
var InequivalentRules = [88]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 18, 19, 22, 23,
	24, 25, 26, 27, 28, 29, 30, 32, 33, 34, 35, 36, 37, 38, 40, 41, 42, 43, 44, 45, 46, 50, 51,
	54, 56, 57, 58, 60, 62, 72, 73, 74, 76, 77, 78, 90, 94, 104, 105, 106, 108, 110, 122, 126,
	128, 130, 132, 134, 136, 138, 140, 142, 146, 150, 152, 154, 156, 160, 162, 164, 168, 170,
	172, 178, 184, 200, 204, 232}

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Rule     uint8
	Periodic bool
	Seed     int64
	// Random draws the first row from Seed instead of a single centre cell.
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["periodic"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Periodic = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// InitialRow builds the first generation described by the config.
func (c Config) InitialRow() []uint {
	row := make([]uint, c.Width)
	if c.Random {
		core.FillBinary(core.NewRNG(c.Seed).Source(), row, 0.5)
		return row
	}
	core.CenterSeed(row)
	return row
}

// Automaton is an elementary CA whose row r holds generation r.
type Automaton struct {
	rule     uint8
	w, h     int
	periodic bool
	boundary core.Boundary
	initial  []uint
	universe *core.Lattice
}

// New creates an automaton whose first row is initial.
func New(rule uint8, w, h int, initial []uint) (*Automaton, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidSize, w, h)
	}
	if len(initial) != w {
		return nil, fmt.Errorf("%w: initial row has %d cells, want %d", core.ErrDimensionMismatch, len(initial), w)
	}
	boundary, err := core.NewBoundary(w, h, core.BoundaryNull)
	if err != nil {
		return nil, err
	}
	a := &Automaton{
		rule:     rule,
		w:        w,
		h:        h,
		boundary: boundary,
		initial:  append([]uint(nil), initial...),
	}
	a.Reset()
	return a, nil
}

// NewFromConfig creates an automaton from a Config.
func NewFromConfig(c Config) (*Automaton, error) {
	a, err := New(c.Rule, c.Width, c.Height, c.InitialRow())
	if err != nil {
		return nil, err
	}
	a.periodic = c.Periodic
	return a, nil
}

// Rule returns the Wolfram code.
func (a *Automaton) Rule() uint8 { return a.rule }

// Size returns the universe dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Universe exposes the full history lattice.
func (a *Automaton) Universe() *core.Lattice { return a.universe }

// SetPeriodic switches between wrapped and null edges.
func (a *Automaton) SetPeriodic(on bool) { a.periodic = on }

// Lookup returns bit (l<<2 | c<<1 | r) of the rule.
func (a *Automaton) Lookup(l, c, r uint) uint {
	idx := (l&1)<<2 | (c&1)<<1 | r&1
	return uint(a.rule>>idx) & 1
}

// neighbors returns the left and right states of col on row.
func (a *Automaton) neighbors(src []uint, col int) (uint, uint) {
	if a.periodic {
		return src[(col-1+a.w)%a.w], src[(col+1)%a.w]
	}
	var l, r uint
	if c := a.boundary.ResolveColumn(col, -1); c != core.Invalid {
		l = src[c]
	}
	if c := a.boundary.ResolveColumn(col, 1); c != core.Invalid {
		r = src[c]
	}
	return l, r
}

// next writes the successor of src into dst.
func (a *Automaton) next(dst, src []uint) {
	for col := 0; col < a.w; col++ {
		l, r := a.neighbors(src, col)
		dst[col] = a.Lookup(l, src[col], r)
	}
}

func (a *Automaton) row(i int) []uint {
	cells := a.universe.Cells()
	return cells[i*a.w : (i+1)*a.w]
}

// Generate fills rows 1..height-1, each from the row above it.
func (a *Automaton) Generate() {
	for i := 1; i < a.h; i++ {
		a.next(a.row(i), a.row(i-1))
	}
}

// Reset restores the initial row and clears the remaining history.
func (a *Automaton) Reset() {
	a.universe = core.NewLattice(a.w, a.h)
	copy(a.row(0), a.initial)
}

// ConnectedComponents replaces the universe with its 4-connected component
// labels and returns the number of components.
func (a *Automaton) ConnectedComponents() int {
	a.universe = ccl.Label(a.universe, ccl.Four, true)
	return ccl.Count(a.universe)
}

// Pixels returns the universe as RGBA bytes using the export colour mapping.
func (a *Automaton) Pixels() []byte {
	buf := make([]byte, 4*a.w*a.h)
	render.FillExportRGBA(buf, a.universe.Cells())
	return buf
}

func (a *Automaton) String() string {
	return fmt.Sprintf("Rule : %d | universe : \n%s ", a.rule, a.universe)
}
