// Package tca2d implements totalistic and outer-totalistic two-dimensional
// cellular automata over a sequence of lattice generations.
package tca2d

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cellauto/internal/core"
)

var (
	// ErrInvalidDepth reports a universe that would retain no generations.
	ErrInvalidDepth = errors.New("tca2d: depth must be at least 1")
	// ErrPageOutOfRange reports a page index the operation cannot address.
	ErrPageOutOfRange = errors.New("tca2d: page out of range")
)

// Mode selects how neighbour states are aggregated before the rule lookup.
type Mode int

const (
	// Totalistic indexes the rule by the sum of all nine cells.
	Totalistic Mode = iota
	// OuterTotalistic indexes the rule by the centre and the sum of the other eight.
	OuterTotalistic
)

func (m Mode) String() string {
	switch m {
	case Totalistic:
		return "totalistic"
	case OuterTotalistic:
		return "outer-totalistic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Engine owns the generations of a 2D automaton. Page 0 holds the initial
// configuration; page k is derived from page k-1.
type Engine struct {
	rule         core.Rule
	w, h         int
	depth        int
	neighborhood core.Neighborhood
	mode         Mode
	compass      core.Compass
	boundary     core.Boundary

	seed       *core.Lattice
	pages      []*core.Lattice
	generation int
}

// NewEngine allocates depth pages and installs a copy of initial as page 0.
func NewEngine(cfg Config, initial *core.Lattice) (*Engine, error) {
	if cfg.Depth < 1 {
		return nil, ErrInvalidDepth
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if initial == nil || initial.W != cfg.Width || initial.H != cfg.Height {
		return nil, fmt.Errorf("%w: initial configuration does not match %dx%d", core.ErrDimensionMismatch, cfg.Width, cfg.Height)
	}
	boundary, err := core.NewBoundary(cfg.Width, cfg.Height, cfg.Boundary)
	if err != nil {
		return nil, err
	}

	pages := make([]*core.Lattice, cfg.Depth)
	pages[0] = initial.Clone()
	for i := 1; i < cfg.Depth; i++ {
		pages[i] = core.NewLattice(cfg.Width, cfg.Height)
	}
	return &Engine{
		rule:         core.Rule(cfg.Rule),
		w:            cfg.Width,
		h:            cfg.Height,
		depth:        cfg.Depth,
		neighborhood: cfg.Neighborhood,
		mode:         cfg.Mode,
		compass:      core.NewCompass(cfg.Neighborhood),
		boundary:     boundary,
		seed:         initial.Clone(),
		pages:        pages,
	}, nil
}

// Size returns the lattice dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Rule returns the active rule code.
func (e *Engine) Rule() core.Rule { return e.rule }

// SetRule swaps the rule code used by later steps.
func (e *Engine) SetRule(r core.Rule) { e.rule = r }

// Neighborhood returns the neighbourhood model.
func (e *Engine) Neighborhood() core.Neighborhood { return e.neighborhood }

// Mode returns the aggregation mode.
func (e *Engine) Mode() Mode { return e.mode }

// Generation counts rolling advances since construction or the last reset.
func (e *Engine) Generation() int { return e.generation }

// Pages exposes the retained generations.
func (e *Engine) Pages() []*core.Lattice { return e.pages }

// Page returns the lattice at index i, or nil when out of range.
func (e *Engine) Page(i int) *core.Lattice {
	if i < 0 || i >= len(e.pages) {
		return nil
	}
	return e.pages[i]
}

// Value returns the state at (row, col) on page.
func (e *Engine) Value(page, row, col int) uint {
	return e.pages[page].Get(row, col)
}

// SetValue stores v at (row, col) on page.
func (e *Engine) SetValue(page, row, col int, v uint) {
	e.pages[page].Set(row, col, v)
}

// Neighbors returns the nine compass values around (row, col) on src, in
// compass order. Inactive directions and off-lattice neighbours read as 0.
func (e *Engine) Neighbors(src *core.Lattice, row, col int) [9]uint {
	var radius [9]uint
	for i, d := range e.compass {
		if !d.Active {
			continue
		}
		r := e.boundary.ResolveRow(row, d.DY)
		c := e.boundary.ResolveColumn(col, d.DX)
		if r == core.Invalid || c == core.Invalid {
			continue
		}
		radius[i] = src.Get(r, c)
	}
	return radius
}

// cellState applies the rule to one neighbourhood.
func (e *Engine) cellState(radius [9]uint) uint {
	var sum uint
	for _, v := range radius {
		sum += v
	}
	if e.mode == OuterTotalistic {
		a := radius[core.Origin]
		return e.rule.OuterTotalistic(a, sum-a)
	}
	return e.rule.Totalistic(sum)
}

// step computes the successor of src into a fresh lattice. src is only read.
func (e *Engine) step(src *core.Lattice) *core.Lattice {
	next := core.NewLattice(e.w, e.h)
	for row := 0; row < e.h; row++ {
		for col := 0; col < e.w; col++ {
			next.Set(row, col, e.cellState(e.Neighbors(src, row, col)))
		}
	}
	return next
}

// NextPage returns the successor of page-1 without modifying any page.
// page may equal the number of retained pages, which derives from the last one.
func (e *Engine) NextPage(page int) (*core.Lattice, error) {
	if page < 1 || page > len(e.pages) {
		return nil, fmt.Errorf("%w: %d (have %d pages)", ErrPageOutOfRange, page, len(e.pages))
	}
	return e.step(e.pages[page-1]), nil
}

// Advance computes the successor of page-1 and installs it as page.
func (e *Engine) Advance(page int) error {
	if page < 1 || page >= len(e.pages) {
		return fmt.Errorf("%w: %d (have %d pages)", ErrPageOutOfRange, page, len(e.pages))
	}
	next, err := e.NextPage(page)
	if err != nil {
		return err
	}
	return e.pages[page].CopyFrom(next)
}

// Generate fills pages 1..depth-1 in order.
func (e *Engine) Generate() error {
	for page := 1; page < len(e.pages); page++ {
		if err := e.Advance(page); err != nil {
			return err
		}
	}
	return nil
}

// Roll replaces page 0 with its successor and drops every other page, so an
// unbounded run holds a single live generation.
func (e *Engine) Roll() {
	next := e.step(e.pages[0])
	e.pages[0] = next
	for i := 1; i < len(e.pages); i++ {
		e.pages[i] = nil
	}
	e.pages = e.pages[:1]
	e.generation++
}

// InsertSubpattern copies a row-major subW x subH block into page at (row, col).
// It reports false and leaves the page untouched unless col+subW <= width-1 and
// row+subH <= height.
func (e *Engine) InsertSubpattern(page, row, col, subW, subH int, values []uint) bool {
	if page < 0 || page >= len(e.pages) || row < 0 || col < 0 || subW < 0 || subH < 0 {
		return false
	}
	if len(values) != subW*subH {
		return false
	}
	// The width bound keeps the last column free; the height bound does not.
	if col+subW > e.w-1 || row+subH > e.h {
		return false
	}
	dst := e.pages[page]
	for r := 0; r < subH; r++ {
		for c := 0; c < subW; c++ {
			dst.Set(row+r, col+c, values[r*subW+c])
		}
	}
	return true
}

// InsertPage is an alias of InsertSubpattern.
func (e *Engine) InsertPage(page, row, col, subW, subH int, values []uint) bool {
	return e.InsertSubpattern(page, row, col, subW, subH, values)
}

// Reset restores page 0 to the initial configuration. Later pages keep their
// contents.
func (e *Engine) Reset() {
	e.pages[0] = e.seed.Clone()
	e.generation = 0
}

// Reseed replaces the stored initial configuration and page 0.
func (e *Engine) Reseed(initial *core.Lattice) error {
	if initial == nil || initial.W != e.w || initial.H != e.h {
		return fmt.Errorf("%w: reseed does not match %dx%d", core.ErrDimensionMismatch, e.w, e.h)
	}
	e.seed = initial.Clone()
	e.Reset()
	return nil
}

// String prints every page as a header line followed by its rows, digits
// concatenated.
func (e *Engine) String() string {
	var b strings.Builder
	for i, p := range e.pages {
		fmt.Fprintf(&b, "page : %d\n", i)
		for j, v := range p.Cells() {
			b.WriteString(strconv.FormatUint(uint64(v), 10))
			if j%e.w == e.w-1 {
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
