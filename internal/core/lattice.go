package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Lattice stores a 2D grid of unsigned cell states in row-major order.
type Lattice struct {
	W, H int
	data []uint
}

// NewLattice allocates a zero-filled lattice with the given dimensions.
func NewLattice(w, h int) *Lattice {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Lattice{W: w, H: h, data: make([]uint, w*h)}
}

// LatticeFrom wraps a copy of cells, which must hold exactly w*h values.
func LatticeFrom(w, h int, cells []uint) (*Lattice, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrDimensionMismatch, len(cells), w*h)
	}
	data := make([]uint, len(cells))
	copy(data, cells)
	return &Lattice{W: w, H: h, data: data}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (l *Lattice) Cells() []uint { return l.data }

// Index returns the linear slice index for (row, col).
func (l *Lattice) Index(row, col int) int { return row*l.W + col }

// Get returns the state stored at (row, col).
func (l *Lattice) Get(row, col int) uint { return l.data[row*l.W+col] }

// Set stores v at (row, col).
func (l *Lattice) Set(row, col int, v uint) { l.data[row*l.W+col] = v }

// Clear fills the lattice with zeros.
func (l *Lattice) Clear() {
	for i := range l.data {
		l.data[i] = 0
	}
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	data := make([]uint, len(l.data))
	copy(data, l.data)
	return &Lattice{W: l.W, H: l.H, data: data}
}

// CopyFrom replaces every cell with the matching cell of src.
func (l *Lattice) CopyFrom(src *Lattice) error {
	if src.W != l.W || src.H != l.H {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrDimensionMismatch, src.W, src.H, l.W, l.H)
	}
	copy(l.data, src.data)
	return nil
}

// Equal reports whether both lattices have the same dimensions and cells.
func (l *Lattice) Equal(o *Lattice) bool {
	if o == nil || l.W != o.W || l.H != o.H {
		return false
	}
	for i, v := range l.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Max returns the largest value stored in the lattice.
func (l *Lattice) Max() uint {
	var m uint
	for _, v := range l.data {
		if v > m {
			m = v
		}
	}
	return m
}

// String renders one line per row with comma separated cell values.
func (l *Lattice) String() string {
	var b strings.Builder
	for i, v := range l.data {
		b.WriteString(strconv.FormatUint(uint64(v), 10))
		if i%l.W == l.W-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(',')
		}
	}
	return b.String()
}
