// Package ccl labels connected regions of live cells in a lattice.
package ccl

import (
	"fmt"

	"cellauto/internal/core"
)

// Connectivity selects the adjacency model used to join foreground cells.
type Connectivity int

const (
	// Four joins cells sharing an edge.
	Four Connectivity = iota
	// Eight also joins cells sharing a corner.
	Eight
)

func (c Connectivity) String() string {
	switch c {
	case Four:
		return "4-connected"
	case Eight:
		return "8-connected"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ConnectivityFor maps a CA neighbourhood onto the matching adjacency.
func ConnectivityFor(n core.Neighborhood) Connectivity {
	if n == core.Moore {
		return Eight
	}
	return Four
}

const (
	background = 0
	foreground = 1
)

// Label computes the connected components of the cells equal to 1 and
// returns a lattice of the same size. Background cells, including any value
// other than 1, are labelled 0.
//
// Without consecutive relabelling each region carries 1 + the lattice index
// of its union-find representative. With it, regions are numbered 1..K in the
// order their first cell appears in a row-major scan.
func Label(src *core.Lattice, conn Connectivity, consecutive bool) *core.Lattice {
	w, h := src.W, src.H
	cells := src.Cells()
	// Element i+1 stands for cell i; element 0 collects the background.
	ds := newDisjointSet(w*h + 1)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			if cells[idx] != foreground {
				ds.union(background, idx+1)
				continue
			}
			if row > 0 && cells[idx-w] == foreground {
				ds.union(idx+1, idx-w+1)
			}
			if col > 0 && cells[idx-1] == foreground {
				ds.union(idx+1, idx)
			}
			if conn == Eight && row > 0 {
				if col > 0 && cells[idx-w-1] == foreground {
					ds.union(idx+1, idx-w)
				}
				if col < w-1 && cells[idx-w+1] == foreground {
					ds.union(idx+1, idx-w+2)
				}
			}
		}
	}

	out := core.NewLattice(w, h)
	labels := out.Cells()
	for i := range labels {
		labels[i] = uint(ds.find(i + 1))
	}
	if consecutive {
		relabel(labels)
	}
	return out
}

// relabel maps representatives onto 1..K in first-occurrence order.
func relabel(labels []uint) {
	next := uint(1)
	table := map[uint]uint{background: background}
	for i, rep := range labels {
		v, ok := table[rep]
		if !ok {
			v = next
			table[rep] = v
			next++
		}
		labels[i] = v
	}
}

// Count returns the number of components in a consecutively relabelled lattice.
func Count(labels *core.Lattice) int {
	return int(labels.Max())
}
