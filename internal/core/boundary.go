package core

import (
	"fmt"
	"strings"
)

// BoundaryPolicy enumerates the lattice edge topologies.
type BoundaryPolicy int

const (
	BoundaryNull BoundaryPolicy = iota
	BoundaryCylinder
	BoundaryMoebius
	BoundaryTorus
	BoundaryKlein
)

var boundaryNames = map[BoundaryPolicy]string{
	BoundaryNull:     "null",
	BoundaryCylinder: "cylinder",
	BoundaryMoebius:  "moebius",
	BoundaryTorus:    "torus",
	BoundaryKlein:    "klein",
}

func (p BoundaryPolicy) String() string {
	if name, ok := boundaryNames[p]; ok {
		return name
	}
	return fmt.Sprintf("BoundaryPolicy(%d)", int(p))
}

// ParseBoundaryPolicy maps a policy name to its value. Unknown names are an error;
// known but unimplemented ones are returned as-is and rejected by NewBoundary.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range boundaryNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("core: unknown boundary policy %q", s)
}

// Invalid is returned by a Boundary when a shifted index leaves the lattice.
const Invalid = -1

// Boundary resolves a shifted row or column index under an edge policy.
type Boundary interface {
	ResolveRow(row, offset int) int
	ResolveColumn(col, offset int) int
}

// NewBoundary returns the resolver for p over a w*h lattice.
func NewBoundary(w, h int, p BoundaryPolicy) (Boundary, error) {
	switch p {
	case BoundaryNull:
		return nullBoundary{w: w, h: h}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPolicy, p)
	}
}

// nullBoundary treats everything beyond the edge as absent.
type nullBoundary struct {
	w, h int
}

func (b nullBoundary) ResolveRow(row, offset int) int {
	return resolveNull(row, offset, b.h)
}

func (b nullBoundary) ResolveColumn(col, offset int) int {
	return resolveNull(col, offset, b.w)
}

func resolveNull(i, offset, n int) int {
	if (i == 0 && offset < 0) || (i == n-1 && offset > 0) {
		return Invalid
	}
	return i + offset
}
