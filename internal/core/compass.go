package core

import "fmt"

// Neighborhood selects which compass directions contribute to a cell update.
type Neighborhood int

const (
	// VonNeumann uses the four cardinal neighbours.
	VonNeumann Neighborhood = iota
	// Moore adds the four diagonal neighbours.
	Moore
)

func (n Neighborhood) String() string {
	switch n {
	case VonNeumann:
		return "von-neumann"
	case Moore:
		return "moore"
	default:
		return fmt.Sprintf("Neighborhood(%d)", int(n))
	}
}

// Compass slots. The order is part of the contract: aggregation results are
// indexed by these constants.
const (
	NorthWest = iota
	North
	NorthEast
	West
	Origin
	East
	SouthWest
	South
	SouthEast
)

// Direction is one entry of the nine-direction offset table.
type Direction struct {
	DX, DY   int
	Cardinal bool
	Active   bool
}

// Compass is the offset table for a neighbourhood model.
type Compass [9]Direction

var compassOffsets = [9]struct {
	dx, dy   int
	cardinal bool
}{
	{-1, -1, false},
	{0, -1, true},
	{1, -1, false},
	{-1, 0, true},
	{0, 0, false},
	{1, 0, true},
	{-1, 1, false},
	{0, 1, true},
	{1, 1, false},
}

// NewCompass builds the offset table. Cardinal entries and the origin are
// always active; diagonals are active only for the Moore neighbourhood.
func NewCompass(n Neighborhood) Compass {
	var c Compass
	for i, o := range compassOffsets {
		c[i] = Direction{
			DX:       o.dx,
			DY:       o.dy,
			Cardinal: o.cardinal,
			Active:   o.cardinal || i == Origin || n == Moore,
		}
	}
	return c
}

// IsOrigin reports whether d is the zero offset.
func (d Direction) IsOrigin() bool { return d.DX == 0 && d.DY == 0 }
