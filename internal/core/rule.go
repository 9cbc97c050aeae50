package core

// Rule is a numeric rule code read bit by bit.
//
// Totalistic codes are indexed by the sum of all nine cells. Outer-totalistic
// codes are indexed by 2n+a where a is the centre state and n the sum of the
// other eight cells, so Conway's Life is code 224.
type Rule uint64

// Totalistic returns bit sum of the code.
func (r Rule) Totalistic(sum uint) uint {
	return r.bit(sum)
}

// OuterTotalistic returns bit 2*neighbors+center of the code.
func (r Rule) OuterTotalistic(center, neighbors uint) uint {
	return r.bit(2*neighbors + center)
}

func (r Rule) bit(i uint) uint {
	return uint(r>>i) & 1
}
