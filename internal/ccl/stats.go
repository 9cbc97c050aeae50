package ccl

import (
	"cellauto/internal/core"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the component sizes of a labelled lattice.
type Summary struct {
	Components int
	Sizes      []float64
	Largest    int
	MeanSize   float64
	StdDevSize float64
}

// Summarize tallies the cell count of every positive label. Sizes is indexed
// by label-1, so it is dense only for consecutive labels.
func Summarize(labels *core.Lattice) Summary {
	k := Count(labels)
	s := Summary{Components: k}
	if k == 0 {
		return s
	}
	s.Sizes = make([]float64, k)
	for _, v := range labels.Cells() {
		if v != 0 {
			s.Sizes[v-1]++
		}
	}
	for _, size := range s.Sizes {
		if int(size) > s.Largest {
			s.Largest = int(size)
		}
	}
	if k == 1 {
		s.MeanSize = s.Sizes[0]
		return s
	}
	s.MeanSize, s.StdDevSize = stat.MeanStdDev(s.Sizes, nil)
	return s
}
