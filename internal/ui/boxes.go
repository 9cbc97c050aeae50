package ui

import (
	"image"

	"cellauto/internal/core"
)

// componentBoxes returns the bounding rectangle of each non-zero label in
// cell coordinates, indexed by label-1. Labels must be consecutive.
func componentBoxes(labels *core.Lattice) []image.Rectangle {
	if labels == nil {
		return nil
	}
	boxes := make([]image.Rectangle, labels.Max())
	seen := make([]bool, len(boxes))
	for row := 0; row < labels.H; row++ {
		for col := 0; col < labels.W; col++ {
			l := labels.Get(row, col)
			if l == 0 {
				continue
			}
			cell := image.Rect(col, row, col+1, row+1)
			i := int(l) - 1
			if !seen[i] {
				boxes[i], seen[i] = cell, true
				continue
			}
			boxes[i] = boxes[i].Union(cell)
		}
	}
	return boxes
}
