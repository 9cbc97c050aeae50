//go:build ebiten

package ui

import (
	"image/color"

	"cellauto/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type labelsProvider interface {
	Labels() *core.Lattice
}

// Overlay outlines connected components on top of the simulation view.
type Overlay struct {
	sim       core.Sim
	scale     int
	showBoxes bool
	pixel     *ebiten.Image
}

var boxColor = color.RGBA{R: 255, G: 64, B: 64, A: 200}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the component outlines with B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBoxes = !o.showBoxes
	}
}

// Draw outlines every component's bounding box.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showBoxes {
		return
	}
	p, ok := o.sim.(labelsProvider)
	if !ok {
		return
	}
	s := float64(o.scale)
	for _, b := range componentBoxes(p.Labels()) {
		x0, y0 := float64(b.Min.X)*s, float64(b.Min.Y)*s
		w, h := float64(b.Dx())*s, float64(b.Dy())*s
		o.fillRect(screen, x0, y0, w, 1)
		o.fillRect(screen, x0, y0+h-1, w, 1)
		o.fillRect(screen, x0, y0, 1, h)
		o.fillRect(screen, x0+w-1, y0, 1, h)
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(boxColor)
	dst.DrawImage(o.pixel, op)
}
