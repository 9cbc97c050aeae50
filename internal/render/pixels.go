// Package render converts lattice cells into RGBA pixel buffers.
package render

import (
	"image"
	"image/color"
)

// labelStride spreads consecutive labels across the colour cube.
const labelStride = 1000

// FillExportRGBA writes one pixel per cell: 0 is opaque white, any other value
// uses its low three bytes as red, green and blue with full alpha.
func FillExportRGBA(buf []byte, cells []uint) {
	for i, c := range cells {
		base := i * 4
		if c == 0 {
			buf[base+0] = 0xff
			buf[base+1] = 0xff
			buf[base+2] = 0xff
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = uint8(c)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c >> 16)
		buf[base+3] = 0xff
	}
}

// FillBinaryRGBA converts cell data into on/off RGBA pixels in buf. Any
// non-zero cell counts as on.
func FillBinaryRGBA(buf []byte, cells []uint, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// LabelColor returns the display colour of a component label. Label 0 is
// opaque black.
func LabelColor(label uint) color.RGBA {
	if label == 0 {
		return color.RGBA{A: 0xff}
	}
	v := label * labelStride
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// FillLabelRGBA converts component labels into display colours.
func FillLabelRGBA(buf []byte, labels []uint) {
	for i, l := range labels {
		c := LabelColor(l)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Image wraps cells in an RGBA image using fill for the pixel mapping.
func Image(w, h int, cells []uint, fill func(buf []byte, cells []uint)) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img.Pix, cells)
	return img
}
