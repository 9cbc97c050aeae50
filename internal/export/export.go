// Package export writes lattices to CSV, PNG and animated GIF files.
package export

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"strconv"

	"cellauto/internal/core"
	"cellauto/internal/render"

	"golang.org/x/image/draw"
)

// GridName returns the file name of a 2D lattice export.
func GridName(w, h int, ext string) string {
	return fmt.Sprintf("width%d_height%d.%s", w, h, ext)
}

// PageName returns the file name of a single generation of a 2D run.
func PageName(w, h, generation int, ext string) string {
	return fmt.Sprintf("width%d_height%d_gen%d.%s", w, h, generation, ext)
}

// RuleName returns the file name of an elementary automaton export.
func RuleName(rule uint8, w int, ext string) string {
	return fmt.Sprintf("rule%d_length%d.%s", rule, w, ext)
}

// WriteCSV writes one record per lattice row, one field per cell.
func WriteCSV(w io.Writer, l *core.Lattice) error {
	cw := csv.NewWriter(w)
	record := make([]string, l.W)
	cells := l.Cells()
	for row := 0; row < l.H; row++ {
		for col := range record {
			record[col] = strconv.FormatUint(uint64(cells[row*l.W+col]), 10)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PNGOptions controls SavePNG.
type PNGOptions struct {
	// Width and Height resize the image with nearest-neighbour sampling when
	// both are positive.
	Width, Height int
	// Fill maps cells to pixels; nil selects the export mapping.
	Fill func(buf []byte, cells []uint)
}

// WritePNG encodes l as a PNG image.
func WritePNG(w io.Writer, l *core.Lattice, opts PNGOptions) error {
	fill := opts.Fill
	if fill == nil {
		fill = render.FillExportRGBA
	}
	var img image.Image = render.Image(l.W, l.H, l.Cells(), fill)
	if opts.Width > 0 && opts.Height > 0 {
		img = Resize(img, opts.Width, opts.Height)
	}
	return png.Encode(w, img)
}

// Resize scales img to w x h with nearest-neighbour sampling.
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// GIFOptions controls WriteGIF.
type GIFOptions struct {
	// Delay between frames in hundredths of a second.
	Delay int
	// Scale enlarges every cell to a Scale x Scale block.
	Scale int
	Fill  func(buf []byte, cells []uint)
}

// WriteGIF encodes pages as the frames of an animated GIF.
func WriteGIF(w io.Writer, pages []*core.Lattice, opts GIFOptions) error {
	if len(pages) == 0 {
		return fmt.Errorf("export: no pages to encode")
	}
	fill := opts.Fill
	if fill == nil {
		fill = render.FillExportRGBA
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	anim := &gif.GIF{}
	for _, p := range pages {
		var src image.Image = render.Image(p.W, p.H, p.Cells(), fill)
		if scale > 1 {
			src = Resize(src, p.W*scale, p.H*scale)
		}
		frame := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.Draw(frame, frame.Bounds(), src, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, anim)
}

// SaveCSV writes l to path.
func SaveCSV(path string, l *core.Lattice) error {
	return save(path, func(w io.Writer) error { return WriteCSV(w, l) })
}

// SavePNG writes l to path.
func SavePNG(path string, l *core.Lattice, opts PNGOptions) error {
	return save(path, func(w io.Writer) error { return WritePNG(w, l, opts) })
}

// SaveGIF writes pages to path.
func SaveGIF(path string, pages []*core.Lattice, opts GIFOptions) error {
	return save(path, func(w io.Writer) error { return WriteGIF(w, pages, opts) })
}

func save(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
