package export

import (
	"bytes"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cellauto/internal/core"
)

func sample(t *testing.T) *core.Lattice {
	t.Helper()
	l, err := core.LatticeFrom(3, 2, []uint{0, 1, 0, 12, 0, 1})
	if err != nil {
		t.Fatalf("LatticeFrom: %v", err)
	}
	return l
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "0,1,0\n12,0,1\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
	if buf.String() != sample(t).String() {
		t.Fatal("CSV export should match the lattice text form")
	}
}

func TestNames(t *testing.T) {
	if got := GridName(80, 60, "csv"); got != "width80_height60.csv" {
		t.Fatalf("GridName=%q", got)
	}
	if got := RuleName(110, 256, "png"); got != "rule110_length256.png" {
		t.Fatalf("RuleName=%q", got)
	}
	if got := PageName(8, 8, 3, "png"); got != "width8_height8_gen3.png" {
		t.Fatalf("PageName=%q", got)
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.png")
	if err := SavePNG(path, sample(t), PNGOptions{}); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds %v", b)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("background pixel %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(1, 0)); got != (color.RGBA{0x01, 0, 0, 0xff}) {
		t.Fatalf("foreground pixel %v", got)
	}
}

func TestResizedPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, sample(t), PNGOptions{Width: 12, Height: 8}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds %v", b)
	}
	// Cell (row 1, col 0) covers pixels x 0..3, y 4..7.
	if got := color.RGBAModel.Convert(img.At(2, 6)); got != (color.RGBA{12, 0, 0, 0xff}) {
		t.Fatalf("scaled pixel %v", got)
	}
}

func TestSaveGIF(t *testing.T) {
	a := sample(t)
	b := core.NewLattice(3, 2)
	path := filepath.Join(t.TempDir(), "run.gif")
	if err := SaveGIF(path, []*core.Lattice{a, b}, GIFOptions{Delay: 5, Scale: 2}); err != nil {
		t.Fatalf("SaveGIF: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 || anim.Delay[1] != 5 {
		t.Fatalf("frames=%d delays=%v", len(anim.Image), anim.Delay)
	}
	if bnds := anim.Image[0].Bounds(); bnds.Dx() != 6 || bnds.Dy() != 4 {
		t.Fatalf("frame bounds %v", bnds)
	}

	if err := WriteGIF(&bytes.Buffer{}, nil, GIFOptions{}); err == nil {
		t.Fatal("expected an error for an empty page list")
	}
}

func TestSaveReportsCreateErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "grid.csv")
	if err := SaveCSV(path, sample(t)); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
