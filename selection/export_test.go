package selection_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
	"github.com/mholovka/scissors/selection"
)

func squareRaster(n int) *raster.Raster {
	pix := make([]uint8, n*n)
	for i := range pix {
		pix[i] = 200
	}

	return &raster.Raster{Width: n, Height: n, Bands: 1, Pix: pix}
}

func TestSaveSelection_RequiresSelected(t *testing.T) {
	m := selection.NewPointToPoint()
	var buf bytes.Buffer
	if err := m.SaveSelection(&buf); err != selection.ErrIllegalState {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
}

func TestSaveSelection_ProducesBoundedPNG(t *testing.T) {
	m := selection.NewPointToPoint()
	if err := m.SetImage(squareRaster(20)); err != nil {
		t.Fatalf("SetImage: %v", err)
	}
	// A right triangle, not the square spanned by its own bounding box, so
	// the box has pixels (its far corner) that lie strictly outside the
	// polygon to check against.
	for _, p := range []polyline.Point{{X: 2, Y: 2}, {X: 10, Y: 2}, {X: 2, Y: 10}} {
		if err := m.AddPoint(p); err != nil {
			t.Fatalf("AddPoint: %v", err)
		}
	}
	if err := m.FinishSelection(); err != nil {
		t.Fatalf("FinishSelection: %v", err)
	}

	var buf bytes.Buffer
	if err := m.SaveSelection(&buf); err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 9 || b.Dy() != 9 {
		t.Fatalf("expected a 9x9 bounding box (2..10 inclusive), got %dx%d", b.Dx(), b.Dy())
	}

	// Output pixel (2,2) — source pixel (4,4) — is well inside the triangle;
	// output pixel (8,8) is the bounding box's far corner, cut off by the
	// hypotenuse, so it lies outside the polygon.
	_, _, _, aIn := img.At(2, 2).RGBA()
	if aIn == 0 {
		t.Fatalf("expected an opaque pixel inside the polygon")
	}
	_, _, _, aOut := img.At(8, 8).RGBA()
	if aOut != 0 {
		t.Fatalf("expected a transparent pixel outside the polygon, got alpha %d", aOut)
	}
}
