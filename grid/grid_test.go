package grid_test

import (
	"errors"
	"testing"

	"github.com/mholovka/scissors/grid"
	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
)

func newTestRaster(w, h, bands int) *raster.Raster {
	return &raster.Raster{Width: w, Height: h, Bands: bands, Pix: make([]uint8, w*h*bands)}
}

func TestGridGraph_IDAtAndCoordinate(t *testing.T) {
	r := newTestRaster(4, 3, 1)
	g := grid.NewGridGraph(r)

	id, err := g.IDAt(2, 1)
	if err != nil {
		t.Fatalf("IDAt: %v", err)
	}
	if want := 2 + 4*1; id != want {
		t.Fatalf("expected id %d, got %d", want, id)
	}
	x, y := g.Coordinate(id)
	if x != 2 || y != 1 {
		t.Fatalf("Coordinate roundtrip: expected (2,1), got (%d,%d)", x, y)
	}
}

func TestGridGraph_IDAtOutOfBounds(t *testing.T) {
	r := newTestRaster(4, 3, 1)
	g := grid.NewGridGraph(r)
	if _, err := g.IDAt(-1, 0); err != grid.ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.IDAt(4, 0); err != grid.ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestGridGraph_EdgesCorner(t *testing.T) {
	r := newTestRaster(4, 3, 1)
	g := grid.NewGridGraph(r)

	// Top-left corner (0,0) only has right(0), down(6), down-right(7) in bounds.
	id, _ := g.IDAt(0, 0)
	edges := g.Edges(id)
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges from corner, got %d", len(edges))
	}
	dirs := make([]int, len(edges))
	for i, e := range edges {
		dirs[i] = e.Dir
	}
	want := []int{0, 6, 7}
	for i, d := range want {
		if dirs[i] != d {
			t.Fatalf("edges not in ascending dir order: expected %v, got %v", want, dirs)
		}
	}
}

func TestGridGraph_EdgesInterior(t *testing.T) {
	r := newTestRaster(5, 5, 1)
	g := grid.NewGridGraph(r)
	id, _ := g.IDAt(2, 2)
	edges := g.Edges(id)
	if len(edges) != 8 {
		t.Fatalf("expected 8 edges from interior vertex, got %d", len(edges))
	}
}

func TestGridGraph_PathToPolyline(t *testing.T) {
	r := newTestRaster(5, 5, 1)
	g := grid.NewGridGraph(r)
	a, _ := g.IDAt(0, 0)
	b, _ := g.IDAt(1, 0)
	c, _ := g.IDAt(1, 1)

	pl, err := g.PathToPolyline([]int{a, b, c})
	if err != nil {
		t.Fatalf("PathToPolyline: %v", err)
	}
	if pl.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", pl.Len())
	}
	if pl.Start() != (polyline.Point{X: 0, Y: 0}) {
		t.Fatalf("expected start (0,0), got %v", pl.Start())
	}
	if pl.End() != (polyline.Point{X: 1, Y: 1}) {
		t.Fatalf("expected end (1,1), got %v", pl.End())
	}
}

func TestMakeWeigher_UnknownName(t *testing.T) {
	r := newTestRaster(3, 3, 3)
	g := grid.NewGridGraph(r)
	_, err := grid.MakeWeigher("bogus", g)
	if err == nil {
		t.Fatalf("expected error for unknown weigher name")
	}
	var uw *grid.UnknownWeigherError
	if !errors.As(err, &uw) {
		t.Fatalf("expected *UnknownWeigherError, got %T: %v", err, err)
	}
	if uw.Name != "bogus" {
		t.Fatalf("expected name %q, got %q", "bogus", uw.Name)
	}
}

func TestMakeWeigher_KnownNames(t *testing.T) {
	r := newTestRaster(3, 3, 3)
	g := grid.NewGridGraph(r)
	for _, name := range grid.WeigherNames() {
		if _, err := grid.MakeWeigher(name, g); err != nil {
			t.Fatalf("MakeWeigher(%q): %v", name, err)
		}
	}
}

func TestWeigher_NonNegative(t *testing.T) {
	r := newTestRaster(6, 6, 3)
	for i := range r.Pix {
		r.Pix[i] = uint8((i * 97) % 256)
	}
	g := grid.NewGridGraph(r)

	for _, name := range grid.WeigherNames() {
		w, err := grid.MakeWeigher(name, g)
		if err != nil {
			t.Fatalf("MakeWeigher(%q): %v", name, err)
		}
		for v := 0; v < g.VertexCount(); v++ {
			for _, e := range g.Edges(v) {
				if got := w.Weight(e); got < 0 {
					t.Fatalf("%s: negative weight %d for edge %+v", name, got, e)
				}
			}
		}
	}
}
