package selection

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mholovka/scissors/polyline"
	"golang.org/x/image/vector"
)

// SaveSelection writes a PNG to w sized to the selection polygon's
// axis-aligned bounding box: pixels inside the polygon copy the backing
// image, pixels outside are fully transparent (§6, "Save format").
// Requires SELECTED and a configured image.
func (m *Model) SaveSelection(w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return err
	}
	if m.state != Selected {
		return ErrIllegalState
	}
	if m.img == nil {
		return ErrIllegalState
	}

	poly := polygonFromSegments(m.segments, m.start)
	if len(poly) < 3 {
		return ErrIllegalState
	}

	minX, minY, maxX, maxY := boundingBox(poly)
	bw, bh := maxX-minX, maxY-minY
	if bw <= 0 || bh <= 0 {
		return ErrIllegalState
	}

	mask := rasterizePolygon(poly, minX, minY, bw, bh)
	out := image.NewNRGBA(image.Rect(0, 0, bw, bh))
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			c := m.pixelAt(minX+x, minY+y)
			out.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: a})
		}
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("%w: %v", ErrIoError, err)
	}

	return nil
}

// polygonFromSegments concatenates the selection's segment polylines in
// order and closes the ring back to start (§6, "Polygon from
// segments"). A point identical to the one immediately before it — at a
// segment join, or at the closing edge — is dropped by polyline.Buffer's
// ordinary append rule; no separate dedup pass is needed.
func polygonFromSegments(segments []*polyline.Polyline, start polyline.Point) []polyline.Point {
	buf := polyline.NewBuffer()
	for _, seg := range segments {
		for i := 0; i < seg.Len(); i++ {
			p := seg.At(i)
			buf.Append(p.X, p.Y)
		}
	}
	buf.Append(start.X, start.Y)

	pl, err := buf.ToPolyline()
	if err != nil {
		return nil
	}

	return pl.Points()
}

// boundingBox returns the smallest integer rectangle covering every point
// in pts, with maxX/maxY one past the rightmost/bottommost pixel.
func boundingBox(pts []polyline.Point) (minX, minY, maxX, maxY int) {
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return minX, minY, maxX + 1, maxY + 1
}

// rasterizePolygon fills the closed ring pts (translated by -minX,-minY)
// into a bw x bh alpha mask.
func rasterizePolygon(pts []polyline.Point, minX, minY, bw, bh int) *image.Alpha {
	rz := vector.NewRasterizer(bw, bh)
	rz.MoveTo(float32(pts[0].X-minX), float32(pts[0].Y-minY))
	for _, p := range pts[1:] {
		rz.LineTo(float32(p.X-minX), float32(p.Y-minY))
	}
	rz.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, bw, bh))
	rz.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// pixelAt reads the backing raster at (x,y), expanding a single-band
// (grayscale) raster to equal R/G/B.
func (m *Model) pixelAt(x, y int) color.NRGBA {
	r := m.img
	if !r.InBounds(x, y) {
		return color.NRGBA{}
	}
	if r.Bands == 1 {
		v := r.At(x, y, 0)

		return color.NRGBA{R: v, G: v, B: v, A: 255}
	}

	return color.NRGBA{R: r.At(x, y, 0), G: r.At(x, y, 1), B: r.At(x, y, 2), A: 255}
}
