package selection

import (
	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
)

// pointToPoint is the straight-line Variant (§4.6, "Straight
// segments"): every segment is the literal two-point line between its
// endpoints, and the variant never runs a background solve.
type pointToPoint struct{}

// straightLine builds the two-point polyline from a to b.
func straightLine(a, b polyline.Point) (*polyline.Polyline, error) {
	buf := polyline.NewBuffer()
	buf.Append(a.X, a.Y)
	buf.Append(b.X, b.Y)

	return buf.ToPolyline()
}

func (pointToPoint) onStart(*Model, polyline.Point) {}

func (pointToPoint) appendToSelection(m *Model, p polyline.Point) error {
	seg, err := straightLine(m.lastPoint(), p)
	if err != nil {
		return err
	}
	m.segments = append(m.segments, seg)
	m.bus.emit(PropertySelection, nil, m.selectionView())

	return nil
}

func (pointToPoint) finishSegment(m *Model) (*polyline.Polyline, error) {
	return straightLine(m.lastPoint(), m.start)
}

func (pointToPoint) liveWire(m *Model, p polyline.Point) (*polyline.Polyline, error) {
	return straightLine(m.lastPoint(), p)
}

func (pointToPoint) movePoint(m *Model, i int, q polyline.Point) error {
	n := len(m.segments)
	if i < 0 || i >= n {
		return ErrInvalidArgument
	}
	prev := (i - 1 + n) % n

	newPrev, err := straightLine(m.segments[prev].Start(), q)
	if err != nil {
		return err
	}
	newNext, err := straightLine(q, m.segments[i].End())
	if err != nil {
		return err
	}
	m.segments[prev] = newPrev
	m.segments[i] = newNext
	if i == 0 {
		m.start = q
	}
	m.bus.emit(PropertySelection, nil, m.selectionView())

	return nil
}

func (pointToPoint) onEndpointChanged(*Model, polyline.Point) {}
func (pointToPoint) cancelProcessing(*Model)                  {}
func (pointToPoint) detachWorker(*Model)                      {}
func (pointToPoint) onImageSet(*Model, *raster.Raster)        {}
