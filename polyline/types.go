package polyline

// Point is an integer image coordinate.
type Point struct {
	X, Y int
}

// Polyline is an immutable sequence of at least two points. Start is the
// first point, End is the last; segments of a selection join at shared
// Start/End points (§3).
type Polyline struct {
	points []Point
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.points)
}

// At returns the i-th point.
func (p *Polyline) At(i int) Point {
	return p.points[i]
}

// Start returns the first point.
func (p *Polyline) Start() Point {
	return p.points[0]
}

// End returns the last point.
func (p *Polyline) End() Point {
	return p.points[len(p.points)-1]
}

// Points returns a defensive copy of the underlying points, in order.
func (p *Polyline) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)

	return out
}

// Equal reports component-wise equality with other.
func (p *Polyline) Equal(other *Polyline) bool {
	if other == nil || len(p.points) != len(other.points) {
		return false
	}
	for i, pt := range p.points {
		if pt != other.points[i] {
			return false
		}
	}

	return true
}

// Buffer is a growing, mutable polyline builder.
type Buffer struct {
	points []Point
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}
