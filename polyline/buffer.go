package polyline

// Append adds (x,y) to the buffer. A no-op if it equals the last appended
// point (§3, "append(x,y) is a no-op when the new point equals the
// last"), which keeps grid-path-derived polylines free of consecutive
// duplicate vertices.
func (b *Buffer) Append(x, y int) {
	p := Point{X: x, Y: y}
	if n := len(b.points); n > 0 && b.points[n-1] == p {
		return
	}
	b.points = append(b.points, p)
}

// Len returns the number of points currently buffered.
func (b *Buffer) Len() int {
	return len(b.points)
}

// Reverse flips the buffered points in place.
func (b *Buffer) Reverse() {
	for i, j := 0, len(b.points)-1; i < j; i, j = i+1, j-1 {
		b.points[i], b.points[j] = b.points[j], b.points[i]
	}
}

// ToPolyline freezes the buffer into a Polyline. If exactly one point was
// appended, the result is a degenerate two-point polyline repeating that
// point (§3). Returns ErrEmptyBuffer if nothing was ever appended.
func (b *Buffer) ToPolyline() (*Polyline, error) {
	if len(b.points) == 0 {
		return nil, ErrEmptyBuffer
	}
	pts := make([]Point, len(b.points))
	copy(pts, b.points)
	if len(pts) == 1 {
		pts = append(pts, pts[0])
	}

	return &Polyline{points: pts}, nil
}
