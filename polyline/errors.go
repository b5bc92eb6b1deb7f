package polyline

import "errors"

// Sentinel errors for polyline operations.
var (
	// ErrEmptyBuffer indicates ToPolyline was called before any point was
	// appended to the Buffer.
	ErrEmptyBuffer = errors.New("polyline: buffer has no points")
)
