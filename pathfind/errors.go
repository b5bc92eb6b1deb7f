package pathfind

import "errors"

// Sentinel errors for pathfind operations.
var (
	// ErrNotDiscovered indicates PathTo was called for a vertex the search
	// has not yet seen (no predecessor and it is not the source).
	ErrNotDiscovered = errors.New("pathfind: vertex not discovered")
)
