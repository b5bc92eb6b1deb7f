package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates IDAt was called for a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// UnknownWeigherError is returned by MakeWeigher when name does not match
// any registered weigher (§6). It carries the offending name so
// callers can report it without re-parsing an error string.
type UnknownWeigherError struct {
	Name string
}

func (e *UnknownWeigherError) Error() string {
	return fmt.Sprintf("grid: unknown weigher %q", e.Name)
}
