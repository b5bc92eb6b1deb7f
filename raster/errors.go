package raster

import "errors"

// Sentinel errors for raster operations.
var (
	// ErrEmptyImage indicates a zero-width or zero-height image.Image was
	// passed to FromImage.
	ErrEmptyImage = errors.New("raster: image has zero width or height")
)
