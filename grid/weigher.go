package grid

import (
	"github.com/mholovka/scissors/pathfind"
	"github.com/mholovka/scissors/raster"
)

// borderWeight is the fixed substitute cost applied to axis-aligned edges
// adjacent to the image's outermost rows or columns (§4.5, §9). It is
// load-bearing: without it, search paths are attracted to cuts along the
// image boundary, because a true derivative can't be computed one pixel
// outside the raster. Do not "fix" this value.
const borderWeight = 180 - 64 // 116

// gradMax returns the ceiling cross_grad cannot exceed for dir's class:
// 180 for axis-aligned (even) directions, 255 for diagonal (odd) ones.
// Subtracting the observed cross-gradient from this ceiling turns "high
// gradient = strong edge" into "low cost = preferred edge".
func gradMax(dir int) int {
	if dir%2 == 0 {
		return 180
	}

	return 255
}

// crossGrad computes the magnitude of the image intensity slope in band b
// perpendicular to dir, at the edge from (x,y) in direction dir
// (§4.5).
func crossGrad(r *raster.Raster, x, y, band, dir int) int {
	off := dirOffsets[dir]
	nx, ny := x+off[0], y+off[1]

	switch dir {
	case 0, 4: // axis-aligned: right, left -> perpendicular is vertical
		return horizontalEdgeGrad(r, x, y, nx, band)
	case 2, 6: // axis-aligned: up, down -> perpendicular is horizontal
		return verticalEdgeGrad(r, x, y, ny, band)
	default: // diagonal
		return abs(int(r.At(nx, y, band)) - int(r.At(x, ny, band)))
	}
}

// horizontalEdgeGrad is the vertical-derivative approximation for the
// horizontal edge joining (x,y) and (xb,y).
func horizontalEdgeGrad(r *raster.Raster, x, y, xb, band int) int {
	if y == 0 || y == r.Height-1 {
		return borderWeight
	}
	top := int(r.At(x, y+1, band)) + int(r.At(xb, y+1, band))
	bot := int(r.At(x, y-1, band)) + int(r.At(xb, y-1, band))

	return abs(top-bot) / 4
}

// verticalEdgeGrad is the horizontal-derivative approximation for the
// vertical edge joining (x,y) and (x,yb).
func verticalEdgeGrad(r *raster.Raster, x, y, yb, band int) int {
	if x == 0 || x == r.Width-1 {
		return borderWeight
	}
	right := int(r.At(x+1, y, band)) + int(r.At(x+1, yb, band))
	left := int(r.At(x-1, y, band)) + int(r.At(x-1, yb, band))

	return abs(right-left) / 4
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func clampNonNegative(w int) int64 {
	if w < 0 {
		return 0
	}

	return int64(w)
}

// GrayscaleWeigher derives a one-band luminance raster from the grid's
// source image on construction and scores edges against it alone: weight =
// gradMax(dir) - crossGrad(gray, ..., band 0, dir). A strong luminance
// gradient near an edge makes that edge cheap to traverse.
type GrayscaleWeigher struct {
	gray *raster.Raster
}

// NewGrayscaleWeigher builds a GrayscaleWeigher over g's raster.
func NewGrayscaleWeigher(g *GridGraph) *GrayscaleWeigher {
	return &GrayscaleWeigher{gray: g.raster.Gray()}
}

// Weight implements pathfind.Weigher.
func (w *GrayscaleWeigher) Weight(e pathfind.Edge) int64 {
	x, y := e.From%w.gray.Width, e.From/w.gray.Width
	g := crossGrad(w.gray, x, y, 0, e.Dir)

	return clampNonNegative(gradMax(e.Dir) - g)
}

// ColorWeigher scores edges against the grid's raster as-is, taking the
// maximum cross-gradient across all bands as the edge's gradient signal,
// so color transitions between equally bright regions remain visible.
type ColorWeigher struct {
	r *raster.Raster
}

// NewColorWeigher builds a ColorWeigher over g's raster.
func NewColorWeigher(g *GridGraph) *ColorWeigher {
	return &ColorWeigher{r: g.raster}
}

// Weight implements pathfind.Weigher.
func (w *ColorWeigher) Weight(e pathfind.Edge) int64 {
	x, y := e.From%w.r.Width, e.From/w.r.Width
	max := 0
	for b := 0; b < w.r.Bands; b++ {
		if g := crossGrad(w.r, x, y, b, e.Dir); g > max {
			max = g
		}
	}

	return clampNonNegative(gradMax(e.Dir) - max)
}
