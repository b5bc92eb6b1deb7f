package grid

import (
	"github.com/mholovka/scissors/pathfind"
	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
)

// dirOffsets is the direction table of §3: index = direction code,
// value = (dx,dy) of the neighbor in that direction. Counterclockwise from
// "right", in image coordinates where y increases downward.
var dirOffsets = [8][2]int{
	0: {1, 0},   // right
	1: {1, -1},  // up-right
	2: {0, -1},  // up
	3: {-1, -1}, // up-left
	4: {-1, 0},  // left
	5: {-1, 1},  // down-left
	6: {0, 1},   // down
	7: {1, 1},   // down-right
}

// GridGraph is an implicit 8-connected pixel graph over a raster.Raster: no
// edge storage is ever materialized, satisfying pathfind.Graph by deriving
// edges from (x,y) arithmetic on demand.
type GridGraph struct {
	raster *raster.Raster
}

// NewGridGraph wraps r as a GridGraph. r is shared read-only; GridGraph
// does not copy it (§5, "Shared resources").
func NewGridGraph(r *raster.Raster) *GridGraph {
	return &GridGraph{raster: r}
}

// Width returns the grid's width in pixels.
func (g *GridGraph) Width() int { return g.raster.Width }

// Height returns the grid's height in pixels.
func (g *GridGraph) Height() int { return g.raster.Height }

// VertexCount implements pathfind.Graph: N = Width*Height.
func (g *GridGraph) VertexCount() int {
	return g.raster.Width * g.raster.Height
}

// IDAt returns the dense vertex id for (x,y): id = x + Width*y. Returns
// ErrOutOfBounds if the point lies outside the grid.
func (g *GridGraph) IDAt(x, y int) (int, error) {
	if !g.raster.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}

	return x + g.raster.Width*y, nil
}

// Coordinate converts a vertex id back to (x,y).
func (g *GridGraph) Coordinate(id int) (x, y int) {
	return id % g.raster.Width, id / g.raster.Width
}

// Edges implements pathfind.Graph: the subset of the 8 direction codes
// whose neighbor stays within bounds, in ascending direction order.
// Complexity: O(1).
func (g *GridGraph) Edges(v int) []pathfind.Edge {
	x, y := g.Coordinate(v)
	edges := make([]pathfind.Edge, 0, 8)
	for dir := 0; dir < 8; dir++ {
		off := dirOffsets[dir]
		nx, ny := x+off[0], y+off[1]
		if !g.raster.InBounds(nx, ny) {
			continue
		}
		to, _ := g.IDAt(nx, ny)
		edges = append(edges, pathfind.Edge{From: v, To: to, Dir: dir})
	}

	return edges
}

// PathToPolyline converts a sequence of vertex ids (as returned by
// pathfind.Snapshot.PathTo) into a polyline.Polyline, appending each
// vertex's (x,y) to a builder (consecutive duplicates suppressed per
// polyline.Buffer.Append; §4.4).
func (g *GridGraph) PathToPolyline(ids []int) (*polyline.Polyline, error) {
	buf := polyline.NewBuffer()
	for _, id := range ids {
		x, y := g.Coordinate(id)
		buf.Append(x, y)
	}

	return buf.ToPolyline()
}
