package grid_test

import (
	"math/rand"
	"testing"

	"github.com/mholovka/scissors/grid"
)

// BenchmarkColorWeigher_Weight measures per-edge weight evaluation cost on
// a 256x256 random RGB raster, the hot path a full-image solve hammers.
func BenchmarkColorWeigher_Weight(b *testing.B) {
	const n = 256
	rnd := rand.New(rand.NewSource(7))
	r := newTestRaster(n, n, 3)
	rnd.Read(r.Pix)
	g := grid.NewGridGraph(r)
	w := grid.NewColorWeigher(g)
	edges := g.Edges(g.VertexCount() / 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range edges {
			_ = w.Weight(e)
		}
	}
}
