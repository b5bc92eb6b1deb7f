package pathfind_test

import (
	"fmt"

	"github.com/mholovka/scissors/pathfind"
)

// ExampleShortestPaths demonstrates a full solve and path reconstruction on
// a tiny three-vertex graph.
func ExampleShortestPaths() {
	g := newListGraph(3)
	g.addDirected(0, 1, 1)
	g.addDirected(1, 2, 2)
	g.addDirected(0, 2, 5)
	wt := weightTable{{0, 1}: 1, {1, 2}: 2, {0, 2}: 5}

	sp := pathfind.NewShortestPaths(g, wt)
	snap := sp.FindAllPaths(0)

	path, err := snap.PathTo(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(snap.DistanceTo(2), path)
	// Output: 3 [0 1 2]
}
