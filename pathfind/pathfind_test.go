package pathfind_test

import (
	"testing"

	"github.com/mholovka/scissors/pathfind"
)

// listGraph is a minimal pathfind.Graph backed by an adjacency list, used
// only to exercise the engine against its worked examples (S1-S4).
type listGraph struct {
	adj [][]pathfind.Edge
}

func newListGraph(n int) *listGraph {
	return &listGraph{adj: make([][]pathfind.Edge, n)}
}

func (g *listGraph) addDirected(from, to int, _ int64) {
	g.adj[from] = append(g.adj[from], pathfind.Edge{From: from, To: to})
}

func (g *listGraph) addUndirected(a, b int) {
	g.adj[a] = append(g.adj[a], pathfind.Edge{From: a, To: b})
	g.adj[b] = append(g.adj[b], pathfind.Edge{From: b, To: a})
}

func (g *listGraph) VertexCount() int { return len(g.adj) }

func (g *listGraph) Edges(v int) []pathfind.Edge { return g.adj[v] }

// weightTable looks up a weight by (from,to) pair; used alongside listGraph
// to keep the edge weight out of pathfind.Edge (which only the grid package
// needs to carry a direction code for).
type weightTable map[[2]int]int64

func (w weightTable) Weight(e pathfind.Edge) int64 {
	return w[[2]int{e.From, e.To}]
}

// S1 — Dijkstra on a small graph (§8).
func TestShortestPaths_S1(t *testing.T) {
	const A, B, C, D, E, F, G = 0, 1, 2, 3, 4, 5, 6
	g := newListGraph(7)
	wt := weightTable{}
	add := func(from, to int, w int64) {
		g.addDirected(from, to, w)
		wt[[2]int{from, to}] = w
	}
	add(A, B, 9)
	add(A, C, 14)
	add(A, D, 15)
	add(B, E, 23)
	add(C, E, 17)
	add(C, D, 5)
	add(C, F, 30)
	add(D, F, 20)
	add(D, G, 37)
	add(E, F, 3)
	add(E, G, 20)
	add(F, G, 16)

	sp := pathfind.NewShortestPaths(g, wt)
	snap := sp.FindAllPaths(A)

	if got := snap.DistanceTo(G); got != 50 {
		t.Fatalf("distance to G: expected 50, got %d", got)
	}
	path, err := snap.PathTo(G)
	if err != nil {
		t.Fatalf("PathTo(G): %v", err)
	}
	want := []int{A, C, E, F, G}
	if !intsEqual(path, want) {
		t.Fatalf("path to G: expected %v, got %v", want, path)
	}
	for v := A; v <= G; v++ {
		if !snap.Discovered(v) {
			t.Fatalf("vertex %d expected discovered", v)
		}
		if !snap.Settled(v) {
			t.Fatalf("vertex %d expected settled", v)
		}
	}
}

// S2 — priority reduction during search (§8).
func TestShortestPaths_S2(t *testing.T) {
	const A, B, C, D, E = 0, 1, 2, 3, 4
	g := newListGraph(5)
	wt := weightTable{}
	add := func(a, b int, w int64) {
		g.addUndirected(a, b)
		wt[[2]int{a, b}] = w
		wt[[2]int{b, a}] = w
	}
	add(A, D, 5)
	add(D, E, 1)
	add(B, C, 1)
	add(A, C, 6)
	add(C, E, 1)
	add(A, B, 1)
	add(A, E, 4)

	sp := pathfind.NewShortestPaths(g, wt)
	snap := sp.FindAllPaths(A)

	if got := snap.DistanceTo(D); got != 4 {
		t.Fatalf("distance to D: expected 4, got %d", got)
	}
	path, err := snap.PathTo(D)
	if err != nil {
		t.Fatalf("PathTo(D): %v", err)
	}
	want := []int{A, B, C, E, D}
	if !intsEqual(path, want) {
		t.Fatalf("path to D: expected %v, got %v", want, path)
	}
}

// S3 — disconnected components (§8).
func TestShortestPaths_S3(t *testing.T) {
	const A, B = 0, 1
	g := newListGraph(2)
	wt := weightTable{}

	sp := pathfind.NewShortestPaths(g, wt)
	snap := sp.FindAllPaths(A)

	if got := snap.DistanceTo(A); got != 0 {
		t.Fatalf("distance to A: expected 0, got %d", got)
	}
	if got := snap.DistanceTo(B); got != -1 {
		t.Fatalf("distance to B: expected -1, got %d", got)
	}
	if snap.Discovered(B) {
		t.Fatalf("B expected undiscovered")
	}
	if sp.SettledCount() != 1 {
		t.Fatalf("settled count: expected 1, got %d", sp.SettledCount())
	}
	if !sp.AllPathsFound() {
		t.Fatalf("expected AllPathsFound() true")
	}
}

// S4 — batched extension (§8), reusing the S1 graph.
func TestShortestPaths_S4(t *testing.T) {
	const A, B, C, D, E, F, G = 0, 1, 2, 3, 4, 5, 6
	g := newListGraph(7)
	wt := weightTable{}
	add := func(from, to int, w int64) {
		g.addDirected(from, to, w)
		wt[[2]int{from, to}] = w
	}
	add(A, B, 9)
	add(A, C, 14)
	add(A, D, 15)
	add(B, E, 23)
	add(C, E, 17)
	add(C, D, 5)
	add(C, F, 30)
	add(D, F, 20)
	add(D, G, 37)
	add(E, F, 3)
	add(E, G, 20)
	add(F, G, 16)

	sp := pathfind.NewShortestPaths(g, wt)
	sp.SetStart(A)

	sp.ExtendSearch(3)
	if sp.SettledCount() != 3 {
		t.Fatalf("after extend(3): expected settled 3, got %d", sp.SettledCount())
	}
	sp.ExtendSearch(2)
	if sp.SettledCount() != 5 {
		t.Fatalf("after extend(2): expected settled 5, got %d", sp.SettledCount())
	}
	sp.ExtendSearch(2 * sp.VertexCount())
	if !sp.AllPathsFound() {
		t.Fatalf("expected AllPathsFound() true after exhausting the frontier")
	}
}

// TestShortestPaths_IncrementalEquivalence checks that settling one vertex
// at a time yields the same final snapshot as a single find-all-paths call
// (§8 invariant 6).
func TestShortestPaths_IncrementalEquivalence(t *testing.T) {
	const A, B, C, D, E, F, G = 0, 1, 2, 3, 4, 5, 6
	build := func() (*listGraph, weightTable) {
		g := newListGraph(7)
		wt := weightTable{}
		add := func(from, to int, w int64) {
			g.addDirected(from, to, w)
			wt[[2]int{from, to}] = w
		}
		add(A, B, 9)
		add(A, C, 14)
		add(A, D, 15)
		add(B, E, 23)
		add(C, E, 17)
		add(C, D, 5)
		add(C, F, 30)
		add(D, F, 20)
		add(D, G, 37)
		add(E, F, 3)
		add(E, G, 20)
		add(F, G, 16)

		return g, wt
	}

	g1, wt1 := build()
	full := pathfind.NewShortestPaths(g1, wt1).FindAllPaths(A)

	g2, wt2 := build()
	sp2 := pathfind.NewShortestPaths(g2, wt2)
	sp2.SetStart(A)
	var last *pathfind.Snapshot
	for !sp2.AllPathsFound() {
		last = sp2.ExtendSearch(1)
	}

	for v := A; v <= G; v++ {
		if full.DistanceTo(v) != last.DistanceTo(v) {
			t.Fatalf("vertex %d: full=%d incremental=%d", v, full.DistanceTo(v), last.DistanceTo(v))
		}
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
