package pathfind

import "github.com/mholovka/scissors/pqueue"

// ShortestPaths is an incremental Dijkstra engine over a Graph, weighed by
// a Weigher. A single instance is reused across ExtendSearch calls so a
// solve can be settled in bounded batches (see §4.3).
//
// ShortestPaths is not safe for concurrent use; exactly one goroutine may
// own it at a time (the selection package's background worker model, §5).
type ShortestPaths struct {
	graph   Graph
	weigher Weigher

	startID     int
	hasStart    bool
	distance    []int64
	predecessor []int
	settled     bitset
	frontier    *pqueue.MinQueue
}

// NewShortestPaths constructs an engine bound to graph and weigher. No
// search has been started yet; call SetStart or FindAllPaths.
func NewShortestPaths(graph Graph, weigher Weigher) *ShortestPaths {
	return &ShortestPaths{
		graph:    graph,
		weigher:  weigher,
		startID:  -1,
		frontier: pqueue.NewMinQueue(),
	}
}

// VertexCount returns the underlying graph's vertex count.
func (sp *ShortestPaths) VertexCount() int {
	return sp.graph.VertexCount()
}

// SettledCount returns how many vertices have been finalized so far.
func (sp *ShortestPaths) SettledCount() int {
	return sp.settled.count()
}

// SetStart resets all search state and begins a new search from s:
// distance[s] = 0, and s is pushed onto the frontier. Complexity: O(V).
func (sp *ShortestPaths) SetStart(s int) {
	n := sp.graph.VertexCount()
	sp.startID = s
	sp.hasStart = true
	sp.distance = make([]int64, n)
	sp.predecessor = make([]int, n)
	for i := range sp.distance {
		sp.distance[i] = -1
		sp.predecessor[i] = -1
	}
	sp.settled = newBitset(n)
	sp.frontier.Clear()

	sp.distance[s] = 0
	sp.frontier.AddOrUpdate(s, 0)
}

// AllPathsFound reports whether a start has been set and the frontier has
// drained, i.e. every reachable vertex has been settled.
func (sp *ShortestPaths) AllPathsFound() bool {
	return sp.hasStart && sp.frontier.Empty()
}

// FindAllPaths sets the start vertex and runs the search to completion.
// Equivalent to SetStart(s) followed by ExtendSearch(VertexCount()).
func (sp *ShortestPaths) FindAllPaths(s int) *Snapshot {
	sp.SetStart(s)

	return sp.ExtendSearch(sp.VertexCount())
}

// ExtendSearch settles up to maxToSettle additional vertices (lazy-deletion
// Dijkstra: a popped vertex already in settled is discarded without
// counting against the batch) and returns a fresh Snapshot of the resulting
// state. maxToSettle == 0 returns immediately with the current state.
//
// Stops early if the frontier empties (all reachable vertices settled).
func (sp *ShortestPaths) ExtendSearch(maxToSettle int) *Snapshot {
	settledThisCall := 0
	for settledThisCall < maxToSettle && !sp.frontier.Empty() {
		u, err := sp.frontier.Pop()
		if err != nil {
			break
		}
		if sp.settled.has(u) {
			continue // stale lazy-deleted entry
		}
		sp.settled.set(u)
		settledThisCall++

		du := sp.distance[u]
		for _, e := range sp.graph.Edges(u) {
			w := sp.weigher.Weight(e)
			if w < 0 {
				w = 0
			}
			nd := du + w
			v := e.To
			if sp.distance[v] >= 0 && nd >= sp.distance[v] {
				continue // not strictly better than the current best known distance
			}
			sp.distance[v] = nd
			sp.predecessor[v] = u
			sp.frontier.AddOrUpdate(v, nd)
		}
	}

	return newSnapshot(sp.startID, sp.distance, sp.predecessor, sp.settled)
}
