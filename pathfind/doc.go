// Package pathfind implements an incremental single-source shortest-paths
// engine over a generic integer-indexed directed graph with non-negative
// integer edge weights.
//
// What:
//
//   - Graph is any type exposing a dense vertex-id space [0, VertexCount())
//     and, per vertex, its outgoing Edges.
//   - Weigher assigns a non-negative cost to each Edge on demand; the engine
//     never materializes or caches weights itself.
//   - ShortestPaths runs Dijkstra with lazy deletion (stale heap entries are
//     discarded on pop rather than removed eagerly), settling vertices in
//     caller-controlled batches via ExtendSearch so a long solve can be
//     interrupted between batches and its partial state inspected.
//   - Snapshot is an immutable, deep-copied view of the engine's distance,
//     predecessor, and settled state at one point in time.
//
// Why:
//
//   - The scissors tool needs to run Dijkstra on potentially large pixel
//     grids without blocking its UI thread; settling a bounded batch at a
//     time and publishing a Snapshot after each batch is what makes that
//     possible (see selection.Scissors and its background worker).
//
// Complexity:
//
//   - ExtendSearch(k): O(k log V + E_explored log V) amortized, same total
//     bound as classic Dijkstra across a full run: O((V+E) log V).
//   - Snapshot construction: O(V) to deep-copy distance/predecessor/settled.
//
// Errors:
//
//   - ErrNotDiscovered: PathTo requested for a vertex with no known path.
package pathfind
