// Package selection implements the state machine that drives interactive
// contour tracing: points are added, the path between successive points is
// either a straight line (point-to-point) or the shortest path computed by
// pathfind over a grid.GridGraph ("intelligent scissors"); long solves run
// as a cancellable background task that streams progress snapshots to an
// observer bus.
//
// What:
//
//   - Model holds the shared state machine (§3, §4.6): state, the
//     start point, the ordered polyline segments forming the selection, and
//     the backing raster. Two Variant implementations — pointToPoint and
//     scissors — supply the operations that differ between modes
//     (appendToSelection, liveWire, movePoint, cancelProcessing, plus the
//     lifecycle hooks the scissors solve needs); the state-machine
//     transitions themselves live once, in Model.
//   - The scissors Variant owns a grid.GridGraph, a pathfind.Weigher, and
//     at most one background worker per Model instance (§5): the
//     worker runs its own pathfind.ShortestPaths exclusively, publishing a
//     coalescing snapshot+progress pair after every settled batch, and is
//     identified by pointer so a stale worker's publish after cancellation
//     or replacement is silently dropped (the "worker identity invariant").
//   - Observers register for named properties ("state", "selection",
//     "image", "progress", "pending-paths") exactly as §6 enumerates;
//     notifications fire in the order the model raises them, under the
//     same mutex that serializes all model mutation, so a listener
//     reading model state mid-callback sees the post-transition values.
//
// Why:
//
//   - Follows core.Graph's locking discipline (a single mutex, documented
//     locking strategy per exported method), generalized from a
//     thread-safe *graph* to a thread-safe *state machine*; the background
//     worker runs on its own goroutine, and its channel-free, mutex-
//     serialized publish follows the context-cancelled goroutine pattern
//     in azybler-map_router's pkg/api/server.go, adapted
//     from one-shot HTTP handlers to a batch-resumable solve.
//
// Errors:
//
//   - ErrIllegalState: an operation invoked in a state where §4.6's
//     table forbids it.
//   - ErrInvalidArgument: an out-of-range segment index or out-of-image
//     point.
//   - ErrIoError: save_selection's PNG encode failed.
//   - WorkerFailure: a panic inside the background solver, returned
//     unchanged as an error by the next model call (§7) — this is the one
//     fatal, "this is a bug" error kind in the package.
package selection
