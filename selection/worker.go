package selection

import (
	"sync/atomic"

	"github.com/mholovka/scissors/pathfind"
)

// worker drives one incremental shortest-paths solve to completion or
// cancellation, on its own goroutine, settling batch vertices at a time
// (§5). It owns its ShortestPaths instance exclusively and touches no
// selection-package state directly: it only invokes the three callbacks
// wired up by the launching variant, each of which re-checks the
// worker-identity invariant before it acts.
type worker struct {
	sp    *pathfind.ShortestPaths
	start int
	batch int

	cancelled atomic.Bool

	onProgress func(pct int, snap *pathfind.Snapshot)
	onDone     func(snap *pathfind.Snapshot)
	onPanic    func(recovered any)
}

// cancel sets the flag the worker observes at its next batch boundary.
// Never blocks (§5, "Cancellation never blocks the UI thread").
func (w *worker) cancel() {
	w.cancelled.Store(true)
}

// run settles the graph in batches of w.batch vertices until the frontier
// drains or cancellation is observed, publishing progress after each
// batch that doesn't finish the solve.
func (w *worker) run() {
	defer func() {
		if r := recover(); r != nil && w.onPanic != nil {
			w.onPanic(r)
		}
	}()

	w.sp.SetStart(w.start)
	for {
		if w.cancelled.Load() {
			return
		}
		snap := w.sp.ExtendSearch(w.batch)
		if w.cancelled.Load() {
			return
		}
		if w.sp.AllPathsFound() {
			w.onDone(snap)

			return
		}
		w.onProgress(100*w.sp.SettledCount()/w.sp.VertexCount(), snap)
	}
}
