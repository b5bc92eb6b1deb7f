package selection

import (
	"fmt"

	"github.com/mholovka/scissors/grid"
	"github.com/mholovka/scissors/pathfind"
	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
)

// moveContext remembers what a move_point solve is for, so the worker's
// success callback can tell a move apart from a plain append and knows
// which two control points the new paths need to reconnect to
// (§4.7.5).
type moveContext struct {
	index  int
	point  polyline.Point
	predCP polyline.Point
	succCP polyline.Point
}

// scissors is the intelligent-scissors Variant (§4.7): segments are
// least-cost paths computed by pathfind.ShortestPaths over a grid.GridGraph
// built from the model's raster, scored by a named grid.Weigher.
type scissors struct {
	weigherName string
	batchSize   int

	graph   *grid.GridGraph
	weigher pathfind.Weigher

	paths   *pathfind.Snapshot // latest completed solve
	pending *pathfind.Snapshot // latest in-flight solve's progress
	prog    int

	w           *worker
	pendingMove *moveContext
}

func (s *scissors) pendingSnapshot() *pathfind.Snapshot { return s.pending }
func (s *scissors) progress() int                       { return s.prog }

// idAt resolves p to a grid vertex id, failing if no image (hence no
// graph) has been set, or p lies outside it.
func (s *scissors) idAt(p polyline.Point) (int, error) {
	if s.graph == nil {
		return 0, ErrIllegalState
	}
	id, err := s.graph.IDAt(p.X, p.Y)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return id, nil
}

// launchSolve cancels any worker already running, then starts a new one
// rooted at from, recording prevState as the state to restore on success
// or cancellation (§4.7, "Solve lifecycle").
func (s *scissors) launchSolve(m *Model, from polyline.Point, prevState State) error {
	id, err := s.idAt(from)
	if err != nil {
		return err
	}

	s.detachWorker(m)
	s.pending = nil
	s.prog = 0

	wk := &worker{
		sp:    pathfind.NewShortestPaths(s.graph, s.weigher),
		start: id,
		batch: s.batchSize,
	}
	s.w = wk
	m.previousState = prevState

	old := m.state
	m.state = Processing
	m.bus.emit(PropertyState, old, Processing)

	wk.onProgress = func(pct int, snap *pathfind.Snapshot) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if s.w != wk {
			return // stale worker: cancelled or replaced since (§5)
		}
		s.pending = snap
		s.prog = pct
		m.bus.emit(PropertyProgress, nil, pct)
		m.bus.emit(PropertyPendingPaths, nil, snap)
	}
	wk.onDone = func(snap *pathfind.Snapshot) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if s.w != wk {
			return
		}
		s.w = nil
		s.paths = snap
		s.pending = nil
		s.prog = 100

		if mv := s.pendingMove; mv != nil {
			s.pendingMove = nil
			s.applyMoveResult(m, mv, snap)
		}

		next := m.previousState
		if next == NoSelection {
			next = Selecting
		}
		old := m.state
		m.state = next
		m.bus.emit(PropertyState, old, next)
		logger().Info("selection: solve finished", "start", snap.StartID())
	}
	wk.onPanic = func(r any) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if s.w == wk {
			s.w = nil
		}
		m.workerErr = &WorkerFailure{Recovered: r}
		logger().Warn("selection: background worker panicked", "recovered", r)
	}

	go wk.run()

	return nil
}

// applyMoveResult replaces the two segments joined at mv.index with the
// paths from mv.point back out to the original neighboring control points
// (§4.7.5): the "after" segment runs forward from the moved point;
// the "before" segment is the reverse of the path to the predecessor,
// since that segment must end (not start) at the moved point.
func (s *scissors) applyMoveResult(m *Model, mv *moveContext, snap *pathfind.Snapshot) {
	n := len(m.segments)
	if n == 0 {
		return
	}
	prevIdx := (mv.index - 1 + n) % n

	predID, err := s.idAt(mv.predCP)
	if err != nil {
		logger().Warn("selection: move predecessor out of bounds", "index", mv.index)

		return
	}
	succID, err := s.idAt(mv.succCP)
	if err != nil {
		logger().Warn("selection: move successor out of bounds", "index", mv.index)

		return
	}

	beforeIDs, err := snap.PathTo(predID)
	if err != nil {
		logger().Warn("selection: move predecessor undiscovered", "index", mv.index)

		return
	}
	afterIDs, err := snap.PathTo(succID)
	if err != nil {
		logger().Warn("selection: move successor undiscovered", "index", mv.index)

		return
	}

	beforeSeg, err := reversedPolyline(s.graph, beforeIDs)
	if err != nil {
		return
	}
	afterSeg, err := s.graph.PathToPolyline(afterIDs)
	if err != nil {
		return
	}

	if prevIdx < len(m.segments) && mv.index < len(m.segments) {
		m.segments[prevIdx] = beforeSeg
		m.segments[mv.index] = afterSeg
	}
	if mv.index == 0 {
		m.start = mv.point
	}
	m.bus.emit(PropertySelection, nil, m.selectionView())
}

// reversedPolyline converts ids into a polyline traversed back to front,
// for the segment that must end rather than start at ids[0].
func reversedPolyline(g *grid.GridGraph, ids []int) (*polyline.Polyline, error) {
	rev := make([]int, len(ids))
	for i, id := range ids {
		rev[len(ids)-1-i] = id
	}

	return g.PathToPolyline(rev)
}

func (s *scissors) onStart(m *Model, p polyline.Point) {
	if err := s.launchSolve(m, p, Selecting); err != nil {
		logger().Warn("selection: could not start initial solve", "error", err)
	}
}

func (s *scissors) appendToSelection(m *Model, p polyline.Point) error {
	dstID, err := s.idAt(p)
	if err != nil {
		return err
	}
	if s.paths == nil {
		return ErrIllegalState
	}
	ids, err := s.paths.PathTo(dstID)
	if err != nil {
		return err
	}
	seg, err := s.graph.PathToPolyline(ids)
	if err != nil {
		return err
	}
	m.segments = append(m.segments, seg)
	m.bus.emit(PropertySelection, nil, m.selectionView())

	return s.launchSolve(m, p, Selecting)
}

func (s *scissors) finishSegment(m *Model) (*polyline.Polyline, error) {
	startID, err := s.idAt(m.start)
	if err != nil {
		return nil, err
	}
	if s.paths == nil {
		return nil, ErrIllegalState
	}
	ids, err := s.paths.PathTo(startID)
	if err != nil {
		return nil, err
	}

	return s.graph.PathToPolyline(ids)
}

func (s *scissors) liveWire(m *Model, p polyline.Point) (*polyline.Polyline, error) {
	dstID, err := s.idAt(p)
	if err != nil {
		return nil, err
	}
	if s.paths == nil {
		return nil, ErrIllegalState
	}
	ids, err := s.paths.PathTo(dstID)
	if err != nil {
		return nil, err
	}

	return s.graph.PathToPolyline(ids)
}

func (s *scissors) movePoint(m *Model, i int, q polyline.Point) error {
	n := len(m.segments)
	if i < 0 || i >= n {
		return ErrInvalidArgument
	}
	prev := (i - 1 + n) % n

	s.pendingMove = &moveContext{
		index:  i,
		point:  q,
		predCP: m.segments[prev].Start(),
		succCP: m.segments[i].End(),
	}

	return s.launchSolve(m, q, Selected)
}

// onEndpointChanged relaunches the solve rooted at at; used after undo
// drops a segment while SELECTING, since future appends must again be
// measured from the new (restored) endpoint (§4.7, "undoPoint ...
// changes the endpoint from which future paths must be measured").
func (s *scissors) onEndpointChanged(m *Model, at polyline.Point) {
	if err := s.launchSolve(m, at, Selecting); err != nil {
		logger().Warn("selection: could not relaunch solve after undo", "error", err)
	}
}

// cancelProcessing implements the PROCESSING row of §4.6's undo
// table: roll back to previous_state, and if that state was SELECTING,
// also undo whatever endpoint change triggered this solve — dropping the
// just-committed segment, or clearing the start point if none had been
// committed yet (the solve launched by placing the very first point).
func (s *scissors) cancelProcessing(m *Model) {
	s.detachWorker(m)
	s.pendingMove = nil
	prev := m.previousState

	if prev != Selecting {
		old := m.state
		m.state = prev
		m.bus.emit(PropertyState, old, prev)

		return
	}

	old := m.state
	if len(m.segments) > 0 {
		m.segments = m.segments[:len(m.segments)-1]
		m.bus.emit(PropertySelection, nil, m.selectionView())
		m.state = Selecting
		m.bus.emit(PropertyState, old, Selecting)

		return
	}

	m.hasStart = false
	m.state = NoSelection
	m.bus.emit(PropertyState, old, NoSelection)
	m.bus.emit(PropertySelection, nil, m.selectionView())
}

func (s *scissors) detachWorker(*Model) {
	if s.w == nil {
		return
	}
	s.w.cancel()
	s.w = nil
}

// onImageSet rebuilds the grid graph and weigher from the new raster,
// discarding any solve state the old image's graph produced.
func (s *scissors) onImageSet(m *Model, img *raster.Raster) {
	s.graph = nil
	s.weigher = nil
	s.paths = nil
	s.pending = nil
	s.prog = 0
	s.pendingMove = nil

	if img == nil {
		return
	}

	g := grid.NewGridGraph(img)
	w, err := grid.MakeWeigher(s.weigherName, g)
	if err != nil {
		logger().Warn("selection: unknown weigher name, scissors variant has no graph",
			"name", s.weigherName, "error", err)

		return
	}
	s.graph = g
	s.weigher = w
}
