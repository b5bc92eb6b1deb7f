package selection

import (
	"sync"

	"github.com/mholovka/scissors/pathfind"
	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
)

// Model is the selection state machine shared by both variants (§3,
// §4.6). Construct one with NewPointToPoint or NewScissors; all exported
// methods are safe for concurrent use — including concurrently with a
// scissors background worker, which only ever touches Model state through
// the variant's launch/publish callbacks under m.mu.
type Model struct {
	mu sync.Mutex

	bus *bus

	state    State
	hasStart bool
	start    polyline.Point
	segments []*polyline.Polyline
	img      *raster.Raster

	// previousState is the state a scissors solve should restore on
	// success or cancellation (§4.7). Unused by the point-to-point
	// variant.
	previousState State

	variant Variant

	// workerErr holds a recovered background-worker panic until the next
	// call into the model observes it and returns it as an error (§7,
	// "WorkerFailure propagates ... at the boundary where the worker's
	// completion is consumed").
	workerErr *WorkerFailure
}

// NewPointToPoint constructs a Model whose segments are literal straight
// lines between successively added points.
func NewPointToPoint() *Model {
	return &Model{
		bus:     newBus(),
		variant: &pointToPoint{},
	}
}

// NewScissors constructs a Model whose segments are least-cost paths
// computed over a pixel grid built from whatever raster is later passed to
// SetImage. weigherName must be one recognized by grid.MakeWeigher
// ("CrossGradMono" or "ColoredWeight"); batchSize is the number of
// vertices the background solver settles per batch (§4.7;
// batchSize<=0 defaults to 1000, the reference value).
func NewScissors(weigherName string, batchSize int) *Model {
	if batchSize <= 0 {
		batchSize = 1000
	}

	return &Model{
		bus: newBus(),
		variant: &scissors{
			weigherName: weigherName,
			batchSize:   batchSize,
		},
	}
}

// OnChange registers l to receive Events for the named property (§6).
func (m *Model) OnChange(property string, l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bus.on(property, l)
}

// State returns the current lifecycle state.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Image returns the currently configured raster, or nil if none has been
// set.
func (m *Model) Image() *raster.Raster {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.img
}

// Selection returns a read-only view of the current ordered segments.
func (m *Model) Selection() SelectionView {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.selectionView()
}

// Progress returns the latest progress percentage published by the
// scissors variant's background solve: 0 when a solve is launched or the
// image changes, 100 once a solve completes, and left as it was when a
// solve is cancelled. Always 0 for point-to-point.
func (m *Model) Progress() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sa, ok := m.variant.(snapshotAccessor); ok {
		return sa.progress()
	}

	return 0
}

// PendingPaths returns the latest in-flight snapshot published by the
// scissors variant's current or most recently cancelled solve. It is nil
// before a solve's first progress report, after a solve completes, and
// always for point-to-point.
func (m *Model) PendingPaths() *pathfind.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sa, ok := m.variant.(snapshotAccessor); ok {
		return sa.pendingSnapshot()
	}

	return nil
}

// Close releases any background worker without otherwise touching model
// state (§3, "destruction releases any background worker"). Safe to
// call more than once.
func (m *Model) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variant.detachWorker(m)
}

// SetImage replaces the backing raster and fully resets the selection
// (§4.6). Passing a different image while a scissors solve is
// running cancels it first.
func (m *Model) SetImage(img *raster.Raster) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return err
	}

	m.variant.detachWorker(m)
	oldImg := m.img
	m.img = img
	m.hasStart = false
	m.segments = nil

	oldState := m.state
	m.state = NoSelection

	m.variant.onImageSet(m, img)

	m.bus.emit(PropertyImage, oldImg, img)
	m.bus.emit(PropertySelection, nil, m.selectionView())
	m.bus.emit(PropertyState, oldState, NoSelection)

	return nil
}

// AddPoint places the start point (from NO_SELECTION) or appends the
// segment from the current endpoint to p (from SELECTING). Returns
// ErrIllegalState from SELECTED or PROCESSING.
func (m *Model) AddPoint(p polyline.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return err
	}

	switch m.state {
	case NoSelection:
		m.hasStart = true
		m.start = p
		m.segments = nil
		old := m.state
		m.state = Selecting
		m.bus.emit(PropertyState, old, Selecting)
		m.variant.onStart(m, p)

		return nil
	case Selecting:
		return m.variant.appendToSelection(m, p)
	default:
		return ErrIllegalState
	}
}

// Undo removes the most recent unfinished contribution to the selection
// (§4.6's transition table): it drops the last segment while
// SELECTING or SELECTED, clears the start point if SELECTING with no
// segments yet, or cancels the in-flight solve while PROCESSING.
func (m *Model) Undo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return err
	}

	switch m.state {
	case Processing:
		m.variant.cancelProcessing(m)

		return nil
	case Selecting:
		if len(m.segments) > 0 {
			m.segments = m.segments[:len(m.segments)-1]
			m.bus.emit(PropertySelection, nil, m.selectionView())
			m.variant.onEndpointChanged(m, m.lastPoint())

			return nil
		}
		m.hasStart = false
		old := m.state
		m.state = NoSelection
		m.bus.emit(PropertyState, old, NoSelection)
		m.bus.emit(PropertySelection, nil, m.selectionView())

		return nil
	case Selected:
		if len(m.segments) == 0 {
			return ErrIllegalState
		}
		m.segments = m.segments[:len(m.segments)-1]
		old := m.state
		m.state = Selecting
		m.bus.emit(PropertyState, old, Selecting)
		m.bus.emit(PropertySelection, nil, m.selectionView())

		return nil
	default:
		return ErrIllegalState
	}
}

// FinishSelection closes the contour: it appends the segment from the
// current endpoint back to the start point and transitions to SELECTED.
// Called with no segments yet committed, it resets to NO_SELECTION
// instead (§4.6).
func (m *Model) FinishSelection() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return err
	}
	if m.state != Selecting {
		return ErrIllegalState
	}

	if len(m.segments) == 0 {
		m.hasStart = false
		old := m.state
		m.state = NoSelection
		m.bus.emit(PropertyState, old, NoSelection)
		m.bus.emit(PropertySelection, nil, m.selectionView())

		return nil
	}

	seg, err := m.variant.finishSegment(m)
	if err != nil {
		return err
	}
	m.segments = append(m.segments, seg)
	old := m.state
	m.state = Selected
	m.bus.emit(PropertyState, old, Selected)
	m.bus.emit(PropertySelection, nil, m.selectionView())

	return nil
}

// MovePoint moves control point i to q, recomputing the two segments that
// join at it. Valid only in SELECTED; the scissors variant passes through
// PROCESSING while the new segments are solved for.
func (m *Model) MovePoint(i int, q polyline.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return err
	}
	if m.state != Selected {
		return ErrIllegalState
	}

	return m.variant.movePoint(m, i, q)
}

// Reset clears the selection unconditionally and returns to NO_SELECTION,
// cancelling any in-flight solve without rolling anything back (the whole
// selection is being discarded anyway).
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variant.detachWorker(m)
	m.hasStart = false
	m.segments = nil

	old := m.state
	m.state = NoSelection
	m.bus.emit(PropertyState, old, NoSelection)
	m.bus.emit(PropertySelection, nil, m.selectionView())
}

// ClosestPoint returns the index of the control point nearest p whose
// squared distance to p is at most maxSqDist, or -1 if none qualifies.
// Requires SELECTED (§4.6, §8 S5; the squared-vs-linear tolerance
// ambiguity in the source is resolved here in favor of the literal,
// documented contract: maxSqDist is compared against squared distance).
func (m *Model) ClosestPoint(p polyline.Point, maxSqDist int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return -1, err
	}
	if m.state != Selected {
		return -1, ErrIllegalState
	}

	best := -1
	bestSq := maxSqDist + 1
	for i, cp := range m.controlPoints() {
		dx, dy := cp.X-p.X, cp.Y-p.Y
		sq := dx*dx + dy*dy
		if sq <= maxSqDist && sq < bestSq {
			best, bestSq = i, sq
		}
	}

	return best, nil
}

// ControlPoints returns the join points between consecutive segments
// (control point i is segments[i].Start()); valid in SELECTING or
// SELECTED.
func (m *Model) ControlPoints() ([]polyline.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Selecting && m.state != Selected {
		return nil, ErrIllegalState
	}

	return m.controlPoints(), nil
}

// LiveWire returns the provisional segment from the current endpoint to p
// without committing it (the "live wire" concept).
// Valid only while SELECTING.
func (m *Model) LiveWire(p polyline.Point) (*polyline.Polyline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.consumeWorkerFailure(); err != nil {
		return nil, err
	}
	if m.state != Selecting {
		return nil, ErrIllegalState
	}

	return m.variant.liveWire(m, p)
}

// consumeWorkerFailure returns a recovered background-worker panic as a
// *WorkerFailure error, once, the first time any method observes it (§7).
func (m *Model) consumeWorkerFailure() error {
	if m.workerErr == nil {
		return nil
	}
	err := m.workerErr
	m.workerErr = nil

	return err
}

// lastPoint returns the endpoint future segments must extend from: the
// last segment's end if any exist, otherwise the start point.
func (m *Model) lastPoint() polyline.Point {
	if n := len(m.segments); n > 0 {
		return m.segments[n-1].End()
	}

	return m.start
}

// controlPoints returns segments[i].Start() for each i — the shared join
// point between segment i-1 (wrapping) and segment i.
func (m *Model) controlPoints() []polyline.Point {
	pts := make([]polyline.Point, len(m.segments))
	for i, seg := range m.segments {
		pts[i] = seg.Start()
	}

	return pts
}

// selectionView builds the read-only segment view published to
// observers and returned by Selection.
func (m *Model) selectionView() SelectionView {
	segs := make([]*polyline.Polyline, len(m.segments))
	copy(segs, m.segments)

	return SelectionView{segments: segs}
}
