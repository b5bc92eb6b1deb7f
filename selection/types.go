package selection

import (
	"github.com/mholovka/scissors/pathfind"
	"github.com/mholovka/scissors/polyline"
	"github.com/mholovka/scissors/raster"
)

// State is the selection lifecycle state (§3).
type State int

const (
	// NoSelection: no start point has been placed yet.
	NoSelection State = iota
	// Selecting: a start point exists and segments may still be appended.
	Selecting
	// Selected: finish_selection has closed the contour; no further points
	// may be appended, but control points may still be moved.
	Selected
	// Processing: a background solve is in flight for the scissors variant.
	Processing
)

// String implements fmt.Stringer for readable test failures and logs.
func (s State) String() string {
	switch s {
	case NoSelection:
		return "NoSelection"
	case Selecting:
		return "Selecting"
	case Selected:
		return "Selected"
	case Processing:
		return "Processing"
	default:
		return "State(?)"
	}
}

// Event is one notification delivered to a Listener: the named property
// that changed, its previous value, and its new value (§6).
type Event struct {
	Name     string
	Old, New any
}

// Listener receives Events for the property name(s) it was registered
// under. Listeners are invoked synchronously, under the Model's internal
// lock: a Listener must not call back into the Model that fired it.
type Listener func(Event)

// Property names a Listener may subscribe to (§6).
const (
	PropertyState        = "state"
	PropertySelection    = "selection"
	PropertyImage        = "image"
	PropertyProgress     = "progress"
	PropertyPendingPaths = "pending-paths"
)

// SelectionView is a read-only snapshot of the ordered segments making up
// the current selection. Obtained from Model.Selection.
type SelectionView struct {
	segments []*polyline.Polyline
}

// Len returns the number of segments.
func (v SelectionView) Len() int { return len(v.segments) }

// At returns the i-th segment.
func (v SelectionView) At(i int) *polyline.Polyline { return v.segments[i] }

// Variant supplies the operations that differ between point-to-point and
// scissors selections (§4.6, §4.7, and design note §9's "trait with
// four hooks" — widened here to the handful of lifecycle points the
// scissors variant's background solve needs in addition). Model implements
// the state machine common to both and calls into the active Variant for
// these; all methods are called with m.mu already held.
type Variant interface {
	// onStart runs when add_point places the very first point (the
	// NO_SELECTION -> SELECTING transition). The scissors variant launches
	// its initial solve here; point-to-point does nothing.
	onStart(m *Model, p polyline.Point)
	// appendToSelection computes and commits the segment from the model's
	// current last control point to p, and, for the scissors variant,
	// launches the next solve rooted at p.
	appendToSelection(m *Model, p polyline.Point) error
	// finishSegment computes the closing segment from the current last
	// control point back to m.start, without mutating the selection
	// (Model appends it and sets SELECTED itself).
	finishSegment(m *Model) (*polyline.Polyline, error)
	// liveWire computes a preview segment from the current anchor to p
	// without mutating the selection.
	liveWire(m *Model, p polyline.Point) (*polyline.Polyline, error)
	// movePoint recomputes the segments joined at control point i after it
	// moves to q.
	movePoint(m *Model, i int, q polyline.Point) error
	// onEndpointChanged re-anchors future solves at at; called after undo
	// drops a segment while SELECTING. A no-op for point-to-point.
	onEndpointChanged(m *Model, at polyline.Point)
	// cancelProcessing rolls back the PROCESSING state per §4.6's
	// undo table. A no-op for variants that never enter PROCESSING.
	cancelProcessing(m *Model)
	// detachWorker abandons any in-flight solve with no other side
	// effects (used by Reset, SetImage and Close). A no-op for
	// point-to-point.
	detachWorker(m *Model)
	// onImageSet rebuilds any derived data (the scissors variant's grid
	// graph and weigher) after the backing raster changes.
	onImageSet(m *Model, img *raster.Raster)
}

// snapshotAccessor is implemented by variants that expose pathfind state
// for the "pending-paths" property (only the scissors variant; embedding
// this in Variant itself would force point-to-point to fake it).
type snapshotAccessor interface {
	pendingSnapshot() *pathfind.Snapshot
	progress() int
}
