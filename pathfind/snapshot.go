package pathfind

// Snapshot is an immutable, deep-copied view of a search's state at one
// moment. Once constructed it never changes, so it may be published across
// goroutine boundaries (see selection's background worker) without locking.
type Snapshot struct {
	startID     int
	distance    []int64 // -1 means undiscovered
	predecessor []int   // -1 means source or undiscovered
	settled     bitset
}

// newSnapshot deep-copies the engine's current arrays into an immutable
// Snapshot. Complexity: O(V).
func newSnapshot(startID int, distance []int64, predecessor []int, settled bitset) *Snapshot {
	d := make([]int64, len(distance))
	copy(d, distance)
	p := make([]int, len(predecessor))
	copy(p, predecessor)

	return &Snapshot{
		startID:     startID,
		distance:    d,
		predecessor: p,
		settled:     settled.clone(),
	}
}

// StartID returns the source vertex this snapshot was computed from.
func (s *Snapshot) StartID() int {
	return s.startID
}

// DistanceTo returns the least known total weight from the source to id, or
// -1 if id has not been discovered yet.
func (s *Snapshot) DistanceTo(id int) int64 {
	if id < 0 || id >= len(s.distance) {
		return -1
	}

	return s.distance[id]
}

// Discovered reports whether id is the source or has a known predecessor.
func (s *Snapshot) Discovered(id int) bool {
	if id == s.startID {
		return true
	}
	if id < 0 || id >= len(s.predecessor) {
		return false
	}

	return s.predecessor[id] >= 0
}

// Settled reports whether id's optimal distance has been finalized.
func (s *Snapshot) Settled(id int) bool {
	if id < 0 || id >= len(s.distance) {
		return false
	}

	return s.settled.has(id)
}

// PathTo walks predecessors from dstID back to the source and returns the
// ids in source-to-destination order. Returns ErrNotDiscovered if dstID has
// not been discovered.
func (s *Snapshot) PathTo(dstID int) ([]int, error) {
	if !s.Discovered(dstID) {
		return nil, ErrNotDiscovered
	}

	path := []int{dstID}
	cur := dstID
	for cur != s.startID {
		cur = s.predecessor[cur]
		path = append(path, cur)
	}

	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
