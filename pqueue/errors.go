package pqueue

import "errors"

// Sentinel errors for MinQueue operations.
var (
	// ErrEmpty indicates a peek or pop was attempted on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")
)
