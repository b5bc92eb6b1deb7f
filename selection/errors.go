package selection

import (
	"errors"
	"fmt"
)

// ErrIllegalState is returned when an operation is invoked in a state that
// §4.6's transition table forbids it from (e.g. AddPoint while
// PROCESSING, or Undo with no history).
var ErrIllegalState = errors.New("selection: illegal state for this operation")

// ErrInvalidArgument is returned for an out-of-range segment index or a
// point outside the backing image.
var ErrInvalidArgument = errors.New("selection: invalid argument")

// ErrIoError is returned when save_selection's PNG encode fails.
var ErrIoError = errors.New("selection: i/o error")

// WorkerFailure wraps a panic recovered from the background solver. It is
// never swallowed: the next Model method that checks for it returns it as
// its error (§7 treats a solver bug as fatal, not a recoverable
// condition).
type WorkerFailure struct {
	Recovered any
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("selection: background worker panicked: %v", e.Recovered)
}
