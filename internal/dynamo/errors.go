package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrNonFinite indicates a point with NaN or Inf coordinates.
	ErrNonFinite = errors.New("dynamo: non-finite coordinate (NaN or Inf detected)")

	// ErrDegenerateGeometry indicates a frame whose bounding box has zero extent
	// on an axis used as a divisor, or whose scaled points are not finite.
	ErrDegenerateGeometry = errors.New("dynamo: degenerate geometry")

	// ErrEmptyPath indicates an operation that needs at least one point.
	ErrEmptyPath = errors.New("dynamo: path is empty")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrStopped is returned by a loop that was stopped through its handle.
	ErrStopped = errors.New("dynamo: animation stopped")
)

// FrameError wraps an error with the frame and stage it happened in.
type FrameError struct {
	Frame   int
	Stage   string
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (%s): %v", e.Frame, e.Stage, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
