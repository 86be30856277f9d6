package wheel

import "errors"

var (
	// ErrInvalidConfiguration reports a bad value supplied by the caller:
	// an out-of-range config field, a non-finite spin target, an item index
	// that does not exist. Raised at the point of the call, never deferred
	// to the next tick.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateGeometry reports an item list that cannot tile the
	// circle: empty, or with a weight sum that is zero, negative, or
	// non-finite.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNoActiveDrag reports a DragMove or DragEnd without a preceding
	// DragStart.
	ErrNoActiveDrag = errors.New("no active drag")
)
