package timeseries

import "errors"

// Errors returned by the signal-processing packages. Callers match them with
// errors.Is; the packages wrap them with the offending column or value.
var (
	// ErrNoEdgeFound is returned when an operation needs a detected event
	// and the point column holds none (or fewer than the requested occurrence).
	ErrNoEdgeFound = errors.New("no edge found")

	// ErrInsufficientTransitions is returned when the max-delta plateau has
	// fewer than two boundaries, including a perfectly flat signal.
	ErrInsufficientTransitions = errors.New("insufficient signal variation: fewer than two plateau transitions")

	// ErrTimeNotFound is returned when a reconstructed time has no matching row.
	ErrTimeNotFound = errors.New("time not found")

	// ErrInvalidWindow is returned when a window resolves to zero or fewer samples.
	ErrInvalidWindow = errors.New("invalid window")

	ErrColumnNotFound = errors.New("column not found")
	ErrLengthMismatch = errors.New("column length does not match index")
	ErrUnsortedIndex  = errors.New("index is not sorted ascending")
	ErrEmptyTable     = errors.New("table is empty")
)
