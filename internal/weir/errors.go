package weir

import "errors"

var (
	// ErrLengthMismatch indicates the measurement columns have different lengths.
	ErrLengthMismatch = errors.New("weir: measurement columns must have the same length")
	// ErrTooFewPoints indicates fewer than two measured sections.
	ErrTooFewPoints = errors.New("weir: at least two measured sections are required")
	// ErrUnordered indicates sections are not sorted by increasing distance.
	ErrUnordered = errors.New("weir: sections must be ordered by increasing distance")
	// ErrInvalidFlume indicates a non-positive base width or flow rate.
	ErrInvalidFlume = errors.New("weir: flume base width and flow rate must be positive")
	// ErrDegenerateReference indicates the upstream section cannot anchor the theoretical energy.
	ErrDegenerateReference = errors.New("weir: upstream section has no positive flow depth")
	// ErrNoCriticalData indicates too few usable sections to interpolate the critical point.
	ErrNoCriticalData = errors.New("weir: not enough valid sections to interpolate the critical point")
)
