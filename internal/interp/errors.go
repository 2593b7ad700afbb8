package interp

import "errors"

var (
	// ErrLengthMismatch indicates xs and ys have different lengths.
	ErrLengthMismatch = errors.New("interp: xs and ys must have the same length")
	// ErrTooFewPoints indicates fewer than two (x, y) pairs.
	ErrTooFewPoints = errors.New("interp: at least two points are required")
	// ErrNotFinite indicates a NaN or infinite input value.
	ErrNotFinite = errors.New("interp: input values must be finite")
)
