// Package interp provides one-dimensional piecewise-linear interpolation with
// linear extrapolation beyond the observed abscissae.
//
// Pairs are sorted by x before use, so the input order does not matter. A
// query selects its segment by left-bisection over the sorted abscissae,
// clamped to the first and last segments; queries outside [min(x), max(x)]
// therefore extend the nearest segment instead of failing.
//
// Errors:
//
//   - ErrLengthMismatch: xs and ys differ in length.
//   - ErrTooFewPoints: fewer than two pairs were supplied.
//   - ErrNotFinite: an input value is NaN or infinite.
package interp
