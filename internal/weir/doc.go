// Package weir computes the hydraulic profile of flow over a triangular weir
// in a rectangular laboratory flume.
//
// The pipeline is strictly one pass:
//
//   - BuildTable normalizes the raw measurements (distance from the first
//     section, centimetres to metres) and derives the effective depths.
//   - Compute derives static, dynamic and total energy, energy loss against
//     the upstream section, hydraulic area, wetted perimeter, velocity,
//     Froude number and flow regime for every section.
//   - Critical interpolates the Fr = 1 crossing against depth, distance and
//     total energy, and cross-checks it with the closed-form critical depth.
//
// The critical point is found by sorting sections by Froude number and
// interpolating linearly between the neighbours of Fr = 1. When the Froude
// series is not monotonic along the flume the crossing is ambiguous and the
// segment chosen follows that sort order, not the physically nearest crossing.
//
// Errors:
//
//   - ErrLengthMismatch: measurement columns differ in length.
//   - ErrTooFewPoints: fewer than two sections.
//   - ErrUnordered: sections are not in increasing distance order.
//   - ErrInvalidFlume: non-positive base width or flow rate.
//   - ErrDegenerateReference: the upstream section has no positive flow depth.
//   - ErrNoCriticalData: fewer than two usable sections remain for interpolation.
package weir
