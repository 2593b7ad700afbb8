package interp

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Linear is a piecewise-linear interpolant over a fixed set of (x, y) pairs.
type Linear struct {
	xs []float64
	ys []float64
}

// NewLinear builds an interpolant from xs and ys. The slices are copied and
// sorted by x; equal abscissae keep their input order.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	if !finite(xs) || !finite(ys) {
		return nil, ErrNotFinite
	}

	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	l := &Linear{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	for i, j := range idx {
		l.xs[i] = xs[j]
		l.ys[i] = ys[j]
	}
	return l, nil
}

// At evaluates the interpolant at x.
func (l *Linear) At(x float64) float64 {
	n := len(l.xs)
	// first index with xs[i] >= x, clamped so [i-1, i] is always a valid segment
	i := sort.SearchFloat64s(l.xs, x)
	if i < 1 {
		i = 1
	}
	if i > n-1 {
		i = n - 1
	}

	x0, x1 := l.xs[i-1], l.xs[i]
	y0, y1 := l.ys[i-1], l.ys[i]
	if x1 == x0 {
		return y1
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Extrapolated reports whether x falls outside the observed abscissae.
func (l *Linear) Extrapolated(x float64) bool {
	return x < l.xs[0] || x > l.xs[len(l.xs)-1]
}

// Domain returns the smallest and largest abscissae.
func (l *Linear) Domain() (lo, hi float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}

// Monotonic reports whether the original input abscissae were strictly
// increasing or strictly decreasing in their given order.
func Monotonic(xs []float64) bool {
	if len(xs) < 2 {
		return true
	}
	inc, dec := true, true
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			inc = false
		}
		if xs[i] >= xs[i-1] {
			dec = false
		}
	}
	return inc || dec
}

// Round rounds v to the given number of decimals, half away from zero.
func Round(v float64, decimals int) float64 {
	return scalar.Round(v, decimals)
}

func finite(v []float64) bool {
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
