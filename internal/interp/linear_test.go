package interp

import (
	"errors"
	"math"
	"testing"
)

func TestNewLinear_Errors(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		err  error
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, ErrLengthMismatch},
		{"empty", nil, nil, ErrTooFewPoints},
		{"single point", []float64{1}, []float64{2}, ErrTooFewPoints},
		{"NaN abscissa", []float64{1, math.NaN()}, []float64{1, 2}, ErrNotFinite},
		{"infinite ordinate", []float64{1, 2}, []float64{1, math.Inf(1)}, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinear(tt.xs, tt.ys)
			if !errors.Is(err, tt.err) {
				t.Errorf("NewLinear() error = %v; want %v", err, tt.err)
			}
		})
	}
}

func TestLinearAt(t *testing.T) {
	// y = 2x + 1 on [0, 3], then slope 1 on [3, 5]
	l, err := NewLinear([]float64{0, 1, 2, 3, 5}, []float64{1, 3, 5, 7, 9})
	if err != nil {
		t.Fatalf("NewLinear error: %v", err)
	}

	tests := []struct {
		name     string
		x        float64
		expected float64
		extrap   bool
	}{
		{"first node", 0, 1, false},
		{"interior", 1.5, 4, false},
		{"on node", 2, 5, false},
		{"last segment", 4, 8, false},
		{"last node", 5, 9, false},
		{"below range uses first segment", -1, -1, true},
		{"above range uses last segment", 7, 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.At(tt.x)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("At(%v) = %v; want %v", tt.x, got, tt.expected)
			}
			if l.Extrapolated(tt.x) != tt.extrap {
				t.Errorf("Extrapolated(%v) = %v; want %v", tt.x, l.Extrapolated(tt.x), tt.extrap)
			}
		})
	}
}

func TestLinearUnsortedInput(t *testing.T) {
	xs := []float64{2.1, 0.13, 0.79, 1.46, 0.22}
	ys := []float64{0.0155, 0.0995, 0.03, 0.02, 0.071}

	l, err := NewLinear(xs, ys)
	if err != nil {
		t.Fatalf("NewLinear error: %v", err)
	}

	for i := range xs {
		if got := l.At(xs[i]); math.Abs(got-ys[i]) > 1e-12 {
			t.Errorf("node %d: At(%v) = %v; want %v", i, xs[i], got, ys[i])
		}
	}

	lo, hi := l.Domain()
	if lo != 0.13 || hi != 2.1 {
		t.Errorf("Domain() = (%v, %v); want (0.13, 2.1)", lo, hi)
	}

	// 1.0 sits between 0.79 and 1.46
	want := 0.03 + (1.0-0.79)*(0.02-0.03)/(1.46-0.79)
	if got := l.At(1.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("At(1.0) = %v; want %v", got, want)
	}
}

func TestLinearDoesNotAliasInput(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 10}
	l, err := NewLinear(xs, ys)
	if err != nil {
		t.Fatalf("NewLinear error: %v", err)
	}
	xs[1] = 100
	ys[1] = -5
	if got := l.At(0.5); got != 5 {
		t.Errorf("At(0.5) = %v after mutating inputs; want 5", got)
	}
}

func TestLinearRepeatedAbscissa(t *testing.T) {
	l, err := NewLinear([]float64{0, 1, 1, 2}, []float64{0, 1, 3, 4})
	if err != nil {
		t.Fatalf("NewLinear error: %v", err)
	}
	if got := l.At(1); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("At(1) = %v; want a finite value", got)
	}
}

func TestMonotonic(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want bool
	}{
		{"increasing", []float64{1, 2, 3}, true},
		{"decreasing", []float64{3, 2, 1}, true},
		{"plateau", []float64{1, 2, 2}, false},
		{"zig-zag", []float64{1, 3, 2}, false},
		{"single", []float64{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Monotonic(tt.xs); got != tt.want {
				t.Errorf("Monotonic(%v) = %v; want %v", tt.xs, got, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		expected float64
	}{
		{0.025720714, 4, 0.0257},
		{0.573093424, 4, 0.5731},
		{0.040016604, 4, 0.04},
		{-0.12345, 2, -0.12},
		{2.5, 0, 3},
		{-2.5, 0, -3},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.decimals); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Round(%v, %d) = %v; want %v", tt.v, tt.decimals, got, tt.expected)
		}
	}
}
