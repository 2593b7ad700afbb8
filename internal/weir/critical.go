package weir

import (
	"fmt"
	"math"

	"github.com/chrissnell/weirprofile/internal/constants"
	"github.com/chrissnell/weirprofile/internal/interp"
)

// CriticalFroude is the Froude number of critical flow.
const CriticalFroude = 1.0

// CriticalDepth returns the closed-form critical depth (q²/(b²·g))^(1/3) for
// a rectangular section, unrounded.
func CriticalDepth(f Flume) float64 {
	return math.Cbrt(f.FlowRate * f.FlowRate / (f.BaseWidth * f.BaseWidth * constants.Gravity))
}

// Critical locates the Fr = 1 crossing by interpolating static energy,
// distance and total energy against the Froude number of the valid sections.
func Critical(p *Profile) (*CriticalPoint, error) {
	if err := p.Flume.Validate(); err != nil {
		return nil, err
	}
	rows := p.Valid()
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %d valid sections", ErrNoCriticalData, len(rows))
	}

	fr := make([]float64, len(rows))
	static := make([]float64, len(rows))
	dist := make([]float64, len(rows))
	total := make([]float64, len(rows))
	for i, r := range rows {
		fr[i] = r.Froude
		static[i] = r.StaticEnergy
		dist[i] = r.X
		total[i] = r.TotalEnergy
	}

	depthFn, err := interp.NewLinear(fr, static)
	if err != nil {
		return nil, fmt.Errorf("error building depth interpolant: %w", err)
	}
	posFn, err := interp.NewLinear(fr, dist)
	if err != nil {
		return nil, fmt.Errorf("error building position interpolant: %w", err)
	}
	energyFn, err := interp.NewLinear(fr, total)
	if err != nil {
		return nil, fmt.Errorf("error building energy interpolant: %w", err)
	}

	cp := &CriticalPoint{
		Depth:           interp.Round(depthFn.At(CriticalFroude), constants.ReportDecimals),
		Position:        interp.Round(posFn.At(CriticalFroude), constants.ReportDecimals),
		Energy:          interp.Round(energyFn.At(CriticalFroude), constants.ReportDecimals),
		ClosedFormDepth: interp.Round(CriticalDepth(p.Flume), constants.ReportDecimals),
		Extrapolated:    depthFn.Extrapolated(CriticalFroude),
		MonotonicFroude: interp.Monotonic(fr),
	}
	cp.EnergyDepth = 2.0 / 3.0 * cp.Energy

	return cp, nil
}
