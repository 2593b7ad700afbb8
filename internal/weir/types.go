package weir

import (
	"fmt"
	"math"
)

// Flume holds the channel constants shared by every section.
type Flume struct {
	BaseWidth float64 `json:"base_width_m"`  // b (m)
	FlowRate  float64 `json:"flow_rate_m3s"` // q (m³/s)
}

// Validate checks that both constants are positive and finite
func (f Flume) Validate() error {
	if !(f.BaseWidth > 0) || math.IsInf(f.BaseWidth, 0) {
		return fmt.Errorf("%w: base width %v", ErrInvalidFlume, f.BaseWidth)
	}
	if !(f.FlowRate > 0) || math.IsInf(f.FlowRate, 0) {
		return fmt.Errorf("%w: flow rate %v", ErrInvalidFlume, f.FlowRate)
	}
	return nil
}

// Measurements are the raw laboratory readings for each control section.
// Station is in metres along the flume; the vertical readings are in centimetres.
type Measurements struct {
	IDs            []string
	Station        []float64 // m
	BottomOffset   []float64 // cm, flume ΔZ to bottom
	CrestElevation []float64 // cm, weir crest above flume bottom
	Depth          []float64 // cm, measured water depth
}

// Regime classifies a section as sub-critical or super-critical flow.
type Regime string

const (
	Subcritical   Regime = "SUB"
	Supercritical Regime = "SUPER"
)

// ClassifyRegime returns Supercritical only for a Froude number strictly above 1.
func ClassifyRegime(froude float64) Regime {
	if froude > 1 {
		return Supercritical
	}
	return Subcritical
}

// Row is one normalized control section. All lengths are in metres.
type Row struct {
	ID              string  `json:"id"`
	X               float64 `json:"x_m"`
	DZ              float64 `json:"dz_m"`
	Elevation       float64 `json:"elevation_m"`
	Depth           float64 `json:"depth_m"`
	EffectiveDepth  float64 `json:"effective_depth_m"`
	EffectiveDepth2 float64 `json:"effective_depth2_m"`
}

// HydraulicRow extends a Row with the derived energy and flow quantities.
type HydraulicRow struct {
	Row
	StaticEnergy  float64 `json:"static_energy_m"`
	DynamicEnergy float64 `json:"dynamic_energy_m"`
	TotalEnergy   float64 `json:"total_energy_m"`
	LossEnergy    float64 `json:"loss_energy_m"`
	PlotEnergy    float64 `json:"plot_energy_m"`
	Area          float64 `json:"area_m2"`
	Perimeter     float64 `json:"perimeter_m"`
	Velocity      float64 `json:"velocity_ms"`
	Froude        float64 `json:"froude"`
	Regime        Regime  `json:"regime,omitempty"` // empty for a degenerate section
	// Degenerate marks a section with no positive flow depth; its derived
	// values are left at zero and it is skipped by the interpolators.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Warning is a recoverable data-quality finding attached to a section.
type Warning struct {
	Index   int    `json:"index"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (row %d): %s", w.ID, w.Index, w.Message)
}

// Profile is the fully derived hydraulic table.
type Profile struct {
	Flume             Flume          `json:"flume"`
	Rows              []HydraulicRow `json:"rows"`
	TheoreticalEnergy float64        `json:"theoretical_energy_m"`
	Warnings          []Warning      `json:"warnings,omitempty"`
}

// Column extracts one value per row, in row order.
func (p *Profile) Column(f func(HydraulicRow) float64) []float64 {
	out := make([]float64, len(p.Rows))
	for i, r := range p.Rows {
		out[i] = f(r)
	}
	return out
}

// CriticalPoint holds the Fr = 1 estimates, rounded for reporting.
type CriticalPoint struct {
	Depth           float64 `json:"depth_m"`             // interpolated yc
	Position        float64 `json:"position_m"`          // interpolated distance of yc
	Energy          float64 `json:"energy_m"`            // interpolated Ec
	ClosedFormDepth float64 `json:"closed_form_depth_m"` // (q²/(b²g))^(1/3)
	EnergyDepth     float64 `json:"energy_depth_m"`      // (2/3)·Ec
	// Extrapolated is set when Fr = 1 lies outside the observed Froude range.
	Extrapolated bool `json:"extrapolated"`
	// MonotonicFroude is false when the Froude series changes direction along
	// the flume, in which case the crossing is ambiguous.
	MonotonicFroude bool `json:"monotonic_froude"`
}
