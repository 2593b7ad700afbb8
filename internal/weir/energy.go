package weir

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/chrissnell/weirprofile/internal/constants"
)

// Compute derives the energy and flow quantities of every section in t.
// Sections whose effective depth is not positive are flagged Degenerate and
// reported as warnings instead of carrying NaN or Inf into the profile.
func Compute(t *Table, f Flume) (*Profile, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if t == nil || t.Len() < 2 {
		return nil, ErrTooFewPoints
	}

	n := t.Len()
	b, q, g := f.BaseWidth, f.FlowRate, constants.Gravity

	static := t.Column(func(r Row) float64 { return r.EffectiveDepth2 })
	elev := t.Column(func(r Row) float64 { return r.Elevation })

	valid := make([]bool, n)
	for i, es := range static {
		valid[i] = es > 0 && !math.IsInf(es, 0)
	}
	if !valid[0] {
		return nil, fmt.Errorf("%w: %s has effective depth %v m", ErrDegenerateReference, t.Row(0).ID, static[0])
	}

	// Ed = q² / (2·g·b²·Es²)
	head := q * q / (2 * g * b * b)
	dynamic := make([]float64, n)
	for i, es := range static {
		if valid[i] {
			dynamic[i] = head / (es * es)
		}
	}

	total := make([]float64, n)
	floats.AddTo(total, static, dynamic)

	theoretical := total[0]
	loss := make([]float64, n)
	floats.AddConst(theoretical, loss)
	floats.Sub(loss, total)

	plot := make([]float64, n)
	floats.AddTo(plot, total, elev)

	area := make([]float64, n)
	floats.ScaleTo(area, b, static)

	perimeter := make([]float64, n)
	floats.ScaleTo(perimeter, 2, static)
	floats.AddConst(b, perimeter)

	velocity := make([]float64, n)
	froude := make([]float64, n)
	for i, a := range area {
		if !valid[i] {
			continue
		}
		velocity[i] = q / a
		froude[i] = velocity[i] / math.Sqrt(a*g/b)
	}

	p := &Profile{
		Flume:             f,
		Rows:              make([]HydraulicRow, n),
		TheoreticalEnergy: theoretical,
	}
	for i, r := range t.Rows() {
		hr := HydraulicRow{Row: r}
		if !valid[i] {
			hr.Degenerate = true
			p.Rows[i] = hr
			p.Warnings = append(p.Warnings, Warning{
				Index:   i,
				ID:      r.ID,
				Message: fmt.Sprintf("effective depth %.4f m is not positive; hydraulic values skipped", r.EffectiveDepth2),
			})
			continue
		}
		hr.StaticEnergy = static[i]
		hr.DynamicEnergy = dynamic[i]
		hr.TotalEnergy = total[i]
		hr.LossEnergy = loss[i]
		hr.PlotEnergy = plot[i]
		hr.Area = area[i]
		hr.Perimeter = perimeter[i]
		hr.Velocity = velocity[i]
		hr.Froude = froude[i]
		hr.Regime = ClassifyRegime(froude[i])
		p.Rows[i] = hr
	}

	return p, nil
}

// Valid returns the sections that carry hydraulic values, in distance order.
func (p *Profile) Valid() []HydraulicRow {
	out := make([]HydraulicRow, 0, len(p.Rows))
	for _, r := range p.Rows {
		if !r.Degenerate {
			out = append(out, r)
		}
	}
	return out
}
