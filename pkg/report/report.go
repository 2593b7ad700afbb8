// Package report assembles and encodes the results of a weir profile run.
package report

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/weirprofile/internal/constants"
	"github.com/chrissnell/weirprofile/internal/weir"
)

// Report is everything a run produces besides the figures themselves
type Report struct {
	RunID    string              `json:"run_id"`
	Version  string              `json:"version"`
	Flume    weir.Flume          `json:"flume"`
	Rows     []weir.HydraulicRow `json:"rows"`
	Summary  Summary             `json:"summary"`
	Critical *weir.CriticalPoint `json:"critical,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
	Figures  []string            `json:"figures,omitempty"`
}

// Summary carries scalar results derived from the whole table
type Summary struct {
	TheoreticalEnergy float64 `json:"theoretical_energy_m"`
	MeanLoss          float64 `json:"mean_loss_m"`
	MaxLoss           float64 `json:"max_loss_m"`
	LossStdDev        float64 `json:"loss_stddev_m"`
	Subcritical       int     `json:"subcritical_sections"`
	Supercritical     int     `json:"supercritical_sections"`
}

// New builds a report for a computed profile. cp may be nil when the
// critical point could not be determined.
func New(p *weir.Profile, cp *weir.CriticalPoint) *Report {
	r := &Report{
		RunID:    uuid.New().String(),
		Version:  constants.Version,
		Flume:    p.Flume,
		Rows:     p.Rows,
		Critical: cp,
	}
	for _, w := range p.Warnings {
		r.Warnings = append(r.Warnings, w.String())
	}

	r.Summary.TheoreticalEnergy = p.TheoreticalEnergy
	var losses []float64
	for _, row := range p.Valid() {
		losses = append(losses, row.LossEnergy)
		switch row.Regime {
		case weir.Supercritical:
			r.Summary.Supercritical++
		default:
			r.Summary.Subcritical++
		}
	}
	if len(losses) > 0 {
		r.Summary.MeanLoss, r.Summary.LossStdDev = stat.MeanStdDev(losses, nil)
		for _, l := range losses {
			if l > r.Summary.MaxLoss {
				r.Summary.MaxLoss = l
			}
		}
	}
	return r
}

// AddWarning appends a run-level warning, such as a failed figure
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
