// Package dataset holds the reference triangular-weir laboratory readings.
package dataset

import (
	"time"

	"github.com/chrissnell/weirprofile/internal/weir"
)

const (
	// BaseWidth is the hydraulic flume base (m)
	BaseWidth = 0.086
	// FlowRateM3H is the measured water flow (m³/h)
	FlowRateM3H = 4.00
)

// FlowRate converts a flow in m³/h to m³/s
func FlowRate(m3h float64) float64 {
	return m3h / time.Hour.Seconds()
}

// Flume returns the reference flume constants in SI units.
func Flume() weir.Flume {
	return weir.Flume{
		BaseWidth: BaseWidth,
		FlowRate:  FlowRate(FlowRateM3H),
	}
}

// Reference returns the nine control sections measured across the weir.
// Each call returns fresh slices.
func Reference() weir.Measurements {
	return weir.Measurements{
		IDs:            []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"},
		Station:        []float64{15.050, 15.505, 15.550, 15.602, 15.670, 15.740, 15.810, 15.870, 16.120},
		BottomOffset:   []float64{0.45, 0.45, 0.45, 0.45, 0.50, 0.55, 0.55, 0.55, 0.45},
		CrestElevation: []float64{0.0, 0.0, 2.7, 6.2, 4.6, 3.0, 1.5, 0.0, 0.0},
		Depth:          []float64{10.40, 10.35, 10.25, 9.65, 7.10, 5.10, 3.50, 2.15, 1.90},
	}
}
