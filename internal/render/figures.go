package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"github.com/chrissnell/weirprofile/internal/weir"
)

// ProfileChart draws the energy profile along the flume: weir crest, flume
// bottom, theoretical and experimental total energy, the water surface, point
// labels and the interpolated critical position.
func ProfileChart(p *weir.Profile, cp *weir.CriticalPoint) *chart.Chart {
	x := p.Column(func(r weir.HydraulicRow) float64 { return r.X })
	crest := p.Column(func(r weir.HydraulicRow) float64 { return r.Elevation })
	surface := p.Column(func(r weir.HydraulicRow) float64 { return r.EffectiveDepth })

	valid := p.Valid()
	vx := make([]float64, len(valid))
	plotEnergy := make([]float64, len(valid))
	for i, r := range valid {
		vx[i] = r.X
		plotEnergy[i] = r.PlotEnergy
	}

	xMin, xMax := x[0], x[len(x)-1]
	yMax := p.TheoreticalEnergy
	for _, v := range plotEnergy {
		if v > yMax {
			yMax = v
		}
	}

	labels := make([]chart.Value2, len(p.Rows))
	for i, r := range p.Rows {
		labels[i] = chart.Value2{XValue: r.X, YValue: r.Elevation + labelOffset, Label: r.ID, Style: labelStyle()}
	}

	series := []chart.Series{
		chart.ContinuousSeries{Name: "Vertedor", XValues: x, YValues: crest, Style: lineStyle(colorWeir, 1.5)},
		chart.ContinuousSeries{Name: "Base del Canal", XValues: []float64{xMin, xMax}, YValues: []float64{0, 0}, Style: lineStyle(colorBottom, 1.5)},
		chart.ContinuousSeries{
			Name:    "Energía Total Teórica",
			XValues: []float64{xMin, xMax},
			YValues: []float64{p.TheoreticalEnergy, p.TheoreticalEnergy},
			Style:   dashedStyle(colorTheoretical, 0.75),
		},
		chart.ContinuousSeries{Name: "Energía Estática", XValues: x, YValues: surface, Style: lineStyle(colorStatic, 1.5)},
		chart.ContinuousSeries{Name: "Energía Total Experimental", XValues: vx, YValues: plotEnergy, Style: lineStyle(colorExperimental, 1.0)},
		chart.AnnotationSeries{Annotations: labels},
	}
	if cp != nil {
		series = append(series, chart.ContinuousSeries{
			Name:    "yc (Froude=1)",
			XValues: []float64{cp.Position, cp.Position},
			YValues: []float64{0, yMax},
			Style:   dashedStyle(colorCritical, 1.25),
		})
	}

	ch := &chart.Chart{
		Title:      "Perfil Energético. Vertedor Triangular",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Distancia (m)", GridMajorStyle: gridStyle()},
		YAxis:      chart.YAxis{Name: "Energía (m)", GridMajorStyle: gridStyle()},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

// SpecificEnergyChart draws total energy against static energy for every
// valid section, with point labels and the closed-form critical depth.
func SpecificEnergyChart(p *weir.Profile, cp *weir.CriticalPoint) *chart.Chart {
	valid := p.Valid()
	total := make([]float64, len(valid))
	static := make([]float64, len(valid))
	labels := make([]chart.Value2, len(valid))
	for i, r := range valid {
		total[i] = r.TotalEnergy
		static[i] = r.StaticEnergy
		labels[i] = chart.Value2{XValue: r.TotalEnergy, YValue: r.StaticEnergy + labelOffset, Label: r.ID, Style: labelStyle()}
	}

	eMin, eMax := total[0], total[0]
	for _, v := range total {
		if v < eMin {
			eMin = v
		}
		if v > eMax {
			eMax = v
		}
	}

	points := lineStyle(colorSpecific, 0.75)
	points.DotColor = colorSpecific
	points.DotWidth = 4

	series := []chart.Series{
		chart.ContinuousSeries{Name: "Static Energy (Exp)", XValues: total, YValues: static, Style: points},
		chart.AnnotationSeries{Annotations: labels},
	}
	if cp != nil {
		series = append(series, chart.ContinuousSeries{
			Name:    "yc",
			XValues: []float64{eMin, eMax},
			YValues: []float64{cp.ClosedFormDepth, cp.ClosedFormDepth},
			Style:   dashedStyle(colorCritical, 0.75),
		})
	}

	ch := &chart.Chart{
		Title:      "Specific Energies. Triangular Weir",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Total Energy (m)", GridMajorStyle: gridStyle()},
		YAxis:      chart.YAxis{Name: "Piezometric Energy (m)", GridMajorStyle: gridStyle()},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}
