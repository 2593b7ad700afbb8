package render

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure palette, one colour per plotted quantity.
var (
	colorStatic       = drawing.ColorFromHex("00bfff") // deepskyblue
	colorBottom       = drawing.ColorFromHex("000000")
	colorWeir         = drawing.ColorFromHex("006400") // darkgreen
	colorTheoretical  = drawing.ColorFromHex("ff00ff") // magenta
	colorExperimental = drawing.ColorFromHex("ffa07a") // lightsalmon
	colorCritical     = drawing.ColorFromHex("009999")
	colorSpecific     = drawing.ColorFromHex("0000cc")
	colorLabel        = drawing.ColorFromHex("808080")
	colorGrid         = drawing.ColorFromHex("dddddd")
)

var dashed = []float64{5, 4}

// labelOffset lifts point labels above the point they name (m)
const labelOffset = 0.005

func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: width,
	}
}

func dashedStyle(col drawing.Color, width float64) chart.Style {
	s := lineStyle(col, width)
	s.StrokeDashArray = dashed
	return s
}

func labelStyle() chart.Style {
	return chart.Style{
		FontSize:    9,
		FontColor:   colorLabel,
		StrokeColor: drawing.ColorTransparent,
		FillColor:   drawing.ColorTransparent,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: colorGrid,
		StrokeWidth: 1,
	}
}
