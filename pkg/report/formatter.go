package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vmihailenco/msgpack/v5"
)

// Formatter handles encoding and writing reports as text, JSON or MessagePack
type Formatter struct{}

// NewFormatter creates a new report formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Write encodes r to w. Text is the default format; "json" and "msgpack"
// produce machine-readable output using the same field names.
func (f *Formatter) Write(w io.Writer, format string, r *Report) error {
	switch format {
	case "json":
		return f.writeJSON(w, r)
	case "msgpack":
		return f.writeMsgPack(w, r)
	case "", "text":
		return f.writeText(w, r)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (f *Formatter) writeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (f *Formatter) writeMsgPack(w io.Writer, r *Report) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(r)
}

func (f *Formatter) writeText(w io.Writer, r *Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hydraulic Profile: Triangular Weir\n")
	fmt.Fprintf(&sb, "==================================\n\n")
	fmt.Fprintf(&sb, "Run: %s (version %s)\n", r.RunID, r.Version)
	fmt.Fprintf(&sb, "  Base width: %.3f m\n", r.Flume.BaseWidth)
	fmt.Fprintf(&sb, "  Flow rate:  %.6f m³/s\n\n", r.Flume.FlowRate)

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ID\tX (m)\tY (m)\tYeff2 (m)\tEs (m)\tEd (m)\tEt (m)\tLoss (m)\tV (m/s)\tFr\tRegime\t")
	for _, row := range r.Rows {
		if row.Degenerate {
			fmt.Fprintf(tw, "%s\t%.3f\t%.4f\t%.4f\t-\t-\t-\t-\t-\t-\tINVALID\t\n",
				row.ID, row.X, row.Depth, row.EffectiveDepth2)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.3f\t%.4f\t%.4f\t%.4f\t%.5f\t%.4f\t%.4f\t%.4f\t%.3f\t%s\t\n",
			row.ID, row.X, row.Depth, row.EffectiveDepth2, row.StaticEnergy, row.DynamicEnergy,
			row.TotalEnergy, row.LossEnergy, row.Velocity, row.Froude, row.Regime)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary
	fmt.Fprintf(&sb, "\nTheoretical total energy: %.4f m\n", s.TheoreticalEnergy)
	fmt.Fprintf(&sb, "Energy loss: mean %.4f m, max %.4f m, std dev %.4f m\n", s.MeanLoss, s.MaxLoss, s.LossStdDev)
	fmt.Fprintf(&sb, "Sections: %d sub-critical, %d super-critical\n", s.Subcritical, s.Supercritical)

	if c := r.Critical; c != nil {
		method := "interpolated"
		if c.Extrapolated {
			method = "extrapolated"
		}
		fmt.Fprintf(&sb, "\nCritical condition (Fr = 1, %s):\n", method)
		fmt.Fprintf(&sb, "  yc:           %.4f m\n", c.Depth)
		fmt.Fprintf(&sb, "  yc position:  %.4f m\n", c.Position)
		fmt.Fprintf(&sb, "  Ec:           %.4f m\n", c.Energy)
		fmt.Fprintf(&sb, "  yc = (q²/b²g)^(1/3): %.4f m\n", c.ClosedFormDepth)
		fmt.Fprintf(&sb, "  yc = 2/3·Ec:         %.4f m\n", c.EnergyDepth)
		if !c.MonotonicFroude {
			fmt.Fprintf(&sb, "  note: Froude number is not monotonic along the flume; crossing is ambiguous\n")
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&sb, "\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", w)
		}
	}
	if len(r.Figures) > 0 {
		fmt.Fprintf(&sb, "\nFigures:\n")
		for _, fig := range r.Figures {
			fmt.Fprintf(&sb, "  %s\n", fig)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
