// Package render writes the weir profile figures to image files.
//
// Rendering never opens a window, so it works the same on a headless host.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/chrissnell/weirprofile/internal/weir"
)

// File names of the two figures, without extension
const (
	ProfileFigure        = "energy_profile"
	SpecificEnergyFigure = "specific_energy"
)

// Options controls the output of a Renderer
type Options struct {
	Dir    string
	Format string // "png" or "svg"
	Width  int
	Height int
}

// Renderer writes the profile and specific-energy figures
type Renderer struct {
	opts   Options
	logger *zap.SugaredLogger
}

// New creates a Renderer
func New(opts Options, logger *zap.SugaredLogger) *Renderer {
	return &Renderer{
		opts:   opts,
		logger: logger,
	}
}

// Render writes both figures and returns the paths written. A failure on one
// figure does not stop the other; all failures are joined in the returned error.
func (r *Renderer) Render(p *weir.Profile, cp *weir.CriticalPoint) ([]string, error) {
	provider, ext, err := r.provider()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output directory %s: %w", r.opts.Dir, err)
	}

	figures := []struct {
		name  string
		chart *chart.Chart
	}{
		{ProfileFigure, ProfileChart(p, cp)},
		{SpecificEnergyFigure, SpecificEnergyChart(p, cp)},
	}

	var written []string
	var errs []error
	for _, fig := range figures {
		fig.chart.Width = r.opts.Width
		fig.chart.Height = r.opts.Height

		path := filepath.Join(r.opts.Dir, fig.name+ext)
		if err := writeChart(fig.chart, provider, path); err != nil {
			r.logger.Warnw("figure not rendered", "figure", fig.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", fig.name, err))
			continue
		}
		r.logger.Debugw("figure rendered", "figure", fig.name, "path", path)
		written = append(written, path)
	}

	return written, errors.Join(errs...)
}

func (r *Renderer) provider() (chart.RendererProvider, string, error) {
	switch r.opts.Format {
	case "", "png":
		return chart.PNG, ".png", nil
	case "svg":
		return chart.SVG, ".svg", nil
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", r.opts.Format)
	}
}

func writeChart(ch *chart.Chart, provider chart.RendererProvider, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ch.Render(provider, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
