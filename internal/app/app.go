package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/chrissnell/weirprofile/internal/dataset"
	"github.com/chrissnell/weirprofile/internal/render"
	"github.com/chrissnell/weirprofile/internal/weir"
	"github.com/chrissnell/weirprofile/pkg/config"
	"github.com/chrissnell/weirprofile/pkg/report"
)

// App represents the main application
type App struct {
	cfg          *config.ConfigData
	logger       *zap.SugaredLogger
	measurements weir.Measurements
}

// New creates a new application instance for the reference dataset
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:          cfg,
		logger:       logger,
		measurements: dataset.Reference(),
	}
}

// WithMeasurements replaces the dataset analysed by Run
func (a *App) WithMeasurements(m weir.Measurements) *App {
	a.measurements = m
	return a
}

// Run executes the single analysis pass and writes the report to out.
// Invalid measurements abort before anything is written; figure failures are
// logged and listed in the report while the numeric results are still emitted.
func (a *App) Run(ctx context.Context, out io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	flume := weir.Flume{
		BaseWidth: a.cfg.Flume.BaseWidthM,
		FlowRate:  a.cfg.Flume.FlowRateM3S(),
	}

	table, err := weir.BuildTable(a.measurements)
	if err != nil {
		return fmt.Errorf("error building measurement table: %w", err)
	}
	a.logger.Debugw("measurement table built", "sections", table.Len())

	profile, err := weir.Compute(table, flume)
	if err != nil {
		return fmt.Errorf("error computing hydraulic profile: %w", err)
	}
	for _, w := range profile.Warnings {
		a.logger.Warnw("degenerate section", "id", w.ID, "row", w.Index, "detail", w.Message)
	}

	critical, cerr := weir.Critical(profile)
	if cerr != nil {
		// the table itself is still reportable
		a.logger.Warnw("critical point not determined", "error", cerr)
	} else {
		if critical.Extrapolated {
			a.logger.Warnw("Fr = 1 lies outside the observed Froude range; critical values are extrapolated")
		}
		if !critical.MonotonicFroude {
			a.logger.Infow("Froude number is not monotonic along the flume; critical crossing is ambiguous")
		}
		a.logger.Infow("critical condition",
			"yc", critical.Depth, "position", critical.Position, "ec", critical.Energy,
			"yc_closed_form", critical.ClosedFormDepth, "yc_two_thirds_ec", critical.EnergyDepth)
	}

	rep := report.New(profile, critical)
	if cerr != nil {
		rep.AddWarning(fmt.Sprintf("critical point: %v", cerr))
	}

	if a.cfg.Output.Plots {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderer := render.New(render.Options{
			Dir:    a.cfg.Output.Dir,
			Format: a.cfg.Output.ImageFormat,
			Width:  a.cfg.Output.Width,
			Height: a.cfg.Output.Height,
		}, a.logger)

		files, rerr := renderer.Render(profile, critical)
		rep.Figures = files
		if rerr != nil {
			a.logger.Errorw("figures could not be rendered", "error", rerr)
			rep.AddWarning(fmt.Sprintf("figures: %v", rerr))
		}
	}

	if err := report.NewFormatter().Write(out, a.cfg.Report.Format, rep); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
