package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chrissnell/weirprofile/internal/app"
	"github.com/chrissnell/weirprofile/internal/constants"
	"github.com/chrissnell/weirprofile/internal/log"
	"github.com/chrissnell/weirprofile/pkg/config"
)

type options struct {
	cfgFile     string
	outputDir   string
	imageFormat string
	format      string
	quiet       bool
	noPlots     bool
	debug       bool
	showVersion bool
}

// newApp builds the analysis run; replaced in tests to feed other measurements
var newApp = app.New

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "weir-profile",
		Short: "Energy profile and critical flow over a triangular weir",
		Long: `Computes the hydraulic profile of the triangular weir laboratory exercise
(non-uniform flow / critical flow): specific, dynamic and total energy,
energy losses, Froude number and flow regime at each control section,
the critical depth, position and energy at Fr = 1, and the closed-form
critical depth.

Two figures are written to the output directory: the energy profile along
the flume and the specific-energy diagram.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.cfgFile, "config", "", "Optional YAML configuration file")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for the rendered figures")
	f.StringVar(&opts.imageFormat, "image-format", "", "Figure format: 'png' or 'svg'")
	f.StringVarP(&opts.format, "format", "f", "", "Report format: 'text', 'json' or 'msgpack'")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the session banner")
	f.BoolVar(&opts.noPlots, "no-plots", false, "Skip rendering the figures")
	f.BoolVar(&opts.debug, "debug", false, "Turn on debugging output")
	f.BoolVar(&opts.showVersion, "version", false, "Show version and exit")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	out := cmd.OutOrStdout()

	if opts.showVersion {
		fmt.Fprintf(out, "weir-profile %s\n", constants.Version)
		return nil
	}

	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load configuration: %v\n", err)
		return err
	}
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid configuration: %v\n", err)
		return err
	}

	// Set up logging
	if err := log.Init(cfg.Debug); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to initialize logger: %v\n", err)
		return err
	}
	defer log.Sync()

	log.Infof("analysing reference dataset: b=%.3f m, q=%.2f m³/h", cfg.Flume.BaseWidthM, cfg.Flume.FlowRateM3H)

	// the report is held back so a failed run leaves nothing on stdout
	var rep bytes.Buffer
	application := newApp(cfg, log.GetSugaredLogger())
	if err := application.Run(context.Background(), &rep); err != nil {
		log.Errorf("Analysis failed: %v", err)
		return err
	}

	banner := cfg.Report.Format == config.ReportFormatText && !cfg.Report.Quiet
	if banner {
		printBanner(out)
	}
	if _, err := rep.WriteTo(out); err != nil {
		return err
	}
	if banner {
		fmt.Fprintf(out, "\nEND OF ANALYSIS\n")
	}
	return nil
}

func loadConfig(cfgFile string) (*config.ConfigData, error) {
	var provider config.ConfigProvider = config.DefaultProvider{}
	if cfgFile != "" {
		filename, _ := filepath.Abs(cfgFile)
		provider = config.NewYAMLProvider(filename)
	}
	return provider.LoadConfig()
}

// applyFlags overrides configuration values with flags set on the command line
func applyFlags(cmd *cobra.Command, cfg *config.ConfigData, opts options) {
	f := cmd.Flags()
	if f.Changed("output-dir") {
		cfg.Output.Dir = opts.outputDir
	}
	if f.Changed("image-format") {
		cfg.Output.ImageFormat = opts.imageFormat
	}
	if f.Changed("format") {
		cfg.Report.Format = opts.format
	}
	if f.Changed("quiet") {
		cfg.Report.Quiet = opts.quiet
	}
	if f.Changed("no-plots") {
		cfg.Output.Plots = !opts.noPlots
	}
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "////////////////////////////////////////////////////////////\n")
	fmt.Fprintf(w, "INSTITUTO TECNOLÓGICO DE COSTA RICA\n")
	fmt.Fprintf(w, "Escuela de Ingeniería en Construcción\n")
	fmt.Fprintf(w, "Session: FLUJO NO-UNIFORME / FLUJO CRÍTICO\n")
	fmt.Fprintf(w, "////////////////////////////////////////////////////////////\n\n")
}
