// Package config loads the run configuration for the weir profile calculator.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)
}

var (
	// ErrInvalidConfig indicates a configuration value is out of range
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Supported image and report formats
const (
	ImageFormatPNG = "png"
	ImageFormatSVG = "svg"

	ReportFormatText    = "text"
	ReportFormatJSON    = "json"
	ReportFormatMsgpack = "msgpack"
)

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Flume  FlumeData  `json:"flume"`
	Output OutputData `json:"output"`
	Report ReportData `json:"report"`
	Debug  bool       `json:"debug,omitempty"`
}

// FlumeData holds the channel constants. Flow rate is given as read on the
// flow meter, in m³/h.
type FlumeData struct {
	BaseWidthM  float64 `json:"base_width_m"`
	FlowRateM3H float64 `json:"flow_rate_m3h"`
}

// FlowRateM3S returns the flow rate in m³/s
func (f FlumeData) FlowRateM3S() float64 {
	return f.FlowRateM3H / time.Hour.Seconds()
}

// OutputData controls where and how the figures are written
type OutputData struct {
	Dir         string `json:"dir"`
	ImageFormat string `json:"image_format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Plots       bool   `json:"plots"`
}

// ReportData controls the console report
type ReportData struct {
	Format string `json:"format"`
	Quiet  bool   `json:"quiet,omitempty"`
}

// Default returns the laboratory configuration: the reference flume, figures
// written as 1000x600 PNGs to the working directory, and a text report.
func Default() *ConfigData {
	return &ConfigData{
		Flume: FlumeData{
			BaseWidthM:  0.086,
			FlowRateM3H: 4.00,
		},
		Output: OutputData{
			Dir:         ".",
			ImageFormat: ImageFormatPNG,
			Width:       1000,
			Height:      600,
			Plots:       true,
		},
		Report: ReportData{
			Format: ReportFormatText,
		},
	}
}

// Validate checks the configuration for values the calculator cannot use
func (c *ConfigData) Validate() error {
	if !(c.Flume.BaseWidthM > 0) {
		return fmt.Errorf("%w: flume base width must be positive, got %v", ErrInvalidConfig, c.Flume.BaseWidthM)
	}
	if !(c.Flume.FlowRateM3H > 0) {
		return fmt.Errorf("%w: flow rate must be positive, got %v", ErrInvalidConfig, c.Flume.FlowRateM3H)
	}
	switch c.Output.ImageFormat {
	case ImageFormatPNG, ImageFormatSVG:
	default:
		return fmt.Errorf("%w: unsupported image format %q. Use 'png' or 'svg'", ErrInvalidConfig, c.Output.ImageFormat)
	}
	if c.Output.Plots && (c.Output.Width <= 0 || c.Output.Height <= 0) {
		return fmt.Errorf("%w: figure size must be positive, got %dx%d", ErrInvalidConfig, c.Output.Width, c.Output.Height)
	}
	switch c.Report.Format {
	case ReportFormatText, ReportFormatJSON, ReportFormatMsgpack:
	default:
		return fmt.Errorf("%w: unsupported report format %q. Use 'text', 'json' or 'msgpack'", ErrInvalidConfig, c.Report.Format)
	}
	return nil
}

// DefaultProvider serves the built-in configuration
type DefaultProvider struct{}

// LoadConfig returns the default configuration
func (DefaultProvider) LoadConfig() (*ConfigData, error) {
	return Default(), nil
}
