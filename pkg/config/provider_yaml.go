package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files.
// Keys missing from the file keep their default values.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

type flumeYAML struct {
	BaseWidthM  *float64 `yaml:"base_width_m"`
	FlowRateM3H *float64 `yaml:"flow_rate_m3h"`
}

type outputYAML struct {
	Dir         *string `yaml:"dir"`
	ImageFormat *string `yaml:"image_format"`
	Width       *int    `yaml:"width"`
	Height      *int    `yaml:"height"`
	Plots       *bool   `yaml:"plots"`
}

type reportYAML struct {
	Format *string `yaml:"format"`
	Quiet  *bool   `yaml:"quiet"`
}

// LoadConfig reads the YAML file and overlays it on the defaults. The result
// is not validated here so that command-line flags can still correct it.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", y.filename, err)
	}

	var yamlConfig struct {
		Flume  flumeYAML  `yaml:"flume"`
		Output outputYAML `yaml:"output,omitempty"`
		Report reportYAML `yaml:"report,omitempty"`
		Debug  *bool      `yaml:"debug,omitempty"`
	}

	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", y.filename, err)
	}

	config := Default()

	setFloat(&config.Flume.BaseWidthM, yamlConfig.Flume.BaseWidthM)
	setFloat(&config.Flume.FlowRateM3H, yamlConfig.Flume.FlowRateM3H)

	setString(&config.Output.Dir, yamlConfig.Output.Dir)
	setString(&config.Output.ImageFormat, yamlConfig.Output.ImageFormat)
	setInt(&config.Output.Width, yamlConfig.Output.Width)
	setInt(&config.Output.Height, yamlConfig.Output.Height)
	setBool(&config.Output.Plots, yamlConfig.Output.Plots)

	setString(&config.Report.Format, yamlConfig.Report.Format)
	setBool(&config.Report.Quiet, yamlConfig.Report.Quiet)
	setBool(&config.Debug, yamlConfig.Debug)

	return config, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
