package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weir.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := DefaultProvider{}.LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.086, cfg.Flume.BaseWidthM)
	assert.InDelta(t, 4.0/3600, cfg.Flume.FlowRateM3S(), 1e-15)
	assert.Equal(t, ImageFormatPNG, cfg.Output.ImageFormat)
	assert.True(t, cfg.Output.Plots)
}

func TestYAMLProviderOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
flume:
  flow_rate_m3h: 6.5
output:
  dir: figures
  image_format: svg
report:
  format: json
debug: true
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.086, cfg.Flume.BaseWidthM, "unset keys keep defaults")
	assert.Equal(t, 6.5, cfg.Flume.FlowRateM3H)
	assert.Equal(t, "figures", cfg.Output.Dir)
	assert.Equal(t, ImageFormatSVG, cfg.Output.ImageFormat)
	assert.Equal(t, 1000, cfg.Output.Width)
	assert.Equal(t, ReportFormatJSON, cfg.Report.Format)
	assert.True(t, cfg.Debug)
}

func TestYAMLProviderDisablePlots(t *testing.T) {
	path := writeConfig(t, "output:\n  plots: false\n  width: 0\n")

	cfg, err := NewYAMLProvider(path).LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Output.Plots)
}

func TestYAMLProviderMalformed(t *testing.T) {
	_, err := NewYAMLProvider(writeConfig(t, "flume: [1, 2")).LoadConfig()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig), "error: %v", err)

	_, err = NewYAMLProvider(filepath.Join(t.TempDir(), "missing.yaml")).LoadConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLProviderLeavesValidationToCaller(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative width", "flume:\n  base_width_m: -0.1\n"},
		{"zero flow", "flume:\n  flow_rate_m3h: 0\n"},
		{"unknown image format", "output:\n  image_format: bmp\n"},
		{"unknown report format", "report:\n  format: xml\n"},
		{"zero figure size", "output:\n  height: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewYAMLProvider(writeConfig(t, tt.body)).LoadConfig()
			require.NoError(t, err, "loading must not reject values a flag may still override")
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestYAMLValueCorrectedBeforeValidate(t *testing.T) {
	cfg, err := NewYAMLProvider(writeConfig(t, "output:\n  image_format: bmp\n")).LoadConfig()
	require.NoError(t, err)

	cfg.Output.ImageFormat = ImageFormatSVG
	assert.NoError(t, cfg.Validate())
}
