package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chrissnell/weirprofile/internal/app"
	"github.com/chrissnell/weirprofile/internal/dataset"
	"github.com/chrissnell/weirprofile/internal/weir"
	"github.com/chrissnell/weirprofile/pkg/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "weir-profile")
}

func TestTextReportWithBanner(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--output-dir", dir, "--image-format", "svg")
	require.NoError(t, err)

	assert.Contains(t, out, "INSTITUTO TECNOLÓGICO DE COSTA RICA")
	assert.Contains(t, out, "Critical condition")
	assert.Contains(t, out, "END OF ANALYSIS")
	assert.FileExists(t, filepath.Join(dir, "energy_profile.svg"))
	assert.FileExists(t, filepath.Join(dir, "specific_energy.svg"))
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "weir.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report:\n  format: text\n  quiet: true\noutput:\n  plots: false\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "INSTITUTO")
	assert.Contains(t, out, `"run_id"`)
}

func TestInvalidFlag(t *testing.T) {
	_, err := execute(t, "--no-plots", "--format", "xml")
	assert.Error(t, err)
}

func TestFlagOverridesInvalidConfigValue(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "weir.yaml")
	body := "output:\n  image_format: bmp\n  dir: " + dir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, err := execute(t, "--config", cfgPath, "--image-format", "svg")
	require.NoError(t, err)
	assert.Contains(t, out, "Critical condition")
	assert.FileExists(t, filepath.Join(dir, "energy_profile.svg"))
}

func TestFailedRunPrintsNothing(t *testing.T) {
	orig := newApp
	t.Cleanup(func() { newApp = orig })
	newApp = func(cfg *config.ConfigData, logger *zap.SugaredLogger) *app.App {
		m := dataset.Reference()
		m.Depth = m.Depth[:5]
		return app.New(cfg, logger).WithMeasurements(m)
	}

	out, err := execute(t, "--no-plots")
	assert.ErrorIs(t, err, weir.ErrLengthMismatch)
	assert.Empty(t, out, "banner must not precede a failed analysis")
}
