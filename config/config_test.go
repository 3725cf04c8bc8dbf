package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosignal/edge"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gosignal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
input:
  path: data/run.csv
  index_column: t
  delimiter: ";"
  sampling_period: 0.01
signal: pressure
detection:
  criteria: 2.5
  direction: down
smoothing:
  enabled: true
  window_duration: 0.2
  use_for_features: true
window:
  half_width: 0.75
  occurrence: 1
features:
  window_duration: 0.3
output:
  html: out/run.html
  title: Run 12
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/run.csv", cfg.Input.Path)
	assert.Equal(t, "t", cfg.Input.IndexColumn)
	assert.Equal(t, "pressure", cfg.Signal)
	assert.Equal(t, 2.5, cfg.Detection.Criteria)
	assert.Equal(t, 0.75, cfg.Window.HalfWidth)
	assert.Equal(t, "out/run.html", cfg.Output.HTML)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults fill what the file leaves out.
	assert.Equal(t, 1e-9, cfg.Features.Tolerance)
	assert.Equal(t, "-", cfg.Output.Report)
	assert.Equal(t, "console", cfg.Logging.Format)

	pc := cfg.Pipeline()
	assert.Equal(t, edge.Down, pc.Direction)
	assert.Equal(t, 0.2, pc.SmoothWindow)
	assert.True(t, pc.FeaturesOnSmoothed)
	assert.Equal(t, 1, pc.Occurrence)
	assert.Equal(t, 0.3, pc.FeatureWindow)
	assert.Equal(t, 0.01, pc.SamplingPeriod)

	opts := cfg.CSVOptions()
	assert.Equal(t, ';', opts.Delimiter)
	assert.Equal(t, "t", opts.IndexColumn)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
input:
  path: run.csv
signal: v
detection:
  criteria: 1
`)
	t.Setenv("GOSIGNAL_DETECTION_CRITERIA", "7.5")
	t.Setenv("GOSIGNAL_WINDOW_HALF_WIDTH", "0.25")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7.5, cfg.Detection.Criteria)
	assert.Equal(t, 0.25, cfg.Window.HalfWidth)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing input", "signal: v\n"},
		{"missing signal", "input:\n  path: run.csv\n"},
		{"bad direction", "input:\n  path: run.csv\nsignal: v\ndetection:\n  direction: sideways\n"},
		{"bad delimiter", "input:\n  path: run.csv\n  delimiter: ';;'\nsignal: v\n"},
		{"zero half width", "input:\n  path: run.csv\nsignal: v\nwindow:\n  half_width: 0\n"},
		{"smoothed features without smoothing", "input:\n  path: run.csv\nsignal: v\nsmoothing:\n  use_for_features: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultConfigPipelineWithoutSmoothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Path = "run.csv"
	cfg.Signal = "v"
	require.NoError(t, cfg.Validate())

	pc := cfg.Pipeline()
	assert.Equal(t, edge.Rise, pc.Direction)
	assert.Zero(t, pc.SmoothWindow)
	assert.Equal(t, 0.5, pc.FeatureWindow)
}
