// Package config loads the demo run configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gosignal/edge"
	"github.com/sartorproj/gosignal/logging"
	"github.com/sartorproj/gosignal/pipeline"
	"github.com/sartorproj/gosignal/timeseries"
)

// Config is the complete demo configuration.
type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Signal    string          `mapstructure:"signal"`
	Detection DetectionConfig `mapstructure:"detection"`
	Smoothing SmoothingConfig `mapstructure:"smoothing"`
	Window    WindowConfig    `mapstructure:"window"`
	Features  FeaturesConfig  `mapstructure:"features"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   logging.Config  `mapstructure:"logging"`
}

// InputConfig describes the CSV source.
type InputConfig struct {
	Path           string   `mapstructure:"path"`
	IndexColumn    string   `mapstructure:"index_column"`
	Columns        []string `mapstructure:"columns"`
	Delimiter      string   `mapstructure:"delimiter"`
	SkipRows       int      `mapstructure:"skip_rows"`
	SamplingPeriod float64  `mapstructure:"sampling_period"` // 0 infers from the index
}

// DetectionConfig holds the edge detection settings.
type DetectionConfig struct {
	Criteria  float64 `mapstructure:"criteria"`
	Direction string  `mapstructure:"direction"` // rise or down
}

// SmoothingConfig holds the moving-average settings.
type SmoothingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	WindowDuration float64 `mapstructure:"window_duration"`
	UseForFeatures bool    `mapstructure:"use_for_features"`
}

// WindowConfig holds the event window settings.
type WindowConfig struct {
	HalfWidth  float64 `mapstructure:"half_width"`
	Occurrence int     `mapstructure:"occurrence"`
	Step       float64 `mapstructure:"step"`
}

// FeaturesConfig holds the feature extraction settings.
type FeaturesConfig struct {
	WindowDuration float64 `mapstructure:"window_duration"`
	Tolerance      float64 `mapstructure:"tolerance"`
}

// OutputConfig selects what the demo writes.
type OutputConfig struct {
	Report         string `mapstructure:"report"` // YAML report path; "-" or empty for stdout
	HTML           string `mapstructure:"html"`
	PNG            string `mapstructure:"png"`
	WindowCSV      string `mapstructure:"window_csv"`
	Secondary      string `mapstructure:"secondary"` // defaults to the signal's level column
	Title          string `mapstructure:"title"`
	XLabel         string `mapstructure:"x_label"`
	PrimaryLabel   string `mapstructure:"primary_label"`
	SecondaryLabel string `mapstructure:"secondary_label"`
	Width          int    `mapstructure:"width"`
	Height         int    `mapstructure:"height"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			IndexColumn: "time",
			Delimiter:   ",",
		},
		Detection: DetectionConfig{
			Direction: "rise",
		},
		Smoothing: SmoothingConfig{
			WindowDuration: 0.1,
		},
		Window: WindowConfig{
			HalfWidth: 1,
		},
		Features: FeaturesConfig{
			WindowDuration: 0.5,
			Tolerance:      1e-9,
		},
		Output: OutputConfig{
			Report:         "-",
			XLabel:         "time [s]",
			SecondaryLabel: "state",
			Width:          1200,
			Height:         600,
		},
		Logging: logging.Config{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Input.Path == "" {
		errs = append(errs, errors.New("input.path is required"))
	}
	if len([]rune(c.Input.Delimiter)) != 1 {
		errs = append(errs, fmt.Errorf("input.delimiter must be one character, got %q", c.Input.Delimiter))
	}
	if _, err := edge.ParseDirection(c.Detection.Direction); err != nil {
		errs = append(errs, fmt.Errorf("detection.direction: %w", err))
	}
	if c.Smoothing.Enabled && !(c.Smoothing.WindowDuration > 0) {
		errs = append(errs, fmt.Errorf("smoothing.window_duration: %w", timeseries.ErrInvalidWindow))
	}
	if c.Smoothing.UseForFeatures && !c.Smoothing.Enabled {
		errs = append(errs, errors.New("smoothing.use_for_features needs smoothing.enabled"))
	}
	if err := c.Pipeline().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Pipeline converts the configuration to pipeline parameters.
func (c *Config) Pipeline() pipeline.Config {
	dir, _ := edge.ParseDirection(c.Detection.Direction)
	pc := pipeline.Config{
		Signal:         c.Signal,
		Criteria:       c.Detection.Criteria,
		Direction:      dir,
		SamplingPeriod: c.Input.SamplingPeriod,
		HalfWidth:      c.Window.HalfWidth,
		Occurrence:     c.Window.Occurrence,
		Step:           c.Window.Step,
		FeatureWindow:  c.Features.WindowDuration,
		Tolerance:      c.Features.Tolerance,
	}
	if c.Smoothing.Enabled {
		pc.SmoothWindow = c.Smoothing.WindowDuration
		pc.FeaturesOnSmoothed = c.Smoothing.UseForFeatures
	}
	return pc
}

// CSVOptions converts the input section to CSV loader options.
func (c *Config) CSVOptions() *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	opts.IndexColumn = c.Input.IndexColumn
	opts.SkipRows = c.Input.SkipRows
	if len(c.Input.Columns) > 0 {
		opts.Columns = append([]string(nil), c.Input.Columns...)
	}
	if r := []rune(c.Input.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}
