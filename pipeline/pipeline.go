// Package pipeline chains edge detection, smoothing, windowing and feature
// extraction over one table.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gosignal/edge"
	"github.com/sartorproj/gosignal/feature"
	"github.com/sartorproj/gosignal/smooth"
	"github.com/sartorproj/gosignal/timeseries"
	"github.com/sartorproj/gosignal/window"
)

// Config holds the parameters of one run. Durations are in the table's
// index unit (seconds).
type Config struct {
	Signal    string
	Criteria  float64
	Direction edge.Direction

	// SamplingPeriod of the source table. Zero infers it from the index.
	SamplingPeriod float64

	// SmoothWindow enables the moving average when positive. With
	// FeaturesOnSmoothed the features are computed on the averaged column.
	SmoothWindow       float64
	FeaturesOnSmoothed bool

	HalfWidth  float64
	Occurrence int
	// Step re-indexes the window. Zero keeps the sampling period.
	Step float64

	FeatureWindow float64
	Tolerance     float64
}

// DefaultConfig returns a configuration for a 100 Hz rising-edge run.
func DefaultConfig() Config {
	return Config{
		Direction:     edge.Rise,
		HalfWidth:     1,
		FeatureWindow: 0.5,
		Tolerance:     feature.DefaultOptions().Tolerance,
	}
}

// Validate checks the parameters that do not depend on the data.
func (c Config) Validate() error {
	var errs []error
	if c.Signal == "" {
		errs = append(errs, errors.New("signal is required"))
	}
	if c.SamplingPeriod < 0 {
		errs = append(errs, fmt.Errorf("%w: sampling period %v", timeseries.ErrInvalidWindow, c.SamplingPeriod))
	}
	if c.SmoothWindow < 0 {
		errs = append(errs, fmt.Errorf("%w: smoothing window %v", timeseries.ErrInvalidWindow, c.SmoothWindow))
	}
	if !(c.HalfWidth > 0) {
		errs = append(errs, fmt.Errorf("%w: half width %v", timeseries.ErrInvalidWindow, c.HalfWidth))
	}
	if c.Occurrence < 0 {
		errs = append(errs, fmt.Errorf("%w: occurrence %d", timeseries.ErrInvalidWindow, c.Occurrence))
	}
	if c.Step < 0 {
		errs = append(errs, fmt.Errorf("%w: step %v", timeseries.ErrInvalidWindow, c.Step))
	}
	if !(c.FeatureWindow > 0) {
		errs = append(errs, fmt.Errorf("%w: feature window %v", timeseries.ErrInvalidWindow, c.FeatureWindow))
	}
	if c.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance %v is negative", c.Tolerance))
	}
	return errors.Join(errs...)
}

// Result is the outcome of a run.
type Result struct {
	Signal         string
	FeatureSignal  string
	Direction      edge.Direction
	SamplingPeriod float64
	Edges          edge.EdgeList
	Midpoint       float64
	Window         *timeseries.Table
	Features       feature.FeatureSet
}

// Runner executes the pipeline with a fixed configuration.
type Runner struct {
	cfg Config
	log zerolog.Logger
}

// NewRunner validates cfg and returns a Runner logging to log.
func NewRunner(cfg Config, log zerolog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}
	return &Runner{cfg: cfg, log: log.With().Str("component", "pipeline").Logger()}, nil
}

// Run processes t. Derived columns (edge levels and points, the moving
// average) are added to t; the window is an independent table.
func (r *Runner) Run(t *timeseries.Table) (*Result, error) {
	cfg := r.cfg
	if err := t.Validate(); err != nil {
		return nil, err
	}

	dt := cfg.SamplingPeriod
	if dt == 0 {
		dt = t.SamplingPeriod()
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("%w: cannot infer sampling period from %d rows", timeseries.ErrInvalidWindow, t.Len())
	}
	log := r.log.With().Str("signal", cfg.Signal).Stringer("direction", cfg.Direction).Logger()
	log.Debug().Int("rows", t.Len()).Float64("sampling_period", dt).Msg("run started")

	edges, err := edge.Detect(t, cfg.Signal, cfg.Criteria, cfg.Direction)
	if err != nil {
		return nil, err
	}
	log.Info().Int("edges", len(edges)).Float64("criteria", cfg.Criteria).Msg("edges detected")
	mid, ok := edges.At(cfg.Occurrence)
	if !ok {
		return nil, fmt.Errorf("%w: %d %s edges of %q at %v, wanted occurrence %d",
			timeseries.ErrNoEdgeFound, len(edges), cfg.Direction, cfg.Signal, cfg.Criteria, cfg.Occurrence)
	}

	featureSignal := cfg.Signal
	if cfg.SmoothWindow > 0 {
		if _, err := smooth.MovingAverage(t, cfg.SmoothWindow, dt, cfg.Signal); err != nil {
			return nil, err
		}
		log.Debug().Float64("window", cfg.SmoothWindow).Msg("moving average added")
		if cfg.FeaturesOnSmoothed {
			featureSignal = smooth.Column(cfg.Signal)
		}
	}

	step := cfg.Step
	if step == 0 {
		step = dt
	}
	win, err := window.Extract(t, cfg.HalfWidth, edge.PointColumn(cfg.Signal, cfg.Direction), window.Options{
		Occurrence: cfg.Occurrence,
		Step:       step,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Float64("midpoint", mid).Int("rows", win.Len()).Msg("window extracted")

	fs, err := feature.Extract(win, cfg.FeatureWindow, step, featureSignal, feature.Options{Tolerance: cfg.Tolerance})
	if err != nil {
		log.Warn().Err(err).Msg("feature extraction failed")
		return nil, err
	}
	log.Info().
		Float64("dmax", fs.DMax).
		Float64("mintime", fs.MinTime).
		Float64("maxtime", fs.MaxTime).
		Msg("features extracted")

	return &Result{
		Signal:         cfg.Signal,
		FeatureSignal:  featureSignal,
		Direction:      cfg.Direction,
		SamplingPeriod: dt,
		Edges:          edges,
		Midpoint:       mid,
		Window:         win,
		Features:       fs,
	}, nil
}

// Report is the serialized summary of a Result.
type Report struct {
	Signal         string             `yaml:"signal"`
	FeatureSignal  string             `yaml:"feature_signal"`
	Direction      string             `yaml:"direction"`
	SamplingPeriod float64            `yaml:"sampling_period"`
	Edges          []float64          `yaml:"edges"`
	Midpoint       float64            `yaml:"midpoint"`
	WindowRows     int                `yaml:"window_rows"`
	Features       feature.FeatureSet `yaml:"features"`
}

// Report summarizes the result.
func (res *Result) Report() Report {
	rows := 0
	if res.Window != nil {
		rows = res.Window.Len()
	}
	return Report{
		Signal:         res.Signal,
		FeatureSignal:  res.FeatureSignal,
		Direction:      res.Direction.String(),
		SamplingPeriod: res.SamplingPeriod,
		Edges:          []float64(res.Edges),
		Midpoint:       res.Midpoint,
		WindowRows:     rows,
		Features:       res.Features,
	}
}

// WriteYAML writes the report as YAML.
func (res *Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res.Report()); err != nil {
		return err
	}
	return enc.Close()
}
