// Package feature derives amplitude features from a signal window.
package feature

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosignal/stats"
	"github.com/sartorproj/gosignal/timeseries"
)

const (
	// timeDecimals is the precision reconstructed extremum times are rounded to.
	timeDecimals = 2
	// lookupDecimals is the precision index values are rounded to when matching.
	lookupDecimals = 3
)

// FeatureSet is the amplitude summary of a window.
type FeatureSet struct {
	DMax         float64 `json:"dmax" yaml:"dmax"`
	MinTime      float64 `json:"mintime" yaml:"mintime"`
	MaxTime      float64 `json:"maxtime" yaml:"maxtime"`
	MinTimeValue float64 `json:"mintime_value" yaml:"mintime_value"`
	MaxTimeValue float64 `json:"maxtime_value" yaml:"maxtime_value"`
}

// Options tunes the extraction.
type Options struct {
	// Tolerance is the absolute distance from the peak delta within which a
	// row belongs to the plateau. It is also the minimum peak delta: a signal
	// that varies less than this is treated as flat.
	Tolerance float64
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-9}
}

// RollingMaxColumn names the centered rolling max written by Extract.
func RollingMaxColumn(signal string) string { return signal + "_rolling_max" }

// RollingMinColumn names the centered rolling min written by Extract.
func RollingMinColumn(signal string) string { return signal + "_rolling_min" }

// DeltaColumn names the rolling max minus rolling min written by Extract.
func DeltaColumn(signal string) string { return signal + "_delta" }

// PlateauColumn names the 0/1 plateau flag written by Extract.
func PlateauColumn(signal string) string { return signal + "_plateau" }

// Extract computes the FeatureSet of signal over the table.
//
// A centered rolling max and min of floor(windowDuration/samplingPeriod)
// samples give delta = max - min. DMax is the largest delta. The plateau is
// the set of rows whose delta is within Tolerance of DMax; its first two
// boundaries p0 and p1 locate the extremes:
//
//	MaxTime = round(p0 + windowDuration/2 - samplingPeriod, 2)
//	MinTime = round(p1 - windowDuration/2 - samplingPeriod, 2)
//
// and the values are read from the rows whose index rounds (3 decimals) to
// those times. The rolling max, rolling min, delta and plateau columns are
// added to the table.
func Extract(t *timeseries.Table, windowDuration, samplingPeriod float64, signal string, opts Options) (FeatureSet, error) {
	values, err := t.Column(signal)
	if err != nil {
		return FeatureSet{}, fmt.Errorf("features: %w", err)
	}
	n, err := stats.WindowSamples(windowDuration, samplingPeriod)
	if err != nil {
		return FeatureSet{}, fmt.Errorf("features of %q: %w", signal, err)
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) {
		return FeatureSet{}, fmt.Errorf("features: negative tolerance %v", opts.Tolerance)
	}

	hi := stats.CenteredMax(values, n)
	lo := stats.CenteredMin(values, n)
	delta := stats.Sub(hi, lo)
	dmax := stats.NanMax(delta)

	plateau := make([]float64, len(delta))
	if !math.IsNaN(dmax) {
		for i, d := range delta {
			if math.Abs(d-dmax) <= opts.Tolerance {
				plateau[i] = 1
			}
		}
	}

	derived := []struct {
		name   string
		values []float64
	}{
		{RollingMaxColumn(signal), hi},
		{RollingMinColumn(signal), lo},
		{DeltaColumn(signal), delta},
		{PlateauColumn(signal), plateau},
	}
	for _, d := range derived {
		if err := t.SetColumn(d.name, d.values); err != nil {
			return FeatureSet{}, err
		}
	}

	if math.IsNaN(dmax) || dmax <= opts.Tolerance {
		return FeatureSet{}, fmt.Errorf("features of %q: %w (peak delta %v)", signal, timeseries.ErrInsufficientTransitions, dmax)
	}

	bounds := Transitions(t.Index, plateau)
	if len(bounds) < 2 {
		return FeatureSet{}, fmt.Errorf("features of %q: %w (found %d)", signal, timeseries.ErrInsufficientTransitions, len(bounds))
	}

	half := windowDuration / 2
	fs := FeatureSet{
		DMax:    dmax,
		MinTime: stats.Round(bounds[1]-half-samplingPeriod, timeDecimals),
		MaxTime: stats.Round(bounds[0]+half-samplingPeriod, timeDecimals),
	}

	if fs.MinTimeValue, err = t.Lookup(signal, fs.MinTime, lookupDecimals); err != nil {
		return FeatureSet{}, fmt.Errorf("features of %q: min: %w", signal, err)
	}
	if fs.MaxTimeValue, err = t.Lookup(signal, fs.MaxTime, lookupDecimals); err != nil {
		return FeatureSet{}, fmt.Errorf("features of %q: max: %w", signal, err)
	}
	return fs, nil
}

// Transitions returns the index values where a 0/1 flag series changes,
// in order. The first row is never a transition.
func Transitions(index, flags []float64) []float64 {
	var out []float64
	for i, d := range stats.Diff(flags) {
		if math.Abs(d) == 1 {
			out = append(out, index[i])
		}
	}
	return out
}
