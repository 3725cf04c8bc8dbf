// Package smooth computes centered moving averages over a table column.
package smooth

import (
	"fmt"

	"github.com/sartorproj/gosignal/stats"
	"github.com/sartorproj/gosignal/timeseries"
)

// Column names the moving-average column derived from signal.
func Column(signal string) string {
	return signal + "_ma"
}

// MovingAverage adds Column(signal) to the table: the centered rolling mean
// over floor(windowDuration/samplingPeriod) samples. Rows at each end where
// the window is incomplete are NaN, as are rows whose window holds a NaN.
// The table is returned for chaining.
func MovingAverage(t *timeseries.Table, windowDuration, samplingPeriod float64, signal string) (*timeseries.Table, error) {
	values, err := t.Column(signal)
	if err != nil {
		return nil, fmt.Errorf("moving average: %w", err)
	}
	n, err := stats.WindowSamples(windowDuration, samplingPeriod)
	if err != nil {
		return nil, fmt.Errorf("moving average of %q: %w", signal, err)
	}
	if err := t.SetColumn(Column(signal), stats.CenteredMean(values, n)); err != nil {
		return nil, err
	}
	return t, nil
}
