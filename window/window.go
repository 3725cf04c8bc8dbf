// Package window extracts a sub-table centered on a detected event.
package window

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosignal/timeseries"
)

// Options controls which event is windowed and how the result is re-indexed.
type Options struct {
	// Occurrence selects the event: 0 is the first set row of the point
	// column, 1 the second, and so on.
	Occurrence int
	// Step is the spacing of the re-based index. Zero uses the source
	// table's sampling period.
	Step float64
}

// DefaultOptions windows the first event and keeps the source sampling period.
func DefaultOptions() Options {
	return Options{}
}

// Midpoint returns the index value of the requested occurrence of a set row
// in pointColumn.
func Midpoint(t *timeseries.Table, pointColumn string, occurrence int) (float64, error) {
	if occurrence < 0 {
		return 0, fmt.Errorf("%w: occurrence %d", timeseries.ErrInvalidWindow, occurrence)
	}
	points, err := t.Column(pointColumn)
	if err != nil {
		return 0, err
	}
	seen := 0
	for i, p := range points {
		if !timeseries.IsTrue(p) {
			continue
		}
		if seen == occurrence {
			return t.Index[i], nil
		}
		seen++
	}
	return 0, fmt.Errorf("%w: %q has %d events, wanted occurrence %d", timeseries.ErrNoEdgeFound, pointColumn, seen, occurrence)
}

// Extract returns an independent copy of the rows strictly within halfWidth
// of the selected event, re-indexed to 0, Step, 2*Step, ...
// Rows exactly halfWidth away are excluded.
func Extract(t *timeseries.Table, halfWidth float64, pointColumn string, opts Options) (*timeseries.Table, error) {
	if !(halfWidth > 0) || math.IsInf(halfWidth, 0) {
		return nil, fmt.Errorf("%w: half width %v", timeseries.ErrInvalidWindow, halfWidth)
	}
	mid, err := Midpoint(t, pointColumn, opts.Occurrence)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	step := opts.Step
	if step == 0 {
		step = t.SamplingPeriod()
	}
	if !(step > 0) {
		return nil, fmt.Errorf("%w: re-index step %v", timeseries.ErrInvalidWindow, step)
	}

	lo, hi := mid-halfWidth, mid+halfWidth
	start, end := -1, -1
	for i, ts := range t.Index {
		if ts > lo && ts < hi {
			if start < 0 {
				start = i
			}
			end = i + 1
		}
	}
	// The event row itself always qualifies, so start is set.
	out := t.Slice(start, end)
	out.Reindex(0, step)
	return out, nil
}
