// Package stats provides rolling-window and reduction primitives for sampled signals.
package stats

import (
	"math"

	talib "github.com/markcheno/go-talib"
)

// kernel computes a trailing window statistic: out[j] covers values[j-n+1 .. j].
type kernel func(values []float64, n int) []float64

// CenteredMean returns the centered rolling mean of width n.
func CenteredMean(values []float64, n int) []float64 {
	return centered(values, n, talib.Sma)
}

// CenteredMax returns the centered rolling maximum of width n.
func CenteredMax(values []float64, n int) []float64 {
	return centered(values, n, talib.Max)
}

// CenteredMin returns the centered rolling minimum of width n.
func CenteredMin(values []float64, n int) []float64 {
	return centered(values, n, talib.Min)
}

// centered aligns a trailing kernel on the window center. Row i covers
// values[i-n/2 .. i+(n-1)/2]; rows whose window runs past either end, or
// contains a NaN, are NaN. n <= 0 yields nil.
func centered(values []float64, n int, fn kernel) []float64 {
	if n <= 0 {
		return nil
	}
	size := len(values)
	out := make([]float64, size)
	for i := range out {
		out[i] = math.NaN()
	}
	if n > size {
		return out
	}

	// The kernels have no NaN handling, so NaNs are zeroed for the pass and
	// every window that held one is masked afterwards.
	clean := make([]float64, size)
	nans := make([]int, size+1)
	for i, v := range values {
		nans[i+1] = nans[i]
		if math.IsNaN(v) {
			nans[i+1]++
			continue
		}
		clean[i] = v
	}

	var trailing []float64
	if n == 1 {
		trailing = clean
	} else {
		trailing = fn(clean, n)
	}

	offset := (n - 1) / 2
	for i := range out {
		end := i + offset
		start := end - n + 1
		if start < 0 || end >= size {
			continue
		}
		if nans[end+1]-nans[start] > 0 {
			continue
		}
		out[i] = trailing[end]
	}
	return out
}
