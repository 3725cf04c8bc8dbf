package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Finite returns the non-NaN values of a slice.
func Finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// NanMax returns the maximum ignoring NaN, or NaN if no value is finite.
func NanMax(values []float64) float64 {
	finite := Finite(values)
	if len(finite) == 0 {
		return math.NaN()
	}
	return floats.Max(finite)
}

// NanMin returns the minimum ignoring NaN, or NaN if no value is finite.
func NanMin(values []float64) float64 {
	finite := Finite(values)
	if len(finite) == 0 {
		return math.NaN()
	}
	return floats.Min(finite)
}

// Diff returns the first difference aligned with the input: out[0] is NaN
// and out[i] = values[i] - values[i-1].
func Diff(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}
	return out
}

// Sub returns a - b element-wise.
func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	return out
}
