package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosignal/timeseries"
)

func TestNanReductions(t *testing.T) {
	values := []float64{math.NaN(), 3, -2, math.NaN(), 7}

	assert.Equal(t, 7.0, NanMax(values))
	assert.Equal(t, -2.0, NanMin(values))
	assert.Equal(t, []float64{3, -2, 7}, Finite(values))

	assert.True(t, math.IsNaN(NanMax([]float64{math.NaN()})))
	assert.True(t, math.IsNaN(NanMin(nil)))
}

func TestDiff(t *testing.T) {
	d := Diff([]float64{0, 0, 1, 1, 0})

	require.Len(t, d, 5)
	assert.True(t, math.IsNaN(d[0]))
	assert.Equal(t, []float64{0, 1, 0, -1}, d[1:])
	assert.Empty(t, Diff(nil))
}

func TestSub(t *testing.T) {
	out := Sub([]float64{5, math.NaN(), 2}, []float64{1, 1, 2})
	assert.Equal(t, 4.0, out[0])
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 0.0, out[2])
}

func TestWindowSamples(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		period   float64
		want     int
	}{
		{"exact", 0.5, 0.01, 50},
		{"one and a half", 1.5, 0.01, 150},
		{"floor", 0.055, 0.01, 5},
		{"single sample", 0.01, 0.01, 1},
		{"coarse", 3, 0.25, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := WindowSamples(tt.duration, tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestWindowSamplesInvalid(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		period   float64
	}{
		{"shorter than period", 0.005, 0.01},
		{"zero duration", 0, 0.01},
		{"negative duration", -1, 0.01},
		{"zero period", 1, 0},
		{"nan period", 1, math.NaN()},
		{"nan duration", math.NaN(), 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WindowSamples(tt.duration, tt.period)
			assert.True(t, errors.Is(err, timeseries.ErrInvalidWindow), "got %v", err)
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.99, Round(0.76+0.25-0.01-0.01, 2))
	assert.Equal(t, 1.0, Round(0.76+0.25-0.01, 2))
	assert.Equal(t, 2.35, Round(2.345, 2))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}
