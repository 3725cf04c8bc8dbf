package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNaNs(t *testing.T, values []float64, idx ...int) {
	t.Helper()
	for _, i := range idx {
		assert.True(t, math.IsNaN(values[i]), "expected NaN at %d, got %v", i, values[i])
	}
}

func TestCenteredMeanOddWidth(t *testing.T) {
	out := CenteredMean([]float64{1, 2, 3, 4, 5}, 3)

	require.Len(t, out, 5)
	assertNaNs(t, out, 0, 4)
	assert.InDelta(t, 2.0, out[1], 1e-12)
	assert.InDelta(t, 3.0, out[2], 1e-12)
	assert.InDelta(t, 4.0, out[3], 1e-12)
}

func TestCenteredMeanEvenWidth(t *testing.T) {
	// Width 4: row i covers [i-2, i+1].
	out := CenteredMean([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 4)

	assertNaNs(t, out, 0, 1, 9)
	assert.InDelta(t, 1.5, out[2], 1e-12)
	assert.InDelta(t, 6.5, out[8], 1e-12)
}

func TestCenteredMeanConstant(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 3
	}

	out := CenteredMean(values, 10)
	for i, v := range out {
		if i < 5 || i >= 100-4 {
			assert.True(t, math.IsNaN(v), "index %d", i)
			continue
		}
		assert.InDelta(t, 3.0, v, 1e-12, "index %d", i)
	}
}

func TestCenteredMaxMin(t *testing.T) {
	values := []float64{1, 5, 2, 8, 3, 0, 4}

	hi := CenteredMax(values, 3)
	lo := CenteredMin(values, 3)

	assertNaNs(t, hi, 0, 6)
	assertNaNs(t, lo, 0, 6)
	assert.Equal(t, []float64{5, 8, 8, 8, 4}, hi[1:6])
	assert.Equal(t, []float64{1, 2, 2, 0, 0}, lo[1:6])
}

func TestCenteredWindowOfOne(t *testing.T) {
	values := []float64{4, math.NaN(), -1}

	out := CenteredMax(values, 1)
	assert.Equal(t, 4.0, out[0])
	assertNaNs(t, out, 1)
	assert.Equal(t, -1.0, out[2])
}

func TestCenteredPropagatesNaN(t *testing.T) {
	values := []float64{1, 1, 1, math.NaN(), 1, 1, 1, 1, 1}

	out := CenteredMean(values, 3)
	// Windows touching row 3 are rows 2, 3 and 4.
	assertNaNs(t, out, 0, 2, 3, 4, 8)
	for _, i := range []int{1, 5, 6, 7} {
		assert.InDelta(t, 1.0, out[i], 1e-12, "index %d", i)
	}

	hi := CenteredMax([]float64{-5, -5, math.NaN(), -5, -5, -5}, 3)
	assert.Equal(t, -5.0, hi[4])
	assertNaNs(t, hi, 1, 2, 3)
}

func TestCenteredWindowLongerThanSeries(t *testing.T) {
	out := CenteredMean([]float64{1, 2, 3}, 4)
	require.Len(t, out, 3)
	assertNaNs(t, out, 0, 1, 2)

	assert.Nil(t, CenteredMin([]float64{1, 2}, 0))
	assert.Empty(t, CenteredMin(nil, 3))
}
