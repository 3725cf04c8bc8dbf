package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosignal/timeseries"
)

func TestMovingAverageConstant(t *testing.T) {
	tbl := timeseries.NewUniform(200, 0, 0.01)
	values := make([]float64, 200)
	for i := range values {
		values[i] = 4.2
	}
	require.NoError(t, tbl.SetColumn("v", values))

	out, err := MovingAverage(tbl, 0.1, 0.01, "v")
	require.NoError(t, err)
	assert.Same(t, tbl, out)

	// n = 10: five NaN rows at the start, four at the end.
	ma := tbl.MustColumn("v_ma")
	for i, v := range ma {
		if i < 5 || i >= 196 {
			assert.True(t, math.IsNaN(v), "expected NaN at %d", i)
			continue
		}
		assert.InDelta(t, 4.2, v, 1e-9, "index %d", i)
	}
	assert.Equal(t, 4.2, tbl.MustColumn("v")[0])
}

func TestMovingAverageRamp(t *testing.T) {
	tbl := timeseries.NewUniform(7, 0, 1)
	require.NoError(t, tbl.SetColumn("v", []float64{0, 1, 2, 3, 4, 5, 6}))

	_, err := MovingAverage(tbl, 3, 1, "v")
	require.NoError(t, err)

	ma := tbl.MustColumn(Column("v"))
	assert.True(t, math.IsNaN(ma[0]))
	assert.True(t, math.IsNaN(ma[6]))
	for i := 1; i <= 5; i++ {
		assert.InDelta(t, float64(i), ma[i], 1e-12)
	}
}

func TestMovingAverageErrors(t *testing.T) {
	tbl := timeseries.NewUniform(10, 0, 0.01)
	require.NoError(t, tbl.SetColumn("v", make([]float64, 10)))

	_, err := MovingAverage(tbl, 0.001, 0.01, "v")
	assert.True(t, errors.Is(err, timeseries.ErrInvalidWindow))

	_, err = MovingAverage(tbl, 0.1, 0, "v")
	assert.True(t, errors.Is(err, timeseries.ErrInvalidWindow))

	_, err = MovingAverage(tbl, 0.1, 0.01, "w")
	assert.True(t, errors.Is(err, timeseries.ErrColumnNotFound))
	assert.False(t, tbl.HasColumn("w_ma"))
}
