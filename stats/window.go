package stats

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sartorproj/gosignal/timeseries"
)

// WindowSamples returns floor(duration / period), the number of samples a
// window of the given duration spans. The division is done in decimal so
// that 0.5 s at 0.01 s resolves to 50 rather than 49.
func WindowSamples(duration, period float64) (int, error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return 0, fmt.Errorf("%w: sampling period %v", timeseries.ErrInvalidWindow, period)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w: duration %v", timeseries.ErrInvalidWindow, duration)
	}
	n := decimal.NewFromFloat(duration).
		Div(decimal.NewFromFloat(period)).
		Floor().
		IntPart()
	if n <= 0 {
		return 0, fmt.Errorf("%w: %v / %v gives %d samples", timeseries.ErrInvalidWindow, duration, period, n)
	}
	return int(n), nil
}

// Round rounds half away from zero to the given number of decimal places,
// using the shortest decimal representation of v.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
