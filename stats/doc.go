// Package stats provides the numeric building blocks shared by the signal
// packages: centered rolling windows, NaN-aware reductions, first
// differences, and window sizing.
//
// # Centered Rolling Windows
//
// CenteredMean, CenteredMax and CenteredMin compute a statistic over a
// window of n samples centered on each row. Row i covers
// values[i-n/2 .. i+(n-1)/2]; rows whose window is incomplete, or holds a
// NaN, are NaN:
//
//	ma := stats.CenteredMean(values, 5)
//	hi := stats.CenteredMax(values, 5)
//	lo := stats.CenteredMin(values, 5)
//
// # Reductions
//
//	peak := stats.NanMax(delta) // NaN only if every value is NaN
//	d := stats.Diff(flags)       // d[0] is NaN
//
// # Window Sizing
//
// WindowSamples converts a duration and a sampling period into a sample
// count using decimal arithmetic, and reports ErrInvalidWindow when the
// window holds no samples:
//
//	n, err := stats.WindowSamples(0.5, 0.01) // 50
package stats
