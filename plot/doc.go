// Package plot renders the diagnostic chart for a windowed signal.
//
// The chart puts the primary signal on a left axis ranged
// [round(min/0.3), round(max/0.3)] and a 0/1 indicator on a right axis
// fixed to [0, 1], both against the table's time index, and pins the
// minimum and maximum reported by a feature.FeatureSet.
//
//	var buf bytes.Buffer
//	err := plot.Render(&buf, win, fs, plot.Options{
//	    Primary:   "pressure",
//	    Secondary: "valve",
//	    XLabel:    "time [s]",
//	})
//
// RenderPNG turns the HTML into a PNG through a headless browser.
package plot
