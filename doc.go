// Package gosignal provides event detection and feature extraction for
// sampled time-series signals.
//
// A recording is held in a timeseries.Table: an ascending time index in
// seconds with named numeric columns. The packages transform it in stages:
//
//   - edge: detect rising or falling threshold crossings
//   - smooth: centered moving average
//   - window: cut the rows around one detected edge
//   - feature: max delta and the bracketing minimum and maximum of a window
//   - plot: two-axis diagnostic chart of a window and its features
//
// The pipeline package chains the stages, and demo runs them over a CSV
// file from a YAML configuration.
//
// # Quick Start
//
//	tbl, _ := timeseries.LoadCSV("run.csv", nil)
//	edges, _ := edge.DetectRise(tbl, "pressure", 2.5)
//	win, _ := window.Extract(tbl, 1.0, edge.PointColumn("pressure", edge.Rise), window.DefaultOptions())
//	fs, _ := feature.Extract(win, 0.5, 0.01, "pressure", feature.DefaultOptions())
//
// # Packages
//
//   - timeseries: Table, CSV I/O and the shared error values
//   - stats: rolling windows and NaN-aware reductions
//   - edge, smooth, window, feature: the processing stages
//   - plot: chart rendering (HTML, PNG)
//   - pipeline, config, logging: orchestration for the demo
package gosignal
