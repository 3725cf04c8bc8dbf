// Package timeseries provides the time-indexed table used by the signal
// processing packages, along with CSV loading and the shared error values.
//
// # Creating a Table
//
// A Table is an ascending time index (seconds) with named numeric columns:
//
//	tbl := timeseries.NewUniform(300, 0, 0.01) // 3 s at 100 Hz
//	tbl.SetColumn("voltage", samples)
//
// or, from existing slices:
//
//	tbl, err := timeseries.FromColumns(index, []string{"voltage", "enable"}, v, en)
//
// # Loading from CSV
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.IndexColumn = "time"
//	tbl, err := timeseries.LoadCSV("run.csv", opts)
//
// Missing cells (empty, NA, NaN, null) load as NaN so every column stays
// aligned with the index.
//
// # Derived Columns
//
// The edge, smooth and feature packages add derived columns to the table
// they are given; they never overwrite the source signal. Flag columns hold
// 0 or 1, tested with IsTrue.
//
// # Lookups
//
// Row and Lookup match index values after decimal rounding, so a time
// reconstructed by arithmetic finds the sample it refers to:
//
//	v, err := tbl.Lookup("voltage", 0.99, 3)
//
// # Errors
//
// All packages report failures with the sentinel errors defined here
// (ErrNoEdgeFound, ErrInsufficientTransitions, ErrTimeNotFound,
// ErrInvalidWindow, ...), wrapped with context. Use errors.Is to match them.
package timeseries
