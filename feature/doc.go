// Package feature extracts the amplitude features of a signal window.
//
// Over a centered rolling window the package computes max - min at every
// row. The largest such delta is DMax, and the first run of rows reaching
// it (within a tolerance) is the plateau. The plateau's two boundaries,
// shifted back by half the window, give the times of the minimum and
// maximum that bracket the steepest change, and their values are read from
// the table.
//
//	fs, err := feature.Extract(win, 0.5, 0.01, "pressure", feature.DefaultOptions())
//	fmt.Println(fs.DMax, fs.MinTime, fs.MaxTime)
//
// A flat signal, or one whose plateau never closes, returns
// timeseries.ErrInsufficientTransitions. A reconstructed time with no
// matching row returns timeseries.ErrTimeNotFound.
package feature
