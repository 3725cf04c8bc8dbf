// Package edge detects rising and falling threshold crossings.
//
// A detection binarizes the signal against a threshold (at-or-above is 1
// for Rise, 0 for Down), takes the first difference, and reports every row
// where the difference is exactly +1. The first row has no difference and is
// never an edge.
//
//	edges, err := edge.DetectRise(tbl, "voltage", 2.5)
//	downs, err := edge.DetectDown(tbl, "voltage", 2.5)
//
// Each call adds two derived columns to the table: the binarized level and
// the 0/1 edge flag consumed by window.Extract. The source column is never
// modified.
package edge
