// Package window cuts the rows around one detected event out of a table.
//
// The event is the Occurrence-th set row of a 0/1 point column, usually the
// one written by the edge package. Rows strictly within HalfWidth of it are
// copied into a new table whose index is re-based to start at zero with a
// fixed step:
//
//	win, err := window.Extract(tbl, 0.5, edge.PointColumn("pressure", edge.Rise), window.DefaultOptions())
//
// Extract returns timeseries.ErrNoEdgeFound when the requested event does
// not exist.
package window
