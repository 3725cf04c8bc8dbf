// Package smooth adds centered moving averages to a table.
//
//	tbl, err := smooth.MovingAverage(tbl, 0.1, 0.01, "pressure") // adds "pressure_ma"
//
// The window holds floor(duration/period) samples. Rows whose window runs
// past either end of the table are NaN; they are kept so that the column
// stays aligned with the index, and the feature reductions skip them.
package smooth
