// Package pipeline runs the full event analysis over one table: detect
// edges on a signal, optionally add its moving average, window the table
// around the selected edge, and extract the amplitude features of the window.
//
//	cfg := pipeline.DefaultConfig()
//	cfg.Signal = "pressure"
//	cfg.Criteria = 2.5
//	r, err := pipeline.NewRunner(cfg, logger)
//	res, err := r.Run(tbl)
//	res.WriteYAML(os.Stdout)
//
// Errors from each stage are returned unchanged, so callers can match the
// timeseries sentinel errors to decide whether to skip a segment.
package pipeline
