// Package main runs the edge/window/feature pipeline over a CSV recording
// and writes the feature report and the diagnostic chart.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sartorproj/gosignal/config"
	"github.com/sartorproj/gosignal/edge"
	"github.com/sartorproj/gosignal/logging"
	"github.com/sartorproj/gosignal/pipeline"
	"github.com/sartorproj/gosignal/plot"
	"github.com/sartorproj/gosignal/timeseries"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	tbl, err := timeseries.LoadCSV(cfg.Input.Path, cfg.CSVOptions())
	if err != nil {
		return err
	}
	tbl.Name = filepath.Base(cfg.Input.Path)
	logger.Info().
		Str("input", cfg.Input.Path).
		Int("rows", tbl.Len()).
		Strs("columns", tbl.Columns()).
		Msg("table loaded")

	runner, err := pipeline.NewRunner(cfg.Pipeline(), logger)
	if err != nil {
		return err
	}
	res, err := runner.Run(tbl)
	if err != nil {
		return err
	}

	if err := writeReport(cfg.Output.Report, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Output.WindowCSV != "" {
		if err := writeFile(cfg.Output.WindowCSV, func(w io.Writer) error {
			return timeseries.SaveCSV(res.Window, w, cfg.Input.IndexColumn)
		}); err != nil {
			return fmt.Errorf("write window: %w", err)
		}
		logger.Info().Str("path", cfg.Output.WindowCSV).Msg("window written")
	}

	if cfg.Output.HTML == "" && cfg.Output.PNG == "" {
		return nil
	}

	secondary := cfg.Output.Secondary
	if secondary == "" {
		secondary = edge.LevelColumn(res.Signal, res.Direction)
	}
	title := cfg.Output.Title
	if title == "" {
		title = tbl.Name
	}
	opts := plot.Options{
		Primary:        res.FeatureSignal,
		Secondary:      secondary,
		Title:          title,
		XLabel:         cfg.Output.XLabel,
		PrimaryLabel:   cfg.Output.PrimaryLabel,
		SecondaryLabel: cfg.Output.SecondaryLabel,
		Width:          cfg.Output.Width,
		Height:         cfg.Output.Height,
	}
	if opts.PrimaryLabel == "" {
		opts.PrimaryLabel = res.FeatureSignal
	}

	var html bytes.Buffer
	if err := plot.Render(&html, res.Window, res.Features, opts); err != nil {
		return err
	}
	if cfg.Output.HTML != "" {
		if err := writeFile(cfg.Output.HTML, func(w io.Writer) error {
			_, err := w.Write(html.Bytes())
			return err
		}); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		logger.Info().Str("path", cfg.Output.HTML).Msg("chart written")
	}
	if cfg.Output.PNG != "" {
		png, err := plot.RenderPNG(ctx, html.Bytes(), cfg.Output.Width, cfg.Output.Height)
		if err != nil {
			return err
		}
		if err := writeFile(cfg.Output.PNG, func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		logger.Info().Str("path", cfg.Output.PNG).Int("bytes", len(png)).Msg("png written")
	}
	return nil
}

func writeReport(path string, res *pipeline.Result) error {
	if path == "" || path == "-" {
		return res.WriteYAML(os.Stdout)
	}
	return writeFile(path, res.WriteYAML)
}

func writeFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
