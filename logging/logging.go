// Package logging builds the zerolog logger used by the demo and the pipeline.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, format and destination.
type Config struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json or console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr or a file path
}

// New creates a logger from cfg. The returned close function releases the
// log file, if one was opened.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	closeFn := func() error { return nil }
	var output io.Writer
	switch cfg.OutputPath {
	case "stderr", "":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("failed to open log file %s: %w", cfg.OutputPath, err)
		}
		output = file
		closeFn = file.Close
	}

	return NewWithWriter(output, level, cfg.Format), closeFn, nil
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level, format string) zerolog.Logger {
	if format == "console" || format == "pretty" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
