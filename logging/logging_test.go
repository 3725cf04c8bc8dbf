package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.InfoLevel, "json")

	log.Debug().Msg("hidden")
	log.Info().Str("signal", "v").Msg("edges detected")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"signal":"v"`)
	assert.Contains(t, out, `"message":"edges detected"`)
}

func TestNewWithWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.DebugLevel, "console")

	log.Debug().Msg("window extracted")
	assert.Contains(t, buf.String(), "window extracted")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")

	log, closeFn, err := New(Config{Level: "warn", Format: "json", OutputPath: path})
	require.NoError(t, err)
	log.Info().Msg("skipped")
	log.Warn().Msg("kept")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "skipped")
}

func TestNewDefaults(t *testing.T) {
	log, closeFn, err := New(Config{Level: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	assert.NoError(t, closeFn())
}
