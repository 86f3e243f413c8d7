package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdex/logging"
)

// TestParseLevel covers names, case-insensitivity and rejection.
func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

// TestNew_JSON verifies JSON output and level filtering.
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "vertex", "Yoda")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "Yoda", rec["vertex"])
}

// TestNew_TextAndErrors verifies the default format and bad inputs.
func TestNew_TextAndErrors(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{}, &buf)
	require.NoError(t, err)
	l.Info("hello", "n", 1)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=1")

	_, err = logging.New(logging.Config{Format: "xml"}, &buf)
	assert.ErrorIs(t, err, logging.ErrBadFormat)
	_, err = logging.New(logging.Config{Level: "loud"}, &buf)
	assert.Error(t, err)
}

// TestNoop verifies the discard logger is usable.
func TestNoop(t *testing.T) {
	assert.NotPanics(t, func() { logging.Noop().Error("ignored") })
}
