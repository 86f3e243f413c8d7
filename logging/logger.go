// Package logging builds the structured loggers used by the lvdex CLI.
//
// Library packages never log by default; they accept a *slog.Logger through
// options (see catalog.WithLogger) and fall back to a discarding handler.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrBadFormat indicates an unknown log format name.
var ErrBadFormat = errors.New("logging: unknown format")

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level and output format.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// New returns a logger writing to w (stderr when nil) with the configured
// level and format. Empty fields fall back to "info" and "text".
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
// The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return level, nil
}

// Noop returns a logger that discards everything.
func Noop() *slog.Logger { return slog.New(slog.DiscardHandler) }
