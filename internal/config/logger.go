package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Unknown levels fall back to info.
func (c LoggerConfig) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c LoggerConfig) newLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
