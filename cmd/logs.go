package cmd

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger writing to writer.
func NewLogger(writer io.Writer, level slog.Level) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(writer, &opts))
}
