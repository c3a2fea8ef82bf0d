package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup returns a JSON structured logger writing to w.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault installs the JSON logger as the process default. A nil writer
// logs to stderr, keeping stdout free for the menu.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(Setup(w))
}
