package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. Init must run before the
// first request is served; everything the relay reports (startup
// summary, send attempts, error paths) goes through it to stdout.
var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}
