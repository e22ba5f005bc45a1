package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init(level slog.Level) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
