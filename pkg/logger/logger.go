package logger

import (
	"log/slog"
	"os"

	"filepart/pkg/config"
)

// GetLogger returns a text logger on stdout. Every diagnostic the tool
// emits, errors included, goes to stdout.
func GetLogger() *slog.Logger {
	loggerOpts := slog.HandlerOptions{Level: logLevel()}
	return slog.New(slog.NewTextHandler(os.Stdout, &loggerOpts))
}

func logLevel() slog.Level {
	switch config.GetEnvString("FILEPART_LOG_LEVEL", "info") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
