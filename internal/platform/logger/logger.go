// Package logger provides structured logging functionality for the
// application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/taskrank-api/internal/config"
)

// Setup initializes the application's logging based on the provided server
// configuration. It creates a structured JSON logger at the configured level,
// sets it as the process default, and returns it.
//
// An unrecognized log level falls back to info with a warning rather than
// failing startup.
func Setup(cfg config.ServerConfig) *slog.Logger {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output writer, for tests.
func SetupWithWriter(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
