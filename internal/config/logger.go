package config

import (
	"log/slog"
	"os"
)

// SetupLogger installs the process-wide structured JSON logger.
func SetupLogger() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	// stderr keeps stdout free for the stdio MCP transport.
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
