// Package solverlog provides the structured logger cmd/cvrp-gvns uses (the
// solver packages themselves do not log), adapted from the teacher corpus's network-logistics
// sibling service (pkg/logger): log/slog with a pluggable writer and
// level, rotated through lumberjack when writing to a file.
package solverlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kavrail/cvrp-gvns/internal/config"
)

// New builds a *slog.Logger from cfg. Output "file" rotates through
// lumberjack with conservative defaults (the CLI exposes no rotation
// knobs, so there's nothing here for a user to misconfigure).
func New(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var writer io.Writer
	switch cfg.Output {
	case "file":
		writer = &lumberjack.Logger{
			Filename:   "cvrp-gvns.log",
			MaxSize:    20,
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		}
	case "stdout":
		writer = os.Stdout
	default:
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler)
}
