package infra

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the application logger: text handler writing to stderr and,
// when the log file can be opened, to the file as well. Stdout stays clean for
// the order summary.
func NewLogger(cfg *Config) *slog.Logger {
	level := ParseLogLevel(cfg.Logging.Level, slog.LevelInfo)

	var w io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(ResolveLogPath(cfg.Logging.File), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			w = io.MultiWriter(os.Stderr, f)
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLogLevel maps a config string to a slog.Level, falling back when the
// value is empty or unrecognised.
func ParseLogLevel(raw string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
