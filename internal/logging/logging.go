// Package logging configures the slog logger used by the goabstract command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelEnv overrides the default level when no -log-level flag is given.
const LevelEnv = "GOABSTRACT_LOG_LEVEL"

// Setup returns a JSON-lines logger writing to stderr and, when logFile is not
// empty, appending to logFile. The cleanup func closes the file.
func Setup(logFile string, level slog.Level) (*slog.Logger, func(), error) {
	return setup(os.Stderr, logFile, level)
}

func setup(console io.Writer, logFile string, level slog.Level) (*slog.Logger, func(), error) {
	if logFile == "" {
		h := slog.NewJSONHandler(console, &slog.HandlerOptions{Level: level})
		return slog.New(h), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	h := slog.NewJSONHandler(io.MultiWriter(console, f), &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { _ = f.Close() }, nil
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}

// LevelFromEnv returns the level named by LevelEnv, or fallback when unset.
func LevelFromEnv(fallback string) string {
	if v := os.Getenv(LevelEnv); v != "" {
		return v
	}
	return fallback
}
