// Package logging builds the diagnostic logger. Diagnostics go to stderr so
// they never mix with the quiz dialogue on stdout.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/jeanpaul/flashcards/internal/config"
)

// New creates a *slog.Logger from cfg writing to w, tags every record with
// the session id and installs it as the default logger.
//
// Format "json" produces JSON records, anything else the text handler.
func New(cfg config.LogConfig, w io.Writer, sessionID string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if sessionID != "" {
		logger = logger.With("session", sessionID)
	}
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
