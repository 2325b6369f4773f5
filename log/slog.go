package log

import (
	"context"
	"fmt"
	"log/slog"
)

// LevelSlogTrace is the slog level trace messages are emitted at, one step below slog.LevelDebug.
const LevelSlogTrace = slog.LevelDebug - 4

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger which forwards to logger, or to slog.Default() when logger is nil.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogLogger{logger: logger}
}

// Enabled reports whether the underlying handler outputs records at the slog level matching level.
func (s SlogLogger) Enabled(level Level) bool {
	return s.logger.Enabled(context.Background(), toSlogLevel(level))
}

// Log formats the message and emits it at the slog level matching level. Nothing is formatted when the handler has
// the level disabled.
func (s SlogLogger) Log(level Level, format string, args ...any) {
	var (
		ctx = context.Background()
		lvl = toSlogLevel(level)
	)

	if !s.logger.Enabled(ctx, lvl) {
		return
	}

	s.logger.Log(ctx, lvl, fmt.Sprintf(format, args...))
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace:
		return LevelSlogTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	}

	return slog.LevelError
}
