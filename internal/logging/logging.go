// Package logging adapts log/slog to the logger collaborators used by the domain services.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// SlogLogger writes service log events through a *slog.Logger tagged with a component name.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a SlogLogger whose records carry the given component attribute.
func NewSlogLogger(logger *slog.Logger, component string) *SlogLogger {
	return &SlogLogger{
		logger: logger.With(slog.String("component", component)),
	}
}

// LogInformation records an info-level event.
func (l *SlogLogger) LogInformation(ctx context.Context, message string) {
	l.logger.InfoContext(ctx, message)
}

// LogError records an error-level event with the failing error attached.
func (l *SlogLogger) LogError(ctx context.Context, err error, message string) {
	l.logger.ErrorContext(ctx, message, slog.Any("error", err))
}

// ParseLevel converts a LOG_LEVEL value into a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NewJSONLogger builds the application JSON logger writing to w at the given level.
func NewJSONLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}
