// Package logging provides a common interface and setup for application-wide logging.
package logging

// file: internal/logging/slog.go

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// slogLogger adapts the standard library's structured logger to the Logger interface.
// The server's stdout carries the NDJSON wire protocol, so log output must be
// directed elsewhere (normally stderr).
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger backed by log/slog, writing text-formatted
// records to w at the given minimum level.
func NewSlogLogger(w io.Writer, level slog.Level) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{logger: slog.New(handler)}
}

// ParseLevel maps a configuration string to a slog level.
// Unknown values fall back to info.
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

// Debug implements Logger.
func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info implements Logger.
func (l *slogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn implements Logger.
func (l *slogLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error implements Logger.
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// WithContext implements Logger. slog handlers receive the context per call,
// so the logger itself is returned unchanged.
func (l *slogLogger) WithContext(_ context.Context) Logger { return l }

// WithField implements Logger, returning a logger that includes the field on every record.
func (l *slogLogger) WithField(key string, value any) Logger {
	return &slogLogger{logger: l.logger.With(key, value)}
}
