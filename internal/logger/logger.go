package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

var (
	// default logger instance
	defaultLogger *slog.Logger

	// global debug flag, gates developer-facing debug output
	debugEnabled atomic.Bool
)

// initializes the logger based on environment
func init() {
	env := os.Getenv("ENVIRONMENT")

	if env == "production" {
		// production: JSON output for structured logging
		defaultLogger = New(os.Stdout, true, slog.LevelInfo)
	} else {
		// development: human-readable text output
		defaultLogger = New(os.Stderr, false, slog.LevelDebug)
	}

	debug, _ := strconv.ParseBool(os.Getenv("DEBUG")) //nolint:errcheck // unset means false
	debugEnabled.Store(debug)
}

// builds a logger writing to w
func New(w io.Writer, jsonFormat bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// replaces the default logger, returns the previous one
func SetDefault(l *slog.Logger) *slog.Logger {
	prev := defaultLogger
	if l != nil {
		defaultLogger = l
	}

	return prev
}

// toggles the global debug flag
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// reports whether the global debug flag is set
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// creates a logger with context
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	// extract any logger from context if present
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// helper type for context key
type loggerKey struct{}

// convenience functions for common log levels

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits (for CLI tools)
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// logs a fatal error with error and exits (for CLI tools)
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
