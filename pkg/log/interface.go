// Package log provides a structured logging interface for linefit.
//
// The interface is slog-compatible so any backend can sit behind it. Two
// backends ship with the package: a log/slog JSON handler that extracts
// cockroachdb/errors stack traces (SetupLogger, NewSlogLogger) and a zerolog
// backend (NewZerologLogger, NewConsoleLogger). TestLogger captures records
// in memory for tests.
//
// Example usage:
//
//	logger := log.NewConsoleLogger(os.Stderr, log.LevelInfo).With(
//	    log.ComponentKey, "linear",
//	)
//	logger.Info("training finished",
//	    log.EpochsKey, 1000,
//	    log.SlopeKey, 2.98,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. An error value passed as a field
// is rendered with its structured details when the backend supports it.
type Logger interface {
	// Debug logs diagnostic detail, such as one record per training epoch.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs a potentially problematic situation, e.g. a diverged fit.
	Warn(msg string, fields ...any)

	// Error logs an error condition.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Callers use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
