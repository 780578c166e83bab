package log

import "context"

// multiLogger fans every record out to several loggers.
type multiLogger []Logger

// Multi returns a Logger writing each record to all of loggers.
// A single logger is returned unchanged.
func Multi(loggers ...Logger) Logger {
	if len(loggers) == 1 {
		return loggers[0]
	}
	return multiLogger(loggers)
}

func (m multiLogger) Debug(msg string, fields ...any) {
	for _, l := range m {
		l.Debug(msg, fields...)
	}
}

func (m multiLogger) Info(msg string, fields ...any) {
	for _, l := range m {
		l.Info(msg, fields...)
	}
}

func (m multiLogger) Warn(msg string, fields ...any) {
	for _, l := range m {
		l.Warn(msg, fields...)
	}
}

func (m multiLogger) Error(msg string, fields ...any) {
	for _, l := range m {
		l.Error(msg, fields...)
	}
}

func (m multiLogger) With(fields ...any) Logger {
	out := make(multiLogger, len(m))
	for i, l := range m {
		out[i] = l.With(fields...)
	}
	return out
}

// Enabled reports whether any of the loggers accepts level.
func (m multiLogger) Enabled(ctx context.Context, level Level) bool {
	for _, l := range m {
		if l.Enabled(ctx, level) {
			return true
		}
	}
	return false
}
