package log

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// zerologLogger implements Logger on top of zerolog.
type zerologLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZerologLogger returns a Logger emitting JSON lines to w.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl, level: level}
}

// NewConsoleLogger returns a Logger emitting human-readable lines to w.
func NewConsoleLogger(w io.Writer, level Level) Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	zl := zerolog.New(cw).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl, level: level}
}

func (z *zerologLogger) Debug(msg string, fields ...any) { z.emit(z.zl.Debug(), msg, fields) }
func (z *zerologLogger) Info(msg string, fields ...any)  { z.emit(z.zl.Info(), msg, fields) }
func (z *zerologLogger) Warn(msg string, fields ...any)  { z.emit(z.zl.Warn(), msg, fields) }
func (z *zerologLogger) Error(msg string, fields ...any) { z.emit(z.zl.Error(), msg, fields) }

func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.zl.With()
	for _, kv := range pairs(fields) {
		if f, ok := kv.value.(float64); ok {
			ctx = ctx.Float64(kv.key, f)
			continue
		}
		ctx = ctx.Interface(kv.key, kv.value)
	}
	return &zerologLogger{zl: ctx.Logger(), level: z.level}
}

func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= z.level
}

func (z *zerologLogger) emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	for _, kv := range pairs(fields) {
		switch v := kv.value.(type) {
		case zerolog.LogObjectMarshaler:
			if err, ok := v.(error); ok {
				e = e.Str(kv.key, err.Error())
				e = e.Object(kv.key+"_details", v)
			} else {
				e = e.Object(kv.key, v)
			}
		case error:
			e = e.AnErr(kv.key, v)
			if details := structuredDetails(v); details != nil {
				e = e.Object(kv.key+"_details", details)
			}
		case float64:
			// NaN/Inf は "NaN", "+Inf", "-Inf" として書き出される
			e = e.Float64(kv.key, v)
		default:
			e = e.Interface(kv.key, v)
		}
	}
	e.Msg(msg)
}

type field struct {
	key   string
	value any
}

// pairs splits alternating key/value fields. A leading error without a key
// is logged under ErrAttrKey; a dangling key is dropped.
func pairs(fields []any) []field {
	var out []field
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			out = append(out, field{key: ErrAttrKey, value: err})
			fields = fields[1:]
		}
	}
	for i := 0; i+1 < len(fields); i += 2 {
		out = append(out, field{key: fmt.Sprint(fields[i]), value: fields[i+1]})
	}
	return out
}

// structuredDetails finds a zerolog-aware error inside a wrapped chain.
func structuredDetails(err error) zerolog.LogObjectMarshaler {
	var m zerolog.LogObjectMarshaler
	if errors.As(err, &m) {
		return m
	}
	return nil
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// InstallWarnings routes errors.Warn into logger at warn level.
// It returns a function restoring the previous routing.
func InstallWarnings(logger Logger) func() {
	errors.SetZerologWarnFunc(func(w error) {
		logger.Warn("warning", ErrAttrKey, w)
	})
	return func() { errors.SetZerologWarnFunc(nil) }
}
