// Package log provides a structured logging interface for stream drift
// detection.
//
// The package defines a minimal Logger interface with slog-style key-value
// fields and backs it with zerolog. Detectors take a Logger so callers can
// observe window events (insertions, cuts, resets) without the hot path
// paying for disabled levels; the default is a nop logger.
package log

import (
	"io"

	"github.com/rs/zerolog"

	apperrors "github.com/YuminosukeSato/adwin/pkg/errors"
)

// Logger defines a structured logging interface with slog-compatible
// key-value fields. It is implementation-agnostic; the library ships a
// zerolog backend and a test backend.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive field construction for disabled levels.
	Enabled(level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
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

func toZerologLevel(l Level) zerolog.Level {
	switch {
	case l <= LevelDebug:
		return zerolog.DebugLevel
	case l <= LevelInfo:
		return zerolog.InfoLevel
	case l <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger is the zerolog-backed Logger implementation.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a Logger writing JSON records to w, emitting
// records at or above the given level.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// NewNopLogger returns a Logger that discards everything. Detectors use it
// as the default so logging is strictly opt-in.
func NewNopLogger() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	l.emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(normalizeFields(fields)).Logger()}
}

func (l *zerologLogger) Enabled(level Level) bool {
	return l.zl.GetLevel() <= toZerologLevel(level)
}

// emit attaches the key-value fields to the event. Error values get a
// stacktrace attribute when cockroachdb/errors recorded one.
func (l *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	if ev == nil {
		return
	}
	normalized := normalizeFields(fields)
	for i := 0; i+1 < len(normalized); i += 2 {
		key, ok := normalized[i].(string)
		if !ok {
			continue
		}
		if err, isErr := normalized[i+1].(error); isErr {
			ev = ev.AnErr(key, err)
			if st := apperrors.GetStacktrace(err); st != "" {
				ev = ev.Str(StacktraceAttrKey, st)
			}
			continue
		}
		ev = ev.Interface(key, normalized[i+1])
	}
	ev.Msg(msg)
}

// normalizeFields drops a trailing key with no value so malformed call
// sites degrade instead of panicking.
func normalizeFields(fields []any) []any {
	if len(fields)%2 != 0 {
		return fields[:len(fields)-1]
	}
	return fields
}

// RouteWarnings sends library warnings (drift signals, unstable inputs)
// through the given logger at warn level instead of the default stderr
// handler.
func RouteWarnings(logger Logger) {
	apperrors.SetZerologWarnFunc(func(warning error) {
		logger.Warn("library warning", ErrAttr(warning)...)
	})
}
