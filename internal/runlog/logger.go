// Package runlog provides a small structured-logging convenience surface
// over zerolog: leveled calls taking flat key/value pairs, an
// error-attaching helper, and a process-wide default instance.
package runlog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin convenience wrapper over zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New builds a logger. With ENV=production it emits structured JSON to
// stdout; otherwise it uses zerolog's human-readable console writer, which
// is what a developer running `alphalink run` at a terminal wants to see.
func New() *Logger {
	var zl zerolog.Logger
	if os.Getenv("ENV") == "production" {
		zl = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return &Logger{Logger: zl}
}

func (l *Logger) logAt(level zerolog.Level, msg string, kv []any) {
	ev := l.Logger.WithLevel(level)
	attachFields(ev, kv)
	ev.Msg(msg)
}

// Debug logs msg at debug level with a flat "key1", val1, "key2", val2, ...
// field list.
func (l *Logger) Debug(msg string, kv ...any) { l.logAt(zerolog.DebugLevel, msg, kv) }

// Info logs msg at info level.
func (l *Logger) Info(msg string, kv ...any) { l.logAt(zerolog.InfoLevel, msg, kv) }

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string, kv ...any) { l.logAt(zerolog.WarnLevel, msg, kv) }

// Error logs msg at error level.
func (l *Logger) Error(msg string, kv ...any) { l.logAt(zerolog.ErrorLevel, msg, kv) }

// ErrorWithErr logs msg at error level with err attached as the "error"
// field.
func (l *Logger) ErrorWithErr(msg string, err error, kv ...any) {
	ev := l.Logger.Error().Err(err)
	attachFields(ev, kv)
	ev.Msg(msg)
}

func attachFields(ev *zerolog.Event, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
}

var defaultLogger = New()

// Default returns the process-wide logger.
func Default() *Logger { return defaultLogger }

// SetDefault replaces the process-wide logger, for tests or alternate
// entry points that want a differently configured instance.
func SetDefault(l *Logger) { defaultLogger = l }
