// Package logruslog adapts github.com/sirupsen/logrus to the unwrap
// sink interface.
package logruslog

import (
	"github.com/sirupsen/logrus"

	"github.com/ib-77/unwraplog/pkg/unwrap"
)

// Logger routes unwrap events to a logrus.Logger.
type Logger struct {
	logger *logrus.Logger
}

// Compile-time assertion: *Logger implements unwrap.Logger.
var _ unwrap.Logger = (*Logger)(nil)

// New wraps an existing logrus logger.
func New(l *logrus.Logger) *Logger {
	return &Logger{logger: l}
}

// Install wraps l and makes it the process-wide unwrap sink.
func Install(l *logrus.Logger) *Logger {
	adapter := New(l)
	unwrap.SetLogger(adapter)

	return adapter
}

// must keeps the adapter nil-safe: a nil receiver or nil logrus logger
// degrades to the logrus standard logger.
func (l *Logger) must() *logrus.Logger {
	if l == nil || l.logger == nil {
		return logrus.StandardLogger()
	}

	return l.logger
}

// Log implements unwrap.Logger. It dispatches to the matching logrus level.
func (l *Logger) Log(level unwrap.Level, msg string, fields ...unwrap.Field) {
	entry := l.must().WithFields(toLogrusFields(fields))

	switch level {
	case unwrap.LevelDebug:
		entry.Debug(msg)
	case unwrap.LevelInfo:
		entry.Info(msg)
	case unwrap.LevelWarn:
		entry.Warn(msg)
	case unwrap.LevelError:
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
}

func toLogrusFields(fields []unwrap.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}

	return out
}
