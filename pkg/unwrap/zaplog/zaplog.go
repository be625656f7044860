// Package zaplog adapts go.uber.org/zap to the unwrap sink interface.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/ib-77/unwraplog/pkg/unwrap"
)

// Logger routes unwrap events to a zap.Logger.
type Logger struct {
	logger *zap.Logger
}

// Compile-time assertion: *Logger implements unwrap.Logger.
var _ unwrap.Logger = (*Logger)(nil)

// New wraps an existing zap logger.
func New(l *zap.Logger) *Logger {
	return &Logger{logger: l}
}

// Install wraps l and makes it the process-wide unwrap sink.
func Install(l *zap.Logger) *Logger {
	adapter := New(l)
	unwrap.SetLogger(adapter)

	return adapter
}

// must keeps the adapter nil-safe: a nil receiver or nil zap logger
// degrades to zap's nop logger instead of panicking inside the sink.
func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log implements unwrap.Logger. It dispatches to the matching zap level.
func (l *Logger) Log(level unwrap.Level, msg string, fields ...unwrap.Field) {
	zapFields := toZapFields(fields)

	switch level {
	case unwrap.LevelDebug:
		l.must().Debug(msg, zapFields...)
	case unwrap.LevelInfo:
		l.must().Info(msg, zapFields...)
	case unwrap.LevelWarn:
		l.must().Warn(msg, zapFields...)
	case unwrap.LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Info(msg, zapFields...)
	}
}

func toZapFields(fields []unwrap.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}

	return out
}
