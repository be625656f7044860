package unwrap

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// Level represents the severity of an emitted event. Lower numeric values
// indicate higher severity (LevelError=0 is most severe).
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the string representation of a log level.
func (level Level) String() string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel takes a string level and returns a Level constant.
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	var l Level

	return l, fmt.Errorf("not a valid Level: %q", lvl)
}

// Field is a strongly-typed key/value attribute attached to an event.
type Field struct {
	Key   string
	Value any
}

// Any creates a field with an arbitrary value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// ErrField creates the conventional `error` field. Named to stay clear
// of the Result failure constructor Err.
func ErrField(err error) Field {
	return Field{Key: "error", Value: err}
}

// Logger receives one structured event per failed unwrap. Implementations
// decide how to render, filter and persist events; thread safety is their
// own responsibility.
type Logger interface {
	Log(level Level, msg string, fields ...Field)
}

type loggerBox struct {
	logger Logger
}

var global atomic.Value // loggerBox

func init() {
	global.Store(loggerBox{logger: &stderrLogger{}})
}

// SetLogger installs the process-wide sink that failed unwraps report to.
// Passing nil restores the default stderr logger.
func SetLogger(l Logger) {
	if l == nil {
		l = &stderrLogger{}
	}

	global.Store(loggerBox{logger: l})
}

// ActiveLogger returns the currently installed sink.
func ActiveLogger() Logger {
	return global.Load().(loggerBox).logger
}

// logControlCharReplacer escapes control characters that could forge log
// entries (CWE-117) in the plain-text fallback sink.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// stderrLogger is the fallback sink used until SetLogger is called. It
// writes through the standard library logger so events are visible even
// in programs that never configure a structured backend.
type stderrLogger struct{}

func (l *stderrLogger) Log(level Level, msg string, fields ...Field) {
	var b strings.Builder

	b.WriteString(level.String())
	b.WriteString(": ")
	b.WriteString(logControlCharReplacer.Replace(msg))

	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f.Key)
		b.WriteString("=")

		if s, ok := f.Value.(string); ok {
			b.WriteString(logControlCharReplacer.Replace(s))
		} else {
			fmt.Fprintf(&b, "%v", f.Value)
		}
	}

	log.Print(b.String())
}

// NopLogger is a no-op sink.
type NopLogger struct{}

// NewNop creates a no-op sink. Useful in tests that exercise failure
// paths without caring about the emitted events.
func NewNop() Logger {
	return &NopLogger{}
}

// Log drops all events.
func (l *NopLogger) Log(_ Level, _ string, _ ...Field) {}
