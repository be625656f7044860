package unwrap

import "testing"

type recordedEvent struct {
	level  Level
	msg    string
	fields []Field
}

// recorder is an in-memory sink used by the tests in this package.
type recorder struct {
	events []recordedEvent
}

func (r *recorder) Log(level Level, msg string, fields ...Field) {
	r.events = append(r.events, recordedEvent{level: level, msg: msg, fields: fields})
}

// installRecorder swaps the process-wide sink for a recorder for the
// duration of the test.
func installRecorder(t *testing.T) *recorder {
	t.Helper()

	rec := &recorder{}
	prev := ActiveLogger()
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(prev) })

	return rec
}

// catchPanic runs fn and reports whether it panicked, returning the
// recovered value. A quiet-mode panic carries "" which is still a
// non-nil recover value.
func catchPanic(fn func()) (v any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			v = r
			panicked = true
		}
	}()

	fn()

	return nil, false
}

func (r *recorder) field(t *testing.T, i int, key string) any {
	t.Helper()

	for _, f := range r.events[i].fields {
		if f.Key == key {
			return f.Value
		}
	}

	t.Fatalf("event %d has no field %q, fields: %v", i, key, r.events[i].fields)

	return nil
}
