package unwrap

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// failed emits one error-level event carrying msg, then terminates.
// The event always precedes the panic, so the failure is visible in the
// sink even though the call never returns.
func failed(id uuid.UUID, msg string) {
	ActiveLogger().Log(LevelError, msg, eventFields(id)...)
	terminate(msg)
}

// failedWith is failed with a debug rendering of value appended to msg.
func failedWith(id uuid.UUID, msg string, value any) {
	text := msg + ": " + debug(value)

	ActiveLogger().Log(LevelError, text, eventFields(id)...)
	terminate(text)
}

// discarded logs like failedWith but returns control to the caller. Only
// the failure-discarding conversion path uses it.
func discarded(id uuid.UUID, msg string, value any) {
	ActiveLogger().Log(LevelError, msg+": "+debug(value), eventFields(id)...)
}

// eventFields assembles the structured fields attached to every event:
// the call-site fields when the loglocation build tag is active, and the
// identity of the failing container. The call depth between here and the
// user's expression is fixed; see callerSkip.
func eventFields(id uuid.UUID) []Field {
	return append(locationFields(), String("unwrap.id", id.String()))
}

// debug renders a payload for diagnostics using Go-syntax formatting, so
// strings keep their quotes and structs show their field names.
func debug(value any) string {
	if isNil(value) {
		return "<nil>"
	}

	return fmt.Sprintf("%#v", value)
}

func isNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
