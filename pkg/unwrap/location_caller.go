//go:build loglocation

package unwrap

import "runtime"

// callerSkip is the fixed number of frames between runtime.Caller and
// the expression that invoked the unwrap operation: locationFields,
// eventFields, the failure helper, and the container method itself.
// Adding a frame anywhere on that path breaks call-site attribution.
const callerSkip = 4

// locationFields resolves the call site of the failing unwrap operation.
// unwrap.columnno is always 0: the Go runtime records file and line only.
func locationFields() []Field {
	_, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return nil
	}

	return []Field{
		String("unwrap.filepath", file),
		Int("unwrap.lineno", line),
		Int("unwrap.columnno", 0),
	}
}
