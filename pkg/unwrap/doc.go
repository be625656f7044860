// Package unwrap provides Result[T, E] and Option[T] containers whose
// unwrap operations log failures to a structured sink before panicking.
//
// It is meant for programs that route diagnostics to syslog, a database
// or a telemetry backend rather than stderr: a failed unwrap emits one
// error-level event to the installed Logger and only then terminates,
// so the failure is never lost to the panic.
//
// - Ok/Err, Some/None: construct containers
// - UnwrapOrLog/ExpectOrLog and friends: extract or log-and-panic
// - OkOrLog: log the error and continue with None (never panics)
// - SetLogger: install the process-wide sink (zaplog, logruslog, or your own)
//
// Two build tags change compiled behavior:
// - panicverbose: panic with the logged text instead of an empty message
// - loglocation: attach the failing call site (file, line) to each event
package unwrap
