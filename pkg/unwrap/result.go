package unwrap

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of
// type E. The variant is fixed at construction and operations consume
// the container by value.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isOk      bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure:   e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// OkOrLog converts the result into an Option, logging the failure value
// if any. This is the only operation that logs without terminating: the
// failure is reported for visibility and execution continues with None.
func (r Result[T, E]) OkOrLog() Option[T] {
	if r.isOk {
		return optionFrom(r, r.value, true)
	}

	discarded(r.id, "called `Result.OkOrLog` on an `Err` value", r.failure)

	var zero T

	return optionFrom(r, zero, false)
}

// UnwrapOrLog returns the success value.
//
// If the result holds a failure value, it logs the value to the active
// sink at error level and panics.
func (r Result[T, E]) UnwrapOrLog() T {
	if r.isOk {
		return r.value
	}

	failedWith(r.id, "called `Result.UnwrapOrLog()` on an `Err` value", r.failure)

	return r.value // not reached
}

// ExpectOrLog returns the success value.
//
// If the result holds a failure value, it logs msg together with the
// value to the active sink at error level and panics.
func (r Result[T, E]) ExpectOrLog(msg string) T {
	if r.isOk {
		return r.value
	}

	failedWith(r.id, msg, r.failure)

	return r.value // not reached
}

// UnwrapErrOrLog returns the failure value.
//
// If the result holds a success value, it logs the value to the active
// sink at error level and panics.
func (r Result[T, E]) UnwrapErrOrLog() E {
	if !r.isOk {
		return r.failure
	}

	failedWith(r.id, "called `Result.UnwrapErrOrLog()` on an `Ok` value", r.value)

	return r.failure // not reached
}

// ExpectErrOrLog returns the failure value.
//
// If the result holds a success value, it logs msg together with the
// value to the active sink at error level and panics.
func (r Result[T, E]) ExpectErrOrLog(msg string) E {
	if !r.isOk {
		return r.failure
	}

	failedWith(r.id, msg, r.value)

	return r.failure // not reached
}

// optionFrom builds an Option that keeps the identity of the result it
// was converted from, so a sink can correlate a discard event with later
// activity on the value.
func optionFrom[T, E any](from Result[T, E], v T, ok bool) Option[T] {
	return Option[T]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     v,
		isSome:    ok,
	}
}
