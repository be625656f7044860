package unwrap

import (
	"time"

	"github.com/google/uuid"
)

// Option holds either a present value of type T or nothing. The variant
// is fixed at construction and operations consume the container by value.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	isSome    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		isSome:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		isSome:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

// UnwrapOrLog returns the present value.
//
// If the option is None, it logs an error-level event to the active sink
// and panics.
func (o Option[T]) UnwrapOrLog() T {
	if o.isSome {
		return o.value
	}

	failed(o.id, "called `Option.UnwrapOrLog()` on a `None` value")

	return o.value // not reached
}

// ExpectOrLog returns the present value.
//
// If the option is None, it logs msg to the active sink at error level
// and panics.
func (o Option[T]) ExpectOrLog(msg string) T {
	if o.isSome {
		return o.value
	}

	failed(o.id, msg)

	return o.value // not reached
}

// UnwrapNoneOrLog expects the option to be None and returns nothing.
//
// If the option holds a value, it logs the value to the active sink at
// error level and panics.
func (o Option[T]) UnwrapNoneOrLog() {
	if !o.isSome {
		return
	}

	failedWith(o.id, "called `Option.UnwrapNoneOrLog()` on a `Some` value", o.value)
}

// ExpectNoneOrLog expects the option to be None and returns nothing.
//
// If the option holds a value, it logs msg together with the value to
// the active sink at error level and panics.
func (o Option[T]) ExpectNoneOrLog(msg string) {
	if !o.isSome {
		return
	}

	failedWith(o.id, msg, o.value)
}
