// Package either provides a two variant result container: a success
// holding a value, or a failure holding a non-empty list of errors.
package either

import "errors"

var ErrEmptyFailure = errors.New("failure requires at least one error")

// Result holds either a value or a non-empty list of errors. The zero
// Result is a success holding the zero value.
type Result[E, T any] struct {
	value T
	errs  []E
}

func Success[E, T any](v T) Result[E, T] {
	return Result[E, T]{value: v}
}

// Failure panics if errs is empty.
func Failure[E, T any](errs []E) Result[E, T] {
	if len(errs) == 0 {
		panic(ErrEmptyFailure)
	}
	return Result[E, T]{errs: errs}
}

func (r Result[E, T]) IsSuccess() bool {
	return len(r.errs) == 0
}

func (r Result[E, T]) IsFailure() bool {
	return len(r.errs) != 0
}

// Value returns the success payload, or the zero value on failure.
func (r Result[E, T]) Value() T {
	return r.value
}

// Errors returns the failure payload, nil on success.
func (r Result[E, T]) Errors() []E {
	return r.errs
}

func Map[E, T, U any](r Result[E, T], f func(T) U) Result[E, U] {
	if r.IsFailure() {
		return Result[E, U]{errs: r.errs}
	}
	return Success[E](f(r.value))
}

func Chain[E, T, U any](r Result[E, T], f func(T) Result[E, U]) Result[E, U] {
	if r.IsFailure() {
		return Result[E, U]{errs: r.errs}
	}
	return f(r.value)
}

func Fold[E, T, U any](r Result[E, T], onFailure func([]E) U, onSuccess func(T) U) U {
	if r.IsFailure() {
		return onFailure(r.errs)
	}
	return onSuccess(r.value)
}

// FromSuccess panics if r is a failure.
func FromSuccess[E, T any](r Result[E, T]) T {
	if r.IsFailure() {
		panic("either: FromSuccess called on a failure")
	}
	return r.value
}

// FromFailure panics if r is a success.
func FromFailure[E, T any](r Result[E, T]) []E {
	if r.IsSuccess() {
		panic("either: FromFailure called on a success")
	}
	return r.errs
}
