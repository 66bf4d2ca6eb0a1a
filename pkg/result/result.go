package result

import (
	"fmt"
	"slices"
)

// Result holds either a success value of type T or a non-empty list of
// errors of type E. The zero Result is not meaningful; build values with
// Ok or Fail.
type Result[T, E any] struct {
	value  T
	errors []E
	ok     bool
}

// Ok creates a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Fail creates a failed Result. It panics when errs is empty.
func Fail[T, E any](errs ...E) Result[T, E] {
	if len(errs) == 0 {
		panic(ErrEmptyFailure)
	}
	return Result[T, E]{errors: slices.Clone(errs)}
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsFailure reports whether r is a failure.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// MustValue returns the success value and panics on a failure.
func (r Result[T, E]) MustValue() T {
	if !r.ok {
		panic(fmt.Errorf("%w: %v", ErrNoValue, r.errors))
	}
	return r.value
}

// ValueOr returns the success value or def for a failure.
func (r Result[T, E]) ValueOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Errors returns a copy of the errors. It is nil for a success and panics
// with ErrEmptyFailure for a failure without errors, such as the zero Result.
func (r Result[T, E]) Errors() []E {
	if r.ok {
		return nil
	}
	if len(r.errors) == 0 {
		panic(ErrEmptyFailure)
	}
	return slices.Clone(r.errors)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Fail(%v)", r.errors)
}

// Map applies fn to the success value. Failures pass through unchanged.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Result[U, E]{errors: r.errors}
}

// MapErrors applies fn to every error of a failure.
func MapErrors[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	mapped := make([]F, len(r.errors))
	for i, e := range r.errors {
		mapped[i] = fn(e)
	}
	return Result[T, F]{errors: mapped}
}

// FlatMap chains a computation that itself may fail.
func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Result[U, E]{errors: r.errors}
}

// Fold collapses r into a single value.
func Fold[T, E, U any](r Result[T, E], onOk func(T) U, onFail func([]E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onFail(r.Errors())
}

// Equal reports whether a and b are the same variant with equal payloads.
// Error lists are compared in order.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return slices.Equal(a.errors, b.errors)
}

// Collect turns a list of results into a result of a list.
// Values keep their order; on any failure the errors of every failed
// result are concatenated in input order.
func Collect[T, E any](results ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	var errs []E
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.Errors()...)
	}
	if len(errs) > 0 {
		return Result[[]T, E]{errors: errs}
	}
	return Ok[[]T, E](values)
}
