package result

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyFailure is the panic value raised when Fail is called without errors.
	ErrEmptyFailure = errors.New("result: failure requires at least one error")

	// ErrValidation is matched by every error produced by Err.
	ErrValidation = errors.New("validation failed")

	// ErrNoValue is the panic value raised by MustValue on a failure.
	ErrNoValue = errors.New("result: no value in failure")
)

// FailureError wraps the errors of a failed Result so it can travel
// through APIs that speak the error interface.
type FailureError[E any] struct {
	Errors []E
}

func (e *FailureError[E]) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		parts = append(parts, fmt.Sprint(err))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *FailureError[E]) Is(target error) bool {
	return target == ErrValidation
}

// Err returns nil for a success and a *FailureError for a failure.
func Err[T, E any](r Result[T, E]) error {
	if r.ok {
		return nil
	}
	return &FailureError[E]{Errors: r.Errors()}
}
