package record

import (
	"fmt"
	"strings"
)

// FieldError holds the errors of one field. Errors is nil when the field passed.
type FieldError[E any] struct {
	Field  string
	Errors []E
}

// FieldErrors holds one entry per record field, in declaration order.
type FieldErrors[E any] []FieldError[E]

func (fe FieldErrors[E]) Error() string {
	var parts []string
	for _, f := range fe {
		for _, e := range f.Errors {
			parts = append(parts, fmt.Sprintf("%s: %v", f.Field, e))
		}
	}
	if len(parts) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Get returns the errors of field. ok is false when the field passed or is unknown.
func (fe FieldErrors[E]) Get(field string) (errs []E, ok bool) {
	for _, f := range fe {
		if f.Field == field {
			return f.Errors, len(f.Errors) > 0
		}
	}
	return nil, false
}

// Failed returns the names of the fields that have errors.
func (fe FieldErrors[E]) Failed() []string {
	var names []string
	for _, f := range fe {
		if len(f.Errors) > 0 {
			names = append(names, f.Field)
		}
	}
	return names
}

// Flatten concatenates all errors in field order.
func (fe FieldErrors[E]) Flatten() []E {
	var errs []E
	for _, f := range fe {
		errs = append(errs, f.Errors...)
	}
	return errs
}

func (fe FieldErrors[E]) failed() bool {
	for _, f := range fe {
		if len(f.Errors) > 0 {
			return true
		}
	}
	return false
}
