package rules

import (
	"fmt"

	"github.com/dmitrymomot/vanilla/pkg/validator"
)

// RequiredNum rejects the zero value.
func RequiredNum[T Numeric](field string) Rule[T] {
	var zero T
	return newRule(field, "field is required", "validation.required", nil, func(v T) bool { return v != zero })
}

func Min[T Numeric](field string, min T) Rule[T] {
	return newRule(field,
		fmt.Sprintf("must be at least %v", min),
		"validation.min",
		map[string]any{"min": min},
		func(v T) bool { return v >= min },
	)
}

func Max[T Numeric](field string, max T) Rule[T] {
	return newRule(field,
		fmt.Sprintf("must be at most %v", max),
		"validation.max",
		map[string]any{"max": max},
		func(v T) bool { return v <= max },
	)
}

// Between accepts values in [min, max] and panics with
// validator.ErrInvalidRange when min > max.
func Between[T Numeric](field string, min, max T) Rule[T] {
	if min > max {
		panic(fmt.Errorf("%w (%v..%v) for field %q", validator.ErrInvalidRange, min, max, field))
	}
	return newRule(field,
		fmt.Sprintf("must be between %v and %v", min, max),
		"validation.between",
		map[string]any{"min": min, "max": max},
		func(v T) bool { return v >= min && v <= max },
	)
}

// Positive rejects zero and negative values.
func Positive[T Numeric](field string) Rule[T] {
	var zero T
	return newRule(field, "must be positive", "validation.positive", nil, func(v T) bool { return v > zero })
}
