package validator

import (
	"cmp"
	"fmt"
)

func IsLessThan[T cmp.Ordered, E any](bound T, err E) Validator[T, T, E] {
	return IsLessThanWith(bound, constant[T](err))
}

func IsLessThanWith[T cmp.Ordered, E any](bound T, errFn func(T) E) Validator[T, T, E] {
	return PredicateWith(func(v T) bool { return v < bound }, errFn)
}

func IsLessThanOrEqual[T cmp.Ordered, E any](bound T, err E) Validator[T, T, E] {
	return IsLessThanOrEqualWith(bound, constant[T](err))
}

func IsLessThanOrEqualWith[T cmp.Ordered, E any](bound T, errFn func(T) E) Validator[T, T, E] {
	return PredicateWith(func(v T) bool { return v <= bound }, errFn)
}

func IsGreaterThan[T cmp.Ordered, E any](bound T, err E) Validator[T, T, E] {
	return IsGreaterThanWith(bound, constant[T](err))
}

func IsGreaterThanWith[T cmp.Ordered, E any](bound T, errFn func(T) E) Validator[T, T, E] {
	return PredicateWith(func(v T) bool { return v > bound }, errFn)
}

func IsGreaterThanOrEqual[T cmp.Ordered, E any](bound T, err E) Validator[T, T, E] {
	return IsGreaterThanOrEqualWith(bound, constant[T](err))
}

func IsGreaterThanOrEqualWith[T cmp.Ordered, E any](bound T, errFn func(T) E) Validator[T, T, E] {
	return PredicateWith(func(v T) bool { return v >= bound }, errFn)
}

// IsInRange accepts values in [min, max]. It panics with ErrInvalidRange
// when min > max.
func IsInRange[T cmp.Ordered, E any](min, max T, err E) Validator[T, T, E] {
	return IsInRangeWith(min, max, constant[T](err))
}

func IsInRangeWith[T cmp.Ordered, E any](min, max T, errFn func(T) E) Validator[T, T, E] {
	if cmp.Compare(min, max) > 0 {
		panic(fmt.Errorf("%w (%v..%v), expected min <= max", ErrInvalidRange, min, max))
	}
	return PredicateWith(func(v T) bool { return v >= min && v <= max }, errFn)
}
