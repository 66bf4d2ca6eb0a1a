package validator

import "github.com/dmitrymomot/vanilla/pkg/result"

// OK keeps the input as-is. Synonym for Keep.
func OK[I, E any]() Validator[I, I, E] {
	return Func[I, I, E](func(input I) result.Result[I, E] {
		return result.Ok[I, E](input)
	})
}

// Keep keeps the input as-is. Synonym for OK.
func Keep[I, E any]() Validator[I, I, E] {
	return OK[I, E]()
}

// Just ignores the input and always succeeds with value.
// Use it to supply literal values for target-only fields.
func Just[I, O, E any](value O) Validator[I, O, E] {
	return Func[I, O, E](func(I) result.Result[O, E] {
		return result.Ok[O, E](value)
	})
}

// Predicate passes the input through when check reports true and fails with err otherwise.
func Predicate[I, E any](check func(I) bool, err E) Validator[I, I, E] {
	return PredicateWith(check, constant[I](err))
}

func PredicateWith[I, E any](check func(I) bool, errFn func(I) E) Validator[I, I, E] {
	return Func[I, I, E](func(input I) result.Result[I, E] {
		if check(input) {
			return result.Ok[I, E](input)
		}
		return result.Fail[I](errFn(input))
	})
}

// IsNotNull dereferences a non-nil input and fails with err on nil.
func IsNotNull[T, E any](err E) Validator[*T, T, E] {
	return Func[*T, T, E](func(input *T) result.Result[T, E] {
		if input == nil {
			return result.Fail[T](err)
		}
		return result.Ok[T, E](*input)
	})
}

// IsNotNullAnd fails with err on nil and otherwise delegates to inner.
func IsNotNullAnd[T, O, E any](inner Validator[T, O, E], err E) Validator[*T, O, E] {
	return Func[*T, O, E](func(input *T) result.Result[O, E] {
		if input == nil {
			return result.Fail[O](err)
		}
		return inner.Validate(*input)
	})
}

// IsNullOr lets nil through unchanged and validates anything else with inner.
func IsNullOr[T, E any](inner Validator[T, T, E]) Validator[*T, *T, E] {
	return Func[*T, *T, E](func(input *T) result.Result[*T, E] {
		if input == nil {
			return result.Ok[*T, E](nil)
		}
		return result.Map(inner.Validate(*input), func(v T) *T { return &v })
	})
}
