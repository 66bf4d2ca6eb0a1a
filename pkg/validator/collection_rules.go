package validator

import (
	"cmp"
	"maps"
	"slices"

	"github.com/dmitrymomot/vanilla/pkg/result"
)

// EachElement applies inner to every element. It succeeds with the outputs
// in input order when every element passes; otherwise the errors of every
// failing element are concatenated in input order. Empty input always
// yields an empty, non-nil output slice.
func EachElement[T, O, E any](inner Validator[T, O, E]) Validator[[]T, []O, E] {
	return Func[[]T, []O, E](func(input []T) result.Result[[]O, E] {
		results := make([]result.Result[O, E], len(input))
		for i, el := range input {
			results[i] = inner.Validate(el)
		}
		return result.Collect(results...)
	})
}

// EachValue applies inner to every map value and keeps the keys.
// Values are visited in ascending key order, which fixes the error order.
func EachValue[K cmp.Ordered, V, O, E any](inner Validator[V, O, E]) Validator[map[K]V, map[K]O, E] {
	return Func[map[K]V, map[K]O, E](func(input map[K]V) result.Result[map[K]O, E] {
		out := make(map[K]O, len(input))
		var errs []E
		for _, k := range slices.Sorted(maps.Keys(input)) {
			r := inner.Validate(input[k])
			if v, ok := r.Value(); ok {
				out[k] = v
				continue
			}
			errs = append(errs, r.Errors()...)
		}
		if len(errs) > 0 {
			return result.Fail[map[K]O](errs...)
		}
		return result.Ok[map[K]O, E](out)
	})
}
