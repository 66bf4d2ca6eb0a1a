package validator

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/vanilla/pkg/result"
)

// AndThen runs next on the output of first. When first fails, next is not
// invoked and the failure is returned as-is.
func AndThen[I, M, O, E any](first Validator[I, M, E], next Validator[M, O, E]) Validator[I, O, E] {
	return Func[I, O, E](func(input I) result.Result[O, E] {
		return result.FlatMap(first.Validate(input), next.Validate)
	})
}

// Map transforms the success output of v with fn.
func Map[I, O, P, E any](v Validator[I, O, E], fn func(O) P) Validator[I, P, E] {
	return Func[I, P, E](func(input I) result.Result[P, E] {
		return result.Map(v.Validate(input), fn)
	})
}

// MapErrors transforms every error reported by v with fn.
func MapErrors[I, O, E, F any](v Validator[I, O, E], fn func(E) F) Validator[I, O, F] {
	return Func[I, O, F](func(input I) result.Result[O, F] {
		return result.MapErrors(v.Validate(input), fn)
	})
}

// Erase hides the output type of v so validators with different outputs
// can be passed to SatisfiesAnyOf, SatisfiesAllOf or BindAll together.
func Erase[I, O, E any](v Validator[I, O, E]) Validator[I, any, E] {
	return Map(v, func(o O) any { return o })
}

// SatisfiesAnyOf succeeds with the original input as soon as one validator
// passes; remaining validators are skipped. When all fail, the errors of
// every validator are concatenated in order. Outputs of the validators are
// ignored. It panics with ErrNoValidators when called without validators.
func SatisfiesAnyOf[I, O, E any](validators ...Validator[I, O, E]) Validator[I, I, E] {
	if len(validators) == 0 {
		panic(fmt.Errorf("%w: SatisfiesAnyOf requires at least one validator", ErrNoValidators))
	}
	vs := slices.Clone(validators)
	return Func[I, I, E](func(input I) result.Result[I, E] {
		var errs []E
		for _, v := range vs {
			r := v.Validate(input)
			if r.IsOk() {
				return result.Ok[I, E](input)
			}
			errs = append(errs, r.Errors()...)
		}
		return result.Fail[I](errs...)
	})
}

// SatisfiesAllOf runs every validator and succeeds with the original input
// only when all of them pass; otherwise the errors of every failing
// validator are concatenated in order. It panics with ErrNoValidators when
// called without validators.
func SatisfiesAllOf[I, O, E any](validators ...Validator[I, O, E]) Validator[I, I, E] {
	if len(validators) == 0 {
		panic(fmt.Errorf("%w: SatisfiesAllOf requires at least one validator", ErrNoValidators))
	}
	vs := slices.Clone(validators)
	return Func[I, I, E](func(input I) result.Result[I, E] {
		var errs []E
		for _, v := range vs {
			errs = append(errs, v.Validate(input).Errors()...)
		}
		if len(errs) > 0 {
			return result.Fail[I](errs...)
		}
		return result.Ok[I, E](input)
	})
}
