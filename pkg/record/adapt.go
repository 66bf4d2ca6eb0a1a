package record

import (
	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

// Flat adapts a validator reporting FieldErrors, such as one returned by
// BuildFieldErrors, into a validator reporting the flattened error list.
// This lets a structured record validator serve as a field rule of a
// record built with Build.
func Flat[I, O, E any](v validator.Validator[I, O, FieldErrors[E]]) validator.Validator[I, O, E] {
	return validator.Func[I, O, E](func(input I) result.Result[O, E] {
		return result.Fold(v.Validate(input),
			result.Ok[O, E],
			func(reports []FieldErrors[E]) result.Result[O, E] {
				var errs []E
				for _, r := range reports {
					errs = append(errs, r.Flatten()...)
				}
				return result.Fail[O](errs...)
			},
		)
	})
}
