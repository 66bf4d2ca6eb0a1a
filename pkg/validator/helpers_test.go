package validator_test

import (
	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

// recorder collects the names of validators as they run.
type recorder struct {
	calls []string
}

func (r *recorder) record(name string) {
	if r != nil {
		r.calls = append(r.calls, name)
	}
}

func succeed[I, O any](out O, rec *recorder, name string) validator.Validator[I, O, string] {
	return validator.Func[I, O, string](func(I) result.Result[O, string] {
		rec.record(name)
		return result.Ok[O, string](out)
	})
}

func fail[I, O any](rec *recorder, name string, errs ...string) validator.Validator[I, O, string] {
	return validator.Func[I, O, string](func(I) result.Result[O, string] {
		rec.record(name)
		return result.Fail[O](errs...)
	})
}

func ptr[T any](v T) *T {
	return &v
}
