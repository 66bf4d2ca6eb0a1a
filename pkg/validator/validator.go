package validator

import "github.com/dmitrymomot/vanilla/pkg/result"

// Validator validates an input of type I and produces either an output of
// type O or a non-empty list of errors of type E.
type Validator[I, O, E any] interface {
	Validate(input I) result.Result[O, E]
}

// Func adapts a plain function to the Validator interface.
type Func[I, O, E any] func(input I) result.Result[O, E]

// Validate calls f(input).
func (f Func[I, O, E]) Validate(input I) result.Result[O, E] {
	return f(input)
}

// constant returns an error builder ignoring the rejected input.
func constant[I, E any](err E) func(I) E {
	return func(I) E { return err }
}

// as converts an erased value back to T. A nil interface yields the zero T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
