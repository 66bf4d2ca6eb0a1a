package validator

import (
	"slices"

	"github.com/dmitrymomot/vanilla/pkg/result"
)

type step[E any] func(input any) result.Result[any, E]

func eraseStep[I, O, E any](v Validator[I, O, E]) step[E] {
	erased := Erase(v)
	return func(input any) result.Result[any, E] {
		return erased.Validate(as[I](input))
	}
}

// Composer builds a validator equivalent to left-to-right AndThen chaining
// without nesting calls. Composers are immutable: every call returns a new
// composer, so a prefix can be shared between chains.
//
//	name := validator.Then(
//	    validator.Compose(validator.IsNotNull[string]("required")).
//	        AndThen(validator.IsNotBlank("blank")),
//	    validator.Map(validator.Keep[string, string](), strings.ToUpper),
//	).Build()
type Composer[I, O, E any] struct {
	steps []step[E]
}

// Compose starts a chain with first.
func Compose[I, O, E any](first Validator[I, O, E]) *Composer[I, O, E] {
	return &Composer[I, O, E]{steps: []step[E]{eraseStep(first)}}
}

// Then appends a step that may change the output type.
func Then[I, O, P, E any](c *Composer[I, O, E], next Validator[O, P, E]) *Composer[I, P, E] {
	return &Composer[I, P, E]{steps: append(slices.Clone(c.steps), eraseStep(next))}
}

// AndThen appends a step keeping the output type.
func (c *Composer[I, O, E]) AndThen(next Validator[O, O, E]) *Composer[I, O, E] {
	return Then(c, next)
}

// Len returns the number of steps in the chain.
func (c *Composer[I, O, E]) Len() int {
	return len(c.steps)
}

// Build returns the composed validator. It stops at the first failing step
// and returns that step's failure.
func (c *Composer[I, O, E]) Build() Validator[I, O, E] {
	steps := slices.Clone(c.steps)
	return Func[I, O, E](func(input I) result.Result[O, E] {
		var current any = input
		for _, s := range steps {
			r := s(current)
			v, ok := r.Value()
			if !ok {
				return result.Fail[O](r.Errors()...)
			}
			current = v
		}
		return result.Ok[O, E](as[O](current))
	})
}
