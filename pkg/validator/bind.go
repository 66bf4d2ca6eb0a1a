package validator

import (
	"slices"

	"github.com/dmitrymomot/vanilla/pkg/result"
)

// BindAll runs every validator against the same input, regardless of the
// outcome of the others. When all pass, combine receives their outputs in
// declaration order. Otherwise the errors of every failing validator are
// concatenated in declaration order.
//
//	v := validator.BindAll([]validator.Validator[int, int, string]{
//	    validator.Func[int, int, string](func(n int) result.Result[int, string] { return result.Ok[int, string](n + 4) }),
//	    validator.Func[int, int, string](func(n int) result.Result[int, string] { return result.Ok[int, string](n + 9) }),
//	}, func(out []int) int { return out[0] + out[1] })
//
//	v.Validate(1) // Ok(15)
func BindAll[I, O, R, E any](validators []Validator[I, O, E], combine func([]O) R) Validator[I, R, E] {
	vs := slices.Clone(validators)
	return Func[I, R, E](func(input I) result.Result[R, E] {
		results := make([]result.Result[O, E], len(vs))
		for i, v := range vs {
			results[i] = v.Validate(input)
		}
		return result.Map(result.Collect(results...), combine)
	})
}

// Bind2 is BindAll for two validators with distinct output types.
func Bind2[I, A, B, R, E any](
	va Validator[I, A, E],
	vb Validator[I, B, E],
	fn func(A, B) R,
) Validator[I, R, E] {
	return BindAll([]Validator[I, any, E]{Erase(va), Erase(vb)}, func(out []any) R {
		return fn(as[A](out[0]), as[B](out[1]))
	})
}

// Bind3 is BindAll for three validators with distinct output types.
func Bind3[I, A, B, C, R, E any](
	va Validator[I, A, E],
	vb Validator[I, B, E],
	vc Validator[I, C, E],
	fn func(A, B, C) R,
) Validator[I, R, E] {
	return BindAll([]Validator[I, any, E]{Erase(va), Erase(vb), Erase(vc)}, func(out []any) R {
		return fn(as[A](out[0]), as[B](out[1]), as[C](out[2]))
	})
}

// Bind4 is BindAll for four validators with distinct output types.
func Bind4[I, A, B, C, D, R, E any](
	va Validator[I, A, E],
	vb Validator[I, B, E],
	vc Validator[I, C, E],
	vd Validator[I, D, E],
	fn func(A, B, C, D) R,
) Validator[I, R, E] {
	return BindAll([]Validator[I, any, E]{Erase(va), Erase(vb), Erase(vc), Erase(vd)}, func(out []any) R {
		return fn(as[A](out[0]), as[B](out[1]), as[C](out[2]), as[D](out[3]))
	})
}

// Bind5 is BindAll for five validators with distinct output types.
func Bind5[I, A, B, C, D, F, R, E any](
	va Validator[I, A, E],
	vb Validator[I, B, E],
	vc Validator[I, C, E],
	vd Validator[I, D, E],
	vf Validator[I, F, E],
	fn func(A, B, C, D, F) R,
) Validator[I, R, E] {
	return BindAll([]Validator[I, any, E]{Erase(va), Erase(vb), Erase(vc), Erase(vd), Erase(vf)}, func(out []any) R {
		return fn(as[A](out[0]), as[B](out[1]), as[C](out[2]), as[D](out[3]), as[F](out[4]))
	})
}

// Bind6 is BindAll for six validators with distinct output types.
// Larger records are better served by the record package.
func Bind6[I, A, B, C, D, F, G, R, E any](
	va Validator[I, A, E],
	vb Validator[I, B, E],
	vc Validator[I, C, E],
	vd Validator[I, D, E],
	vf Validator[I, F, E],
	vg Validator[I, G, E],
	fn func(A, B, C, D, F, G) R,
) Validator[I, R, E] {
	return BindAll([]Validator[I, any, E]{Erase(va), Erase(vb), Erase(vc), Erase(vd), Erase(vf), Erase(vg)}, func(out []any) R {
		return fn(as[A](out[0]), as[B](out[1]), as[C](out[2]), as[D](out[3]), as[F](out[4]), as[G](out[5]))
	})
}
