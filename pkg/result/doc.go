// Package result provides Result, the two-variant outcome type produced by
// every validator in this module.
//
// A Result either holds a success value or a non-empty, ordered list of
// errors. The zero-error failure is not representable through the public
// constructors: Fail panics when called without errors, because producing
// such a value is a bug in the code that builds it rather than a problem
// with validated data.
//
// # Usage
//
//	r := result.Ok[int, string](42)
//	doubled := result.Map(r, func(v int) int { return v * 2 })
//
//	if v, ok := doubled.Value(); ok {
//	    fmt.Println(v) // 84
//	}
//
//	bad := result.Fail[int]("not a number", "out of range")
//	fmt.Println(bad.Errors()) // [not a number out of range]
//
// # Error Handling
//
// Err converts a failed Result into an error value. The returned error
// matches ErrValidation with errors.Is and exposes the original errors
// through *FailureError.
package result
