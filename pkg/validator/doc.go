// Package validator provides composable, type-safe validators.
//
// A Validator[I, O, E] turns an input of type I into a result.Result holding
// either a validated output of type O or a non-empty list of errors of type
// E. Output and input types may differ, so a validator can parse as well as
// check: a Validator[*string, int, E] may reject nil, then parse the string
// into an int.
//
// # Architecture
//
// The package is split by concern:
//   - validator.go        – the Validator interface and the Func adapter
//   - basic_rules.go      – Just, OK, Keep, Predicate and nil handling
//   - string_rules.go     – emptiness, blankness, length and pattern checks
//   - comparable_rules.go – ordering comparisons for cmp.Ordered types
//   - collection_rules.go – EachElement and EachValue
//   - conversion_rules.go – parsing strings into numbers, booleans, UUIDs, times
//   - combinators.go      – AndThen, Map, MapErrors, SatisfiesAnyOf, SatisfiesAllOf
//   - bind.go             – BindAll and the typed Bind2..Bind6 helpers
//   - composer.go         – a fluent builder for AndThen chains
//
// Every built-in that reports an error comes in two forms: one taking a
// literal error value and a With form taking a function that builds the
// error from the rejected input, so messages can embed the offending value.
//
// There is no global state. Validators built here are immutable and safe
// for concurrent use as long as the functions passed in are.
//
// # Usage
//
//	age := validator.AndThen(
//	    validator.IsNotNull[string]("age is required"),
//	    validator.ParseIntWith(func(s string) string {
//	        return fmt.Sprintf("%q is not a number", s)
//	    }),
//	)
//
//	r := age.Validate(ptr("33")) // Ok(33)
//
// Independent checks over the same input accumulate every error:
//
//	password := validator.Bind2(
//	    validator.HasLengthGreaterThanOrEqualTo(8, "too short"),
//	    validator.Matches(`.*[0-9].*`, "missing digit"),
//	    func(s, _ string) string { return s },
//	)
//
//	password.Validate("abc") // Fail([too short missing digit])
//
// # Error Handling
//
// Data problems are always reported through result.Fail. Misusing the API
// (an empty validator list, an inverted range, an invalid pattern) panics
// immediately with an error wrapping one of the package sentinel errors,
// so assembly defects surface at construction time and never masquerade
// as validation failures.
package validator
