// Package vanilla is a type-safe validation toolkit for turning loosely typed
// drafts into validated domain values.
//
// The module is split into small packages:
//
//   - pkg/result holds Result, the success-or-errors value every validator returns.
//   - pkg/validator defines Validator, the combinators, the Composer and the built-in rules.
//   - pkg/record builds a validator for a whole struct from one validator per field.
//   - pkg/rules provides ready rules reporting structured, translatable errors.
//   - pkg/gen turns a YAML record definition into a typed builder on top of pkg/record.
//   - cmd/validgen exposes pkg/gen on the command line.
//
// Basic usage:
//
//	age := validator.Compose(validator.IsNotNull[string]("age is required")).
//		AndThen(validator.IsNotBlank("age is blank"))
//	parsed := validator.Then(age, validator.ParseInt("age must be a number")).Build()
//
//	r := parsed.Validate(draft.Age)
//	if n, ok := r.Value(); ok {
//		fmt.Println(n)
//	}
//
// Record validators are usually generated:
//
//	//go:generate go run github.com/dmitrymomot/vanilla/cmd/validgen generate -f validators.yaml -o validators_gen.go
//
// and then assembled field by field:
//
//	v := NewPersonDraftValidatorBuilder[string]().
//		FirstName(validator.IsNotNull[string]("first name is required")).
//		Age(parsed).
//		Build()
package vanilla
