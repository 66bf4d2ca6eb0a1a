// Package rules provides ready-made validators for common field checks
// that report translation-friendly ValidationError values.
//
// Every constructor takes the field name it is validating and returns a
// Rule, which is a validator.Validator whose output equals its input and
// whose error type is ValidationError. Rules therefore compose with every
// combinator in package validator and plug directly into record builders.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `format_rules.go`, `numeric_rules.go`, etc.). ValidationError carries a
// human readable Message plus a TranslationKey and TranslationValues, so
// callers can render messages in the user's language.
//
// # Usage
//
//	email := validator.AndThen(
//	    validator.IsNotNullAnd(rules.Required("email"), rules.Missing("email")),
//	    rules.Email("email"),
//	)
//
//	err := rules.Apply(reg.Password,
//	    rules.MinLen("password", 8),
//	    rules.MaxLen("password", 128),
//	)
//	if verrs := rules.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface. Use AsError to turn a
// failed result into ValidationErrors and ExtractValidationErrors or
// IsValidationError to recover it from a wrapped error.
package rules
