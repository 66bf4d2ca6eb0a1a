package rules

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the names of the failed fields without duplicates, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translate returns a copy with every message rendered by fn from the
// translation key and values.
func (ve ValidationErrors) Translate(fn func(key string, values map[string]any) string) ValidationErrors {
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		err.TranslationValues = maps.Clone(err.TranslationValues)
		if msg := fn(err.TranslationKey, err.TranslationValues); msg != "" {
			err.Message = msg
		}
		out[i] = err
	}
	return out
}

// Rule is a validator that passes its input through unchanged.
type Rule[T any] = validator.Validator[T, T, ValidationError]

// newRule builds a Rule failing with an error for field when check reports false.
func newRule[T any](field, message, key string, values map[string]any, check func(T) bool) Rule[T] {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	// Each failure owns its TranslationValues map.
	return validator.PredicateWith(check, func(T) ValidationError {
		return ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: maps.Clone(values),
		}
	})
}

// Missing returns the error reported when a required value is absent.
// It pairs with validator.IsNotNull and validator.IsNotNullAnd.
func Missing(field string) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": field},
	}
}

// Apply runs every rule against value and returns ValidationErrors when
// any of them fails, or nil.
func Apply[T any](value T, rules ...Rule[T]) error {
	if len(rules) == 0 {
		return nil
	}
	return AsError(validator.SatisfiesAllOf(rules...).Validate(value))
}

// AsError converts a failed result into ValidationErrors. It returns nil
// for a success.
func AsError[T any](r result.Result[T, ValidationError]) error {
	if r.IsOk() {
		return nil
	}
	return ValidationErrors(r.Errors())
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
