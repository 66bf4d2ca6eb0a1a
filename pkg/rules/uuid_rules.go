package rules

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/vanilla/pkg/validator"
)

func invalidUUID(field string) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           "must be a valid UUID",
		TranslationKey:    "validation.uuid",
		TranslationValues: map[string]any{"field": field},
	}
}

// UUID accepts strings in canonical UUID form and keeps the input as-is.
func UUID(field string) Rule[string] {
	return validator.SatisfiesAllOf(ParseUUID(field))
}

// ParseUUID converts a canonical UUID string into a uuid.UUID.
func ParseUUID(field string) validator.Validator[string, uuid.UUID, ValidationError] {
	return validator.ParseUUIDWith(func(string) ValidationError { return invalidUUID(field) })
}

func NonNilUUID(field string) Rule[uuid.UUID] {
	return newRule(field, "UUID cannot be nil", "validation.uuid_not_nil", nil, func(id uuid.UUID) bool {
		return id != uuid.Nil
	})
}
