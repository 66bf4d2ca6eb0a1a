package rules_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/rules"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs rules.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs rules.ValidationErrors
		errs.Add(rules.ValidationError{Field: "email", Message: "is required"})
		errs.Add(rules.ValidationError{Field: "password", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := rules.ValidationErrors{
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "missing digit"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("username"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("username"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, rules.ValidationErrors{}.IsEmpty())
}

func TestValidationErrors_Translate(t *testing.T) {
	translations := map[string]string{
		"validation.required":   "Das Feld {{field}} ist erforderlich.",
		"validation.min_length": "{{field}} muss mindestens {{min}} Zeichen lang sein.",
	}
	translate := func(key string, values map[string]any) string {
		msg, ok := translations[key]
		if !ok {
			return ""
		}
		for k, v := range values {
			msg = strings.ReplaceAll(msg, "{{"+k+"}}", fmt.Sprint(v))
		}
		return msg
	}

	err := rules.Apply("ab", rules.Required("name"), rules.MinLen("name", 3), rules.MaxLen("name", 1))
	verrs := rules.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)

	translated := verrs.Translate(translate)
	assert.Equal(t, []string{"name muss mindestens 3 Zeichen lang sein.", "must be at most 1 characters long"}, translated.Get("name"))
	assert.Equal(t, "must be at least 3 characters long", verrs[0].Message, "original is untouched")
}

func TestApply(t *testing.T) {
	t.Run("returns nil when every rule passes", func(t *testing.T) {
		assert.NoError(t, rules.Apply("johndoe", rules.Required("username"), rules.MinLen("username", 3)))
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, rules.Apply[string]("x"))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := rules.Apply("", rules.Required("username"), rules.MinLen("username", 3))

		require.Error(t, err)
		assert.True(t, rules.IsValidationError(err))
		verrs := rules.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "validation.min_length", verrs[1].TranslationKey)
		assert.Equal(t, map[string]any{"field": "username", "min": 3}, verrs[1].TranslationValues)
	})
}

func TestAsError(t *testing.T) {
	assert.NoError(t, rules.AsError(result.Ok[int, rules.ValidationError](1)))

	err := rules.AsError(result.Fail[int](rules.Missing("age")))
	assert.EqualError(t, err, "validation failed: age: field is required")
	assert.False(t, rules.IsValidationError(nil))
	assert.False(t, rules.IsValidationError(fmt.Errorf("plain")))
	assert.True(t, rules.IsValidationError(fmt.Errorf("wrapped: %w", err)))
}

func TestRulesCompose(t *testing.T) {
	email := validator.AndThen(
		validator.IsNotNullAnd(rules.Required("email"), rules.Missing("email")),
		rules.Email("email"),
	)

	addr := "user@example.com"
	assert.Equal(t, result.Ok[string, rules.ValidationError](addr), email.Validate(&addr))

	missing := email.Validate(nil)
	require.True(t, missing.IsFailure())
	assert.Equal(t, "validation.required", missing.Errors()[0].TranslationKey)

	bad := "not-an-email"
	assert.Equal(t, "validation.email", email.Validate(&bad).Errors()[0].TranslationKey)
}

func TestRule_TranslationValuesPerFailure(t *testing.T) {
	t.Run("predicate rules", func(t *testing.T) {
		rule := rules.MinLen("name", 3)

		first := rule.Validate("a").Errors()[0]
		first.TranslationValues["min"] = 99
		delete(first.TranslationValues, "field")

		second := rule.Validate("b").Errors()[0]
		assert.Equal(t, map[string]any{"field": "name", "min": 3}, second.TranslationValues)
	})

	t.Run("uuid parsing", func(t *testing.T) {
		rule := rules.ParseUUID("id")

		first := rule.Validate("x").Errors()[0]
		first.TranslationValues["field"] = "changed"

		second := rule.Validate("y").Errors()[0]
		assert.Equal(t, "id", second.TranslationValues["field"])
	})
}
