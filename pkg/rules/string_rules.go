package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required rejects strings that are empty after trimming whitespace.
func Required(field string) Rule[string] {
	return newRule(field, "field is required", "validation.required", nil, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

func MinLen(field string, min int) Rule[string] {
	return newRule(field,
		fmt.Sprintf("must be at least %d characters long", min),
		"validation.min_length",
		map[string]any{"min": min},
		func(s string) bool { return utf8.RuneCountInString(s) >= min },
	)
}

func MaxLen(field string, max int) Rule[string] {
	return newRule(field,
		fmt.Sprintf("must be at most %d characters long", max),
		"validation.max_length",
		map[string]any{"max": max},
		func(s string) bool { return utf8.RuneCountInString(s) <= max },
	)
}

func Len(field string, exact int) Rule[string] {
	return newRule(field,
		fmt.Sprintf("must be exactly %d characters long", exact),
		"validation.exact_length",
		map[string]any{"length": exact},
		func(s string) bool { return utf8.RuneCountInString(s) == exact },
	)
}
