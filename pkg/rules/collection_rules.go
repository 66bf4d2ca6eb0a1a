package rules

import "fmt"

// RequiredSlice rejects nil and empty slices.
func RequiredSlice[T any](field string) Rule[[]T] {
	return newRule(field, "field is required", "validation.required", nil, func(s []T) bool { return len(s) > 0 })
}

func MinItems[T any](field string, min int) Rule[[]T] {
	return newRule(field,
		fmt.Sprintf("must contain at least %d items", min),
		"validation.min_items",
		map[string]any{"min": min},
		func(s []T) bool { return len(s) >= min },
	)
}

func MaxItems[T any](field string, max int) Rule[[]T] {
	return newRule(field,
		fmt.Sprintf("must contain at most %d items", max),
		"validation.max_items",
		map[string]any{"max": max},
		func(s []T) bool { return len(s) <= max },
	)
}

// UniqueItems rejects slices holding the same value twice.
func UniqueItems[T comparable](field string) Rule[[]T] {
	return newRule(field, "must contain unique items", "validation.unique_items", nil, func(s []T) bool {
		seen := make(map[T]struct{}, len(s))
		for _, v := range s {
			if _, ok := seen[v]; ok {
				return false
			}
			seen[v] = struct{}{}
		}
		return true
	})
}
