package rules

import (
	"fmt"
	"slices"
	"strings"
)

func OneOf[T comparable](field string, options ...T) Rule[T] {
	allowed := slices.Clone(options)
	return newRule(field,
		fmt.Sprintf("must be one of: %v", allowed),
		"validation.in_list",
		map[string]any{"allowed_values": allowed},
		func(v T) bool { return slices.Contains(allowed, v) },
	)
}

func NoneOf[T comparable](field string, options ...T) Rule[T] {
	forbidden := slices.Clone(options)
	return newRule(field,
		fmt.Sprintf("must not be one of: %v", forbidden),
		"validation.not_in_list",
		map[string]any{"forbidden_values": forbidden},
		func(v T) bool { return !slices.Contains(forbidden, v) },
	)
}

func OneOfCaseInsensitive(field string, options ...string) Rule[string] {
	allowed := slices.Clone(options)
	return newRule(field,
		fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		"validation.in_list",
		map[string]any{"allowed_values": allowed},
		func(v string) bool {
			return slices.ContainsFunc(allowed, func(o string) bool { return strings.EqualFold(o, v) })
		},
	)
}
