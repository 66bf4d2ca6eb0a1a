package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

func IsNotEmpty[E any](err E) Validator[string, string, E] {
	return IsNotEmptyWith(constant[string](err))
}

func IsNotEmptyWith[E any](errFn func(string) E) Validator[string, string, E] {
	return PredicateWith(func(s string) bool { return s != "" }, errFn)
}

// IsNotBlank rejects strings that are empty after trimming whitespace.
func IsNotBlank[E any](err E) Validator[string, string, E] {
	return IsNotBlankWith(constant[string](err))
}

func IsNotBlankWith[E any](errFn func(string) E) Validator[string, string, E] {
	return PredicateWith(func(s string) bool { return strings.TrimSpace(s) != "" }, errFn)
}

// Length checks count runes, not bytes.

func HasLengthGreaterThan[E any](length int, err E) Validator[string, string, E] {
	return HasLengthGreaterThanWith(length, constant[string](err))
}

func HasLengthGreaterThanWith[E any](length int, errFn func(string) E) Validator[string, string, E] {
	return lengthCheck(func(n int) bool { return n > length }, errFn)
}

func HasLengthLessThan[E any](length int, err E) Validator[string, string, E] {
	return HasLengthLessThanWith(length, constant[string](err))
}

func HasLengthLessThanWith[E any](length int, errFn func(string) E) Validator[string, string, E] {
	return lengthCheck(func(n int) bool { return n < length }, errFn)
}

func HasLengthGreaterThanOrEqualTo[E any](length int, err E) Validator[string, string, E] {
	return HasLengthGreaterThanOrEqualToWith(length, constant[string](err))
}

func HasLengthGreaterThanOrEqualToWith[E any](length int, errFn func(string) E) Validator[string, string, E] {
	return lengthCheck(func(n int) bool { return n >= length }, errFn)
}

func HasLengthLessThanOrEqualTo[E any](length int, err E) Validator[string, string, E] {
	return HasLengthLessThanOrEqualToWith(length, constant[string](err))
}

func HasLengthLessThanOrEqualToWith[E any](length int, errFn func(string) E) Validator[string, string, E] {
	return lengthCheck(func(n int) bool { return n <= length }, errFn)
}

// HasLengthInRange accepts lengths in [min, max]. It panics with
// ErrInvalidRange when min > max.
func HasLengthInRange[E any](min, max int, err E) Validator[string, string, E] {
	return HasLengthInRangeWith(min, max, constant[string](err))
}

func HasLengthInRangeWith[E any](min, max int, errFn func(string) E) Validator[string, string, E] {
	if min > max {
		panic(fmt.Errorf("%w (%d..%d), expected min <= max", ErrInvalidRange, min, max))
	}
	return lengthCheck(func(n int) bool { return n >= min && n <= max }, errFn)
}

func lengthCheck[E any](check func(int) bool, errFn func(string) E) Validator[string, string, E] {
	return PredicateWith(func(s string) bool { return check(utf8.RuneCountInString(s)) }, errFn)
}

// Matches requires the whole input to match pattern. It panics with
// ErrInvalidPattern when pattern does not compile.
func Matches[E any](pattern string, err E) Validator[string, string, E] {
	return MatchesWith(pattern, constant[string](err))
}

func MatchesWith[E any](pattern string, errFn func(string) E) Validator[string, string, E] {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		panic(fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err))
	}
	return MatchesRegexpWith(re, errFn)
}

// MatchesRegexp accepts inputs containing a match of re. Anchor the
// expression for whole-string semantics.
func MatchesRegexp[E any](re *regexp.Regexp, err E) Validator[string, string, E] {
	return MatchesRegexpWith(re, constant[string](err))
}

func MatchesRegexpWith[E any](re *regexp.Regexp, errFn func(string) E) Validator[string, string, E] {
	return PredicateWith(re.MatchString, errFn)
}
