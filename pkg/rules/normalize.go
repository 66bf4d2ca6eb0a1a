package rules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	dotRun        = regexp.MustCompile(`\.{2,}`)
)

// Normalize turns fn into a rule that never fails. Put it in front of
// checking rules with validator.Compose so they see the cleaned input.
func Normalize(fn func(string) string) Rule[string] {
	return validator.Func[string, string, ValidationError](func(s string) result.Result[string, ValidationError] {
		return result.Ok[string, ValidationError](fn(s))
	})
}

func Trim() Rule[string] {
	return Normalize(strings.TrimSpace)
}

func TrimToLower() Rule[string] {
	return Normalize(func(s string) string { return strings.ToLower(strings.TrimSpace(s)) })
}

// CollapseWhitespace replaces every whitespace run with one space and trims the ends.
func CollapseWhitespace() Rule[string] {
	return Normalize(func(s string) string {
		return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	})
}

// StripControl removes control characters except tab and newline.
func StripControl() Rule[string] {
	return Normalize(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsControl(r) && r != '\t' && r != '\n' {
				return -1
			}
			return r
		}, s)
	})
}

// NormalizeEmail lower-cases the address and collapses repeated dots in the
// local part. Inputs without exactly one "@" are only trimmed and lower-cased.
func NormalizeEmail() Rule[string] {
	return Normalize(func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		local, domain, ok := strings.Cut(s, "@")
		if !ok || strings.Contains(domain, "@") {
			return s
		}
		local = strings.Trim(dotRun.ReplaceAllString(local, "."), ".")
		return local + "@" + domain
	})
}
