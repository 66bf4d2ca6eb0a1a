package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Email accepts RFC 5322 addresses with a dotted domain and no display name.
func Email(field string) Rule[string] {
	return newRule(field, "must be a valid email address", "validation.email", nil, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}

		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}

		if !strings.Contains(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	})
}

// URL accepts absolute URLs with a scheme and a host.
func URL(field string) Rule[string] {
	return newRule(field, "must be a valid URL", "validation.url", nil, func(value string) bool {
		u, err := url.ParseRequestURI(value)
		return err == nil && u.Scheme != "" && u.Host != ""
	})
}

func URLWithScheme(field string, schemes ...string) Rule[string] {
	return newRule(field,
		fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
		"validation.url_scheme",
		map[string]any{"schemes": slices.Clone(schemes)},
		func(value string) bool {
			u, err := url.ParseRequestURI(value)
			return err == nil && u.Host != "" && slices.Contains(schemes, u.Scheme)
		},
	)
}

// Phone accepts international numbers, ignoring spaces and dashes.
func Phone(field string) Rule[string] {
	return newRule(field, "must be a valid phone number in international format", "validation.phone", nil, func(value string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
		return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	})
}

func Alphanumeric(field string) Rule[string] {
	return newRule(field, "must contain only letters and numbers", "validation.alphanumeric", nil, alphanumericRegex.MatchString)
}

// Slug accepts lowercase words separated by single dashes.
func Slug(field string) Rule[string] {
	return newRule(field, "must be a valid slug", "validation.slug", nil, slugRegex.MatchString)
}
