package validator

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vanilla/pkg/result"
)

var errNonCanonicalUUID = errors.New("uuid is not in canonical form")

func ParseInt[E any](err E) Validator[string, int, E] {
	return ParseIntWith(constant[string](err))
}

func ParseIntWith[E any](errFn func(string) E) Validator[string, int, E] {
	return parse(strconv.Atoi, errFn)
}

func ParseFloat[E any](err E) Validator[string, float64, E] {
	return ParseFloatWith(constant[string](err))
}

func ParseFloatWith[E any](errFn func(string) E) Validator[string, float64, E] {
	return parse(func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, errFn)
}

// ParseBool accepts the values understood by strconv.ParseBool.
func ParseBool[E any](err E) Validator[string, bool, E] {
	return ParseBoolWith(constant[string](err))
}

func ParseBoolWith[E any](errFn func(string) E) Validator[string, bool, E] {
	return parse(strconv.ParseBool, errFn)
}

// ParseUUID accepts the canonical 36 character form only.
func ParseUUID[E any](err E) Validator[string, uuid.UUID, E] {
	return ParseUUIDWith(constant[string](err))
}

func ParseUUIDWith[E any](errFn func(string) E) Validator[string, uuid.UUID, E] {
	return parse(func(s string) (uuid.UUID, error) {
		// uuid.Parse also accepts urn and braced forms
		if len(s) != 36 || strings.Count(s, "-") != 4 {
			return uuid.Nil, errNonCanonicalUUID
		}
		return uuid.Parse(s)
	}, errFn)
}

func ParseTime[E any](layout string, err E) Validator[string, time.Time, E] {
	return ParseTimeWith(layout, constant[string](err))
}

func ParseTimeWith[E any](layout string, errFn func(string) E) Validator[string, time.Time, E] {
	return parse(func(s string) (time.Time, error) { return time.Parse(layout, s) }, errFn)
}

func parse[O, E any](fn func(string) (O, error), errFn func(string) E) Validator[string, O, E] {
	return Func[string, O, E](func(input string) result.Result[O, E] {
		v, err := fn(input)
		if err != nil {
			return result.Fail[O](errFn(input))
		}
		return result.Ok[O, E](v)
	})
}
