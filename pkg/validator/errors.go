package validator

import "errors"

// Configuration errors. They are raised as panic values when a validator is
// assembled incorrectly and never returned as validation failures.
var (
	// ErrNoValidators is raised when a combinator requiring at least one validator gets none.
	ErrNoValidators = errors.New("no validators provided")

	// ErrInvalidRange is raised when a range is built with min greater than max.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidPattern is raised when a regular expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
