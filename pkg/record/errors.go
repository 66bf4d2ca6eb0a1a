package record

import "errors"

var (
	// ErrMissingRules is raised by Build when some fields have no validator.
	ErrMissingRules = errors.New("missing validation rules")

	// ErrUnknownField is raised when a field name was not declared on the builder.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField is raised when NewBuilder receives the same field twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrEmptyField is raised when NewBuilder receives an empty field name.
	ErrEmptyField = errors.New("empty field name")

	// ErrNilValidator is raised when Field is called with a nil validator.
	ErrNilValidator = errors.New("nil validator")
)
