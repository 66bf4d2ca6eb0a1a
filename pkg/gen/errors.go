package gen

import "errors"

var (
	ErrDecodeDefinition  = errors.New("failed to decode definition")
	ErrInvalidDefinition = errors.New("invalid definition")
	ErrRenderTemplate    = errors.New("failed to render template")
	ErrFormatSource      = errors.New("failed to format generated source")
)
