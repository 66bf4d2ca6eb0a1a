package gen

import (
	"bytes"
	"errors"
	"go/format"
	"io"
	"strings"
)

// RenderOption configures Render and Source.
type RenderOption func(*renderConfig)

type renderConfig struct {
	header string
}

// WithHeader puts text, one comment line per line, above the generated
// code marker. Empty text adds nothing.
func WithHeader(text string) RenderOption {
	return func(c *renderConfig) { c.header = text }
}

// Source validates def and returns the gofmt-ed Go source of its builders.
func Source(def Definition, opts ...RenderOption) ([]byte, error) {
	f, err := compile(def)
	if err != nil {
		return nil, err
	}

	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	f.Header = headerLines(cfg.header)

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, f); err != nil {
		return nil, errors.Join(ErrRenderTemplate, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Join(ErrFormatSource, err)
	}
	return src, nil
}

// Render writes the source produced by Source to w.
func Render(w io.Writer, def Definition, opts ...RenderOption) error {
	src, err := Source(def, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func headerLines(text string) []string {
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}
