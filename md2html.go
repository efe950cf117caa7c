package md2html

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ Highlighter          = (*ChromaHighlighter)(nil)
	_ pipeline.Highlighter = (Highlighter)(nil)
)

// Converter renders Markdown with a fixed set of options.
// Create with NewConverter; a Converter is safe for concurrent use when its
// Highlighter is.
type Converter struct {
	opts Options
}

// NewConverter creates a Converter from the default options and opts.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Options returns the options the Converter was built with.
func (c *Converter) Options() Options {
	return c.opts
}

// Convert renders markdown to HTML. It never fails: an internal error yields
// an empty string.
func (c *Converter) Convert(markdown string) string {
	html, err := c.Render(context.Background(), markdown)
	if err != nil {
		return ""
	}
	return html
}

// Render renders markdown to HTML. The context is checked before work starts;
// rendering itself is synchronous and not interruptible.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Render(ctx context.Context, markdown string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			html, err = "", fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := pipeline.Preprocess(markdown)
	text, literals := pipeline.ExtractLiterals(text)
	text = pipeline.ParseBlocks(text, c.opts.JoinCharacter)
	text = pipeline.ParseInlines(text)
	text = literals.Reinsert(text, c.opts.Highlighter)

	if c.opts.Unsafe {
		return text, nil
	}
	return pipeline.Sanitize(text), nil
}

// Convert renders markdown to HTML using opts merged over the defaults.
func Convert(markdown string, opts ...Option) string {
	return NewConverter(opts...).Convert(markdown)
}

// ConvertValue is Convert for values of unknown type. Strings, byte slices
// and fmt.Stringers are rendered; any other value, including nil, yields "".
// A Stringer that panics also yields "".
func ConvertValue(v any, opts ...Option) (html string) {
	switch t := v.(type) {
	case string:
		return Convert(t, opts...)
	case []byte:
		return Convert(string(t), opts...)
	case fmt.Stringer:
		defer func() {
			if recover() != nil {
				html = ""
			}
		}()
		return Convert(t.String(), opts...)
	default:
		return ""
	}
}

// EscapeHTML replaces & < > " ' with numeric character references.
func EscapeHTML(text string) string {
	return pipeline.EscapeHTML(text)
}

// Sanitize applies the sanitization pass used by Convert to arbitrary HTML.
// It is idempotent.
func Sanitize(html string) string {
	return pipeline.Sanitize(html)
}
