package md2html

// Highlighter turns source code into highlighted HTML for fenced code blocks.
// Highlight is called when the fence names a language, HighlightAuto
// otherwise. Errors and panics are recovered and the raw code is used.
type Highlighter interface {
	Highlight(code, language string) (string, error)
	HighlightAuto(code string) (string, error)
}

// Options configures a conversion. The zero value is the default: sanitized
// output, paragraphs joined with no separator, no highlighting.
type Options struct {
	Unsafe        bool        // skip sanitization
	JoinCharacter string      // inserted between paragraphs and blocks
	Highlighter   Highlighter // optional
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{}
}

// Option configures a Converter.
type Option func(*Options)

// WithOptions replaces all options with o.
func WithOptions(o Options) Option {
	return func(opts *Options) {
		*opts = o
	}
}

// WithUnsafe disables sanitization. Use only for trusted input.
func WithUnsafe(unsafe bool) Option {
	return func(opts *Options) {
		opts.Unsafe = unsafe
	}
}

// WithJoinCharacter sets the separator placed between top-level segments.
func WithJoinCharacter(sep string) Option {
	return func(opts *Options) {
		opts.JoinCharacter = sep
	}
}

// WithHighlighter sets the syntax highlighter for fenced code blocks.
func WithHighlighter(h Highlighter) Option {
	return func(opts *Options) {
		opts.Highlighter = h
	}
}
