package md2html

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is used by NewChromaHighlighter when style is empty.
const DefaultHighlightStyle = "github"

// ChromaHighlighter highlights code with chroma. Tokens are rendered as
// <span> elements with CSS classes; WriteCSS emits the matching stylesheet.
// It is safe for concurrent use.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a ChromaHighlighter for a chroma style name
// such as "github" or "monokai". Returns ErrUnknownStyle for unknown names.
func NewChromaHighlighter(style string) (*ChromaHighlighter, error) {
	if style == "" {
		style = DefaultHighlightStyle
	}

	name, ok := lookupStyle(style)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	return &ChromaHighlighter{
		style: styles.Get(name),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true), // Converter wraps in <pre><code>
		),
	}, nil
}

// StyleNames lists the available highlight styles.
func StyleNames() []string {
	return styles.Names()
}

func lookupStyle(style string) (string, bool) {
	for _, name := range styles.Names() {
		if strings.EqualFold(name, style) {
			return name, true
		}
	}
	return "", false
}

// Highlight renders code with the lexer registered for language.
// Returns ErrUnknownLanguage if chroma has no such lexer.
func (h *ChromaHighlighter) Highlight(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	return h.format(lexer, code)
}

// HighlightAuto renders code with the lexer chroma guesses from its content,
// falling back to plain text.
func (h *ChromaHighlighter) HighlightAuto(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	lexer := lexers.Analyse(code)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return h.format(lexer, code)
}

func (h *ChromaHighlighter) format(lexer chroma.Lexer, code string) (string, error) {
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising: %w", err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting: %w", err)
	}
	return b.String(), nil
}

// WriteCSS writes the stylesheet for the highlighter's style.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// StyleName returns the canonical name of the highlighter's style.
func (h *ChromaHighlighter) StyleName() string {
	return h.style.Name
}
