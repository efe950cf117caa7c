package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Marker kinds embedded between the sentinels.
const (
	kindBlock  = "B"
	kindInline = "I"
)

var (
	// Inline code span not preceded by a backslash
	inlineCodePattern = regexp.MustCompile("(^|[^\\\\])`([^`]+)`")

	// Backslash followed by a Markdown metacharacter
	backslashEscapePattern = regexp.MustCompile("\\\\([\\\\*_{}\\[\\]()#+\\-.!`])")

	// Author comments: %% text %%
	commentPattern = regexp.MustCompile(`%%[\n ][^%]+[\n ]%%`)

	// Markers produced by ExtractLiterals
	markerPattern = regexp.MustCompile(markerOpen + `([BI])(\d+)` + markerClose)
)

// Highlighter turns source code into highlighted HTML. Either method may fail;
// callers fall back to the raw code.
type Highlighter interface {
	Highlight(code, language string) (string, error)
	HighlightAuto(code string) (string, error)
}

// CodeBlock is a fenced code block captured during extraction.
type CodeBlock struct {
	Language string // empty when the fence had no tag
	Code     string // raw, untransformed
}

// Literals holds the code captured from one document. Indexes into Blocks and
// Inlines are embedded in the markers left in the text.
type Literals struct {
	Blocks  []CodeBlock
	Inlines []string // HTML-escaped
}

// ExtractLiterals replaces fenced code blocks and inline code spans with
// markers, then resolves backslash escapes and strips %% comments. The
// returned Literals are required by Reinsert.
func ExtractLiterals(text string) (string, *Literals) {
	lits := &Literals{}

	text = replaceFences(text, func(lang, code string) string {
		lits.Blocks = append(lits.Blocks, CodeBlock{Language: lang, Code: code})
		return marker(kindBlock, len(lits.Blocks)-1)
	})

	text = replaceSubmatches(inlineCodePattern, text, func(m []string) string {
		lits.Inlines = append(lits.Inlines, EscapeHTML(m[2]))
		return m[1] + marker(kindInline, len(lits.Inlines)-1)
	})

	text = resolveBackslashEscapes(text)
	text = stripComments(text)
	return text, lits
}

// resolveBackslashEscapes turns \* and friends into numeric entities.
func resolveBackslashEscapes(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	return backslashEscapePattern.ReplaceAllStringFunc(text, func(m string) string {
		return entity(rune(m[1]))
	})
}

// stripComments removes %% comments.
func stripComments(text string) string {
	if !strings.Contains(text, "%%") {
		return text
	}
	return commentPattern.ReplaceAllString(text, "")
}

// Reinsert replaces every marker with its final markup. Markers with an
// unknown index become empty text. hl may be nil.
func (l *Literals) Reinsert(text string, hl Highlighter) string {
	if !strings.Contains(text, markerOpen) {
		return text
	}

	return replaceSubmatches(markerPattern, text, func(m []string) string {
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			return ""
		}
		if m[1] == kindInline {
			return l.inline(idx)
		}
		return l.block(idx, hl)
	})
}

func (l *Literals) inline(idx int) string {
	if l == nil || idx < 0 || idx >= len(l.Inlines) || l.Inlines[idx] == "" {
		return ""
	}
	return "<code>" + l.Inlines[idx] + "</code>"
}

func (l *Literals) block(idx int, hl Highlighter) string {
	if l == nil || idx < 0 || idx >= len(l.Blocks) {
		return ""
	}

	cb := l.Blocks[idx]
	code := highlight(hl, cb)
	if cb.Language == "" {
		return "<pre><code>" + code + "</code></pre>"
	}
	return `<pre lang="` + cb.Language + `"><code class="hljs ` + cb.Language + ` lang-` + cb.Language + `">` +
		code + "</code></pre>"
}

// highlight runs hl over the block. Errors and panics from hl yield the raw
// code.
func highlight(hl Highlighter, cb CodeBlock) (out string) {
	if hl == nil {
		return cb.Code
	}

	defer func() {
		if r := recover(); r != nil {
			out = cb.Code
		}
	}()

	var err error
	if cb.Language != "" {
		out, err = hl.Highlight(cb.Code, cb.Language)
	} else {
		out, err = hl.HighlightAuto(cb.Code)
	}
	if err != nil {
		return cb.Code
	}
	return out
}

// IsBlockMarker reports whether s starts with a code block marker.
func IsBlockMarker(s string) bool {
	return strings.HasPrefix(s, markerOpen+kindBlock)
}

func marker(kind string, idx int) string {
	return markerOpen + kind + strconv.Itoa(idx) + markerClose
}

// replaceSubmatches is ReplaceAllStringFunc with access to submatches.
func replaceSubmatches(re *regexp.Regexp, text string, repl func([]string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	groups := make([]string, re.NumSubexp()+1)
	for _, m := range matches {
		for g := range groups {
			if m[2*g] < 0 {
				groups[g] = ""
				continue
			}
			groups[g] = text[m[2*g]:m[2*g+1]]
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
