package pipeline

import (
	"regexp"
	"strings"
)

// Inline rules, applied in declaration order by ParseInlines.
var (
	// **bold** or __bold__
	boldPattern = regexp.MustCompile(`[*_]{2}(.+?)[*_]{2}`)

	// ~~strikethrough~~
	strikePattern = regexp.MustCompile(`~~(.+?)~~`)

	// <user@example.com>
	emailAutolinkPattern = regexp.MustCompile(`<([^\s@>:]+@[^\s@>]+\.[^\s@>]+)>`)

	// <https://example.com>, <mailto:...>, <tel:...>
	urlAutolinkPattern = regexp.MustCompile(`<((?:https?://|ftp://|mailto:|tel:)[^>\s]+)>`)

	// ![alt](src)
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	// [text](href "title")
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^) ]+) ?("[^)"]+")?\)`)
)

// ParseInlines rewrites emphasis, strikethrough, autolinks, images and links.
func ParseInlines(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = parseItalics(text)
	if strings.Contains(text, "~~") {
		text = strikePattern.ReplaceAllString(text, "<del>$1</del>")
	}
	if strings.Contains(text, "<") {
		text = emailAutolinkPattern.ReplaceAllString(text, `<a href="mailto:$1">$1</a>`)
		text = urlAutolinkPattern.ReplaceAllString(text, `<a href="$1">$1</a>`)
	}
	if strings.Contains(text, "](") {
		text = imagePattern.ReplaceAllString(text, `<img src="$2" alt="$1">`)
		text = replaceSubmatches(linkPattern, text, renderLink)
	}
	return text
}

func renderLink(m []string) string {
	var b strings.Builder
	b.WriteString(`<a href="` + m[2] + `"`)
	if m[3] != "" {
		b.WriteString(" title=" + m[3])
	}
	b.WriteString(">" + m[1] + "</a>")
	return b.String()
}
