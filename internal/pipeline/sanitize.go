package pipeline

import (
	"regexp"
	"strings"
)

// Denylists owned by the sanitizer.
var (
	// Elements whose start and end tags are rendered as text
	dangerousTags = []string{"script", "iframe", "object", "embed", "frame", "link", "meta", "style", "svg", "math"}

	// URI schemes that execute or embed content
	dangerousSchemes = []string{"javascript:", "data:", "expression:"}

	// Attribute prefix exempt from scheme filtering
	safeAttrPrefix = "data-"
)

var (
	schemeAlt = `(?:` + strings.Join(dangerousSchemes, "|") + `)`

	dangerousTagPattern = regexp.MustCompile(`(?i)</?\s*(?:` + strings.Join(dangerousTags, "|") + `)[^>]*>`)

	// Attribute with a dangerous value, quoted or not
	dangerousAttrPattern = regexp.MustCompile(`(?i)\s([\w-]+)\s*=\s*(?:"\s*` + schemeAlt + `[^"<>]*"?|'\s*` + schemeAlt + `[^'<>]*'?|` + schemeAlt + `[^\s>"']*)`)

	// Complete tag; quoted attribute values may contain >
	tagPattern = regexp.MustCompile(`<[a-zA-Z/][^>"']*(?:(?:"[^"]*"|'[^']*')[^>"']*)*>`)

	// on* attribute; HTML also accepts / as an attribute separator
	eventHandlerPattern = regexp.MustCompile(`(?i)[\s/]+on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`)
)

// Sanitize defangs HTML: dangerous scheme attributes and on* handlers are
// removed, then denylisted tags are escaped into visible text. The rounds are
// repeated until nothing changes, so Sanitize(Sanitize(x)) == Sanitize(x).
// Every changing round deletes bytes or escapes a '<', so the loop ends.
func Sanitize(html string) string {
	for {
		next := escapeDangerousTags(stripEventHandlers(stripDangerousAttrs(html)))
		if next == html {
			return html
		}
		html = next
	}
}

// stripDangerousAttrs deletes attributes whose value starts with a dangerous
// scheme. data-* attributes are kept.
func stripDangerousAttrs(html string) string {
	if !strings.Contains(html, "=") {
		return html
	}
	return replaceSubmatches(dangerousAttrPattern, html, func(m []string) string {
		if len(m[1]) >= len(safeAttrPrefix) && strings.EqualFold(m[1][:len(safeAttrPrefix)], safeAttrPrefix) {
			return m[0]
		}
		return ""
	})
}

// stripEventHandlers removes on* attributes from every tag.
func stripEventHandlers(html string) string {
	if !strings.Contains(html, "<") {
		return html
	}
	return tagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		return eventHandlerPattern.ReplaceAllString(tag, "")
	})
}

// escapeDangerousTags renders denylisted tags as text.
func escapeDangerousTags(html string) string {
	if !strings.Contains(html, "<") {
		return html
	}
	return dangerousTagPattern.ReplaceAllStringFunc(html, EscapeHTML)
}
