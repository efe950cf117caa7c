package pipeline

import (
	"strconv"
	"strings"
)

// EscapeHTML replaces & < > " ' with decimal numeric character references.
func EscapeHTML(text string) string {
	if !strings.ContainsAny(text, `&<>"'`) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '&', '<', '>', '"', '\'':
			writeEntity(&b, rune(c))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// writeEntity writes r as &#<codepoint>;.
func writeEntity(b *strings.Builder, r rune) {
	b.WriteString("&#")
	b.WriteString(strconv.Itoa(int(r)))
	b.WriteByte(';')
}

// entity returns r as &#<codepoint>;.
func entity(r rune) string {
	var b strings.Builder
	writeEntity(&b, r)
	return b.String()
}
