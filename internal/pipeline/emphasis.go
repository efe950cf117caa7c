package pipeline

import "strings"

// parseItalics wraps *x* and _x_ in <em>. A delimiter preceded by * never
// opens a span and a delimiter followed by * never closes one, so leftovers of
// ** are not read as nested italics. Spans do not cross lines.
//
// The scan is linear: once no closer exists for a delimiter on a line, later
// openers of that delimiter on the same line are skipped.
func parseItalics(text string) string {
	if !strings.ContainsAny(text, "*_") {
		return text
	}

	var b strings.Builder
	var failedUntil [2]int
	last := 0

	for i := 0; i < len(text); i++ {
		d := text[i]
		if d != '*' && d != '_' {
			continue
		}
		slot := delimiterSlot(d)
		if i < failedUntil[slot] || (i > 0 && text[i-1] == '*') {
			continue
		}

		closer, lineEnd := findCloser(text, i, d)
		if closer < 0 {
			failedUntil[slot] = lineEnd
			continue
		}

		if last == 0 {
			b.Grow(len(text) + 16)
		}
		b.WriteString(text[last:i])
		b.WriteString("<em>")
		b.WriteString(text[i+1 : closer])
		b.WriteString("</em>")
		last = closer + 1
		i = closer
	}

	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// findCloser returns the first delimiter d after open that closes a non-empty
// span on the same line. When there is none it returns -1 and the end of the
// line.
func findCloser(text string, open int, d byte) (closer, lineEnd int) {
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case '\n':
			return -1, j
		case d:
			if j > open+1 && (j+1 == len(text) || text[j+1] != '*') {
				return j, j
			}
		}
	}
	return -1, len(text)
}

func delimiterSlot(d byte) int {
	if d == '*' {
		return 1
	}
	return 0
}
