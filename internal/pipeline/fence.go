package pipeline

import (
	"strings"
	"unicode/utf8"
)

// maxFenceIndent is the number of blanks allowed before a fence.
const maxFenceIndent = 3

// replaceFences scans text for fenced code blocks opened and closed by a run
// of 3 or 4 backticks at a line start. The opening run may follow up to 3
// blanks or a single character other than a backslash; that prefix is
// consumed with the block. Each block is replaced by the string returned
// from replace. Scanning is leftmost-first and never nests; a fence
// without a matching closer is left untouched.
func replaceFences(text string, replace func(lang, code string) string) string {
	if !strings.Contains(text, "```") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	pos := 0

	for pos < len(text) {
		lineEnd := indexLineEnd(text, pos)
		n, lang, ok := openingFence(text[pos:lineEnd])
		if ok && lineEnd < len(text) {
			if codeEnd, after, found := closingFence(text, lineEnd+1, n); found {
				b.WriteString(text[last:pos])
				b.WriteString(replace(lang, trimCode(text[lineEnd+1:codeEnd])))
				last = after
				pos = indexLineEnd(text, after) + 1
				continue
			}
		}
		pos = lineEnd + 1
	}

	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// openingFence reports whether line opens a fence, returning the backtick run
// length and the language tag.
func openingFence(line string) (n int, lang string, ok bool) {
	i := fencePrefix(line)
	n = countBackticks(line[i:])
	if n != 3 && n != 4 {
		return 0, "", false
	}

	lang = strings.TrimSpace(line[i+n:])
	for _, r := range lang {
		if !isWordRune(r) {
			return 0, "", false
		}
	}
	return n, lang, true
}

// fencePrefix returns the length of what precedes an opening backtick run:
// up to maxFenceIndent blanks, or one rune that is not a backslash.
func fencePrefix(line string) int {
	if i := skipIndent(line); countBackticks(line[i:]) > 0 {
		return i
	}
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 || r == '\\' || r == '`' {
		return 0
	}
	return size
}

// closingFence searches line starts from offset for a run of exactly n
// backticks. It returns where the code ends and where the text following the
// closing run begins.
func closingFence(text string, from, n int) (codeEnd, after int, found bool) {
	for p := from; p <= len(text); {
		i := skipIndent(text[p:indexLineEnd(text, p)])
		if countBackticks(text[p+i:]) == n {
			return p, p + i + n, true
		}
		next := indexLineEnd(text, p)
		if next >= len(text) {
			break
		}
		p = next + 1
	}
	return 0, 0, false
}

// trimCode drops the whitespace surrounding the code.
func trimCode(code string) string {
	return strings.TrimSpace(code)
}

// indexLineEnd returns the index of the newline ending the line that starts
// at pos, or len(text).
func indexLineEnd(text string, pos int) int {
	if pos >= len(text) {
		return len(text)
	}
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(text)
}

func skipIndent(line string) int {
	i := 0
	for i < len(line) && i < maxFenceIndent && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

func countBackticks(s string) int {
	n := 0
	for n < len(s) && s[n] == '`' {
		n++
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
