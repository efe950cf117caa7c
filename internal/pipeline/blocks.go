package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Block rules, applied in declaration order by ParseBlocks.
var (
	// ATX heading: # to ######, a space, then content
	headingPattern = regexp.MustCompile(`(?m)^[ \t]*(#{1,6}) ([^\n]+)$`)

	// Task item: - [ ] text, * [x] text, + [X] text
	taskPattern = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+\[([ xX]?)\][ \t]([^\n]+)$`)

	// Run of bullet lines, including task items already rendered as <li>
	bulletRunPattern  = regexp.MustCompile(`(?m)(?:^(?:[ \t]*[-*+] .+|` + taskItemPrefix + `[^\n]*)(?:\n|$))+`)
	bulletItemPattern = regexp.MustCompile(`^[ \t]*[-*+] (.+)$`)

	// Run of numbered lines
	orderedRunPattern  = regexp.MustCompile(`(?m)(?:^[ \t]*\d+\. .+(?:\n|$))+`)
	orderedItemPattern = regexp.MustCompile(`^[ \t]*\d+\. (.+)$`)

	// Thematic break: three or more of the same character among * _ -
	rulePattern = regexp.MustCompile(`(?m)^ {0,3}(?:(?:\*[ ]*){3,}|(?:_[ ]*){3,}|(?:-[ ]*){3,})[ \t]*$`)

	// Quote markers followed by content
	quotePattern = regexp.MustCompile(`(?m)^[ \t]*((?:>[ \t]*)+)([^\n]*)$`)

	// Header row, separator row, body rows
	tablePattern = regexp.MustCompile(`(?m)^([^\n]*\|[^\n]*)\n((?:[-:| ]+\|)+[-:| ]*)(?:\n|$)((?:[^\n]*\|[^\n]*(?:\n|$))*)`)

	// Paragraph boundaries: blank lines or a trailing backslash
	paragraphSplit = regexp.MustCompile(`\n{2,}|\\\n`)

	// Segment already rendered as HTML
	htmlStartPattern = regexp.MustCompile(`^<\w`)
)

// taskItemPrefix starts every rendered task item.
const taskItemPrefix = `<li><input type="checkbox"`

// ParseBlocks rewrites line and block constructs to HTML and wraps the
// remaining segments in paragraphs joined by join.
func ParseBlocks(text, join string) string {
	text = parseHeadings(text)
	text = parseTaskItems(text)
	text = parseBulletLists(text)
	text = parseOrderedLists(text)
	text = parseRules(text)
	text = parseQuotes(text)
	text = parseTables(text)
	return parseParagraphs(text, join)
}

func parseHeadings(text string) string {
	return replaceSubmatches(headingPattern, text, func(m []string) string {
		level := strconv.Itoa(len(m[1]))
		return "<h" + level + ">" + m[2] + "</h" + level + ">"
	})
}

func parseTaskItems(text string) string {
	return replaceSubmatches(taskPattern, text, func(m []string) string {
		attrs := " disabled"
		if strings.EqualFold(m[1], "x") {
			attrs = " checked disabled"
		}
		return taskItemPrefix + attrs + "> " + m[2] + "</li>"
	})
}

func parseBulletLists(text string) string {
	return bulletRunPattern.ReplaceAllStringFunc(text, func(run string) string {
		return groupItems(run, "ul", bulletItemPattern, "$1")
	})
}

func parseOrderedLists(text string) string {
	return orderedRunPattern.ReplaceAllStringFunc(text, func(run string) string {
		return groupItems(run, "ol", orderedItemPattern, "$1")
	})
}

// groupItems wraps a run of list lines in a single list element. Lines
// matching item are converted to <li>; others are kept as they are. The
// newline ending the run is preserved.
func groupItems(run, tag string, item *regexp.Regexp, repl string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, line := range strings.Split(strings.TrimSpace(run), "\n") {
		if item.MatchString(line) {
			b.WriteString("<li>" + item.ReplaceAllString(line, repl) + "</li>")
			continue
		}
		b.WriteString(strings.TrimSpace(line))
	}
	b.WriteString("</" + tag + ">")
	if strings.HasSuffix(run, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

func parseRules(text string) string {
	return rulePattern.ReplaceAllString(text, "<hr/>")
}

func parseQuotes(text string) string {
	return replaceSubmatches(quotePattern, text, func(m []string) string {
		if strings.TrimSpace(m[2]) == "" {
			return ""
		}
		depth := strings.Count(m[1], ">")
		return strings.Repeat("<blockquote>", depth) + m[2] + strings.Repeat("</blockquote>", depth)
	})
}

func parseTables(text string) string {
	if !strings.Contains(text, "|") {
		return text
	}
	return replaceSubmatches(tablePattern, text, func(m []string) string {
		out := parseTable(m[1], m[2], m[3])
		if strings.HasSuffix(m[0], "\n") {
			out += "\n"
		}
		return out
	})
}

// parseParagraphs wraps every segment that is not already block HTML in <p>.
// Segments are trimmed and blank ones dropped, so empty input yields no
// <p></p>. Code block markers stay unwrapped because they become <pre>.
func parseParagraphs(text, join string) string {
	segments := paragraphSplit.Split(text, -1)
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if htmlStartPattern.MatchString(s) || IsBlockMarker(s) {
			out = append(out, s)
			continue
		}
		out = append(out, "<p>"+s+"</p>")
	}
	return strings.Join(out, join)
}
