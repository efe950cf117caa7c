package pipeline

import "strings"

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Column alignments parsed from a separator row.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// String returns the value used in the align attribute, or "" for AlignNone.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return ""
	}
}

// parseTable renders a header row, a separator row and the body rows that
// follow them as a <table>.
func parseTable(header, separator, rows string) string {
	headers := splitCells(header)
	aligns := parseAlignments(separator)

	var body [][]string
	for _, line := range strings.Split(strings.TrimSpace(rows), "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		parts = parts[1 : len(parts)-1]
		row := make([]string, len(headers))
		for i := range row {
			if i < len(parts) {
				row[i] = strings.TrimSpace(parts[i])
			}
		}
		body = append(body, row)
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for i, h := range headers {
		writeCell(&b, "th", alignAt(aligns, i), h)
	}
	b.WriteString("</tr></thead>")

	if len(body) > 0 {
		b.WriteString("<tbody>")
		for _, row := range body {
			b.WriteString("<tr>")
			for i, c := range row {
				writeCell(&b, "td", alignAt(aligns, i), c)
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>")
	}

	b.WriteString("</table>")
	return b.String()
}

// parseAlignments derives one Alignment per column from a separator row.
func parseAlignments(separator string) []Alignment {
	segments := splitCells(separator)
	aligns := make([]Alignment, len(segments))
	for i, s := range segments {
		left := strings.HasPrefix(s, ":")
		right := strings.HasSuffix(s, ":")
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		}
	}
	return aligns
}

// splitCells splits a row on | and drops blank cells.
func splitCells(line string) []string {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func alignAt(aligns []Alignment, i int) Alignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return AlignNone
}

func writeCell(b *strings.Builder, tag string, align Alignment, content string) {
	b.WriteString("<" + tag)
	if a := align.String(); a != "" {
		b.WriteString(` align="` + a + `"`)
	}
	b.WriteString(">" + content + "</" + tag + ">")
}
