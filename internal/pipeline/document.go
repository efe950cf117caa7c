package pipeline

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultTitle is used when a document has no explicit title and no <h1>.
const DefaultTitle = "Document"

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s
</body>
</html>
`

var firstHeading = cascadia.MustCompile("h1")

// WrapDocument embeds fragment in an HTML5 document. An empty title is taken
// from the first <h1> of the fragment. css, when set, is inlined in a <style>
// block.
func WrapDocument(fragment, title, css string) string {
	if title == "" {
		title = ExtractTitle(fragment)
	}
	if title == "" {
		title = DefaultTitle
	}

	var style string
	if css != "" {
		style = "<style>" + sanitizeCSS(css) + "</style>\n"
	}

	return fmt.Sprintf(documentTemplate, EscapeHTML(title), style, fragment)
}

// ExtractTitle returns the whitespace-collapsed text of the first <h1> in an
// HTML fragment, or "" when there is none.
func ExtractTitle(fragment string) string {
	if !strings.Contains(fragment, "<h1") {
		return ""
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return ""
	}

	h1 := findFirst(root, firstHeading)
	if h1 == nil {
		return ""
	}
	return strings.Join(strings.Fields(textContent(h1)), " ")
}

// parseFragment parses HTML with a body context and hangs the resulting
// nodes under a single document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// findFirst returns the first node in document order matched by sel.
func findFirst(n *html.Node, sel cascadia.Selector) *html.Node {
	if n.Type == html.ElementNode && sel.Match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, sel); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
