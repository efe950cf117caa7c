package pipeline

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var linkedElements = cascadia.MustCompile("img[src], a[href]")

// RebaseLinks rewrites relative img[src] and a[href] values so they still
// resolve when a fragment rendered from a file in sourceDir is written to
// outputDir. If the directories are equal, or nothing needs rewriting, the
// fragment is returned unchanged.
//
// Not rewritten:
//   - URLs with a scheme or host (http:, mailto:, //cdn...)
//   - anchors and query-only references
//   - absolute paths
func RebaseLinks(fragment, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return fragment, nil
	}
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSource == absOutput {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	changed := false
	for _, n := range linkedElements.MatchAll(root) {
		key := "href"
		if n.Data == "img" {
			key = "src"
		}
		for i := range n.Attr {
			if n.Attr[i].Key != key {
				continue
			}
			if rebased, ok := rebase(n.Attr[i].Val, absSource, absOutput); ok {
				n.Attr[i].Val = rebased
				changed = true
			}
		}
	}
	if !changed {
		return fragment, nil
	}
	return renderChildren(root)
}

// rebase returns ref made relative to outputDir, or false if ref is not a
// relative file reference.
func rebase(ref, sourceDir, outputDir string) (string, bool) {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	if path.IsAbs(u.Path) || filepath.IsAbs(u.Path) {
		return "", false
	}

	target := filepath.Join(sourceDir, filepath.FromSlash(u.Path))
	rel, err := filepath.Rel(outputDir, target)
	if err != nil {
		return "", false
	}
	u.Path = filepath.ToSlash(rel)
	return u.String(), true
}

// renderChildren serializes the children of a container built by parseFragment.
func renderChildren(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
