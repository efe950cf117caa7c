package pipeline

import (
	"path/filepath"
	"testing"
)

func TestRebaseLinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	out := filepath.Join(root, "out")

	tests := []struct {
		name      string
		fragment  string
		sourceDir string
		outputDir string
		want      string
	}{
		{
			name:      "same directory unchanged",
			fragment:  `<img src="img/a.png" alt="a">`,
			sourceDir: docs,
			outputDir: docs,
			want:      `<img src="img/a.png" alt="a">`,
		},
		{
			name:      "empty source directory unchanged",
			fragment:  `<img src="img/a.png">`,
			outputDir: out,
			want:      `<img src="img/a.png">`,
		},
		{
			name:      "image rebased to sibling directory",
			fragment:  `<img src="img/a.png" alt="a">`,
			sourceDir: docs,
			outputDir: out,
			want:      `<img src="../docs/img/a.png" alt="a"/>`,
		},
		{
			name:      "link keeps fragment",
			fragment:  `<a href="other.md#sec">x</a>`,
			sourceDir: docs,
			outputDir: out,
			want:      `<a href="../docs/other.md#sec">x</a>`,
		},
		{
			name:      "query kept",
			fragment:  `<img src="img/a.png?v=1">`,
			sourceDir: docs,
			outputDir: out,
			want:      `<img src="../docs/img/a.png?v=1"/>`,
		},
		{
			name:      "output nested in source",
			fragment:  `<img src="img/a.png">`,
			sourceDir: docs,
			outputDir: filepath.Join(docs, "html"),
			want:      `<img src="../img/a.png"/>`,
		},
		{
			name: "external references unchanged",
			fragment: `<a href="https://go.dev">go</a><a href="#top">top</a>` +
				`<a href="mailto:x@y.z">mail</a><img src="/abs/x.png"><a href="//cdn.example/x">cdn</a>`,
			sourceDir: docs,
			outputDir: out,
			want: `<a href="https://go.dev">go</a><a href="#top">top</a>` +
				`<a href="mailto:x@y.z">mail</a><img src="/abs/x.png"><a href="//cdn.example/x">cdn</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RebaseLinks(tt.fragment, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("RebaseLinks() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RebaseLinks() = %q, want %q", got, tt.want)
			}
		})
	}
}
