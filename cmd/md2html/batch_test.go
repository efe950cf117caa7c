package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// countingRenderer records calls and renders a fixed marker.
type countingRenderer struct {
	calls atomic.Int32
	err   error
}

func (r *countingRenderer) Render(_ context.Context, markdown string) (string, error) {
	r.calls.Add(1)
	if r.err != nil {
		return "", r.err
	}
	return "<p>" + strings.TrimSpace(markdown) + "</p>", nil
}

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := t.TempDir()
	var files []FileToConvert
	for i := range 10 {
		name := fmt.Sprintf("f%d.md", i)
		path := writeTestFile(t, in, name, fmt.Sprintf("n%d", i))
		files = append(files, FileToConvert{InputPath: path, OutputPath: filepath.Join(out, fmt.Sprintf("f%d.html", i))})
	}

	r := &countingRenderer{}
	results := convertBatch(context.Background(), 3, files, &conversionParams{render: r})

	if len(results) != len(files) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(files))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Errorf("results[%d].Err = %v", i, res.Err)
		}
		if res.InputPath != files[i].InputPath {
			t.Errorf("results[%d].InputPath = %q, want input order", i, res.InputPath)
		}
		if got := readTestFile(t, files[i].OutputPath); got != fmt.Sprintf("<p>n%d</p>", i) {
			t.Errorf("output %d = %q", i, got)
		}
	}
	if got := r.calls.Load(); got != int32(len(files)) {
		t.Errorf("renderer calls = %d, want %d", got, len(files))
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := convertBatch(context.Background(), 4, nil, &conversionParams{}); got != nil {
		t.Errorf("convertBatch(nil) = %v, want nil", got)
	}
}

func TestConvertBatch_Canceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []FileToConvert{
		{InputPath: writeTestFile(t, dir, "a.md", "a"), OutputPath: filepath.Join(dir, "a.html")},
		{InputPath: writeTestFile(t, dir, "b.md", "b"), OutputPath: filepath.Join(dir, "b.html")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &countingRenderer{}
	results := convertBatch(ctx, 2, files, &conversionParams{render: r})
	for i, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, res.Err)
		}
	}
	if r.calls.Load() != 0 {
		t.Errorf("renderer called %d times after cancel", r.calls.Load())
	}
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		res := convertFile(context.Background(), &conversionParams{render: &countingRenderer{}},
			FileToConvert{InputPath: filepath.Join(dir, "none.md"), OutputPath: filepath.Join(dir, "none.html")})
		if !errors.Is(res.Err, ErrReadMarkdown) {
			t.Errorf("Err = %v, want ErrReadMarkdown", res.Err)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		in := writeTestFile(t, dir, "r.md", "x")
		res := convertFile(context.Background(), &conversionParams{render: &countingRenderer{err: boom}},
			FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "r.html")})
		if !errors.Is(res.Err, boom) {
			t.Errorf("Err = %v, want boom", res.Err)
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		t.Parallel()

		in := writeTestFile(t, dir, "w.md", "x")
		blocker := writeTestFile(t, dir, "blocker", "")
		res := convertFile(context.Background(), &conversionParams{render: &countingRenderer{}},
			FileToConvert{InputPath: in, OutputPath: filepath.Join(blocker, "w.html")})
		if !errors.Is(res.Err, ErrWriteHTML) {
			t.Errorf("Err = %v, want ErrWriteHTML", res.Err)
		}
		if !strings.Contains(res.Err.Error(), "hint:") {
			t.Errorf("Err = %v, want hint", res.Err)
		}
	})
}

func TestCountResults(t *testing.T) {
	t.Parallel()

	got := countResults([]ConversionResult{{}, {Err: errors.New("x")}, {}})
	if got.Succeeded != 2 || got.Failed != 1 {
		t.Errorf("countResults() = %+v, want 2 succeeded 1 failed", got)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html"},
		{InputPath: "b.md", Err: errors.New("bad")},
	}

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		if failed := printResults(results, env.Environment); failed != 1 {
			t.Errorf("printResults() = %d, want 1", failed)
		}
		if !strings.Contains(env.stdout.String(), "Created a.html") {
			t.Errorf("stdout = %q", env.stdout)
		}
		if !strings.Contains(env.stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout = %q, want summary", env.stdout)
		}
		if !strings.Contains(env.stderr.String(), "[ERROR] FAILED b.md: bad") {
			t.Errorf("stderr = %q", env.stderr)
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		env.Log = newLogger(env.Stderr, true, false)
		printResults(results, env.Environment)
		if env.stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q, want empty", env.stdout)
		}
		if !strings.Contains(env.stderr.String(), "FAILED b.md") {
			t.Errorf("quiet stderr = %q, want failure", env.stderr)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		env.Log = newLogger(env.Stderr, false, true)
		printResults(results[:1], env.Environment)
		if !strings.Contains(env.stdout.String(), "a.md -> a.html (") {
			t.Errorf("verbose stdout = %q", env.stdout)
		}
	})
}

func TestRunConvert_FailureReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeTestFile(t, dir, "a.md", "x")
	blocker := writeTestFile(t, dir, "blocker", "")

	flags, args, err := parseFlags([]string{"-o", filepath.Join(blocker, "out"), in})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	env := newTestEnv("")
	err = runConvert(context.Background(), args, flags, env.Environment)
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("runConvert() = %v, want ErrConversionFailed", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "a.html")); statErr == nil {
		t.Error("output written next to input despite -o")
	}
}

func TestRunConvert_DefaultInputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "docs/a.md", "# A")
	cfgPath := writeTestFile(t, dir, "md2html.yaml", "input:\n  defaultDir: "+filepath.ToSlash(filepath.Join(dir, "docs"))+"\n")

	flags, args, err := parseFlags([]string{"-q", "-c", cfgPath})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	env := newTestEnv("ignored")
	if err := runConvert(context.Background(), args, flags, env.Environment); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}
	if got := readTestFile(t, filepath.Join(dir, "docs", "a.html")); got != "<h1>A</h1>" {
		t.Errorf("a.html = %q, want %q", got, "<h1>A</h1>")
	}
}

