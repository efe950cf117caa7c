package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// renderer turns Markdown into an HTML fragment.
type renderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ renderer = (*md2html.Converter)(nil)
	_ renderer = (*pipeline.GoldmarkConverter)(nil)
	_ renderer = sanitizingRenderer{}
)

// engines lists the accepted --engine values.
var engines = []string{config.EngineLite, config.EngineGoldmark}

// sanitizingRenderer runs the sanitization pass over another renderer's output.
type sanitizingRenderer struct {
	renderer
}

func (s sanitizingRenderer) Render(ctx context.Context, markdown string) (string, error) {
	out, err := s.renderer.Render(ctx, markdown)
	if err != nil {
		return "", err
	}
	return md2html.Sanitize(out), nil
}

// conversionParams groups everything shared across batch/file conversion.
// Built once per run; safe for concurrent use.
type conversionParams struct {
	render    renderer
	ugc       *bluemonday.Policy // nil unless sanitize.ugc
	normalize bool
	document  bool
	title     string
	css       string // theme and highlight stylesheets for document mode
}

// buildParams resolves the engine, highlighter and post-processing from cfg.
func buildParams(cfg *config.Config) (*conversionParams, error) {
	var hl *md2html.ChromaHighlighter
	if cfg.Highlight.Enabled {
		var err error
		hl, err = md2html.NewChromaHighlighter(cfg.Highlight.Style)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(md2html.StyleNames()))
		}
	}

	p := &conversionParams{
		normalize: cfg.Input.Normalize,
		document:  cfg.Output.Document,
		title:     cfg.Output.Title,
	}

	switch cfg.Render.Engine {
	case "", config.EngineLite:
		opts := []md2html.Option{
			md2html.WithUnsafe(cfg.Render.Unsafe),
			md2html.WithJoinCharacter(cfg.Render.JoinCharacter),
		}
		if hl != nil {
			opts = append(opts, md2html.WithHighlighter(hl))
		}
		p.render = md2html.NewConverter(opts...)
	case config.EngineGoldmark:
		gopts := pipeline.GoldmarkOptions{Unsafe: cfg.Render.Unsafe}
		if hl != nil {
			gopts.Style = hl.StyleName()
		}
		var r renderer = pipeline.NewGoldmarkConverter(gopts)
		if !cfg.Render.Unsafe {
			r = sanitizingRenderer{r}
		}
		p.render = r
	default:
		return nil, fmt.Errorf("%w: %q%s", ErrUnknownEngine, cfg.Render.Engine, hints.ForUnknownEngine(engines))
	}

	if p.document {
		css, err := documentCSS(cfg, hl)
		if err != nil {
			return nil, err
		}
		p.css = css
	}

	if cfg.Sanitize.UGC {
		p.ugc = pipeline.NewUGCPolicy()
	}

	return p, nil
}

// documentCSS concatenates the configured theme and the highlight
// stylesheet. Either may be absent.
func documentCSS(cfg *config.Config, hl *md2html.ChromaHighlighter) (string, error) {
	var css strings.Builder

	if cfg.Output.Theme != "" {
		resolver, err := assets.NewResolver(cfg.Output.ThemeDir)
		if err != nil {
			return "", fmt.Errorf("loading themes: %w", err)
		}
		theme, err := resolver.LoadTheme(cfg.Output.Theme)
		if err != nil {
			return "", fmt.Errorf("%w%s", err, hints.ForThemeNotFound(assets.ThemeNames()))
		}
		css.WriteString(theme)
		if !strings.HasSuffix(theme, "\n") {
			css.WriteByte('\n')
		}
	}

	if hl != nil {
		if err := hl.WriteCSS(&css); err != nil {
			return "", fmt.Errorf("writing highlight stylesheet: %w", err)
		}
	}
	return css.String(), nil
}

// renderHTML converts markdown read from sourceDir into the HTML written to
// outputDir. Empty directories skip link rebasing.
func (p *conversionParams) renderHTML(ctx context.Context, markdown, sourceDir, outputDir string) (string, error) {
	if p.normalize {
		markdown = norm.NFC.String(markdown)
	}

	out, err := p.render.Render(ctx, markdown)
	if err != nil {
		return "", err
	}

	if p.ugc != nil {
		out = p.ugc.Sanitize(out)
	}

	if sourceDir != "" && outputDir != "" && filepath.Clean(sourceDir) != filepath.Clean(outputDir) {
		out, err = pipeline.RebaseLinks(out, sourceDir, outputDir)
		if err != nil {
			return "", fmt.Errorf("rebasing links: %w", err)
		}
	}

	if p.document {
		out = pipeline.WrapDocument(out, p.title, p.css)
	}
	return out, nil
}
