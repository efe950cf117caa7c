// Package md2html converts Markdown text into safe, renderable HTML.
//
// # Quick Start
//
// A single call turns raw user text into an HTML fragment:
//
//	html := md2html.Convert("# Hello\n\nSome *emphasis* and `code`.")
//
// The result is sanitized by default: denylisted tags such as <script> are
// rendered as text, javascript:/data:/expression: attribute values and on*
// event handlers are removed.
//
// # Pipeline
//
// Every call runs the same stages once, in order:
//
//  1. Preprocessing (line endings)
//  2. Literal extraction: fenced and inline code are set aside so their
//     content is never interpreted as Markdown
//  3. Block rules: headings, task lists, lists, rules, quotes, tables, paragraphs
//  4. Inline rules: bold, italic, strikethrough, autolinks, images, links
//  5. Reinsertion of code, optionally through a Highlighter
//  6. Sanitization (skipped with WithUnsafe)
//
// Each block rule runs once over the whole text, so nested constructs such as
// lists inside quotes are not composed.
//
// # Configuration
//
// Use functional options:
//
//	html := md2html.Convert(input,
//	    md2html.WithJoinCharacter("\n"),
//	    md2html.WithHighlighter(hl),
//	)
//
// A Converter holds options for repeated use and is safe for concurrent use
// when its Highlighter is.
//
// # Syntax Highlighting
//
// Any type with Highlight and HighlightAuto methods can highlight fenced code.
// ChromaHighlighter is provided:
//
//	hl, err := md2html.NewChromaHighlighter("github")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := md2html.Convert(input, md2html.WithHighlighter(hl))
//
// Highlighter failures are never fatal; the raw code is used instead.
package md2html
