// Package pipeline implements the Markdown-to-HTML transformation stages.
//
// The lite pipeline is a sequence of whole-text rewrites, each consuming the
// previous stage's string:
//   - Preprocess: line ending normalization, marker sentinel removal
//   - ExtractLiterals: fenced and inline code replaced by markers, backslash
//     escapes resolved, %% comments removed
//   - ParseBlocks: headings, task items, lists, rules, quotes, tables, paragraphs
//   - ParseInlines: emphasis, strikethrough, autolinks, images, links
//   - Literals.Reinsert: markers replaced by <code> and <pre> markup
//   - Sanitize: denylisted tags escaped, dangerous attributes removed
//
// No tree is built. Block rules are applied once each in a fixed order, so
// nested constructs (a list inside a quote, a table inside a list) are not
// composed. GoldmarkConverter provides a CommonMark renderer for callers that
// need them.
//
// WrapDocument and NewUGCPolicy support the command-line tool: full HTML5
// documents and an allowlist pass for untrusted content.
package pipeline
