package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrRender = errors.New("markdown rendering failed")

	// Highlighter errors.
	ErrUnknownLanguage = errors.New("unknown highlight language")
	ErrUnknownStyle    = errors.New("unknown highlight style")
	ErrEmptyCode       = errors.New("code cannot be empty")
)
