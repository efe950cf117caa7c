package assets

import "errors"

// Sentinel errors for theme loading.
var (
	// ErrThemeNotFound indicates the requested theme does not exist.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrInvalidAssetName indicates a theme name with characters outside
	// [A-Za-z0-9_-].
	ErrInvalidAssetName = errors.New("invalid theme name")

	// ErrInvalidBasePath indicates the theme directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid theme directory")

	// ErrAssetRead indicates an I/O error while reading a theme file.
	ErrAssetRead = errors.New("failed to read theme")

	// ErrPathTraversal indicates a theme path resolving outside its directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
