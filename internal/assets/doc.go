// Package assets provides the stylesheets used by document output.
//
// # Loader Architecture
//
//	ThemeLoader (interface)
//	    │
//	    ├── EmbeddedLoader - themes compiled into the binary
//	    ├── DirLoader      - {name}.css files in a directory on disk
//	    └── Resolver       - custom directory first, embedded fallback
//
// A theme is a single CSS file. Names are restricted to letters, digits, '-'
// and '_' so they can never address a path outside the theme directory;
// DirLoader also checks containment after resolving symlinks.
package assets
