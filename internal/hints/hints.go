// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user config location among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForThemeNotFound returns hints for unknown document themes.
func ForThemeNotFound(embedded []string) string {
	hint := "use --theme-dir for custom themes"
	if len(embedded) > 0 {
		hint = "built-in themes: " + strings.Join(embedded, ", ") + "; " + hint
	}
	return format(hint)
}

// ForUnknownEngine returns hints for an unsupported --engine value.
func ForUnknownEngine(engines []string) string {
	return format("use --engine " + strings.Join(engines, " or "))
}

// ForNoInput returns hints when neither an input nor input.defaultDir is set.
func ForNoInput() string {
	return formatHints([]string{
		"pass files or directories",
		"pipe Markdown on stdin",
		"set input.defaultDir in the config",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
