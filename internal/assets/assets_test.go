package assets

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// Notes:
// - Embedded themes are read from the themes/ directory compiled into the
//   test binary.
// - Symlink tests are skipped where the filesystem refuses symlinks.

// ---------------------------------------------------------------------------
// ValidateAssetName
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"dash and underscore", "my_theme-2", false},
		{"empty", "", true},
		{"extension", "default.css", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"space", "my theme", true},
		{"too long", strings.Repeat("a", MaxAssetNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// EmbeddedLoader
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range ThemeNames() {
		css, err := loader.LoadTheme(name)
		if err != nil {
			t.Errorf("LoadTheme(%q) error = %v", name, err)
			continue
		}
		if !strings.Contains(css, "body") {
			t.Errorf("LoadTheme(%q) has no body rule", name)
		}
		if strings.Contains(css, "</") {
			t.Errorf("LoadTheme(%q) contains a closing tag sequence", name)
		}
	}

	if _, err := loader.LoadTheme("nonexistent"); !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("LoadTheme(nonexistent) error = %v, want ErrThemeNotFound", err)
	}
	if _, err := loader.LoadTheme("../x"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTheme(../x) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestThemeNames(t *testing.T) {
	t.Parallel()

	names := ThemeNames()
	if !slices.Contains(names, DefaultThemeName) {
		t.Errorf("ThemeNames() = %v, want to include %q", names, DefaultThemeName)
	}
	if !slices.IsSorted(names) {
		t.Errorf("ThemeNames() = %v, want sorted", names)
	}
}

// ---------------------------------------------------------------------------
// DirLoader
// ---------------------------------------------------------------------------

func writeTheme(t *testing.T, dir, name, css string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(css), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestNewDirLoader(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewDirLoader(""); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewDirLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTheme(t, dir, "file", "body{}")
		_, err := NewDirLoader(filepath.Join(dir, "file.css"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestDirLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTheme(t, dir, "custom", "body{color:red}")

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	css, err := loader.LoadTheme("custom")
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if css != "body{color:red}" {
		t.Errorf("LoadTheme() = %q, want %q", css, "body{color:red}")
	}

	if _, err := loader.LoadTheme("absent"); !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("LoadTheme(absent) error = %v, want ErrThemeNotFound", err)
	}
}

func TestDirLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	writeTheme(t, outside, "secret", "body{}")

	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(dir, "escape.css")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}
	if _, err := loader.LoadTheme("escape"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadTheme(escape) error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// Resolver
// ---------------------------------------------------------------------------

func TestResolver_LoadTheme(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := r.LoadTheme(DefaultThemeName); err != nil {
			t.Errorf("LoadTheme(default) error = %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTheme(t, dir, DefaultThemeName, "body{margin:0}")

		r, err := NewResolver(dir)
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		css, err := r.LoadTheme(DefaultThemeName)
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if css != "body{margin:0}" {
			t.Errorf("LoadTheme() = %q, want the custom stylesheet", css)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := r.LoadTheme("minimal"); err != nil {
			t.Errorf("LoadTheme(minimal) error = %v", err)
		}
	})

	t.Run("unknown everywhere", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := r.LoadTheme("nowhere"); !errors.Is(err, ErrThemeNotFound) {
			t.Errorf("error = %v, want ErrThemeNotFound", err)
		}
	})

	t.Run("invalid name does not fall back", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := r.LoadTheme("a.b"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}
