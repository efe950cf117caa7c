package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirLoader loads themes from {basePath}/{name}.css.
type DirLoader struct {
	basePath string // absolute, symlinks resolved
}

// NewDirLoader creates a DirLoader for basePath.
// Returns ErrInvalidBasePath if basePath is not a readable directory.
func NewDirLoader(basePath string) (*DirLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &DirLoader{basePath: absPath}, nil
}

// LoadTheme reads {basePath}/{name}.css.
func (d *DirLoader) LoadTheme(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(d.basePath, name+themeExt)
	if err := d.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q in %s", ErrThemeNotFound, name, d.basePath)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// verifyPathContainment rejects paths that resolve outside basePath,
// including through a symlinked theme file.
func (d *DirLoader) verifyPathContainment(filePath string) error {
	resolved := filePath
	if realPath, err := filepath.EvalSymlinks(filePath); err == nil {
		resolved = realPath
	}

	if !strings.HasPrefix(resolved, d.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, resolved, d.basePath)
	}
	return nil
}

// Compile-time interface check.
var _ ThemeLoader = (*DirLoader)(nil)
