package assets

import "errors"

// Resolver loads themes from an optional custom directory, falling back to
// the embedded themes when the directory has no file for a name.
type Resolver struct {
	custom   ThemeLoader // nil without a theme directory
	embedded ThemeLoader
}

// NewResolver creates a Resolver. An empty dir uses embedded themes only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if dir != "" {
		loader, err := NewDirLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = loader
	}
	return r, nil
}

// LoadTheme loads name from the custom directory first. Only ErrThemeNotFound
// falls through to the embedded themes; validation and I/O errors do not.
func (r *Resolver) LoadTheme(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTheme(name)
	}

	css, err := r.custom.LoadTheme(name)
	if err == nil || !errors.Is(err, ErrThemeNotFound) {
		return css, err
	}
	return r.embedded.LoadTheme(name)
}

// Compile-time interface check.
var _ ThemeLoader = (*Resolver)(nil)
