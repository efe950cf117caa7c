package assets

// ThemeLoader loads a theme stylesheet by name (without the .css extension).
// Implementations return ErrThemeNotFound for unknown names and
// ErrInvalidAssetName for names that fail ValidateAssetName.
type ThemeLoader interface {
	LoadTheme(name string) (string, error)
}

// DefaultThemeName is the embedded theme used when document output asks for
// a theme without naming one.
const DefaultThemeName = "default"

// themeExt is the file extension of theme stylesheets.
const themeExt = ".css"
