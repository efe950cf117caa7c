package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/decode"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxStyleLength  = 64   // chroma style and theme names are short
	MaxTitleLength  = 200  // document <title>
	MaxJoinLength   = 16   // joinCharacter
	MaxEngineLength = 16   // "lite", "goldmark"
)

// Engine names accepted by render.engine.
const (
	EngineLite     = "lite"
	EngineGoldmark = "goldmark"
)

// DirName is the directory searched under the user config dir.
const DirName = "go-md2html"

// Extensions lists the config file extensions tried by name lookup, in order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// Config holds all configuration for HTML generation.
type Config struct {
	Render    RenderConfig    `yaml:"render" toml:"render"`
	Highlight HighlightConfig `yaml:"highlight" toml:"highlight"`
	Input     InputConfig     `yaml:"input" toml:"input"`
	Output    OutputConfig    `yaml:"output" toml:"output"`
	Sanitize  SanitizeConfig  `yaml:"sanitize" toml:"sanitize"`
}

// RenderConfig selects the engine and its behavior.
type RenderConfig struct {
	Engine        string `yaml:"engine" toml:"engine"`               // "lite" (default) or "goldmark"
	Unsafe        bool   `yaml:"unsafe" toml:"unsafe"`               // skip sanitization
	JoinCharacter string `yaml:"joinCharacter" toml:"joinCharacter"` // separator between top-level blocks
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Style   string `yaml:"style" toml:"style"` // chroma style name
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // used when no input is given
	Normalize  bool   `yaml:"normalize" toml:"normalize"`   // NFC-normalize input text
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"`
	Document   bool   `yaml:"document" toml:"document"` // wrap in a full HTML document
	Title      string `yaml:"title" toml:"title"`       // document title, default first h1
	Theme      string `yaml:"theme" toml:"theme"`       // document stylesheet, empty for none
	ThemeDir   string `yaml:"themeDir" toml:"themeDir"` // custom themes, searched before embedded
}

// SanitizeConfig defines the optional second sanitization stage.
type SanitizeConfig struct {
	UGC bool `yaml:"ugc" toml:"ugc"`
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"render.engine", c.Render.Engine, MaxEngineLength},
		{"render.joinCharacter", c.Render.JoinCharacter, MaxJoinLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.title", c.Output.Title, MaxTitleLength},
		{"output.theme", c.Output.Theme, MaxStyleLength},
		{"output.themeDir", c.Output.ThemeDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch c.Render.Engine {
	case "", EngineLite, EngineGoldmark:
	default:
		return fmt.Errorf("%w: render.engine must be %q or %q, got %q",
			ErrInvalidValue, EngineLite, EngineGoldmark, c.Render.Engine)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Render:    RenderConfig{Engine: EngineLite, JoinCharacter: ""},
		Highlight: HighlightConfig{Enabled: false, Style: "github"},
		Input:     InputConfig{DefaultDir: ""},
		Output:    OutputConfig{DefaultDir: ""},
		Sanitize:  SanitizeConfig{UGC: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as name+ext in the current directory, then in
// the user config directory. Fields missing from the file keep their
// DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = decode.TOMLStrict(data, cfg)
	} else {
		err = decode.YAMLStrict(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns every location LoadConfig tries for a config name.
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(Extensions)*2)
	for _, ext := range Extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range Extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
