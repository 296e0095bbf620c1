// Package config provides translator configuration management.
//
// This package handles reading and writing .revyl/translate.yaml files,
// which hold render settings and the names and variables used to resolve
// test lines.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/revyl/translate/internal/textrender"
	"github.com/revyl/translate/internal/translate"
)

const (
	// Dir is the directory holding the configuration file.
	Dir = ".revyl"

	// FileName is the configuration file name inside Dir.
	FileName = "translate.yaml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Format selects how text output is styled.
type Format string

const (
	// FormatAuto uses ANSI styling when writing to a terminal.
	FormatAuto Format = "auto"

	// FormatPlain never emits escape sequences.
	FormatPlain Format = "plain"

	// FormatANSI always emits escape sequences.
	FormatANSI Format = "ansi"
)

// Config represents the .revyl/translate.yaml file.
type Config struct {
	// Width is the text render width in columns.
	Width int `yaml:"width,omitempty"`

	// Format is auto, plain or ansi.
	Format Format `yaml:"format,omitempty"`

	// AppConfig is the application the tests run against.
	AppConfig *AppConfig `yaml:"app_config,omitempty"`

	// Elements maps element IDs to names.
	Elements map[string]string `yaml:"elements,omitempty"`

	// Snippets maps snippet IDs to test names.
	Snippets map[string]string `yaml:"snippets,omitempty"`
}

// AppConfig holds the application URL and variables substituted into lines.
type AppConfig struct {
	URL       string            `yaml:"url,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty"`
}

var variableName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Width:    textrender.DefaultWidth,
		Format:   FormatAuto,
		Elements: map[string]string{},
		Snippets: map[string]string{},
	}
}

// Load loads a configuration from a file. Missing fields keep their
// defaults.
//
// Parameters:
//   - path: Path to the translate.yaml file
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error that occurred during loading or validation
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Elements == nil {
		cfg.Elements = map[string]string{}
	}
	if cfg.Snippets == nil {
		cfg.Snippets = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir searches dir and its parents for .revyl/translate.yaml and
// loads the first one found.
//
// Parameters:
//   - dir: The directory to start searching from
//
// Returns:
//   - *Config: The loaded configuration, or Default() when none exists
//   - string: Path of the loaded file, empty when none exists
//   - error: Any error that occurred while loading a found file
func LoadFromDir(dir string) (*Config, string, error) {
	path := Find(dir)
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Find returns the path of the nearest .revyl/translate.yaml at or above
// dir, or an empty string.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, Dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Write writes a configuration to path, creating its directory.
//
// Parameters:
//   - path: Path to write the translate.yaml file
//   - cfg: The configuration to write
//
// Returns:
//   - error: Any error that occurred during writing
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# Revyl translate configuration\n# Generated by: revyl-translate init\n\n"
	if err := os.WriteFile(path, []byte(header+string(data)), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration values are usable.
//
// Returns:
//   - error: An error wrapping ErrInvalid, or nil if valid
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalid, c.Width)
	}
	switch c.Format {
	case FormatAuto, FormatPlain, FormatANSI:
	default:
		return fmt.Errorf("%w: format must be auto, plain or ansi, got %q", ErrInvalid, c.Format)
	}
	if c.AppConfig != nil {
		for name := range c.AppConfig.Variables {
			if !variableName.MatchString(name) {
				return fmt.Errorf("%w: app_config.variables: bad variable name %q", ErrInvalid, name)
			}
		}
	}
	return nil
}

// Formatted reports whether text output should carry ANSI styling.
//
// Parameters:
//   - terminal: Whether output goes to a terminal
func (c *Config) Formatted(terminal bool) bool {
	switch c.Format {
	case FormatANSI:
		return true
	case FormatPlain:
		return false
	}
	return terminal
}

// Context returns the translation context described by the configuration.
func (c *Config) Context() translate.Context {
	ctx := translate.Context{
		Elements: c.Elements,
		Snippets: c.Snippets,
	}
	if c.AppConfig != nil {
		ctx.AppConfig = &translate.AppConfig{
			URL:       c.AppConfig.URL,
			Variables: c.AppConfig.Variables,
		}
	}
	return ctx
}
