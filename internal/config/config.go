// Package config loads and validates blog rendering configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnbchron/go-md2blog/internal/dateutil"
	"github.com/johnbchron/go-md2blog/internal/fileutil"
	"github.com/johnbchron/go-md2blog/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits; configs come from untrusted checkouts.
const (
	MaxPathLength   = 4096 // OS path limit
	MaxStyleLength  = 100  // style name ("default") or chroma theme
	MaxPresetLength = 10   // "iso", "long", "us"
)

// Config holds all configuration for a blog rendering run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Assets AssetsConfig `yaml:"assets"`
	Dates  DateConfig   `yaml:"dates"`
	Posts  PostsConfig  `yaml:"posts"`
}

// InputConfig defines where post sources are read from.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default content directory (empty = must specify)
}

// OutputConfig defines where rendered pages are written.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// StyleConfig defines page and code styling.
type StyleConfig struct {
	Name   string `yaml:"name"`   // Style name, CSS file path (empty = embedded default)
	Chroma string `yaml:"chroma"` // Chroma highlight theme name (empty = class-based CSS only)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DateConfig defines how written_on dates are displayed.
type DateConfig struct {
	DisplayPreset string `yaml:"displayPreset"` // "iso", "long", "us" (default: "long")
}

// PostsConfig defines post selection and output shape.
type PostsConfig struct {
	IncludeDrafts bool `yaml:"includeDrafts"` // Render posts with public: false
	FragmentOnly  bool `yaml:"fragmentOnly"`  // Emit bare article fragments, no page shell
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.chroma", c.Style.Chroma, MaxStyleLength); err != nil {
		return err
	}
	// style.name may be a path or raw CSS, so only cap path-length abuse
	if !fileutil.IsCSS(c.Style.Name) {
		if err := validateFieldLength("style.name", c.Style.Name, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Dates.DisplayPreset != "" {
		if err := validateFieldLength("dates.displayPreset", c.Dates.DisplayPreset, MaxPresetLength); err != nil {
			return err
		}
		if _, ok := dateutil.DisplayPresets[strings.ToLower(c.Dates.DisplayPreset)]; !ok {
			return fmt.Errorf("dates.displayPreset: unknown preset %q", c.Dates.DisplayPreset)
		}
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

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteConfig validates cfg and writes it to path as YAML.
// Used to scaffold a starter config a user can edit.
func WriteConfig(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// #nosec G306 -- configs are meant to be user-editable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2blog/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2blog", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
