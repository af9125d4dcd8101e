// Package config loads the docres CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docres/internal/fileutil"
	"github.com/alnah/go-docres/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidBundle   = errors.New("invalid bundle name")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxBundleNameLength = 100  // bundle names are directory names
	MaxPathLength       = 4096 // generous path limit
	MaxFilterLength     = 256  // glob pattern
)

// Config holds all configuration for resource export.
type Config struct {
	Templates   []string     `yaml:"templates"`   // ordered template bundle names
	Themes      []string     `yaml:"themes"`      // ordered theme bundle names (optional)
	BaseDir     string       `yaml:"baseDir"`     // user search directory (empty = working directory)
	InstallRoot string       `yaml:"installRoot"` // install search root (empty = executable directory)
	Output      OutputConfig `yaml:"output"`
}

// OutputConfig defines export destination options.
type OutputConfig struct {
	Dir             string `yaml:"dir"`             // output directory (empty = must specify on the command line)
	Filter          string `yaml:"filter"`          // glob filter on relative paths (empty = all)
	OverwriteThemes bool   `yaml:"overwriteThemes"` // overwrite policy for theme application
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks bundle names and field lengths. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	for _, name := range c.Templates {
		if err := validateBundleName("templates", name); err != nil {
			return err
		}
	}
	for _, name := range c.Themes {
		if err := validateBundleName("themes", name); err != nil {
			return err
		}
	}
	if err := validateFieldLength("baseDir", c.BaseDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("installRoot", c.InstallRoot, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	return validateFieldLength("output.filter", c.Output.Filter, MaxFilterLength)
}

// validateBundleName rejects empty and traversal-prone bundle names.
// Bundle names are joined onto search roots, so they must stay relative
// and must not climb out of them.
func validateBundleName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s contains an empty name", ErrInvalidBundle, field)
	}
	if len(name) > MaxBundleNameLength {
		return fmt.Errorf("%w: %s: %q (%d chars, max %d)", ErrFieldTooLong, field, name, len(name), MaxBundleNameLength)
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "..") || strings.Contains(name, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s: %q", ErrInvalidBundle, field, name)
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

// LoadConfig reads and validates a configuration. An argument containing a
// path separator is taken as an explicit file path; a bare name is looked up
// with resolveConfigPath. A missing file is ErrConfigNotFound, never a
// silent default.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case err != nil:
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

// resolveConfigPath turns a bare config name into a file path by probing
// <name>.yaml and <name>.yml in the working directory, then in
// <user config dir>/go-docres/.
func resolveConfigPath(name string) (string, error) {
	candidates := []string{name + ".yaml", name + ".yml"}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(userDir, "go-docres", name+".yaml"),
			filepath.Join(userDir, "go-docres", name+".yml"),
		)
	}

	for _, path := range candidates {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}
