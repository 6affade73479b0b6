package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file written by `tagbalance init`.
const DefaultConfigFile = ".tagbalance.yaml"

// configFileNames are the file names searched for, in order of preference.
var configFileNames = []string{".tagbalance.yaml", ".tagbalance.yml", ".tagbalance.toml"}

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrUnsupportedConfigFormat is returned for files that are neither YAML nor TOML.
	ErrUnsupportedConfigFormat = errors.New("unsupported configuration format: use .yaml, .yml or .toml")
)

// File is the on-disk configuration file.
//
// Example YAML:
//
//	audit:
//	  target: src/App.tsx
//	  tags: [div, form, section, main]
//	  lexer: line
//	  reportUnmatchedClosers: true
//	divs:
//	  tag: div
//	  keepNegative: false
type File struct {
	Audit  AuditSection  `yaml:"audit" toml:"audit"`
	Divs   DivsSection   `yaml:"divs" toml:"divs"`
	Output OutputSection `yaml:"output" toml:"output"`
}

// AuditSection configures the audit command.
type AuditSection struct {
	Target                 string   `yaml:"target,omitempty" toml:"target,omitempty"`
	Tags                   []string `yaml:"tags,omitempty" toml:"tags,omitempty"`
	Lexer                  string   `yaml:"lexer,omitempty" toml:"lexer,omitempty"`
	Strict                 *bool    `yaml:"strict,omitempty" toml:"strict,omitempty"`
	ReportUnmatchedClosers *bool    `yaml:"reportUnmatchedClosers,omitempty" toml:"reportUnmatchedClosers,omitempty"`
	Jobs                   int      `yaml:"jobs,omitempty" toml:"jobs,omitempty"`
}

// DivsSection configures the divs command.
type DivsSection struct {
	Tag          string `yaml:"tag,omitempty" toml:"tag,omitempty"`
	KeepNegative *bool  `yaml:"keepNegative,omitempty" toml:"keepNegative,omitempty"`
}

// OutputSection configures report rendering.
type OutputSection struct {
	Color *bool `yaml:"color,omitempty" toml:"color,omitempty"`
}

// LoadConfigFile loads a configuration file. The format is chosen by the
// file extension. If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedConfigFormat)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .tagbalance.{yaml,yml,toml} in the current directory
// 3. Look for config.{yaml,yml,toml} in the XDG config directory
// 4. Look for .tagbalance.{yaml,yml,toml} in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		if p := firstExisting(cwd, configFileNames); p != "" {
			return p
		}
	}

	if p := firstExisting(XDGConfigDir(), []string{"config.yaml", "config.yml", "config.toml"}); p != "" {
		return p
	}

	if home, err := os.UserHomeDir(); err == nil {
		if p := firstExisting(home, configFileNames); p != "" {
			return p
		}
	}
	return ""
}

// Load finds and applies the configuration file onto cfg. A missing file is
// only an error when the path was given explicitly.
func Load(cfg *Config) error {
	path := FindConfigFile(cfg.ConfigFilePath)
	if path == "" {
		if cfg.ConfigFilePath != "" {
			return fmt.Errorf("%s: %w", cfg.ConfigFilePath, ErrConfigNotFound)
		}
		return nil
	}
	f, err := LoadConfigFile(path)
	if err != nil {
		return err
	}
	cfg.ApplyFile(f)
	return nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
