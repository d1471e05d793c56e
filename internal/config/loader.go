package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".ehrtable.yaml"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .ehrtable.yaml configuration file.
// Empty fields leave the corresponding default untouched.
type File struct {
	// Input is the processed EHR JSON file.
	Input string `yaml:"input,omitempty"`

	// Output is the CSV file to write.
	Output string `yaml:"output,omitempty"`

	// Markdown is an optional Markdown report path.
	Markdown string `yaml:"markdown,omitempty"`
}

// Apply copies the non-empty fields of the file into cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Input != "" {
		cfg.InputPath = f.Input
	}
	if f.Output != "" {
		cfg.OutputPath = f.Output
	}
	if f.Markdown != "" {
		cfg.MarkdownPath = f.Markdown
	}
}

// LoadConfigFile loads the configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .ehrtable.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .ehrtable.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}
