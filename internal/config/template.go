package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed templates/ehrtable.yaml
var configTemplate []byte

// ErrConfigExists is returned by WriteTemplate when the target file exists
// and overwriting was not requested.
var ErrConfigExists = errors.New("configuration file already exists")

// Template returns a copy of the commented configuration file template.
// Loading it with LoadConfigFile yields the NewConfig defaults.
func Template() []byte {
	out := make([]byte, len(configTemplate))
	copy(out, configTemplate)
	return out
}

// WriteTemplate writes the configuration template to path, creating parent
// directories as needed. An existing file is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use -f to overwrite)", ErrConfigExists, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, configTemplate, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
