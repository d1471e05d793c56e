package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestTemplate tests the embedded configuration template.
func TestTemplate(t *testing.T) {
	t.Parallel()

	t.Run("template has documentation comments", func(t *testing.T) {
		t.Parallel()
		if !bytes.Contains(Template(), []byte("#")) {
			t.Error("expected template to contain comments")
		}
	})

	t.Run("template loads as the default configuration", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, Template(), 0600); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("template is not valid YAML: %v", err)
		}

		cfg := &Config{}
		cf.Apply(cfg)
		want := NewConfig()
		if cfg.InputPath != want.InputPath || cfg.OutputPath != want.OutputPath || cfg.MarkdownPath != "" {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		b := Template()
		b[0] = 'X'
		if Template()[0] == 'X' {
			t.Error("template was modified through the returned slice")
		}
	})
}

// TestWriteTemplate tests writing the template to disk.
func TestWriteTemplate(t *testing.T) {
	t.Parallel()

	t.Run("creates file and parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "subdir", "nested", DefaultConfigFile)
		if err := WriteTemplate(path, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !bytes.Equal(content, Template()) {
			t.Error("expected file to hold the template")
		}
	})

	t.Run("existing file returns ErrConfigExists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		if err := WriteTemplate(path, false); !errors.Is(err, ErrConfigExists) {
			t.Fatalf("expected ErrConfigExists, got %v", err)
		}
		content, _ := os.ReadFile(path) //nolint:errcheck // checked by content comparison
		if string(content) != "existing" {
			t.Error("existing file must be left untouched")
		}
	})

	t.Run("force replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		if err := WriteTemplate(path, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})

	t.Run("file is readable by owner only", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("skipping permission test on Windows")
		}

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := WriteTemplate(path, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat file: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	})
}
