package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultInputFile is the processed EHR export read when no input is given.
	DefaultInputFile = "module3_processed_ehr.json"

	// DefaultOutputFile is the CSV file written when no output is given.
	DefaultOutputFile = "module3_output_table.csv"

	// AppName is the application name used for XDG directory paths.
	AppName = "ehrtable"
)

// Config holds all configuration options for one report run.
// This struct is populated from CLI flags and the optional config file and
// passed through the application rather than kept in global state.
//
// The diagnosis code table and the column order are deliberately not part of
// the configuration; they are fixed in the icd10 and model packages.
type Config struct {
	// InputPath is the JSON file holding the processed EHR records.
	InputPath string

	// OutputPath is the CSV file the report table is exported to.
	// An existing file at this path is overwritten.
	OutputPath string

	// MarkdownPath is an optional path for a Markdown version of the report.
	// When empty, no Markdown report is written.
	MarkdownPath string

	// Verbose enables debug logging and the coverage summary line after
	// the console table.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the file is searched for (see FindConfigFile).
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		InputPath:  DefaultInputFile,
		OutputPath: DefaultOutputFile,
	}
}

// XDGConfigDir returns the XDG config directory for ehrtable.
// On Linux: ~/.config/ehrtable
// On macOS: ~/Library/Application Support/ehrtable
// On Windows: %APPDATA%\ehrtable
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package sentinel errors.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	if c.OutputPath == "" {
		return ErrNoOutput
	}

	// Exporting over the input would destroy the source data
	if samePath(c.InputPath, c.OutputPath) {
		return ErrSamePath
	}

	if c.MarkdownPath != "" &&
		(samePath(c.MarkdownPath, c.InputPath) || samePath(c.MarkdownPath, c.OutputPath)) {
		return ErrMarkdownPathConflict
	}

	return nil
}

// samePath reports whether a and b name the same file after cleaning.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
