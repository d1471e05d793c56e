package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and allow callers to use
// errors.Is() while still providing human-readable messages.
var (
	// ErrNoInput is returned when the input path is empty.
	ErrNoInput = errors.New("no input file specified: use --input")

	// ErrNoOutput is returned when the CSV output path is empty.
	ErrNoOutput = errors.New("no output file specified: use --output")

	// ErrSamePath is returned when the CSV output would overwrite the input.
	ErrSamePath = errors.New("output file must differ from the input file")

	// ErrMarkdownPathConflict is returned when the Markdown report path equals
	// the input or the CSV output path.
	ErrMarkdownPathConflict = errors.New("markdown report path must differ from the input and output files")
)
