package model

import "errors"

// Report errors.
// Every failure in the pipeline wraps exactly one of these sentinels so that
// callers can classify it with errors.Is() regardless of the wrapped cause.
var (
	// ErrFileAccess is returned when the input file cannot be read or the
	// output file cannot be written (missing file, permission denied, bad path).
	ErrFileAccess = errors.New("file access error")

	// ErrFormat is returned when the input is not valid JSON or is not an
	// array of objects.
	ErrFormat = errors.New("format error")

	// ErrSchema is returned when a record lacks a field required by the
	// report column order.
	ErrSchema = errors.New("schema error")
)
