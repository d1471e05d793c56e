package ehr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nao1215/ehrtable/internal/model"
)

// Load reads the JSON file at path and returns its records in file order.
//
// It returns an error wrapping model.ErrFileAccess when the file cannot be
// opened or read, and model.ErrFormat when the content is not a JSON array of
// objects.
func Load(path string) ([]model.PatientRecord, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %w", model.ErrFileAccess, path, err)
	}
	defer f.Close()

	data, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %w", model.ErrFileAccess, path, err)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode reads all of r and parses it like Load.
// Read failures wrap model.ErrFileAccess.
func Decode(r io.Reader) ([]model.PatientRecord, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrFileAccess, err)
	}
	return Parse(data)
}

// readAll reads all of r without altering its bytes.
func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// Parse decodes a JSON array of objects into patient records.
// The data must be valid UTF-8; a leading byte order mark is dropped.
// Errors wrap model.ErrFormat.
func Parse(data []byte) ([]model.PatientRecord, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", model.ErrFormat)
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrFormat, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", model.ErrFormat)
		}
		return nil, fmt.Errorf("%w: invalid JSON: %w", model.ErrFormat, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level array", model.ErrFormat)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s, expected an array", model.ErrFormat, jsonKind(doc))
	}

	records := make([]model.PatientRecord, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, expected an object", model.ErrFormat, i, jsonKind(item))
		}
		records[i] = model.PatientRecord(obj)
	}

	return records, nil
}

// jsonKind names the JSON type of a decoded value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
