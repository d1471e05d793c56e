package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/ehrtable/internal/model"
)

// CSVWriter outputs the report as comma-separated values.
// The first line is the header row; no row index column is written.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run's table as CSV.
func (w *CSVWriter) Write(run *model.Run) (int, error) {
	var buf bytes.Buffer
	if err := encodeCSV(&buf, tableOf(run)); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

// encodeCSV writes the header and all rows of table to out.
func encodeCSV(out io.Writer, table *model.ReportTable) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes table to path, replacing any existing file.
//
// The parent directory must already exist. Any failure to create, write or
// close the file returns an error wrapping model.ErrFileAccess.
func ExportCSV(table *model.ReportTable, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return encodeCSV(w, table)
	})
}

// writeFile creates or truncates path and fills it with encode.
func writeFile(path string, encode func(io.Writer) error) (err error) {
	// Reports contain patient data, so only the owner may read them.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %w", model.ErrFileAccess, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: cannot close %s: %w", model.ErrFileAccess, path, cerr)
		}
	}()

	if werr := encode(f); werr != nil {
		return errors.Join(fmt.Errorf("%w: cannot write %s", model.ErrFileAccess, path), werr)
	}
	return nil
}
