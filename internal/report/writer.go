package report

import (
	"io"

	"github.com/nao1215/ehrtable/internal/model"
)

// Writer defines the interface for report output.
// Implementations write a finished run in one format. Writers receive the
// whole Run since some formats also print the summary and run metadata.
type Writer interface {
	// Write outputs the run's table to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// tableOf returns the run's table, or an empty table with the fixed columns
// when the run has not been projected yet.
func tableOf(run *model.Run) *model.ReportTable {
	if run != nil && run.Table != nil {
		return run.Table
	}
	return &model.ReportTable{Columns: model.Columns()}
}
