package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/nao1215/ehrtable/internal/model"
)

// GridWriter outputs the report as a bordered text grid.
// Every cell is boxed and rows are separated by a rule line, so multi-word
// observations stay readable in a terminal.
type GridWriter struct {
	baseWriter

	// showSummary appends a one-line code coverage summary after the grid.
	showSummary bool
}

// GridWriterOption configures a GridWriter.
type GridWriterOption func(*GridWriter)

// WithSummary configures the writer to print the coverage summary line.
func WithSummary(show bool) GridWriterOption {
	return func(w *GridWriter) {
		w.showSummary = show
	}
}

// NewGridWriter creates a GridWriter that outputs to the given writer.
func NewGridWriter(output io.Writer, opts ...GridWriterOption) *GridWriter {
	w := &GridWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the run's table as a grid.
func (w *GridWriter) Write(run *model.Run) (int, error) {
	var buf bytes.Buffer

	if err := RenderGrid(&buf, tableOf(run)); err != nil {
		return 0, err
	}

	if w.showSummary && run != nil {
		s := run.Summary
		fmt.Fprintf(&buf, "%d record(s): %d coded, %d without a known ICD-10 code\n",
			s.Total, s.Mapped, s.Unmapped)
	}

	return w.output.Write(buf.Bytes())
}

// RenderGrid writes table to out as an ASCII grid whose header is the raw
// column names.
func RenderGrid(out io.Writer, table *model.ReportTable) error {
	grid := tablewriter.NewTable(out,
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleASCII),
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenRows: tw.On},
			},
		}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithTrimSpace(tw.Off),
	)

	grid.Header(lo.ToAnySlice(table.Columns)...)
	if err := grid.Bulk(table.Rows); err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	if err := grid.Render(); err != nil {
		return fmt.Errorf("failed to render grid: %w", err)
	}
	return nil
}
