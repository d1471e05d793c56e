package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/samber/lo"

	"github.com/nao1215/ehrtable/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for sharing the report in documentation or
// pull requests. Alerts use the GitHub-flavored "> [!NOTE]" syntax.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run in Markdown format.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, run)
	w.writeCoverage(md, run.Summary)
	w.writeTable(md, tableOf(run))
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// ExportMarkdown writes the Markdown report for run to path, replacing any
// existing file. Errors wrap model.ErrFileAccess like ExportCSV.
func ExportMarkdown(run *model.Run, path string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := NewMarkdownWriter(w).Write(run)
		return err
	})
}

// writeHeader writes the title and run metadata.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, run *model.Run) {
	md.H1("ICD-10 Diagnosis Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + escapeCell(run.Source) + "`"},
			{"CSV Output", "`" + escapeCell(run.Destination) + "`"},
			{"Generated", run.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Records", strconv.Itoa(run.Summary.Total)},
		},
	})
	md.PlainText("")
}

// writeCoverage writes the code coverage counts, a pie chart of assigned
// codes and an alert for unmapped diagnoses.
func (w *MarkdownWriter) writeCoverage(md *markdown.Markdown, s model.Summary) {
	md.H2("Code Coverage")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header:    []string{"Status", "Records"},
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignRight},
		Rows: [][]string{
			{"Coded", strconv.Itoa(s.Mapped)},
			{"Not Available", strconv.Itoa(s.Unmapped)},
			{"**Total**", "**" + strconv.Itoa(s.Total) + "**"},
		},
	})
	md.PlainText("")

	if len(s.Codes) > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("ICD-10 Code Distribution"),
			piechart.WithShowData(true),
		)
		for _, c := range s.Codes {
			chart.LabelAndIntValue(c.Code, uint64(c.Count)) //nolint:gosec // counts are never negative
		}
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	switch {
	case s.Total == 0:
		md.Note("The input contained no records.")
	case s.HasUnmapped():
		md.Warningf("%d record(s) have a diagnosis without a known ICD-10 code.", s.Unmapped)
	default:
		md.Tip("Every diagnosis was mapped to an ICD-10 code.")
	}
	md.PlainText("")
}

// writeTable writes the full report table.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, table *model.ReportTable) {
	md.H2("Records")
	md.PlainText("")

	if table.Len() == 0 {
		md.PlainText("No records.")
		md.PlainText("")
		return
	}

	md.Table(markdown.TableSet{
		Header: table.Columns,
		Rows: lo.Map(table.Rows, func(row []string, _ int) []string {
			return lo.Map(row, func(cell string, _ int) string {
				return escapeCell(cell)
			})
		}),
	})
	md.PlainText("")
}

// cellEscaper keeps free-text cells inside a single Markdown table cell.
var cellEscaper = strings.NewReplacer(
	`|`, `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

// escapeCell escapes pipes and line breaks in a table cell.
func escapeCell(cell string) string {
	return cellEscaper.Replace(cell)
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by ehrtable*")
}
