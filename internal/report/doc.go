// Package report turns annotated patient records into report output.
//
// Project builds the column-ordered ReportTable from records. The table is
// then written by one of the writers in this package:
//   - GridWriter: Bordered text grid for terminal display
//   - CSVWriter: Comma-separated values with a header row, no index column
//   - MarkdownWriter: GitHub Flavored Markdown summary with the full table
//
// ExportCSV and ExportMarkdown write a run straight to a file.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably by the pipeline's output steps.
package report
