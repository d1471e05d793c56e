package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/ehrtable/internal/config"
	"github.com/nao1215/ehrtable/internal/ehr"
	"github.com/nao1215/ehrtable/internal/icd10"
	"github.com/nao1215/ehrtable/internal/model"
	"github.com/nao1215/ehrtable/internal/report"
)

// Step names, in the order ReportBuilder runs them.
const (
	StepLoad     = "load"
	StepAnnotate = "annotate"
	StepProject  = "project"
	StepRender   = "render"
	StepExport   = "export"
	StepMarkdown = "markdown"
)

// LoadStep reads the EHR export named by run.Source into run.Records.
type LoadStep struct {
	logger *slog.Logger
}

// NewLoadStep creates a new load step.
func NewLoadStep(logger *slog.Logger) *LoadStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStep{logger: logger}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return StepLoad
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, run *model.Run) error {
	records, err := ehr.Load(run.Source)
	if err != nil {
		return err
	}
	run.Records = records

	s.logger.Debug("records loaded",
		"run_id", run.ID,
		"source", run.Source,
		"count", len(records),
	)
	return nil
}

// AnnotateStep sets icd10_code on every record from a diagnosis code map.
type AnnotateStep struct {
	codes icd10.CodeMap
}

// NewAnnotateStep creates an annotate step that resolves codes with codes.
func NewAnnotateStep(codes icd10.CodeMap) *AnnotateStep {
	return &AnnotateStep{codes: codes}
}

// Name returns the step name.
func (s *AnnotateStep) Name() string {
	return StepAnnotate
}

// Do executes the annotate step.
// The loaded records are replaced by annotated copies.
func (s *AnnotateStep) Do(_ context.Context, run *model.Run) error {
	run.Records = icd10.Annotate(run.Records, s.codes)
	return nil
}

// ProjectStep builds run.Table from the annotated records and computes
// run.Summary from it.
type ProjectStep struct {
	columns []string
}

// NewProjectStep creates a project step for the fixed report columns.
func NewProjectStep() *ProjectStep {
	return &ProjectStep{columns: model.Columns()}
}

// Name returns the step name.
func (s *ProjectStep) Name() string {
	return StepProject
}

// Do executes the project step.
func (s *ProjectStep) Do(_ context.Context, run *model.Run) error {
	table, err := report.Project(run.Records, s.columns)
	if err != nil {
		return err
	}
	run.Table = table
	run.Summary = icd10.Summarize(table)
	return nil
}

// RenderStep writes the run through a report.Writer, normally the console
// grid on standard output.
type RenderStep struct {
	writer report.Writer
}

// NewRenderStep creates a render step that writes with w.
func NewRenderStep(w report.Writer) *RenderStep {
	return &RenderStep{writer: w}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return StepRender
}

// Do executes the render step.
func (s *RenderStep) Do(_ context.Context, run *model.Run) error {
	if _, err := s.writer.Write(run); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// ExportStep writes run.Table as CSV to run.Destination, replacing any
// existing file.
type ExportStep struct {
	logger *slog.Logger
}

// NewExportStep creates a new export step.
func NewExportStep(logger *slog.Logger) *ExportStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportStep{logger: logger}
}

// Name returns the step name.
func (s *ExportStep) Name() string {
	return StepExport
}

// Do executes the export step.
func (s *ExportStep) Do(_ context.Context, run *model.Run) error {
	if run.Table == nil {
		return fmt.Errorf("%w: nothing to export, records were not projected", model.ErrSchema)
	}
	if err := report.ExportCSV(run.Table, run.Destination); err != nil {
		return err
	}

	s.logger.Debug("table exported",
		"run_id", run.ID,
		"destination", run.Destination,
		"rows", run.Table.Len(),
	)
	return nil
}

// MarkdownStep writes the Markdown report to a file.
type MarkdownStep struct {
	path string
}

// NewMarkdownStep creates a step that writes the Markdown report to path.
func NewMarkdownStep(path string) *MarkdownStep {
	return &MarkdownStep{path: path}
}

// Name returns the step name.
func (s *MarkdownStep) Name() string {
	return StepMarkdown
}

// Do executes the markdown step.
func (s *MarkdownStep) Do(_ context.Context, run *model.Run) error {
	return report.ExportMarkdown(run, s.path)
}

// ReportBuilder creates the pipeline for one report run:
// load, annotate, project, render to stdout, export to CSV and, when
// cfg.MarkdownPath is set, write the Markdown report.
//
// The code map and column order are fixed; cfg only relocates files.
func ReportBuilder(cfg *config.Config, stdout io.Writer, opts ...Option) *Pipeline {
	p := New(opts...)

	p.AddSteps(
		NewLoadStep(p.logger),
		NewAnnotateStep(icd10.Default()),
		NewProjectStep(),
		NewRenderStep(report.NewGridWriter(stdout, report.WithSummary(cfg.Verbose))),
		NewExportStep(p.logger),
	)
	if cfg.MarkdownPath != "" {
		p.AddStep(NewMarkdownStep(cfg.MarkdownPath))
	}

	return p
}

// NewRun creates the run state for cfg.
func NewRun(cfg *config.Config) *model.Run {
	return model.NewRun(cfg.InputPath, cfg.OutputPath)
}
