package model

import (
	"time"

	"github.com/google/uuid"
)

// Run holds the state passed between pipeline steps for one report.
// Each step reads what earlier steps produced and fills in its own part.
type Run struct {
	// ID identifies the run in log output.
	ID string

	// StartedAt is when the run was created.
	StartedAt time.Time

	// Source is the input JSON file path.
	Source string

	// Destination is the output CSV file path.
	Destination string

	// Records holds the loaded records, annotated in place of the
	// originals once the annotate step has run.
	Records []PatientRecord

	// Table is the projected report, set by the project step.
	Table *ReportTable

	// Summary describes code coverage of Table.
	Summary Summary

	// PerformedSteps lists the names of steps that completed, in order.
	PerformedSteps []string
}

// NewRun creates a Run for the given input and output paths.
func NewRun(source, destination string) *Run {
	return &Run{
		ID:             uuid.NewString(),
		StartedAt:      time.Now(),
		Source:         source,
		Destination:    destination,
		PerformedSteps: make([]string, 0),
	}
}
