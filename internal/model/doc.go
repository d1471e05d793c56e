// Package model defines the core data structures shared by the report pipeline.
//
// This package contains the following main types:
//   - PatientRecord: One EHR entry decoded from the input file
//   - ReportTable: The column-ordered rows used for console and CSV output
//   - Summary: Code coverage counts derived from a ReportTable
//   - Run: The state carried through one pipeline execution
//
// The package imports nothing else from this module; ehr, icd10, report and
// pipeline all build on it.
package model
