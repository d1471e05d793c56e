// Package pipeline runs the report as an ordered sequence of steps.
//
// A report run loads the EHR export, annotates each record with its ICD-10
// code, projects the records onto the fixed report columns, renders the
// table to the console and exports it to CSV. Each stage is a Step that
// receives the shared model.Run and fills in its part of it.
//
// The first failing step aborts the run; no later step is executed.
package pipeline
