// Package icd10 maps diagnosis names to ICD-10 codes.
//
// The code table is fixed at compile time and exposed read-only through
// CodeMap. Annotate derives the icd10_code field of each PatientRecord from
// its diagnosis, returning new records and leaving the input untouched.
package icd10
