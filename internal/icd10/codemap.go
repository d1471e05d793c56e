package icd10

import (
	"sort"
	"strings"

	"github.com/nao1215/ehrtable/internal/model"
)

// NotAvailable is the icd10_code assigned when a diagnosis has no entry.
const NotAvailable = "Not Available"

// SystemURI is the FHIR code system identifier for ICD-10-CM.
const SystemURI = "http://hl7.org/fhir/sid/icd-10-cm"

// Code is one entry of the diagnosis code table.
type Code struct {
	// Diagnosis is the exact diagnosis text that selects this code.
	Diagnosis string `json:"diagnosis"`

	// Code is the ICD-10 code string.
	Code string `json:"code"`

	// Display is the ICD-10 description of the code.
	Display string `json:"display"`

	// SystemURI is the code system the code belongs to.
	SystemURI string `json:"system"`
}

// defaultCodes is the fixed diagnosis code table.
var defaultCodes = []Code{
	{Diagnosis: "Pneumonia", Code: "J18.9", Display: "Pneumonia, unspecified organism", SystemURI: SystemURI},
	{Diagnosis: "Diabetes", Code: "E11.9", Display: "Type 2 diabetes mellitus without complications", SystemURI: SystemURI},
	{Diagnosis: "Hypertension", Code: "I10", Display: "Essential (primary) hypertension", SystemURI: SystemURI},
	{Diagnosis: "Asthma", Code: "J45.909", Display: "Unspecified asthma, uncomplicated", SystemURI: SystemURI},
	{Diagnosis: "COVID-19", Code: "U07.1", Display: "COVID-19", SystemURI: SystemURI},
}

// CodeMap is a read-only lookup from diagnosis text to ICD-10 code.
// The zero value has no entries and maps every diagnosis to NotAvailable.
type CodeMap struct {
	byDiagnosis map[string]Code
	entries     []Code
}

// NewCodeMap builds a CodeMap from the given entries.
// A later entry for the same diagnosis replaces an earlier one.
func NewCodeMap(entries ...Code) CodeMap {
	m := CodeMap{byDiagnosis: make(map[string]Code, len(entries))}
	for _, e := range entries {
		if _, dup := m.byDiagnosis[e.Diagnosis]; !dup {
			m.entries = append(m.entries, e)
		} else {
			for i := range m.entries {
				if m.entries[i].Diagnosis == e.Diagnosis {
					m.entries[i] = e
				}
			}
		}
		m.byDiagnosis[e.Diagnosis] = e
	}
	return m
}

// Default returns the built-in diagnosis code table.
func Default() CodeMap {
	return NewCodeMap(defaultCodes...)
}

// Lookup returns the code entry for diagnosis using an exact, case-sensitive
// match. The diagnosis is not trimmed here; see Resolve.
func (m CodeMap) Lookup(diagnosis string) (Code, bool) {
	c, ok := m.byDiagnosis[diagnosis]
	return c, ok
}

// Resolve returns the ICD-10 code for a raw diagnosis value.
// Leading and trailing whitespace is ignored; unknown diagnoses resolve to
// NotAvailable.
func (m CodeMap) Resolve(diagnosis string) string {
	if c, ok := m.Lookup(strings.TrimSpace(diagnosis)); ok {
		return c.Code
	}
	return NotAvailable
}

// Len returns the number of entries.
func (m CodeMap) Len() int {
	return len(m.entries)
}

// Entries returns the table entries sorted by diagnosis.
func (m CodeMap) Entries() []Code {
	out := make([]Code, len(m.entries))
	copy(out, m.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Diagnosis < out[j].Diagnosis
	})
	return out
}

// Annotate returns a copy of records where each record carries an
// icd10_code field resolved from its diagnosis.
//
// A missing or null diagnosis is treated as empty text; a record without a
// diagnosis key gets diagnosis "" so it still projects onto the report
// columns. The input records are not modified.
func Annotate(records []model.PatientRecord, codes CodeMap) []model.PatientRecord {
	out := make([]model.PatientRecord, len(records))
	for i, r := range records {
		annotated := r.With(model.FieldICD10Code, codes.Resolve(r.Text(model.FieldDiagnosis)))
		if _, ok := annotated.Get(model.FieldDiagnosis); !ok {
			annotated[model.FieldDiagnosis] = ""
		}
		out[i] = annotated
	}
	return out
}
