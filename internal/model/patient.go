package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Field names of a PatientRecord.
const (
	FieldPatientID          = "patient_id"
	FieldAge                = "age"
	FieldGender             = "gender"
	FieldSymptoms           = "symptoms"
	FieldDoctorObservations = "doctor_observations"
	FieldDiagnosis          = "diagnosis"
	FieldICD10Code          = "icd10_code"
)

// columns is the fixed report column order.
var columns = []string{
	FieldPatientID,
	FieldAge,
	FieldGender,
	FieldSymptoms,
	FieldDoctorObservations,
	FieldDiagnosis,
	FieldICD10Code,
}

// Columns returns the fixed report column order.
// The returned slice is a copy and may be modified by the caller.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// PatientRecord is one EHR entry as decoded from the input file.
// Values are kept as decoded JSON values (string, json.Number, bool, nil,
// []any, map[string]any); only the diagnosis is interpreted, as text.
type PatientRecord map[string]any

// Get returns the raw value of field and whether the key is present.
// A key present with a JSON null value reports ok == true.
func (r PatientRecord) Get(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// Text returns the cell text of field. Missing fields and nulls are "".
func (r PatientRecord) Text(field string) string {
	v, ok := r[field]
	if !ok {
		return ""
	}
	return CellText(v)
}

// With returns a copy of the record with field set to value.
// The receiver is not modified.
func (r PatientRecord) With(field string, value any) PatientRecord {
	out := make(PatientRecord, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[field] = value
	return out
}

// CellText converts a decoded JSON value into the text written to a table cell.
//
// Numbers keep their literal form from the input (40 stays "40", 40.50 stays
// "40.50"), null becomes an empty cell, and nested arrays or objects are
// written as compact JSON.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
