package model

// Summary counts how many report rows received an ICD-10 code.
// It is derived from a finished ReportTable and never mutated afterwards.
type Summary struct {
	// Total is the number of rows in the table.
	Total int `json:"total"`

	// Mapped is the number of rows whose diagnosis matched a known code.
	Mapped int `json:"mapped"`

	// Unmapped is the number of rows that received the "Not Available" code.
	Unmapped int `json:"unmapped"`

	// Codes lists each assigned code with its row count, ordered by code.
	// The "Not Available" placeholder is not listed.
	Codes []CodeCount `json:"codes,omitempty"`
}

// CodeCount is the number of rows carrying one ICD-10 code.
type CodeCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// HasUnmapped reports whether at least one row has no known code.
func (s Summary) HasUnmapped() bool {
	return s.Unmapped > 0
}
