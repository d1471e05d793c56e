package icd10

import (
	"testing"

	"github.com/nao1215/ehrtable/internal/model"
)

// TestSummarize tests mapped and unmapped counting.
func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("counts codes and placeholders", func(t *testing.T) {
		t.Parallel()

		table := &model.ReportTable{
			Columns: []string{"patient_id", "icd10_code"},
			Rows: [][]string{
				{"P1", "J45.909"},
				{"P2", NotAvailable},
				{"P3", "E11.9"},
				{"P4", "J45.909"},
			},
		}

		s := Summarize(table)

		if s.Total != 4 {
			t.Errorf("expected Total 4, got %d", s.Total)
		}
		if s.Mapped != 3 {
			t.Errorf("expected Mapped 3, got %d", s.Mapped)
		}
		if s.Unmapped != 1 {
			t.Errorf("expected Unmapped 1, got %d", s.Unmapped)
		}
		if !s.HasUnmapped() {
			t.Error("expected HasUnmapped to be true")
		}

		want := []model.CodeCount{{Code: "E11.9", Count: 1}, {Code: "J45.909", Count: 2}}
		if len(s.Codes) != len(want) {
			t.Fatalf("expected %d codes, got %d", len(want), len(s.Codes))
		}
		for i := range want {
			if s.Codes[i] != want[i] {
				t.Errorf("code %d: expected %+v, got %+v", i, want[i], s.Codes[i])
			}
		}
	})

	t.Run("nil table", func(t *testing.T) {
		t.Parallel()
		s := Summarize(nil)
		if s.Total != 0 || s.Mapped != 0 || s.Unmapped != 0 {
			t.Errorf("expected empty summary, got %+v", s)
		}
	})

	t.Run("table without code column", func(t *testing.T) {
		t.Parallel()
		s := Summarize(&model.ReportTable{Columns: []string{"a"}, Rows: [][]string{{"x"}, {"y"}}})
		if s.Unmapped != 2 {
			t.Errorf("expected 2 unmapped, got %d", s.Unmapped)
		}
	})
}
