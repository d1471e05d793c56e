package icd10

import (
	"sort"

	"github.com/samber/lo"

	"github.com/nao1215/ehrtable/internal/model"
)

// Summarize counts mapped and unmapped rows of a projected report table.
// A table without an icd10_code column yields a Summary with only Total set
// and every row counted as unmapped.
func Summarize(table *model.ReportTable) model.Summary {
	s := model.Summary{Total: table.Len()}

	codes := table.Column(model.FieldICD10Code)
	if codes == nil {
		s.Unmapped = s.Total
		return s
	}

	s.Unmapped = lo.CountBy(codes, func(code string) bool {
		return code == NotAvailable
	})
	s.Mapped = s.Total - s.Unmapped

	counts := lo.CountValues(lo.Reject(codes, func(code string, _ int) bool {
		return code == NotAvailable
	}))
	for code, n := range counts {
		s.Codes = append(s.Codes, model.CodeCount{Code: code, Count: n})
	}
	sort.Slice(s.Codes, func(i, j int) bool {
		return s.Codes[i].Code < s.Codes[j].Code
	})

	return s
}
