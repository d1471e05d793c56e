package report

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/nao1215/ehrtable/internal/model"
)

// Project builds a ReportTable holding exactly the given columns, in order,
// for every record. A record lacking one of the columns fails the whole
// projection with an error wrapping model.ErrSchema.
//
// A column whose key is present with a null value is not missing; it is
// rendered as an empty cell.
func Project(records []model.PatientRecord, columns []string) (*model.ReportTable, error) {
	for i, r := range records {
		for _, c := range columns {
			if _, ok := r.Get(c); !ok {
				return nil, fmt.Errorf("%w: record %d has no %q field", model.ErrSchema, i, c)
			}
		}
	}

	header := make([]string, len(columns))
	copy(header, columns)

	rows := lo.Map(records, func(r model.PatientRecord, _ int) []string {
		return lo.Map(header, func(c string, _ int) string {
			return r.Text(c)
		})
	})

	return &model.ReportTable{Columns: header, Rows: rows}, nil
}
