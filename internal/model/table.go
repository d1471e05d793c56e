package model

// ReportTable is the finalized, column-ordered table used for both console
// display and file export. Every row has exactly len(Columns) cells.
type ReportTable struct {
	// Columns is the header row, in output order.
	Columns []string

	// Rows holds one entry per input record, in input order.
	Rows [][]string
}

// Len returns the number of data rows.
func (t *ReportTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column returns the cells of the named column, or nil if the table has no
// such column.
func (t *ReportTable) Column(name string) []string {
	if t == nil {
		return nil
	}
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	cells := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row[idx]
	}
	return cells
}
