// Package table holds the tabular data model shared by every view:
// parsed rows, per-column display configuration, and row filtering.
package table

// Row is a single record of cell values, ordered by source column.
type Row []string

// TableData is an in-memory table: column headers plus data rows.
type TableData struct {
	Headers []string
	Rows    []Row
}

// ColumnCount returns the number of columns in the table.
func (t *TableData) ColumnCount() int { return len(t.Headers) }

// RowCount returns the number of data rows in the table.
func (t *TableData) RowCount() int { return len(t.Rows) }

// Cell returns the value at (row, col), or "" when either index is out
// of range. Ragged rows are common in piped input, so missing cells are
// treated as empty rather than an error.
func (t *TableData) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Clone returns a deep copy. Used to cache the table list so a tab can
// be restored to it after drilling into a table.
func (t *TableData) Clone() *TableData {
	out := &TableData{
		Headers: append([]string(nil), t.Headers...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}
