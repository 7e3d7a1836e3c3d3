package table

import "strings"

// MatchRow reports whether any cell of row contains needle,
// case-insensitively. An empty needle matches every row.
func MatchRow(row Row, needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

// FilterRows returns the rows that match needle. With an empty needle
// the input slice is returned unchanged, so callers must not mutate the
// result.
func FilterRows(rows []Row, needle string) []Row {
	if needle == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if MatchRow(r, needle) {
			out = append(out, r)
		}
	}
	return out
}
