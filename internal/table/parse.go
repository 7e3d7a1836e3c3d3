package table

import (
	"errors"
	"strings"
)

// ErrNoTable is returned when the input contains no recognizable table.
var ErrNoTable = errors.New("no table found in input")

// ParsePSQL parses psql-style aligned output:
//
//	 id | name
//	----+------
//	  1 | ada
//	 (1 row)
//
// The first non-empty line is the header, the following separator line
// (dashes and plus signs) is required, and a trailing "(N rows)" footer
// is ignored. Cells are split on '|' and trimmed.
func ParsePSQL(input string) (*TableData, error) {
	lines := strings.Split(input, "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 || headerIdx+1 >= len(lines) {
		return nil, ErrNoTable
	}
	if !isSeparator(lines[headerIdx+1]) {
		return nil, ErrNoTable
	}

	headers := splitCells(lines[headerIdx])
	if len(headers) == 0 {
		return nil, ErrNoTable
	}

	data := &TableData{Headers: headers}
	for _, line := range lines[headerIdx+2:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isRowCountFooter(trimmed) {
			break
		}
		data.Rows = append(data.Rows, splitCells(line))
	}
	return data, nil
}

func splitCells(line string) Row {
	parts := strings.Split(line, "|")
	cells := make(Row, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparator matches the dashed line psql prints under the header,
// e.g. "----+------".
func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	seen := false
	for _, r := range trimmed {
		switch r {
		case '-':
			seen = true
		case '+', ' ':
		default:
			return false
		}
	}
	return seen
}

// isRowCountFooter matches the "(1 row)" / "(42 rows)" trailer.
func isRowCountFooter(line string) bool {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "("), ")")
	fields := strings.Fields(inner)
	if len(fields) != 2 {
		return false
	}
	if fields[1] != "row" && fields[1] != "rows" {
		return false
	}
	for _, r := range fields[0] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
