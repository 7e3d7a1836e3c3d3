package table

import "testing"

func TestParsePSQLBasic(t *testing.T) {
	input := ` id | name  | city
----+-------+------
  1 | Alice | NYC
  2 | Bob   | LA
(2 rows)
`
	data, err := ParsePSQL(input)
	if err != nil {
		t.Fatalf("ParsePSQL: %v", err)
	}
	if got := data.ColumnCount(); got != 3 {
		t.Fatalf("ColumnCount = %d, want 3", got)
	}
	if data.Headers[1] != "name" {
		t.Fatalf("Headers[1] = %q, want %q", data.Headers[1], "name")
	}
	if got := data.RowCount(); got != 2 {
		t.Fatalf("RowCount = %d, want 2", got)
	}
	if got := data.Cell(1, 2); got != "LA" {
		t.Fatalf("Cell(1,2) = %q, want %q", got, "LA")
	}
}

func TestParsePSQLSingleRowFooter(t *testing.T) {
	input := ` n
---
 1
(1 row)
`
	data, err := ParsePSQL(input)
	if err != nil {
		t.Fatalf("ParsePSQL: %v", err)
	}
	if got := data.RowCount(); got != 1 {
		t.Fatalf("RowCount = %d, want 1", got)
	}
}

func TestParsePSQLLeadingBlankLines(t *testing.T) {
	input := "\n\n a | b\n---+---\n 1 | 2\n"
	data, err := ParsePSQL(input)
	if err != nil {
		t.Fatalf("ParsePSQL: %v", err)
	}
	if got := data.RowCount(); got != 1 {
		t.Fatalf("RowCount = %d, want 1", got)
	}
	if got := data.Cell(0, 1); got != "2" {
		t.Fatalf("Cell(0,1) = %q, want %q", got, "2")
	}
}

func TestParsePSQLStopsAtBlankLine(t *testing.T) {
	input := " a | b\n---+---\n 1 | 2\n\nnoise after the table\n"
	data, err := ParsePSQL(input)
	if err != nil {
		t.Fatalf("ParsePSQL: %v", err)
	}
	if got := data.RowCount(); got != 1 {
		t.Fatalf("RowCount = %d, want 1", got)
	}
}

func TestParsePSQLErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "\n\n\n"},
		{"no separator", " a | b\n 1 | 2\n"},
		{"header only", " a | b\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePSQL(tc.input); err == nil {
				t.Fatalf("ParsePSQL(%q) succeeded, want error", tc.input)
			}
		})
	}
}

func TestIsRowCountFooter(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"(1 row)", true},
		{"(42 rows)", true},
		{"(0 rows)", true},
		{"(many rows)", false},
		{"(1 row", false},
		{"1 row)", false},
		{"(1 row extra)", false},
	}
	for _, tc := range cases {
		if got := isRowCountFooter(tc.line); got != tc.want {
			t.Errorf("isRowCountFooter(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
