package table

import "github.com/mattn/go-runewidth"

// AutoWidths computes the natural display width for every column: the
// widest of the header and any cell, measured in terminal cells, plus
// one for breathing room.
func AutoWidths(t *TableData) []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i]++
	}
	return widths
}
