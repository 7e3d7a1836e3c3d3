package table

// Width override bounds. Adjustments start from the column's auto width
// and are clamped so a column can never collapse below a readable
// minimum or swallow the whole pane.
const (
	MinColumnWidth = 3
	MaxColumnWidth = 100
)

type columnState struct {
	width   int // 0 = auto-size
	visible bool
}

// ColumnConfig tracks per-column visibility, display order and width
// overrides for one tab. Indices passed to its methods are source
// column indices (positions in TableData.Headers), not display
// positions.
type ColumnConfig struct {
	columns      []columnState
	displayOrder []int
}

// NewColumnConfig creates a config for n columns: all visible,
// auto-width, identity display order.
func NewColumnConfig(n int) *ColumnConfig {
	c := &ColumnConfig{
		columns:      make([]columnState, n),
		displayOrder: make([]int, n),
	}
	for i := range c.columns {
		c.columns[i].visible = true
		c.displayOrder[i] = i
	}
	return c
}

// Reset restores auto widths, full visibility and the source column
// order.
func (c *ColumnConfig) Reset() {
	for i := range c.columns {
		c.columns[i].width = 0
		c.columns[i].visible = true
		c.displayOrder[i] = i
	}
}

// Hide marks a column invisible. Hiding the last visible column is the
// caller's responsibility to refuse.
func (c *ColumnConfig) Hide(col int) {
	if col >= 0 && col < len(c.columns) {
		c.columns[col].visible = false
	}
}

// ShowAll makes every column visible again.
func (c *ColumnConfig) ShowAll() {
	for i := range c.columns {
		c.columns[i].visible = true
	}
}

// VisibleCount returns the number of visible columns.
func (c *ColumnConfig) VisibleCount() int {
	n := 0
	for _, col := range c.columns {
		if col.visible {
			n++
		}
	}
	return n
}

// VisibleIndices returns the source indices of visible columns in
// display order. This is the projection used by rendering and export.
func (c *ColumnConfig) VisibleIndices() []int {
	out := make([]int, 0, len(c.displayOrder))
	for _, i := range c.displayOrder {
		if c.columns[i].visible {
			out = append(out, i)
		}
	}
	return out
}

// AdjustWidth changes the width override for col by delta. When no
// override is set the adjustment starts from base (the column's auto
// width). The result is clamped to [MinColumnWidth, MaxColumnWidth].
func (c *ColumnConfig) AdjustWidth(col, delta, base int) {
	if col < 0 || col >= len(c.columns) {
		return
	}
	cur := c.columns[col].width
	if cur == 0 {
		cur = base
	}
	w := cur + delta
	if w < MinColumnWidth {
		w = MinColumnWidth
	}
	if w > MaxColumnWidth {
		w = MaxColumnWidth
	}
	c.columns[col].width = w
}

// Width returns the override for col and whether one is set.
func (c *ColumnConfig) Width(col int) (int, bool) {
	if col < 0 || col >= len(c.columns) || c.columns[col].width == 0 {
		return 0, false
	}
	return c.columns[col].width, true
}

// IsVisible reports whether col is visible. Out-of-range columns are
// not visible.
func (c *ColumnConfig) IsVisible(col int) bool {
	return col >= 0 && col < len(c.columns) && c.columns[col].visible
}

// DisplayPosition returns the position of col in the display order.
func (c *ColumnConfig) DisplayPosition(col int) (int, bool) {
	for pos, i := range c.displayOrder {
		if i == col {
			return pos, true
		}
	}
	return 0, false
}

// SwapDisplay exchanges two positions in the display order.
func (c *ColumnConfig) SwapDisplay(pos1, pos2 int) {
	if pos1 < 0 || pos1 >= len(c.displayOrder) || pos2 < 0 || pos2 >= len(c.displayOrder) {
		return
	}
	c.displayOrder[pos1], c.displayOrder[pos2] = c.displayOrder[pos2], c.displayOrder[pos1]
}
