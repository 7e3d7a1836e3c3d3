package workspace

import "github.com/tabr-dev/tabr/internal/table"

// ViewMode says what a tab is currently showing.
type ViewMode int

const (
	// TableList shows the catalog of tables in the connected database.
	TableList ViewMode = iota
	// TableData shows the rows of one table or query result.
	TableData
	// PipeData shows a table parsed from stdin. There is no database to
	// drill back into, so Esc does nothing here.
	PipeData
)

func (m ViewMode) String() string {
	switch m {
	case TableList:
		return "list"
	case TableData:
		return "data"
	case PipeData:
		return "pipe"
	default:
		return "unknown"
	}
}

// Tab is one independent view of a table: its data, column layout,
// filter and cursor state.
type Tab struct {
	ID      int
	Name    string
	Data    *table.TableData
	Columns *table.ColumnConfig
	Filter  string
	Rows    Viewport
	Cols    Viewport
	Mode    ViewMode

	// listCache holds the table list while the tab is drilled into a
	// table, so Esc can restore it without re-querying.
	listCache *table.TableData
}

// NewTab creates a tab over data with fresh column config and cursor.
func NewTab(id int, name string, data *table.TableData, mode ViewMode) *Tab {
	return &Tab{
		ID:      id,
		Name:    name,
		Data:    data,
		Columns: table.NewColumnConfig(data.ColumnCount()),
		Mode:    mode,
	}
}

// FilteredRows returns the rows matching the tab's filter.
func (t *Tab) FilteredRows() []table.Row {
	return table.FilterRows(t.Data.Rows, t.Filter)
}

// FilteredCount returns how many rows match the filter.
func (t *Tab) FilteredCount() int {
	return len(t.FilteredRows())
}

// SetFilter replaces the filter and resets the row cursor to the top,
// since the old selection index is meaningless against a new row set.
func (t *Tab) SetFilter(f string) {
	t.Filter = f
	t.Rows.Selected = 0
	t.Rows.Offset = 0
}

// VisibleColumns returns the source indices of the tab's visible
// columns in display order.
func (t *Tab) VisibleColumns() []int {
	return t.Columns.VisibleIndices()
}

// SelectedCell returns the value under the cursor, accounting for the
// filter and column visibility. Returns "" when nothing is selected.
func (t *Tab) SelectedCell() string {
	rows := t.FilteredRows()
	if t.Rows.Selected >= len(rows) {
		return ""
	}
	vis := t.VisibleColumns()
	if t.Cols.Selected >= len(vis) {
		return ""
	}
	row := rows[t.Rows.Selected]
	col := vis[t.Cols.Selected]
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// ClampViews repairs both viewports against the current filtered row
// count and visible column count.
func (t *Tab) ClampViews(rowCap, colCap int) {
	t.Rows.Clamp(t.FilteredCount(), rowCap)
	t.Cols.Clamp(t.Columns.VisibleCount(), colCap)
}

// ReplaceData swaps in a new table, resetting columns, filter and both
// cursors. The tab keeps its identity and split placement.
func (t *Tab) ReplaceData(name string, data *table.TableData, mode ViewMode) {
	t.Name = name
	t.Data = data
	t.Columns = table.NewColumnConfig(data.ColumnCount())
	t.Filter = ""
	t.Rows = Viewport{}
	t.Cols = Viewport{}
	t.Mode = mode
}

// EnterTable drills from the table list into a table's data, caching
// the list so Back can restore it.
func (t *Tab) EnterTable(name string, data *table.TableData) {
	if t.Mode == TableList {
		t.listCache = t.Data.Clone()
	}
	t.ReplaceData(name, data, TableData)
}

// Back restores the cached table list. Reports whether there was a
// cached list to return to.
func (t *Tab) Back() bool {
	if t.Mode != TableData || t.listCache == nil {
		return false
	}
	cached := t.listCache
	t.listCache = nil
	t.ReplaceData("Tables", cached, TableList)
	return true
}
