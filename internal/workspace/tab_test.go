package workspace

import (
	"testing"

	"github.com/tabr-dev/tabr/internal/table"
)

func TestSetFilterResetsCursor(t *testing.T) {
	tab := NewTab(1, "t", sampleData(), TableData)
	tab.Rows.Selected = 2
	tab.Rows.Offset = 1
	tab.SetFilter("ali")
	if tab.Rows.Selected != 0 || tab.Rows.Offset != 0 {
		t.Fatalf("cursor = %d/%d, want 0/0", tab.Rows.Selected, tab.Rows.Offset)
	}
	if got := tab.FilteredCount(); got != 1 {
		t.Fatalf("FilteredCount = %d, want 1", got)
	}
}

func TestSelectedCellHonorsFilterAndColumns(t *testing.T) {
	tab := NewTab(1, "t", sampleData(), TableData)
	tab.SetFilter("carol")
	if got := tab.SelectedCell(); got != "3" {
		t.Fatalf("SelectedCell = %q, want %q", got, "3")
	}
	tab.Columns.Hide(0)
	tab.ClampViews(10, 10)
	if got := tab.SelectedCell(); got != "Carol" {
		t.Fatalf("SelectedCell = %q, want %q", got, "Carol")
	}
}

func TestSelectedCellEmptyResult(t *testing.T) {
	tab := NewTab(1, "t", sampleData(), TableData)
	tab.SetFilter("nomatch")
	if got := tab.SelectedCell(); got != "" {
		t.Fatalf("SelectedCell = %q, want empty", got)
	}
}

func TestReplaceDataResetsState(t *testing.T) {
	tab := NewTab(1, "t", sampleData(), TableData)
	tab.SetFilter("bob")
	tab.Columns.Hide(1)
	tab.Rows.Selected = 1

	tab.ReplaceData("other", &table.TableData{Headers: []string{"x"}}, TableData)
	if tab.Filter != "" {
		t.Fatalf("filter = %q, want empty", tab.Filter)
	}
	if tab.Rows.Selected != 0 || tab.Cols.Selected != 0 {
		t.Fatal("cursors not reset")
	}
	if got := tab.Columns.VisibleCount(); got != 1 {
		t.Fatalf("VisibleCount = %d, want 1", got)
	}
}

func TestEnterTableAndBack(t *testing.T) {
	list := &table.TableData{
		Headers: []string{"Table"},
		Rows:    []table.Row{{"users"}, {"orders"}},
	}
	tab := NewTab(1, "Tables", list, TableList)
	tab.Rows.Selected = 1

	tab.EnterTable("orders", sampleData())
	if tab.Mode != TableData || tab.Name != "orders" {
		t.Fatalf("mode=%v name=%q after EnterTable", tab.Mode, tab.Name)
	}

	if !tab.Back() {
		t.Fatal("Back returned false with a cached list")
	}
	if tab.Mode != TableList {
		t.Fatalf("mode = %v, want TableList", tab.Mode)
	}
	if got := tab.Data.RowCount(); got != 2 {
		t.Fatalf("restored list has %d rows, want 2", got)
	}

	if tab.Back() {
		t.Fatal("Back succeeded twice")
	}
}

func TestBackDoesNothingForPipeData(t *testing.T) {
	tab := NewTab(1, "Data", sampleData(), PipeData)
	if tab.Back() {
		t.Fatal("Back succeeded on piped data")
	}
}

func TestClampViewsAfterHide(t *testing.T) {
	tab := NewTab(1, "t", sampleData(), TableData)
	tab.Cols.Selected = 1
	tab.Columns.Hide(1)
	tab.ClampViews(10, 10)
	if tab.Cols.Selected != 0 {
		t.Fatalf("Cols.Selected = %d, want 0", tab.Cols.Selected)
	}
}
