package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tabr-dev/tabr/internal/input"
	"github.com/tabr-dev/tabr/internal/status"
	"github.com/tabr-dev/tabr/internal/table"
	"github.com/tabr-dev/tabr/internal/workspace"
)

var (
	accentColor = lipgloss.Color("#0ea5a4")
	dimColor    = lipgloss.Color("#94a3b8")
	errorColor  = lipgloss.Color("#ef4444")

	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	splitTabStyle  = lipgloss.NewStyle().Foreground(accentColor)
	tabStyle       = lipgloss.NewStyle().Foreground(dimColor)

	focusedPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor)
	blurredPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dimColor)

	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	selectedColStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accentColor)
	selectedRowStyle = lipgloss.NewStyle().Reverse(true)

	statusInfoStyle  = lipgloss.NewStyle().Foreground(dimColor)
	statusErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	helpStyle        = lipgloss.NewStyle().Foreground(dimColor)
)

// Vertical chrome around the table body: tab bar, pane border (2),
// pane title, header row, separator, bottom bar, help line.
const chromeRows = 8

const colSeparator = "  "

func (m *TuiModel) rowCapacity() int {
	if c := m.height - chromeRows; c > 0 {
		return c
	}
	return 1
}

// paneInnerWidth is the space available for cells inside one pane.
func (m *TuiModel) paneInnerWidth() int {
	w := m.width
	if m.ws.SplitActive() {
		w = m.width / 2
	}
	if w = w - 2; w < 10 {
		w = 10
	}
	return w
}

// colCapacity counts how many visible columns fit from the current
// scroll offset. The viewport treats it as the page size.
func (m *TuiModel) colCapacity(tab *workspace.Tab) int {
	vis := tab.VisibleColumns()
	if len(vis) == 0 {
		return 1
	}
	auto := autoWidths(tab)
	avail := m.paneInnerWidth()
	count := 0
	for _, src := range vis[min(tab.Cols.Offset, len(vis)-1):] {
		w := displayWidth(tab, src, auto)
		if count > 0 {
			w += len(colSeparator)
		}
		if avail < w {
			break
		}
		avail -= w
		count++
	}
	if count == 0 {
		return 1
	}
	return count
}

func autoWidths(tab *workspace.Tab) []int {
	return table.AutoWidths(tab.Data)
}

// displayWidth is the rendered width of a column: the user's override
// if set, otherwise the auto width clamped to the configured bounds.
func displayWidth(tab *workspace.Tab, src int, auto []int) int {
	if w, ok := tab.Columns.Width(src); ok {
		return w
	}
	w := 0
	if src < len(auto) {
		w = auto[src]
	}
	if w < table.MinColumnWidth {
		w = table.MinColumnWidth
	}
	if w > table.MaxColumnWidth {
		w = table.MaxColumnWidth
	}
	return w
}

func (m *TuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	if m.ws.SplitActive() {
		left := m.renderPane(m.ws.Active(), m.ws.FocusLeft())
		right := m.renderPane(m.ws.SplitTab(), !m.ws.FocusLeft())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	} else {
		b.WriteString(m.renderPane(m.ws.Active(), true))
	}
	b.WriteString("\n")
	b.WriteString(m.renderBottomBar())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *TuiModel) renderTabBar() string {
	parts := make([]string, 0, m.ws.Count())
	for i, t := range m.ws.Tabs() {
		label := fmt.Sprintf("%d:%s", i+1, t.Name)
		switch {
		case i == m.ws.ActiveIndex():
			parts = append(parts, activeTabStyle.Render("["+label+"]"))
		case m.ws.SplitActive() && i == m.ws.SplitIndex():
			parts = append(parts, splitTabStyle.Render("<"+label+">"))
		default:
			parts = append(parts, tabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *TuiModel) renderPane(tab *workspace.Tab, focused bool) string {
	inner := m.paneInnerWidth()
	var b strings.Builder
	b.WriteString(m.paneTitle(tab, inner))
	b.WriteString("\n")
	b.WriteString(m.renderTable(tab, inner))

	style := blurredPaneStyle
	if focused {
		style = focusedPaneStyle
	}
	return style.Width(inner).Render(b.String())
}

func (m *TuiModel) paneTitle(tab *workspace.Tab, width int) string {
	total := tab.Data.RowCount()
	filtered := tab.FilteredCount()
	rowInfo := fmt.Sprintf("Row %d/%d", tab.Rows.Selected+1, filtered)
	if filtered == 0 {
		rowInfo = "Row 0/0"
	}
	if tab.Filter != "" {
		rowInfo += fmt.Sprintf(" (filtered from %d)", total)
	}
	visCols := tab.Columns.VisibleCount()
	colInfo := fmt.Sprintf("Col %d/%d", tab.Cols.Selected+1, visCols)
	if hidden := tab.Data.ColumnCount() - visCols; hidden > 0 {
		colInfo += fmt.Sprintf(" (%d hidden)", hidden)
	}
	title := tab.Name
	if tab.Mode == workspace.TableList {
		title = "Tables"
	}
	line := fmt.Sprintf("%s — %s, %s", title, rowInfo, colInfo)
	return headerStyle.Render(runewidth.Truncate(line, width, "…"))
}

func (m *TuiModel) renderTable(tab *workspace.Tab, width int) string {
	rows := tab.FilteredRows()
	vis := tab.VisibleColumns()
	auto := autoWidths(tab)
	capCols := m.colCapacity(tab)

	start := tab.Cols.Offset
	if start > len(vis) {
		start = len(vis)
	}
	end := start + capCols
	if end > len(vis) {
		end = len(vis)
	}
	shown := vis[start:end]

	var b strings.Builder

	// header
	cells := make([]string, len(shown))
	for i, src := range shown {
		w := displayWidth(tab, src, auto)
		text := pad(tab.Data.Headers[src], w)
		if start+i == tab.Cols.Selected {
			text = selectedColStyle.Render(text)
		} else {
			text = headerStyle.Render(text)
		}
		cells[i] = text
	}
	b.WriteString(strings.Join(cells, colSeparator))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(width, 500)))
	b.WriteString("\n")

	rowCap := m.rowCapacity()
	for r := tab.Rows.Offset; r < len(rows) && r < tab.Rows.Offset+rowCap; r++ {
		for i, src := range shown {
			w := displayWidth(tab, src, auto)
			val := ""
			if src < len(rows[r]) {
				val = rows[r][src]
			}
			cells[i] = pad(val, w)
		}
		line := strings.Join(cells, colSeparator)
		if r == tab.Rows.Selected {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(statusInfoStyle.Render("(no rows)"))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// pad truncates or right-pads a cell to exactly w terminal cells.
func pad(s string, w int) string {
	s = runewidth.Truncate(s, w, "…")
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}

func (m *TuiModel) renderBottomBar() string {
	switch m.mode {
	case input.QueryEntry, input.SearchEntry, input.ExportFilename:
		return m.entry.View()
	case input.ExportFormat:
		return "Export format: [C]SV or [J]SON (Esc to cancel)"
	}
	if m.busy {
		return statusInfoStyle.Render("working…")
	}
	if !m.status.Expired(m.now()) {
		if m.status.Kind == status.Error {
			return statusErrorStyle.Render(m.status.Text)
		}
		return statusInfoStyle.Render(m.status.Text)
	}
	return ""
}

func (m *TuiModel) helpLine() string {
	switch m.mode {
	case input.QueryEntry:
		return "enter run · esc cancel · ↑/↓ history"
	case input.SearchEntry:
		return "enter apply filter · esc cancel"
	case input.ExportFilename:
		return "enter export · esc cancel"
	case input.ExportFormat:
		return "c csv · j json · esc cancel"
	}
	if m.ws.Focused().Mode == workspace.TableList {
		return "enter open · j/k move · : query · V split · q quit"
	}
	return "j/k/h/l move · / filter · : query · E export · y yank · V split · q quit"
}
