package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabr-dev/tabr/internal/db"
	"github.com/tabr-dev/tabr/internal/export"
	"github.com/tabr-dev/tabr/internal/input"
	"github.com/tabr-dev/tabr/internal/nameutil"
	"github.com/tabr-dev/tabr/internal/security"
	"github.com/tabr-dev/tabr/internal/workspace"
)

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampAll()
		return m, nil

	case statusTickMsg:
		return m, statusTick()

	case queryDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.fail("query failed: " + msg.err.Error())
			return m, nil
		}
		// The result belongs to the tab that issued the query, which
		// may no longer be focused, or may be gone entirely.
		tab := m.ws.TabByID(msg.tabID)
		if tab == nil {
			m.info("query finished, but its tab was closed")
			return m, nil
		}
		switch msg.target {
		case targetDrill:
			tab.EnterTable(msg.name, msg.data)
		default:
			tab.ReplaceData(msg.name, msg.data, workspace.TableData)
		}
		m.clampAll()
		return m, nil

	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.fail("export failed: " + msg.err.Error())
		} else {
			m.info("exported to " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		ctx := input.Context{
			Mode:        m.mode,
			SplitActive: m.ws.SplitActive(),
			FocusLeft:   m.ws.FocusLeft(),
			TabCount:    m.ws.Count(),
			View:        m.ws.Focused().Mode,
		}
		return m.apply(input.Route(ctx, msg), msg)
	}
	return m, nil
}

func (m *TuiModel) apply(act input.Action, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tab := m.ws.Focused()

	switch act.Kind {
	case input.ActQuit:
		return m, tea.Quit

	case input.ActMoveRows:
		tab.Rows.MoveBy(act.Delta, tab.FilteredCount(), m.rowCapacity())
	case input.ActJumpFirstRow:
		tab.Rows.JumpFirst(tab.FilteredCount(), m.rowCapacity())
	case input.ActJumpLastRow:
		tab.Rows.JumpLast(tab.FilteredCount(), m.rowCapacity())
	case input.ActMoveCols:
		tab.Cols.MoveBy(act.Delta, tab.Columns.VisibleCount(), m.colCapacity(tab))

	case input.ActNextTab:
		m.ws.NextTab()
	case input.ActPrevTab:
		m.ws.PrevTab()
	case input.ActSwitchTab:
		m.ws.SwitchTo(act.Index)
	case input.ActCloseTab:
		if err := m.ws.CloseTab(); err != nil {
			m.info("cannot close the last tab")
		}
	case input.ActToggleSplit:
		if err := m.ws.ToggleSplit(); err != nil {
			m.info("split view needs at least two tabs")
		}
	case input.ActToggleFocus:
		m.ws.ToggleFocus()
	case input.ActFocusRight:
		m.ws.FocusRight()
	case input.ActCycleSplit:
		m.ws.CycleSplit(act.Delta)

	case input.ActOpenSelected:
		return m.openSelected(tab)
	case input.ActBack:
		if tab.Back() {
			m.clampAll()
		}

	case input.ActStartQuery:
		return m.startQuery()
	case input.ActStartSearch:
		m.mode = input.SearchEntry
		m.entry.Prompt = "/"
		m.entry.SetValue(tab.Filter)
		m.entry.CursorEnd()
		m.entry.Focus()
	case input.ActStartExport:
		m.mode = input.ExportFormat

	case input.ActAdjustWidth:
		m.adjustWidth(tab, act.Delta)
	case input.ActResetColumns:
		tab.Columns.Reset()
		tab.Cols = workspace.Viewport{}
		m.clampAll()
	case input.ActHideColumn:
		m.hideColumn(tab)
	case input.ActShowColumns:
		tab.Columns.ShowAll()
		m.clampAll()
	case input.ActMoveColumn:
		m.moveColumn(tab, act.Delta)

	case input.ActYankCell:
		if err := m.clip(tab.SelectedCell()); err != nil {
			m.fail("copy failed: " + err.Error())
		} else {
			m.info("copied cell to clipboard")
		}

	case input.ActConfirm:
		return m.confirmEntry(tab)
	case input.ActCancel:
		m.mode = input.Normal
		m.entry.Blur()
		m.entry.SetValue("")

	case input.ActHistoryPrev:
		m.recallHistory(1)
	case input.ActHistoryNext:
		m.recallHistory(-1)

	case input.ActPickCSV:
		m.pickFormat(export.CSV)
	case input.ActPickJSON:
		m.pickFormat(export.JSON)

	case input.ActEditorInput:
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		return m, cmd
	}
	return m, nil
}

// clampAll repairs every tab's viewports against the current layout.
// Cheap enough to run after any structural change.
func (m *TuiModel) clampAll() {
	for _, t := range m.ws.Tabs() {
		t.ClampViews(m.rowCapacity(), m.colCapacity(t))
	}
}

func (m *TuiModel) openSelected(tab *workspace.Tab) (tea.Model, tea.Cmd) {
	if m.querier == nil {
		m.fail("no database connection")
		return m, nil
	}
	if m.busy {
		return m, nil
	}
	rows := tab.FilteredRows()
	if tab.Rows.Selected >= len(rows) {
		return m, nil
	}
	name, _ := nameutil.Sanitize(rows[tab.Rows.Selected][0])
	if name == "" {
		return m, nil
	}
	m.busy = true
	m.info("loading " + name)
	q := m.querier
	tabID := tab.ID
	return m, func() tea.Msg {
		data, err := q.Query(context.Background(), db.SelectAllQuery(name))
		return queryDoneMsg{tabID: tabID, name: name, data: data, target: targetDrill, err: err}
	}
}

func (m *TuiModel) startQuery() (tea.Model, tea.Cmd) {
	if m.querier == nil {
		m.fail("no database connection")
		return m, nil
	}
	m.mode = input.QueryEntry
	m.entry.Prompt = ":"
	m.entry.SetValue("")
	m.entry.Focus()
	m.histPos = -1
	m.histDraft = ""
	m.histEntries = nil
	if m.history != nil {
		if recent, err := m.history.Recent(100); err == nil {
			m.histEntries = recent
		}
	}
	return m, nil
}

func (m *TuiModel) confirmEntry(tab *workspace.Tab) (tea.Model, tea.Cmd) {
	value := m.entry.Value()

	switch m.mode {
	case input.QueryEntry:
		query := strings.TrimSpace(value)
		if query == "" {
			m.closeEntry()
			return m, nil
		}
		if m.busy {
			// Keep the prompt open so the typed SQL is not lost.
			m.fail("a query is already running")
			return m, nil
		}
		if err := security.CheckQuery(query); err != nil {
			m.closeEntry()
			m.fail(err.Error())
			return m, nil
		}
		m.closeEntry()
		if m.history != nil {
			_ = m.history.Record(query)
		}
		m.busy = true
		m.info("running query")
		q := m.querier
		tabID := tab.ID
		name := queryTabName(query)
		return m, func() tea.Msg {
			data, err := q.Query(context.Background(), query)
			return queryDoneMsg{tabID: tabID, name: name, data: data, target: targetReplace, err: err}
		}

	case input.SearchEntry:
		m.closeEntry()
		tab.SetFilter(value)
		m.clampAll()
		if value == "" {
			m.info("filter cleared")
		}

	case input.ExportFilename:
		m.closeEntry()
		path := strings.TrimSpace(value)
		if path == "" {
			return m, nil
		}
		if err := nameutil.ValidateFilename(path); err != nil {
			m.fail(err.Error())
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		headers := tab.Data.Headers
		cols := tab.VisibleColumns()
		rows := tab.FilteredRows()
		format := m.exportFormat
		exportFn := m.exportFn
		return m, func() tea.Msg {
			return exportDoneMsg{path: path, err: exportFn(headers, cols, rows, format, path)}
		}
	}
	return m, nil
}

func (m *TuiModel) closeEntry() {
	m.mode = input.Normal
	m.entry.Blur()
	m.entry.SetValue("")
}

// queryTabName derives a tab title from the query text, collapsed to
// one line and truncated to 20 characters.
func queryTabName(query string) string {
	name := strings.Join(strings.Fields(query), " ")
	if r := []rune(name); len(r) > 20 {
		return string(r[:20])
	}
	return name
}

func (m *TuiModel) recallHistory(dir int) {
	if len(m.histEntries) == 0 {
		return
	}
	if m.histPos == -1 {
		if dir < 0 {
			return
		}
		m.histDraft = m.entry.Value()
	}
	pos := m.histPos + dir
	if pos >= len(m.histEntries) {
		return
	}
	if pos < -1 {
		pos = -1
	}
	m.histPos = pos
	if pos == -1 {
		m.entry.SetValue(m.histDraft)
	} else {
		m.entry.SetValue(m.histEntries[pos])
	}
	m.entry.CursorEnd()
}

func (m *TuiModel) pickFormat(f export.Format) {
	m.exportFormat = f
	m.mode = input.ExportFilename
	m.entry.Prompt = "Save as: "
	m.entry.SetValue(export.DefaultFilename(m.ws.Focused().Name, f, m.now()))
	m.entry.CursorEnd()
	m.entry.Focus()
}

func (m *TuiModel) adjustWidth(tab *workspace.Tab, delta int) {
	vis := tab.VisibleColumns()
	if tab.Cols.Selected >= len(vis) {
		return
	}
	src := vis[tab.Cols.Selected]
	auto := autoWidths(tab)
	base := 0
	if src < len(auto) {
		base = auto[src]
	}
	tab.Columns.AdjustWidth(src, delta, base)
	m.clampAll()
}

func (m *TuiModel) hideColumn(tab *workspace.Tab) {
	if tab.Columns.VisibleCount() <= 1 {
		m.info("cannot hide the last visible column")
		return
	}
	vis := tab.VisibleColumns()
	if tab.Cols.Selected >= len(vis) {
		return
	}
	tab.Columns.Hide(vis[tab.Cols.Selected])
	m.clampAll()
}

// moveColumn swaps the selected column with its display neighbor and
// keeps the selection on the moved column.
func (m *TuiModel) moveColumn(tab *workspace.Tab, delta int) {
	vis := tab.VisibleColumns()
	if tab.Cols.Selected >= len(vis) {
		return
	}
	src := vis[tab.Cols.Selected]
	pos, ok := tab.Columns.DisplayPosition(src)
	if !ok {
		return
	}
	tab.Columns.SwapDisplay(pos, pos+delta)
	for i, c := range tab.VisibleColumns() {
		if c == src {
			tab.Cols.Selected = i
			break
		}
	}
	m.clampAll()
}
