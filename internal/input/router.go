// Package input maps key events to actions. Routing is a pure function
// of a small context snapshot, so every binding is testable without a
// terminal.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabr-dev/tabr/internal/workspace"
)

// Mode is the global input mode. Entry modes capture keystrokes into a
// text field instead of dispatching them as commands.
type Mode int

const (
	Normal Mode = iota
	QueryEntry
	SearchEntry
	ExportFormat
	ExportFilename
)

// PageSize is how many rows ctrl+d/ctrl+u and page keys move.
const PageSize = 10

// WidthStep is how much one +/- keypress changes a column width.
const WidthStep = 2

// ActionKind identifies what the pressed key asks for.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActQuit

	ActMoveRows
	ActJumpFirstRow
	ActJumpLastRow
	ActMoveCols

	ActNextTab
	ActPrevTab
	ActSwitchTab
	ActCloseTab
	ActToggleSplit
	ActToggleFocus
	ActFocusRight
	ActCycleSplit

	ActOpenSelected
	ActBack

	ActStartQuery
	ActStartSearch
	ActStartExport

	ActAdjustWidth
	ActResetColumns
	ActHideColumn
	ActShowColumns
	ActMoveColumn

	ActYankCell

	ActConfirm
	ActCancel
	ActHistoryPrev
	ActHistoryNext
	ActPickCSV
	ActPickJSON

	// ActEditorInput passes the key through to the text field.
	ActEditorInput
)

// Action is a routed key: what to do plus a movement delta or tab
// index where the kind needs one.
type Action struct {
	Kind  ActionKind
	Delta int
	Index int
}

// Context is the snapshot routing decisions are made against.
type Context struct {
	Mode        Mode
	SplitActive bool
	FocusLeft   bool
	TabCount    int
	View        workspace.ViewMode
}

// Route decides the action for a key press. It never mutates anything.
func Route(ctx Context, msg tea.KeyMsg) Action {
	switch ctx.Mode {
	case QueryEntry, SearchEntry, ExportFilename:
		return routeEntry(ctx, msg)
	case ExportFormat:
		return routeExportFormat(msg)
	default:
		return routeNormal(ctx, msg)
	}
}

func routeEntry(ctx Context, msg tea.KeyMsg) Action {
	switch msg.String() {
	case "enter":
		return Action{Kind: ActConfirm}
	case "esc":
		return Action{Kind: ActCancel}
	case "up":
		if ctx.Mode == QueryEntry {
			return Action{Kind: ActHistoryPrev}
		}
	case "down":
		if ctx.Mode == QueryEntry {
			return Action{Kind: ActHistoryNext}
		}
	case "ctrl+c":
		return Action{Kind: ActQuit}
	}
	return Action{Kind: ActEditorInput}
}

func routeExportFormat(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "c", "C":
		return Action{Kind: ActPickCSV}
	case "j", "J":
		return Action{Kind: ActPickJSON}
	case "esc":
		return Action{Kind: ActCancel}
	case "ctrl+c":
		return Action{Kind: ActQuit}
	}
	return Action{Kind: ActNone}
}

func routeNormal(ctx Context, msg tea.KeyMsg) Action {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return Action{Kind: ActQuit}

	case "j", "down":
		return Action{Kind: ActMoveRows, Delta: 1}
	case "k", "up":
		return Action{Kind: ActMoveRows, Delta: -1}
	case "g", "home":
		return Action{Kind: ActJumpFirstRow}
	case "G", "end":
		return Action{Kind: ActJumpLastRow}
	case "ctrl+d", "pgdown":
		return Action{Kind: ActMoveRows, Delta: PageSize}
	case "ctrl+u", "pgup":
		return Action{Kind: ActMoveRows, Delta: -PageSize}

	case "h", "left":
		return Action{Kind: ActMoveCols, Delta: -1}
	case "l", "right":
		return Action{Kind: ActMoveCols, Delta: 1}

	case "+", "=":
		return Action{Kind: ActAdjustWidth, Delta: WidthStep}
	case "-", "_":
		return Action{Kind: ActAdjustWidth, Delta: -WidthStep}
	case "0":
		return Action{Kind: ActResetColumns}
	case "H":
		return Action{Kind: ActHideColumn}
	case "S":
		return Action{Kind: ActShowColumns}
	case "<":
		return Action{Kind: ActMoveColumn, Delta: -1}
	case ">":
		return Action{Kind: ActMoveColumn, Delta: 1}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return Action{Kind: ActSwitchTab, Index: int(key[0] - '1')}
	case "W":
		return Action{Kind: ActCloseTab}
	case "V":
		return Action{Kind: ActToggleSplit}
	case "ctrl+w", "f6":
		return Action{Kind: ActToggleFocus}

	case "tab":
		return routePaneCycle(ctx, 1)
	case "shift+tab":
		return routePaneCycle(ctx, -1)

	case ":":
		return Action{Kind: ActStartQuery}
	case "/":
		return Action{Kind: ActStartSearch}
	case "E":
		if ctx.View == workspace.TableData || ctx.View == workspace.PipeData {
			return Action{Kind: ActStartExport}
		}
		return Action{Kind: ActNone}
	case "y":
		return Action{Kind: ActYankCell}

	case "enter":
		if ctx.View == workspace.TableList {
			return Action{Kind: ActOpenSelected}
		}
		return Action{Kind: ActNone}
	case "esc":
		if ctx.View == workspace.TableData {
			return Action{Kind: ActBack}
		}
		return Action{Kind: ActNone}
	}
	return Action{Kind: ActNone}
}

// routePaneCycle implements the Tab key's pane-dependent behavior: with
// no split it cycles the active tab; with the left pane focused it only
// moves focus right; with the right pane focused it cycles which tab
// the right pane shows, leaving the left pane's tab alone.
func routePaneCycle(ctx Context, delta int) Action {
	if !ctx.SplitActive {
		if delta > 0 {
			return Action{Kind: ActNextTab}
		}
		return Action{Kind: ActPrevTab}
	}
	if ctx.FocusLeft {
		return Action{Kind: ActFocusRight}
	}
	return Action{Kind: ActCycleSplit, Delta: delta}
}
