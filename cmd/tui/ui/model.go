// Package ui is the Bubble Tea front end: it owns the workspace, routes
// keys through the input package, and renders the panes.
package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabr-dev/tabr/internal/export"
	"github.com/tabr-dev/tabr/internal/input"
	"github.com/tabr-dev/tabr/internal/status"
	"github.com/tabr-dev/tabr/internal/table"
	"github.com/tabr-dev/tabr/internal/workspace"
)

// Querier runs SQL against the connected database. Implemented by
// db.Client; tests provide fakes.
type Querier interface {
	Query(ctx context.Context, query string) (*table.TableData, error)
	TableListQuery() string
}

// Recorder persists and recalls query history. Implemented by
// history.Store; nil disables history.
type Recorder interface {
	Record(query string) error
	Recent(n int) ([]string, error)
}

// queryTarget says where a finished query's result goes.
type queryTarget int

const (
	targetReplace queryTarget = iota // replace the focused tab
	targetDrill                      // drill into a table from the list
)

// queryDoneMsg carries a finished query back to the tab that issued
// it, identified by ID so focus changes while the query runs cannot
// redirect the result.
type queryDoneMsg struct {
	tabID  int
	name   string
	data   *table.TableData
	target queryTarget
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type statusTickMsg time.Time

// TuiModel is the Bubble Tea model for the browser.
type TuiModel struct {
	ws     *workspace.Workspace
	mode   input.Mode
	entry  textinput.Model
	status status.Message

	querier Querier
	history Recorder

	exportFormat export.Format

	// history recall state while the query prompt is open
	histEntries []string
	histPos     int
	histDraft   string

	width  int
	height int
	busy   bool

	// injected for tests
	now      func() time.Time
	clip     func(string) error
	exportFn func(headers []string, cols []int, rows []table.Row, f export.Format, path string) error
}

// NewModel builds the model around an initial workspace. querier and
// history may be nil when no database is connected.
func NewModel(ws *workspace.Workspace, querier Querier, history Recorder) *TuiModel {
	entry := textinput.New()
	entry.CharLimit = 4096
	return &TuiModel{
		ws:       ws,
		entry:    entry,
		querier:  querier,
		history:  history,
		width:    80,
		height:   24,
		now:      time.Now,
		clip:     clipboard.WriteAll,
		exportFn: export.Export,
	}
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(m *TuiModel) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

func (m *TuiModel) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (m *TuiModel) setStatus(kind status.Kind, text string) {
	m.status = status.New(kind, text, m.now())
}

// info and fail are shorthands used all over the action handlers.
func (m *TuiModel) info(text string) { m.setStatus(status.Info, text) }
func (m *TuiModel) fail(text string) { m.setStatus(status.Error, text) }
