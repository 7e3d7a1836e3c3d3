package workspace

import (
	"errors"

	"github.com/tabr-dev/tabr/internal/table"
)

var (
	// ErrLastTab means the close was refused because a workspace always
	// keeps at least one tab.
	ErrLastTab = errors.New("cannot close the last tab")
	// ErrSplitNeedsTabs means split view was requested with fewer than
	// two tabs open.
	ErrSplitNeedsTabs = errors.New("split view needs at least two tabs")
)

// Workspace holds the open tabs, which of them is active, and the
// optional split pane. Invariants: tabs is never empty, active and
// split are valid indices, and while the split is on, split != active.
type Workspace struct {
	tabs      []*Tab
	active    int
	split     int
	splitOn   bool
	focusLeft bool
	nextID    int
}

// New creates a workspace with a single initial tab.
func New(name string, data *table.TableData, mode ViewMode) *Workspace {
	w := &Workspace{focusLeft: true, nextID: 2}
	w.tabs = []*Tab{NewTab(1, name, data, mode)}
	return w
}

// Tabs returns the open tabs in order.
func (w *Workspace) Tabs() []*Tab { return w.tabs }

// Count returns the number of open tabs.
func (w *Workspace) Count() int { return len(w.tabs) }

// ActiveIndex returns the index of the active (left pane) tab.
func (w *Workspace) ActiveIndex() int { return w.active }

// Active returns the active tab.
func (w *Workspace) Active() *Tab { return w.tabs[w.active] }

// SplitIndex returns the index shown in the right pane, valid only
// while SplitActive.
func (w *Workspace) SplitIndex() int { return w.split }

// SplitTab returns the tab in the right pane, or nil when no split.
func (w *Workspace) SplitTab() *Tab {
	if !w.splitOn {
		return nil
	}
	return w.tabs[w.split]
}

// SplitActive reports whether the split pane is on.
func (w *Workspace) SplitActive() bool { return w.splitOn }

// FocusLeft reports whether input goes to the left pane. Always true
// without a split.
func (w *Workspace) FocusLeft() bool { return !w.splitOn || w.focusLeft }

// Focused returns the tab that receives input.
func (w *Workspace) Focused() *Tab {
	if w.FocusLeft() {
		return w.tabs[w.active]
	}
	return w.tabs[w.split]
}

// TabByID returns the tab with the given ID, or nil if it was closed.
func (w *Workspace) TabByID(id int) *Tab {
	for _, t := range w.tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddTab opens a new tab and makes it active.
func (w *Workspace) AddTab(name string, data *table.TableData, mode ViewMode) *Tab {
	t := NewTab(w.nextID, name, data, mode)
	w.nextID++
	w.tabs = append(w.tabs, t)
	w.active = len(w.tabs) - 1
	w.normalize()
	return t
}

// CloseTab closes the focused pane's tab. The last tab cannot close.
func (w *Workspace) CloseTab() error {
	if len(w.tabs) == 1 {
		return ErrLastTab
	}
	idx := w.active
	if !w.FocusLeft() {
		idx = w.split
	}
	w.tabs = append(w.tabs[:idx], w.tabs[idx+1:]...)

	adjust := func(i int) int {
		if i > idx {
			return i - 1
		}
		if i == idx && i >= len(w.tabs) {
			return len(w.tabs) - 1
		}
		return i
	}
	w.active = adjust(w.active)
	w.split = adjust(w.split)
	w.normalize()
	return nil
}

// SwitchTo makes tab i active. Out-of-range indices are ignored.
func (w *Workspace) SwitchTo(i int) {
	if i < 0 || i >= len(w.tabs) {
		return
	}
	w.active = i
	w.normalize()
}

// NextTab activates the tab after the current one, wrapping.
func (w *Workspace) NextTab() {
	w.active = (w.active + 1) % len(w.tabs)
	w.normalize()
}

// PrevTab activates the tab before the current one, wrapping.
func (w *Workspace) PrevTab() {
	w.active = (w.active - 1 + len(w.tabs)) % len(w.tabs)
	w.normalize()
}

// ToggleSplit turns the split pane on or off. Turning it on picks the
// tab after the active one for the right pane; turning it off returns
// focus to the left pane.
func (w *Workspace) ToggleSplit() error {
	if w.splitOn {
		w.splitOn = false
		w.focusLeft = true
		return nil
	}
	if len(w.tabs) < 2 {
		return ErrSplitNeedsTabs
	}
	w.splitOn = true
	w.split = (w.active + 1) % len(w.tabs)
	w.focusLeft = true
	return nil
}

// ToggleFocus moves input focus between the two panes. No-op without a
// split.
func (w *Workspace) ToggleFocus() {
	if w.splitOn {
		w.focusLeft = !w.focusLeft
	}
}

// FocusRight moves focus to the right pane. No-op without a split.
func (w *Workspace) FocusRight() {
	if w.splitOn {
		w.focusLeft = false
	}
}

// CycleSplit advances the right pane to the next tab in direction
// delta, skipping the active tab so the panes never show the same one.
func (w *Workspace) CycleSplit(delta int) {
	if !w.splitOn || len(w.tabs) < 2 {
		return
	}
	n := len(w.tabs)
	i := w.split
	for range w.tabs {
		i = (i + delta + n) % n
		if i != w.active {
			w.split = i
			return
		}
	}
}

// normalize repairs the index invariants after any structural change.
func (w *Workspace) normalize() {
	n := len(w.tabs)
	if w.active < 0 {
		w.active = 0
	}
	if w.active >= n {
		w.active = n - 1
	}
	if w.split < 0 {
		w.split = 0
	}
	if w.split >= n {
		w.split = n - 1
	}
	if w.splitOn {
		if n < 2 {
			w.splitOn = false
			w.focusLeft = true
		} else if w.split == w.active {
			w.split = (w.active + 1) % n
		}
	}
	if !w.splitOn {
		w.focusLeft = true
	}
}
