// Package workspace models the session state of the browser: tabs, the
// split layout, and the selection/scroll viewports that keep cursor and
// scroll position consistent as data changes underneath them.
package workspace

// Viewport tracks a selection index and a scroll offset over a list of
// n items of which capacity fit on screen. After Clamp the invariants
// hold: 0 <= Selected < n (or both zero when n == 0), and
// Offset <= Selected < Offset+capacity.
type Viewport struct {
	Selected int
	Offset   int
}

// Clamp repairs the viewport after the item count or the visible
// capacity changed. The offset moves the minimal amount needed to keep
// the selection on screen.
func (v *Viewport) Clamp(n, capacity int) {
	if n <= 0 {
		v.Selected = 0
		v.Offset = 0
		return
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
	if v.Selected > n-1 {
		v.Selected = n - 1
	}
	if capacity < 1 {
		capacity = 1
	}
	if v.Offset > v.Selected {
		v.Offset = v.Selected
	}
	if v.Selected > v.Offset+capacity-1 {
		v.Offset = v.Selected - capacity + 1
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// MoveBy shifts the selection by delta and re-clamps.
func (v *Viewport) MoveBy(delta, n, capacity int) {
	v.Selected += delta
	v.Clamp(n, capacity)
}

// JumpFirst selects the first item.
func (v *Viewport) JumpFirst(n, capacity int) {
	v.Selected = 0
	v.Clamp(n, capacity)
}

// JumpLast selects the last item.
func (v *Viewport) JumpLast(n, capacity int) {
	v.Selected = n - 1
	v.Clamp(n, capacity)
}
