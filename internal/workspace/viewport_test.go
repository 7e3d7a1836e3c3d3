package workspace

import "testing"

func TestViewportScrollsOnlyWhenNeeded(t *testing.T) {
	// Capacity 3 over 10 items: moving down from the top scrolls only
	// once the selection passes the last visible line.
	v := Viewport{}
	wantOffsets := []int{0, 0, 0, 1}
	for i, want := range wantOffsets {
		if i > 0 {
			v.MoveBy(1, 10, 3)
		}
		if v.Offset != want {
			t.Fatalf("step %d: Offset = %d, want %d", i, v.Offset, want)
		}
		if v.Selected != i {
			t.Fatalf("step %d: Selected = %d, want %d", i, v.Selected, i)
		}
	}
}

func TestViewportClampShrink(t *testing.T) {
	v := Viewport{Selected: 9, Offset: 7}
	v.Clamp(5, 3)
	if v.Selected != 4 {
		t.Fatalf("Selected = %d, want 4", v.Selected)
	}
	if v.Offset > v.Selected || v.Selected > v.Offset+2 {
		t.Fatalf("selection off screen: Selected=%d Offset=%d", v.Selected, v.Offset)
	}
}

func TestViewportEmpty(t *testing.T) {
	v := Viewport{Selected: 3, Offset: 2}
	v.Clamp(0, 5)
	if v.Selected != 0 || v.Offset != 0 {
		t.Fatalf("empty clamp: Selected=%d Offset=%d, want 0,0", v.Selected, v.Offset)
	}
}

func TestViewportJumpAndPage(t *testing.T) {
	v := Viewport{}
	v.JumpLast(20, 5)
	if v.Selected != 19 {
		t.Fatalf("JumpLast: Selected = %d, want 19", v.Selected)
	}
	if v.Offset != 15 {
		t.Fatalf("JumpLast: Offset = %d, want 15", v.Offset)
	}
	v.JumpFirst(20, 5)
	if v.Selected != 0 || v.Offset != 0 {
		t.Fatalf("JumpFirst: Selected=%d Offset=%d, want 0,0", v.Selected, v.Offset)
	}
	v.MoveBy(10, 20, 5)
	if v.Selected != 10 {
		t.Fatalf("page down: Selected = %d, want 10", v.Selected)
	}
	v.MoveBy(-100, 20, 5)
	if v.Selected != 0 {
		t.Fatalf("over-move up: Selected = %d, want 0", v.Selected)
	}
}

func TestViewportScrollUp(t *testing.T) {
	v := Viewport{Selected: 5, Offset: 5}
	v.MoveBy(-1, 10, 3)
	if v.Selected != 4 || v.Offset != 4 {
		t.Fatalf("Selected=%d Offset=%d, want 4,4", v.Selected, v.Offset)
	}
}
