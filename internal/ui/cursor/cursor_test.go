package cursor

import (
	"testing"

	"github.com/gccma/gccma/internal/keymap"
)

func TestMove_Clamps(t *testing.T) {
	c := New(0)
	c.Move(-1, 5, 10)
	if c.Pos() != 0 {
		t.Errorf("Pos = %d, want 0", c.Pos())
	}
	c.Move(10, 5, 10)
	if c.Pos() != 4 {
		t.Errorf("Pos = %d, want 4", c.Pos())
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(2)
	c.Move(3, 0, 10)
	c.Jump(3, 0, 10)
	c.JumpEnd(0, 10)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty list moved cursor to %d/%d", c.Pos(), c.Offset())
	}
}

func TestScrollKeepsMargin(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		moves      int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"no scroll needed", 2, 2, 20, 10, 2, 0},
		{"scrolls down with margin", 2, 8, 20, 10, 8, 1},
		{"offset clamps at end", 2, 19, 20, 10, 19, 10},
		{"margin shrinks on tiny viewport", 5, 3, 20, 3, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			for range tt.moves {
				c.Move(1, tt.listLen, tt.height)
			}
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("pos/offset = %d/%d, want %d/%d", c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestJumpEndThenStart(t *testing.T) {
	c := New(1)
	c.JumpEnd(30, 10)
	if c.Pos() != 29 || c.Offset() != 20 {
		t.Errorf("JumpEnd pos/offset = %d/%d", c.Pos(), c.Offset())
	}
	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart pos/offset = %d/%d", c.Pos(), c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(8, 10, 5)
	if !c.ClampToBounds(3) {
		t.Error("expected cursor to move")
	}
	if c.Pos() != 2 || c.Offset() > c.Pos() {
		t.Errorf("pos/offset = %d/%d", c.Pos(), c.Offset())
	}
	if c.ClampToBounds(3) {
		t.Error("second clamp should be a no-op")
	}
	if !c.ClampToBounds(0) || c.Pos() != 0 {
		t.Error("empty list should reset cursor")
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	if s, e := c.VisibleRange(0, 5); s != 0 || e != 0 {
		t.Errorf("empty = %d,%d", s, e)
	}
	if s, e := c.VisibleRange(3, 5); s != 0 || e != 3 {
		t.Errorf("short list = %d,%d", s, e)
	}
	c.Jump(9, 10, 5)
	if s, e := c.VisibleRange(10, 5); s != 5 || e != 10 {
		t.Errorf("scrolled = %d,%d", s, e)
	}
}

func TestHandleAction(t *testing.T) {
	c := New(0)
	steps := []struct {
		action  keymap.Action
		handled bool
		wantPos int
	}{
		{keymap.ActionMoveDown, true, 1},
		{keymap.ActionPageDown, true, 3},
		{keymap.ActionJumpEnd, true, 9},
		{keymap.ActionMoveUp, true, 8},
		{keymap.ActionPageUp, true, 6},
		{keymap.ActionJumpStart, true, 0},
		{keymap.ActionSelect, false, 0},
	}
	for _, s := range steps {
		handled := c.HandleAction(s.action, 10, 4)
		if handled != s.handled || c.Pos() != s.wantPos {
			t.Errorf("%s: handled=%v pos=%d, want %v %d", s.action, handled, c.Pos(), s.handled, s.wantPos)
		}
	}
}
