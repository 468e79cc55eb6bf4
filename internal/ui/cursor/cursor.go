// Package cursor tracks the selected row and scroll offset of a list.
package cursor

import "github.com/gccma/gccma/internal/keymap"

// Cursor manages cursor position and scroll offset for a scrollable list.
// List length and viewport height are passed in since both change with
// filtering and terminal resizes.
type Cursor struct {
	pos    int
	offset int // first visible item
	margin int // items kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves to the first item.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves to the last item.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds keeps the cursor inside a list that shrank, e.g. after a
// filter change. Returns true if the cursor moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.offset = min(c.offset, c.pos)
	return c.pos != old
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves back to the first item.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleAction applies a list movement action and reports whether it was
// one.
func (c *Cursor) HandleAction(a keymap.Action, listLen, height int) bool {
	switch a { //nolint:exhaustive // only movement actions
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.JumpStart()
	case keymap.ActionJumpEnd:
		c.JumpEnd(listLen, height)
	case keymap.ActionPageDown:
		c.Move(max(height/2, 1), listLen, height)
	case keymap.ActionPageUp:
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
