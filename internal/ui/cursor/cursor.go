// Package cursor tracks the selected row and the first visible row of a
// scrolling list. List length and viewport height are passed on every call
// because pages grow and shrink while the cursor lives on.
package cursor

import "github.com/llehouerou/encore/internal/keymap"

type Cursor struct {
	pos    int
	top    int
	margin int // rows kept visible above and below the cursor
}

func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int { return c.pos }

// Offset is the index of the first visible row.
func (c Cursor) Offset() int { return c.top }

// Jump selects row pos, clamped to the list, and scrolls it into view.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = min(max(pos, 0), listLen-1)
	c.EnsureVisible(listLen, height)
}

// Move shifts the selection by delta rows.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// EnsureVisible scrolls so the cursor sits inside the viewport with the
// margin respected wherever the list allows it.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if listLen == 0 || height <= 0 {
		return
	}
	if c.pos-c.margin < c.top {
		c.top = c.pos - c.margin
	}
	if last := c.top + height - 1; c.pos+c.margin > last {
		c.top = c.pos + c.margin - height + 1
	}
	c.top = min(max(c.top, 0), max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back onto the list after rows were
// removed. It reports whether the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	if listLen == 0 {
		c.Reset()
		return old != 0
	}
	c.pos = min(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the half-open row range [start, end) on screen.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.top, min(c.top+height, listLen)
}

func (c *Cursor) Reset() {
	c.pos, c.top = 0, 0
}

// HandleAction applies a list navigation action and reports whether a was
// one. Half-page moves use the viewport height.
func (c *Cursor) HandleAction(a keymap.Action, listLen, height int) bool {
	half := max(height/2, 1)
	switch a {
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(half, listLen, height)
	case keymap.ActionPageUp:
		c.Move(-half, listLen, height)
	case keymap.ActionJumpStart:
		c.Reset()
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	default:
		return false
	}
	return true
}
