// Package cursor tracks selection and scroll offset for scrollable lists.
package cursor

// Cursor holds a selected index and the first visible row of a list.
// List length and viewport height are passed per call since both change
// as the window resizes or the list is filtered.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New creates a cursor that keeps margin rows visible around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible index.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump selects pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scroll(listLen, height)
}

// Reset selects the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Clamp pulls the selection back inside a list that shrank.
// It reports whether the selection moved.
func (c *Cursor) Clamp(listLen, height int) bool {
	if listLen == 0 {
		moved := c.pos != 0
		c.Reset()
		return moved
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.scroll(listLen, height)
	return c.pos != old
}

// VisibleRange returns the half-open range [start, end) of rows on screen.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies list navigation for key and reports whether it was one:
// j/down/ctrl+n, k/up/ctrl+p, g/home, G/end, ctrl+d/pgdown, ctrl+u/pgup.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down", "ctrl+n":
		c.Move(1, listLen, height)
	case "k", "up", "ctrl+p":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Jump(0, listLen, height)
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d", "pgdown":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u", "pgup":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	// A margin that fills half the viewport would pin the cursor.
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
