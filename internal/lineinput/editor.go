package lineinput

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Effect describes what an editor did with a key.
type Effect int

const (
	// NotHandled means the editor has no opinion about the key and it should
	// go to the next handler in the chain.
	NotHandled Effect = iota
	// TextChanged means the content was modified.
	TextChanged
	// CursorMoved means only the cursor position changed.
	CursorMoved
	// Acknowledged means the key was consumed without any change, e.g.
	// backspace on an empty line.
	Acknowledged
)

// Handled returns false only for NotHandled.
func (e Effect) Handled() bool {
	return e != NotHandled
}

func (e Effect) String() string {
	switch e {
	case NotHandled:
		return "not_handled"
	case TextChanged:
		return "text_changed"
	case CursorMoved:
		return "cursor_moved"
	case Acknowledged:
		return "acknowledged"
	}
	return "unknown"
}

// Editor turns key events into mutations of a Buffer.
type Editor struct {
	buf *Buffer
}

// NewEditor creates an editor seeded with initial text.
func NewEditor(initial string) *Editor {
	return &Editor{buf: NewString(initial)}
}

// Buffer returns the underlying buffer for read access.
func (e *Editor) Buffer() *Buffer {
	return e.buf
}

// Text returns the current line.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Cursor returns the current insertion point.
func (e *Editor) Cursor() int {
	return e.buf.Cursor()
}

// IsEmpty returns true if the line holds no characters.
func (e *Editor) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// HandleKey applies one key event and reports the outcome.
// At most one mutation happens per call. Alt-modified keys are never
// handled.
func (e *Editor) HandleKey(msg tea.KeyMsg) Effect {
	if msg.Alt {
		return NotHandled
	}

	b := e.buf
	switch msg.Type {
	case tea.KeyRunes:
		rs := printable(msg.Runes)
		if len(rs) == 0 {
			return NotHandled
		}
		b.insert(rs)
		return TextChanged

	case tea.KeySpace:
		b.insert([]rune{' '})
		return TextChanged

	case tea.KeyBackspace:
		if b.IsEmpty() || b.cursor == 0 {
			return Acknowledged
		}
		b.deleteBackward()
		return TextChanged

	case tea.KeyLeft:
		if b.cursor == 0 {
			return Acknowledged
		}
		b.cursor--
		return CursorMoved

	case tea.KeyRight:
		if b.cursor == len(b.runes) {
			return Acknowledged
		}
		b.cursor++
		return CursorMoved
	}
	return NotHandled
}

// printable filters out control and other non-printing runes.
func printable(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return out
}
