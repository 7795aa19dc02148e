package lineinput

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/spotterm/internal/ui/styles"
)

func textStyle() lipgloss.Style {
	return styles.T().S().Base
}

func cursorStyle() lipgloss.Style {
	return styles.T().S().Base.Reverse(true)
}

// View renders the line. An inactive editor renders plain text; an active one
// highlights the character under the cursor, or a trailing space placeholder
// when the cursor is at the end.
func (e *Editor) View(active bool) string {
	return e.ViewWidth(active, 0)
}

// ViewWidth renders like View but keeps the output within width display
// cells, scrolling so the cursor stays visible. A width <= 0 disables the
// limit.
func (e *Editor) ViewWidth(active bool, width int) string {
	if !active {
		text := e.buf.Text()
		if width > 0 {
			text = runewidth.Truncate(text, width, "")
		}
		return textStyle().Render(text)
	}

	before, at, after := e.buf.Segments()
	if at == "" {
		at = " "
	}

	if width > 0 {
		before, after = fitWindow(before, at, after, width)
	}

	return textStyle().Render(before) + cursorStyle().Render(at) + textStyle().Render(after)
}

// fitWindow trims before from the left and after from the right so that
// before+at+after fits in width cells with at always shown.
func fitWindow(before, at, after string, width int) (string, string) {
	avail := width - runewidth.StringWidth(at)
	if avail <= 0 {
		return "", ""
	}

	rs := []rune(before)
	w := runewidth.StringWidth(before)
	for w > avail && len(rs) > 0 {
		w -= runewidth.RuneWidth(rs[0])
		rs = rs[1:]
	}
	before = string(rs)

	after = runewidth.Truncate(after, avail-w, "")
	return before, after
}
