// Package helpbindings provides a scrollable popup listing every command
// with its keys and description.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/spotterm/internal/keymap"
	"github.com/llehouerou/spotterm/internal/ui"
	"github.com/llehouerou/spotterm/internal/ui/popup"
	"github.com/llehouerou/spotterm/internal/ui/render"
	"github.com/llehouerou/spotterm/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var contextLabels = map[string]string{
	"global":      "Global",
	"playback":    "Playback",
	"navigation":  "Navigation",
	"popup":       "Popups",
	"page":        "Pages",
	"track-table": "Track Table",
}

// Row is one command as shown in help.
type Row struct {
	Context string
	Command keymap.Command
	Keys    []string
}

// Rows lists every command bound in r, grouped by the context of its
// default binding in keymap.Contexts order.
func Rows(r *keymap.Resolver) []Row {
	contextOf := make(map[keymap.Command]string, len(keymap.Bindings))
	for _, ctx := range keymap.Contexts {
		for _, b := range keymap.ByContext(ctx) {
			if _, ok := contextOf[b.Command]; !ok {
				contextOf[b.Command] = ctx
			}
		}
	}

	groups := make(map[string][]Row)
	for _, cmd := range r.Commands() {
		ctx := contextOf[cmd]
		groups[ctx] = append(groups[ctx], Row{Context: ctx, Command: cmd, Keys: r.KeysFor(cmd)})
	}

	var rows []Row
	for _, ctx := range keymap.Contexts {
		rows = append(rows, groups[ctx]...)
	}
	return rows
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	rows   []Row
	scroll int
}

// New creates a help popup for the bindings in r.
func New(r *keymap.Resolver) Model {
	return Model{rows: Rows(r)}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scroll = min(m.scroll+1, m.maxScroll())
	case "k", "up":
		m.scroll = max(m.scroll-1, 0)
	case "g", "home":
		m.scroll = 0
	case "G", "end":
		m.scroll = m.maxScroll()
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := m.lines()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l.text))
	}

	end := min(m.scroll+m.visibleHeight(), len(lines))
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	for i := m.scroll; i < end; i++ {
		b.WriteString(lines[i].render(width))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer(len(lines))))
	return b.String()
}

type lineKind int

const (
	lineRow lineKind = iota
	lineHeader
	lineSeparator
	lineBlank
)

type line struct {
	text  string
	kind  lineKind
	split int // byte length of the key column in a row
}

func (l line) render(width int) string {
	s := styles.T().S()
	switch l.kind {
	case lineRow:
		keys, desc := l.text[:l.split], l.text[l.split:]
		return s.Key.Render(keys) + s.Base.Render(render.Pad(desc, width-runewidth.StringWidth(keys)))
	case lineHeader:
		return s.Title.Render(render.Pad(l.text, width))
	case lineSeparator:
		return s.Subtle.Render(render.Separator(width))
	case lineBlank:
		return render.Pad("", width)
	}
	return l.text
}

func (m *Model) lines() []line {
	keyWidth := 0
	for _, r := range m.rows {
		keyWidth = max(keyWidth, runewidth.StringWidth(displayKeys(r.Keys)))
	}

	var out []line
	current := ""
	for _, r := range m.rows {
		if r.Context != current {
			if current != "" {
				out = append(out, line{kind: lineBlank})
			}
			label := contextLabels[r.Context]
			if label == "" {
				label = r.Context
			}
			out = append(out, line{text: label, kind: lineHeader}, line{kind: lineSeparator})
			current = r.Context
		}
		keys := render.Pad(displayKeys(r.Keys), keyWidth) + "  "
		out = append(out, line{text: keys + r.Command.Desc(), split: len(keys)})
	}
	return out
}

func displayKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, ", ")
}

func (m *Model) footer(total int) string {
	if total <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for title, footer, border and padding.
func (m *Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
