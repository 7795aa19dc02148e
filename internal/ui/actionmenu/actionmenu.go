// Package actionmenu provides the popup listing actions for a catalog item.
package actionmenu

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/ui"
	"github.com/llehouerou/spotterm/internal/ui/cursor"
	"github.com/llehouerou/spotterm/internal/ui/popup"
	"github.com/llehouerou/spotterm/internal/ui/render"
	"github.com/llehouerou/spotterm/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// overhead is title, blank line, blank line and hint.
const overhead = 4

// Model is a menu of actions for one item. It consumes every key.
type Model struct {
	ui.Base
	item    catalog.Item
	actions []catalog.Action
	cursor  cursor.Cursor
}

// New creates an empty menu.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// Show fills the menu with actions for item, selecting the first.
func (m *Model) Show(item catalog.Item, actions []catalog.Action, width, height int) {
	m.item = item
	m.actions = actions
	m.cursor.Reset()
	m.SetSize(width, height)
}

// Item returns the item the menu acts on.
func (m *Model) Item() catalog.Item {
	return m.item
}

// Actions returns the listed actions in display order.
func (m *Model) Actions() []catalog.Action {
	return m.actions
}

// Selected returns the highlighted action, or nil for an empty menu.
func (m *Model) Selected() catalog.Action {
	if len(m.actions) == 0 {
		return nil
	}
	return m.actions[m.cursor.Pos()]
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "enter":
		a := m.Selected()
		if a == nil {
			return m, nil
		}
		sel := Selected{Action: a, Item: m.item}
		return m, func() tea.Msg { return ActionMsg(sel) }
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(m.actions) {
			m.cursor.Jump(n-1, len(m.actions), m.listHeight())
			return m, nil
		}
		m.cursor.HandleKey(k, len(m.actions), m.listHeight())
	}
	return m, nil
}

func (m *Model) listHeight() int {
	return m.ListHeight(overhead + ui.PanelOverhead)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 || m.item == nil {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Actions: " + render.Truncate(m.item.DisplayName(), m.Width()/2)))
	b.WriteString("\n\n")

	if len(m.actions) == 0 {
		b.WriteString(s.Muted.Render("No actions available"))
	}

	start, end := m.cursor.VisibleRange(len(m.actions), m.listHeight())
	for i := start; i < end; i++ {
		label := strconv.Itoa(i+1) + ". " + m.actions[i].Label()
		if i == m.cursor.Pos() {
			b.WriteString(s.Cursor.Render("> " + label))
		} else {
			b.WriteString(s.Base.Render("  " + label))
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("↑↓/jk navigate · enter select · esc close"))
	return b.String()
}
