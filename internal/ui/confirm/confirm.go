// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/ui"
	"github.com/llehouerou/spotterm/internal/ui/popup"
	"github.com/llehouerou/spotterm/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show opens the dialog. context is returned unchanged in Result.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
	m.SetSize(width, height)
}

// Active reports whether the dialog is waiting for an answer.
func (m *Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	var confirmed bool
	switch key.String() {
	case "enter", "y", "Y":
		confirmed = true
	case "esc", "n", "N", "q":
	default:
		return m, nil
	}

	m.active = false
	res := Result{Confirmed: confirmed, Context: m.context}
	return m, func() tea.Msg { return ActionMsg(res) }
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	return s.Title.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render("Enter/Y: confirm, Esc/N: cancel")
}
