// Package textinput provides a single-line input popup built on lineinput.
package textinput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/handler"
	"github.com/llehouerou/spotterm/internal/lineinput"
	"github.com/llehouerou/spotterm/internal/ui"
	"github.com/llehouerou/spotterm/internal/ui/popup"
	"github.com/llehouerou/spotterm/internal/ui/styles"
)

var (
	_ popup.Popup      = (*Model)(nil)
	_ popup.KeyHandler = (*Model)(nil)
)

const prompt = "> "

// Model is a titled input line. Keys the editor does not recognise are
// declined so the caller can route them to global commands.
type Model struct {
	ui.Base
	title   string
	editor  *lineinput.Editor
	context any
}

// New creates an empty input.
func New() Model {
	return Model{editor: lineinput.NewEditor("")}
}

// Start opens the input with a title and seed text. The cursor starts at
// the beginning of the seed.
func (m *Model) Start(title, initial string, context any, width, height int) {
	m.title = title
	m.editor = lineinput.NewEditor(initial)
	m.context = context
	m.SetSize(width, height)
}

// Reset clears the input.
func (m *Model) Reset() {
	m.title = ""
	m.editor = lineinput.NewEditor("")
	m.context = nil
}

// Text returns the current input.
func (m *Model) Text() string {
	return m.editor.Text()
}

// Cursor returns the editor cursor position.
func (m *Model) Cursor() int {
	return m.editor.Cursor()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// HandleKey implements popup.KeyHandler.
func (m *Model) HandleKey(msg tea.KeyMsg) handler.Result {
	switch msg.Type {
	case tea.KeyEnter:
		res := Result{Text: m.editor.Text(), Context: m.context}
		return handler.Handled(func() tea.Msg { return ActionMsg(res) })
	case tea.KeyEscape:
		res := Result{Canceled: true, Context: m.context}
		return handler.Handled(func() tea.Msg { return ActionMsg(res) })
	}

	effect := m.editor.HandleKey(msg)
	var cmd tea.Cmd
	if effect == lineinput.TextChanged {
		ch := Changed{Text: m.editor.Text(), Context: m.context}
		cmd = func() tea.Msg { return ActionMsg(ch) }
	}
	return handler.FromEffect(effect, cmd)
}

// Update implements popup.Popup. Keys go through HandleKey; declined keys
// produce no command.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m, m.HandleKey(key).Cmd
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	// Match the box popup.RenderBordered draws for popup.SizeInput:
	// border and padding take six columns.
	inner := min(popup.SizeInput.MaxWidth, m.Width()-4) - 6
	lineWidth := max(inner-len(prompt), 1)
	line := s.Muted.Render(prompt) + m.editor.ViewWidth(true, lineWidth)

	return s.Title.Render(m.title) + "\n\n" +
		line + "\n\n" +
		s.Subtle.Render("Enter: confirm, Esc: cancel")
}
