// Package action defines how popups report results to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a UI component.
// ActionType returns a stable identifier used in status messages and tests.
type Action interface {
	ActionType() string
}

// Msg wraps an Action with the name of the component that produced it.
type Msg struct {
	Source string // "search", "actionmenu", "help"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that delivers a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
