// Package handler provides the key dispatch chain: each handler either
// consumes a key or lets it fall through to the next one.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/lineinput"
)

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that consume a key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// FromEffect converts a line editor effect. Only lineinput.NotHandled lets
// the key through; Acknowledged still stops it.
func FromEffect(effect lineinput.Effect, cmd tea.Cmd) Result {
	if !effect.Handled() {
		return NotHandled
	}
	return Handled(cmd)
}

// Handler attempts to handle a key.
type Handler func(msg tea.KeyMsg) Result

// Chain runs handlers in order until one handles the key.
func Chain(msg tea.KeyMsg, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
