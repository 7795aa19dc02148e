package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/handler"
	"github.com/llehouerou/spotterm/internal/ui/popup"
)

// PopupHarness drives a popup the way the popup manager does and records
// the commands it returns.
type PopupHarness struct {
	popup   popup.Popup
	cmds    []tea.Cmd
	results []handler.Result
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the underlying popup for type assertion.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize sets the popup dimensions.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the popup's rendered content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg passes msg through Update and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	h.record(cmd)
	return cmd
}

// Press routes a key the way the popup manager does: through HandleKey
// when the popup can decline keys, through Update otherwise.
func (h *PopupHarness) Press(msg tea.KeyMsg) handler.Result {
	var res handler.Result
	if kh, ok := h.popup.(popup.KeyHandler); ok {
		res = kh.HandleKey(msg)
	} else {
		var cmd tea.Cmd
		h.popup, cmd = h.popup.Update(msg)
		res = handler.Handled(cmd)
	}
	h.record(res.Cmd)
	h.results = append(h.results, res)
	return res
}

// SendKey presses a rune key.
func (h *PopupHarness) SendKey(key string) handler.Result {
	return h.Press(Runes(key))
}

// Type presses each rune of text as a separate key.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Press(Key(tea.KeySpace))
			continue
		}
		h.Press(Runes(string(r)))
	}
}

// SendSpecialKey presses a non-rune key.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) handler.Result {
	return h.Press(Key(keyType))
}

// SendEnter presses enter.
func (h *PopupHarness) SendEnter() handler.Result {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape presses escape.
func (h *PopupHarness) SendEscape() handler.Result {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendUp presses the up arrow.
func (h *PopupHarness) SendUp() handler.Result {
	return h.SendSpecialKey(tea.KeyUp)
}

// SendDown presses the down arrow.
func (h *PopupHarness) SendDown() handler.Result {
	return h.SendSpecialKey(tea.KeyDown)
}

// SendBackspace presses backspace.
func (h *PopupHarness) SendBackspace() handler.Result {
	return h.SendSpecialKey(tea.KeyBackspace)
}

// Commands returns every command collected since creation or ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands drops the collected commands and results.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
	h.results = nil
}

// Declined returns how many pressed keys the popup left unhandled.
func (h *PopupHarness) Declined() int {
	n := 0
	for _, r := range h.results {
		if !r.Handled {
			n++
		}
	}
	return n
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// AssertViewContains returns a failure message if the view lacks substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns a failure message if the view has substr.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}
