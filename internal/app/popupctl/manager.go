// Package popupctl owns the modal popups and routes keys to the active one.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/handler"
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/keymap"
	"github.com/llehouerou/spotterm/internal/ui/actionmenu"
	"github.com/llehouerou/spotterm/internal/ui/confirm"
	"github.com/llehouerou/spotterm/internal/ui/helpbindings"
	"github.com/llehouerou/spotterm/internal/ui/popup"
	"github.com/llehouerou/spotterm/internal/ui/textinput"
)

// Manager manages all modal popups.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help:      popup.SizeLarge,
			TextInput: popup.SizeInput,
			// All others default to SizeAuto
		},
	}
}

// SetSize updates the screen dimensions and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible reports whether the popup of type t is open.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help, TextInput, Actions, Confirm:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns the open popup with the highest priority.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop in slot t, replacing any popup already there.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes the popup of type t.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case Help, TextInput, Actions, Confirm:
		delete(p.popups, t)
	}
}

// HideAll closes every popup.
func (p *Manager) HideAll() {
	clear(p.popups)
	p.errorMsg = ""
}

func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	return p.width, p.height
}

// --- Show Methods ---

// ShowHelp opens the command help for the bindings in r.
func (p *Manager) ShowHelp(r *keymap.Resolver) tea.Cmd {
	help := helpbindings.New(r)
	return p.Show(Help, &help)
}

// ShowTextInput opens the input line seeded with value.
func (p *Manager) ShowTextInput(title, value string, context any) tea.Cmd {
	ti := textinput.New()
	ti.Start(title, value, context, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// ShowActions opens the action menu for item.
func (p *Manager) ShowActions(item catalog.Item, actions []catalog.Action) tea.Cmd {
	menu := actionmenu.New()
	menu.Show(item, actions, p.width, p.height)
	return p.Show(Actions, &menu)
}

// ShowConfirm opens a yes/no dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowError shows msg until the next key press.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// --- Accessors ---

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// TextInput returns the open input popup, or nil.
func (p *Manager) TextInput() *textinput.Model {
	ti, _ := p.popups[TextInput].(*textinput.Model)
	return ti
}

// Actions returns the open action menu, or nil.
func (p *Manager) Actions() *actionmenu.Model {
	menu, _ := p.popups[Actions].(*actionmenu.Model)
	return menu
}

// --- Key Handling ---

// HandleKey routes a key to the active popup. Any key dismisses the error
// popup. Popups implementing popup.KeyHandler may decline the key so the
// caller can try the next handler; all others consume it.
func (p *Manager) HandleKey(msg tea.KeyMsg) handler.Result {
	if p.errorMsg != "" {
		p.errorMsg = ""
		return handler.HandledNoCmd
	}

	active := p.ActivePopup()
	pop := p.popups[active]
	if pop == nil {
		return handler.NotHandled
	}

	if kh, ok := pop.(popup.KeyHandler); ok {
		return kh.HandleKey(msg)
	}

	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return handler.Handled(cmd)
}

// --- Rendering ---

// RenderOverlay draws open popups over base.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		if t == Error {
			base = popup.Compose(base, popup.RenderError(p.errorMsg, p.width, p.height), p.width, p.height)
			continue
		}

		pop := p.popups[t]
		rendered := popup.RenderBordered(pop.View(), p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width, p.height)
	}
	return base
}
