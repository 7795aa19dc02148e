// internal/app/update.go
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/handler"
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/errmsg"
	"github.com/llehouerou/spotterm/internal/keymap"
	"github.com/llehouerou/spotterm/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleUIAction(msg)

	case ExecResultMsg:
		return m.handleExecResult(msg)

	case LinkCopiedMsg:
		return m.handleLinkCopied(msg)

	case ClipboardLinkMsg:
		return m.handleClipboardLink(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	m.Nav.SetListHeight(m.listHeight())
	return m, nil
}

// handleKeyMsg offers the key to the active popup first. Keys the popup
// declines, such as function keys typed into the search line, go on to
// the command table.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, cmd := handler.Chain(msg, m.Popups.HandleKey, m.handleCommandKey)
	return m, cmd
}

func (m Model) handleExecResult(msg ExecResultMsg) (tea.Model, tea.Cmd) {
	req := msg.Request
	switch {
	case errors.Is(msg.Err, ErrOffline):
		m.Status = "Offline: " + req.Describe()
	case msg.Err != nil:
		op := errmsg.OpCommandRun
		if req.Action != nil {
			op = errmsg.OpActionRun
		}
		m.Popups.ShowError(errmsg.FormatWith(op, req.Describe(), msg.Err))
	default:
		m.Status = req.Describe()
		if t, ok := req.Item.(catalog.Track); ok && req.Command == keymap.CommandChooseSelected {
			m.NowPlaying = &t
		}
	}
	return m, nil
}

func (m Model) handleLinkCopied(msg LinkCopiedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpLinkCopy, msg.Item.DisplayName(), msg.Err))
		return m, nil
	}
	m.Status = "Copied " + msg.Link
	return m, nil
}

// handleClipboardLink opens the entity named by a share link: a playlist
// opens its tracks page, anything else its action menu.
func (m Model) handleClipboardLink(msg ClipboardLinkMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Popups.ShowError(errmsg.Format(errmsg.OpLinkOpen, msg.Err))
		return m, nil
	}

	kind, id, ok := catalog.ParseLink(m.LinkBase, msg.Text)
	if !ok {
		m.Status = "Clipboard does not hold a link"
		return m, nil
	}
	item, ok := m.Library.Find(kind, id)
	if !ok {
		m.Status = fmt.Sprintf("No %s %s in the library", kind, id)
		return m, nil
	}

	if p, ok := item.(catalog.Playlist); ok {
		m.openPlaylist(p)
		return m, nil
	}
	return m, m.Popups.ShowActions(item, catalog.For(item, m.Library))
}
