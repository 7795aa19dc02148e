// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/handler"
	"github.com/llehouerou/spotterm/internal/app/navctl"
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/keymap"
)

// searchContext travels with the search input so that canceling restores
// the filter that was active before it opened.
type searchContext struct {
	previous string
}

// handleCommandKey resolves a key through the command table.
func (m *Model) handleCommandKey(msg tea.KeyMsg) handler.Result {
	cmd, ok := m.Resolver.Resolve(msg.String())
	if !ok {
		return handler.NotHandled
	}
	return m.runCommand(cmd)
}

// runCommand executes cmd. Commands the client cannot carry out itself go to
// the Executor.
func (m *Model) runCommand(cmd keymap.Command) handler.Result {
	switch cmd {
	case keymap.CommandNone:
		return handler.NotHandled

	case keymap.CommandQuit:
		return handler.Handled(tea.Quit)

	case keymap.CommandOpenCommandHelp:
		return handler.Handled(m.Popups.ShowHelp(m.Resolver))

	case keymap.CommandClosePopup:
		m.Nav.SetFilter("")
		m.Status = ""
		return handler.HandledNoCmd

	case keymap.CommandSearch:
		filter := m.Nav.Filter()
		return handler.Handled(m.Popups.ShowTextInput("Search", filter, searchContext{previous: filter}))

	case keymap.CommandSelectNext:
		m.Nav.Move(1)
	case keymap.CommandSelectPrevious:
		m.Nav.Move(-1)
	case keymap.CommandPageSelectNext:
		m.Nav.MovePage(1)
	case keymap.CommandPageSelectPrev:
		m.Nav.MovePage(-1)
	case keymap.CommandSelectFirst:
		m.Nav.First()
	case keymap.CommandSelectLast:
		m.Nav.Last()

	case keymap.CommandChooseSelected:
		return handler.Handled(m.chooseSelected())

	case keymap.CommandShowActionsOnSelectedItem:
		return handler.Handled(m.showActionsOnSelected())

	case keymap.CommandShowActionsOnCurrentTrack:
		return handler.Handled(m.showActionsOnCurrentTrack())

	case keymap.CommandAddSelectedItemToQueue:
		item, ok := m.Nav.Selected()
		if !ok {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.execute(Request{Command: cmd, Item: item, Context: m.listContext(item)}))

	case keymap.CommandBrowseUserPlaylists:
		m.openPage(navctl.PagePlaylists)
	case keymap.CommandBrowseFollowedArtists:
		m.openPage(navctl.PageFollowedArtists)
	case keymap.CommandBrowseSavedAlbums:
		m.openPage(navctl.PageSavedAlbums)
	case keymap.CommandLikedTrackPage:
		m.openPage(navctl.PageLikedTracks)

	case keymap.CommandPreviousPage:
		m.Popups.HideAll()
		if !m.Nav.Back() {
			m.Status = "No previous page"
		}

	case keymap.CommandOpenLinkFromClipboard:
		return handler.Handled(ReadLinkCmd(m.Clipboard))

	default:
		return handler.Handled(m.execute(Request{Command: cmd}))
	}
	return handler.HandledNoCmd
}

// openPage switches the browse page. Open popups, a search in progress
// included, belong to the page being left and close.
func (m *Model) openPage(kind navctl.PageKind) {
	m.Popups.HideAll()
	m.Nav.Open(kind)
}

func (m *Model) execute(req Request) tea.Cmd {
	return ExecCmd(m.Executor, req)
}

// listContext returns the playlist item is listed in on the current page.
func (m *Model) listContext(item catalog.Item) catalog.Item {
	page := m.Nav.Current()
	if _, ok := item.(catalog.Track); ok && page.Kind == navctl.PagePlaylistTracks {
		return page.Playlist
	}
	return nil
}

// chooseSelected opens a selected playlist and hands anything else to the
// Executor to play.
func (m *Model) chooseSelected() tea.Cmd {
	item, ok := m.Nav.Selected()
	if !ok {
		return nil
	}
	if p, ok := item.(catalog.Playlist); ok {
		m.openPlaylist(p)
		return nil
	}
	return m.execute(Request{
		Command: keymap.CommandChooseSelected,
		Item:    item,
		Context: m.listContext(item),
	})
}

func (m *Model) openPlaylist(p catalog.Playlist) {
	m.Popups.HideAll()
	m.Nav.OpenPlaylist(p)
}

func (m *Model) showActionsOnSelected() tea.Cmd {
	item, ok := m.Nav.Selected()
	if !ok {
		return nil
	}
	return m.Popups.ShowActions(item, m.actionsFor(item))
}

// actionsFor builds the menu for item as listed on the current page.
func (m *Model) actionsFor(item catalog.Item) []catalog.Action {
	if ctx, ok := m.listContext(item).(catalog.Playlist); ok {
		return catalog.ForPlaylistTrack(item.(catalog.Track), m.Library, m.Library.Owns(ctx))
	}
	return catalog.For(item, m.Library)
}

func (m *Model) showActionsOnCurrentTrack() tea.Cmd {
	if m.NowPlaying == nil {
		m.Status = "Nothing is playing"
		return nil
	}
	return m.Popups.ShowActions(*m.NowPlaying, catalog.For(*m.NowPlaying, m.Library))
}
