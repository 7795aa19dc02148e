// internal/app/handlers_ui.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/popupctl"
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/ui/action"
	"github.com/llehouerou/spotterm/internal/ui/actionmenu"
	"github.com/llehouerou/spotterm/internal/ui/confirm"
	"github.com/llehouerou/spotterm/internal/ui/helpbindings"
	"github.com/llehouerou/spotterm/internal/ui/textinput"
)

// pendingRequest is the confirm dialog context of a destructive action.
type pendingRequest struct {
	req Request
}

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case textinput.Source:
		return m.handleTextInputAction(msg.Action)
	case actionmenu.Source:
		return m.handleActionMenuAction(msg.Action)
	case "confirm":
		return m.handleConfirmAction(msg.Action)
	case "helpbindings":
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.Popups.Hide(popupctl.Help)
		}
	}
	return m, nil
}

// handleTextInputAction applies search edits to the browse filter as they
// are typed. Changed messages may arrive out of order or after the input
// closed, so the filter follows the open input's current text.
func (m Model) handleTextInputAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case textinput.Changed:
		if _, ok := act.Context.(searchContext); !ok {
			return m, nil
		}
		if ti := m.Popups.TextInput(); ti != nil {
			m.Nav.SetFilter(ti.Text())
		}
	case textinput.Result:
		m.Popups.Hide(popupctl.TextInput)
		ctx, ok := act.Context.(searchContext)
		if !ok {
			return m, nil
		}
		if act.Canceled {
			m.Nav.SetFilter(ctx.previous)
		} else {
			m.Nav.SetFilter(act.Text)
		}
	}
	return m, nil
}

func (m Model) handleActionMenuAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case actionmenu.Close:
		m.Popups.Hide(popupctl.Actions)
	case actionmenu.Selected:
		m.Popups.Hide(popupctl.Actions)
		cmd := m.runAction(act.Action, act.Item)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(confirm.Result)
	if !ok {
		return m, nil
	}
	m.Popups.Hide(popupctl.Confirm)

	pending, ok := result.Context.(pendingRequest)
	if !ok || !result.Confirmed {
		return m, nil
	}
	return m, m.execute(pending.req)
}

// runAction carries out a menu choice. Link copies and nested menus are
// handled here; destructive actions ask first; the rest go to the Executor.
func (m *Model) runAction(a catalog.Action, item catalog.Item) tea.Cmd {
	switch a {
	case catalog.TrackCopyLink, catalog.AlbumCopyLink, catalog.ArtistCopyLink, catalog.PlaylistCopyLink:
		return CopyLinkCmd(m.Clipboard, m.LinkBase, item)

	case catalog.TrackShowAlbumActions:
		if t, ok := item.(catalog.Track); ok && t.Album.ID != "" {
			return m.Popups.ShowActions(t.Album, catalog.For(t.Album, m.Library))
		}
		m.Status = "Track has no album"
		return nil

	case catalog.TrackShowArtistActions, catalog.AlbumShowArtistActions:
		if artist, ok := firstArtistOf(item); ok {
			return m.Popups.ShowActions(artist, catalog.For(artist, m.Library))
		}
		m.Status = "No artist credited"
		return nil
	}

	req := Request{Action: a, Item: item, Context: m.listContext(item)}
	if isDestructive(a) {
		return m.Popups.ShowConfirm("Confirm", req.Describe()+"?", pendingRequest{req: req})
	}
	return m.execute(req)
}

func firstArtistOf(item catalog.Item) (catalog.Artist, bool) {
	switch it := item.(type) {
	case catalog.Track:
		return catalog.FirstArtist(it.Artists)
	case catalog.Album:
		return catalog.FirstArtist(it.Artists)
	}
	return catalog.Artist{}, false
}

// isDestructive reports whether a removes something from the user's library.
func isDestructive(a catalog.Action) bool {
	switch a {
	case catalog.TrackRemoveFromLiked,
		catalog.TrackDeleteFromCurrentPlaylist,
		catalog.AlbumRemoveFromLibrary,
		catalog.ArtistUnfollow,
		catalog.PlaylistRemoveFromLibrary:
		return true
	}
	return false
}
