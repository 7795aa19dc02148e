// internal/app/view.go
package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/spotterm/internal/app/navctl"
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/icons"
	"github.com/llehouerou/spotterm/internal/keymap"
	"github.com/llehouerou/spotterm/internal/library"
	"github.com/llehouerou/spotterm/internal/ui/headerbar"
	"github.com/llehouerou/spotterm/internal/ui/layout"
	"github.com/llehouerou/spotterm/internal/ui/render"
	"github.com/llehouerou/spotterm/internal/ui/styles"
)

// View renders the browse page with any open popups on top.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	parts := []string{m.renderHeader()}
	if m.tabBarHeight() > 0 {
		parts = append(parts, m.renderTabs())
	}
	parts = append(parts, m.renderList(), m.renderStatus())
	base := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.Popups.RenderOverlay(base)
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	page := m.Nav.Current()

	left := styles.Gradient("spotterm") + "  " + s.Title.Render(render.Sanitize(page.Title()))
	if n, total := len(m.Nav.Items()), m.Nav.Total(); n != total {
		left += s.Muted.Render("  " + strconv.Itoa(n) + "/" + strconv.Itoa(total))
	}
	if f := m.Nav.Filter(); f != "" {
		left += s.Subtle.Render("  /" + render.Sanitize(f))
	}

	right := ""
	if t := m.NowPlaying; t != nil {
		right = s.Muted.Render(icons.Playing() + render.Truncate(t.Name+" · "+catalog.ArtistNames(t.Artists), m.Width/3))
	}

	line := ansi.Truncate(render.Row(left, right, m.Width), m.Width, "")
	return line + "\n" + s.Subtle.Render(render.Separator(m.Width))
}

// pageTabs are the top-level browse pages, in tab bar order.
var pageTabs = []struct {
	kind navctl.PageKind
	cmd  keymap.Command
}{
	{navctl.PageLikedTracks, keymap.CommandLikedTrackPage},
	{navctl.PageSavedAlbums, keymap.CommandBrowseSavedAlbums},
	{navctl.PageFollowedArtists, keymap.CommandBrowseFollowedArtists},
	{navctl.PagePlaylists, keymap.CommandBrowseUserPlaylists},
}

// renderTabs shows the browse pages with their keys. A playlist's tracks
// page keeps the playlists tab active.
func (m Model) renderTabs() string {
	current := m.Nav.Current().Kind
	if current == navctl.PagePlaylistTracks {
		current = navctl.PagePlaylists
	}

	tabs := make([]headerbar.Tab, 0, len(pageTabs))
	for _, pt := range pageTabs {
		tab := headerbar.Tab{Name: pt.kind.Title(), Active: pt.kind == current}
		if keys := m.Resolver.KeysFor(pt.cmd); len(keys) > 0 {
			tab.Key = keys[0]
		}
		tabs = append(tabs, tab)
	}
	return ansi.Truncate(headerbar.Render(tabs, m.Width), m.Width, "")
}

func (m Model) renderList() string {
	s := styles.T().S()
	innerW := max(m.Width-2, 0)
	height := m.listHeight()
	items := m.Nav.Items()

	lines := make([]string, 0, height)
	if len(items) == 0 {
		msg := "Nothing here"
		if m.Nav.Filter() != "" {
			msg = "No matches"
		}
		lines = append(lines, s.Muted.Render(render.TruncateAndPad(msg, innerW)))
	}

	// liked tracks are only marked where the page does not imply it
	var lib *library.Snapshot
	if m.Nav.Current().Kind != navctl.PageLikedTracks {
		lib = m.Library
	}

	start, end := m.Nav.VisibleRange()
	for i := start; i < end; i++ {
		row := formatItem(items[i], lib, innerW)
		if i == m.Nav.Pos() {
			lines = append(lines, s.Cursor.Render(row))
		} else {
			lines = append(lines, s.Base.Render(row))
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", innerW))
	}

	return styles.PanelStyle(true).Width(innerW).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.Status != "" {
		return s.Base.Render(render.TruncateAndPad(m.Status, m.Width))
	}

	var hints []string
	for _, h := range []struct {
		cmd   keymap.Command
		label string
	}{
		{keymap.CommandOpenCommandHelp, "help"},
		{keymap.CommandSearch, "search"},
		{keymap.CommandShowActionsOnSelectedItem, "actions"},
		{keymap.CommandPreviousPage, "back"},
	} {
		keys := m.Resolver.KeysFor(h.cmd)
		if len(keys) == 0 {
			continue
		}
		hints = append(hints, s.Key.Render(keys[0])+" "+s.Subtle.Render(h.label))
	}
	return ansi.Truncate(strings.Join(hints, s.Subtle.Render(" · ")), m.Width, "")
}

// formatItem lays out one list row at exactly width cells. Tracks liked in
// lib get a marker; a nil lib marks nothing.
func formatItem(it catalog.Item, lib *library.Snapshot, width int) string {
	name := icons.Format(it.ItemKind(), it.DisplayName())
	switch v := it.(type) {
	case catalog.Track:
		tail := render.Duration(v.DurationMs)
		if lib != nil && lib.IsLikedTrack(v.ID) {
			tail = icons.Liked() + " " + tail
		}
		fields := []string{name, catalog.ArtistNames(v.Artists), v.Album.Name}
		return columns(width, tail, fields[:layout.TrackColumns(width)]...)
	case catalog.Album:
		year := ""
		if v.Year > 0 {
			year = strconv.Itoa(v.Year)
		}
		return columns(width, year, name, catalog.ArtistNames(v.Artists))
	case catalog.Artist:
		return columns(width, render.Count(v.Followers, "follower"), name)
	case catalog.Playlist:
		return columns(width, render.Count(v.Size(), "track"), name, v.Owner)
	}
	return render.TruncateAndPad(name, width)
}

// columns splits width into equal columns for fields, with tail
// right-aligned in the last cells.
func columns(width int, tail string, fields ...string) string {
	tailW := lipgloss.Width(tail)
	avail := width - tailW - 1
	if avail < 2*len(fields) {
		return render.TruncateAndPad(fields[0], width)
	}

	colW := (avail - (len(fields) - 1)) / len(fields)
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = render.TruncateAndPad(f, colW)
	}
	return render.Pad(render.Row(strings.Join(cells, " "), tail, width), width)
}
