// internal/app/navctl/manager.go
package navctl

import (
	"strings"

	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/library"
	"github.com/llehouerou/spotterm/internal/ui"
	"github.com/llehouerou/spotterm/internal/ui/cursor"
)

// Manager holds the current browse page, the pages behind it and the
// filtered entries on screen.
type Manager struct {
	lib        *library.Snapshot
	current    Page
	history    []Page
	entries    []catalog.Item // unfiltered page content
	items      []catalog.Item // entries matching the filter
	listHeight int
}

// New creates a Manager showing the liked tracks of lib.
func New(lib *library.Snapshot) *Manager {
	n := &Manager{lib: lib, listHeight: 1}
	n.current = newPage(PageLikedTracks)
	n.load()
	return n
}

func newPage(kind PageKind) Page {
	return Page{Kind: kind, cursor: cursor.New(ui.ScrollMargin)}
}

// --- Pages ---

// Current returns the page on screen.
func (n *Manager) Current() Page {
	return n.current
}

// Depth returns the number of pages previous_page can go back through.
func (n *Manager) Depth() int {
	return len(n.history)
}

// Open shows the page of the given kind. Opening the page already on
// screen resets its filter and selection without growing the history.
func (n *Manager) Open(kind PageKind) {
	if n.current.Kind == kind && kind != PagePlaylistTracks {
		n.current = newPage(kind)
		n.load()
		return
	}
	n.push(newPage(kind))
}

// OpenPlaylist shows the tracks of p.
func (n *Manager) OpenPlaylist(p catalog.Playlist) {
	page := newPage(PagePlaylistTracks)
	page.Playlist = p
	n.push(page)
}

func (n *Manager) push(page Page) {
	n.history = append(n.history, n.current)
	n.current = page
	n.load()
}

// Back returns to the previous page with its selection and filter.
// It reports false when there is no previous page.
func (n *Manager) Back() bool {
	if len(n.history) == 0 {
		return false
	}
	last := len(n.history) - 1
	n.current = n.history[last]
	n.history = n.history[:last]
	n.load()
	return true
}

// load reads the entries of the current page from the library and
// reapplies its filter.
func (n *Manager) load() {
	n.entries = entries(n.lib, n.current)
	n.applyFilter()
}

func entries(lib *library.Snapshot, page Page) []catalog.Item {
	switch page.Kind {
	case PageLikedTracks:
		return asItems(lib.LikedTracks())
	case PageSavedAlbums:
		return asItems(lib.SavedAlbums())
	case PageFollowedArtists:
		return asItems(lib.FollowedArtists())
	case PagePlaylists:
		return asItems(lib.Playlists())
	case PagePlaylistTracks:
		return asItems(page.Playlist.Tracks)
	}
	return nil
}

func asItems[T catalog.Item](in []T) []catalog.Item {
	out := make([]catalog.Item, len(in))
	for i, it := range in {
		out[i] = it
	}
	return out
}

// --- Filter ---

// Filter returns the current page's filter text.
func (n *Manager) Filter() string {
	return n.current.Filter
}

// SetFilter narrows the page to entries whose searchable text contains
// filter, ignoring case. The selection moves back to the first match.
func (n *Manager) SetFilter(filter string) {
	if filter == n.current.Filter {
		return
	}
	n.current.Filter = filter
	n.current.cursor.Reset()
	n.applyFilter()
}

func (n *Manager) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(n.current.Filter))
	if needle == "" {
		n.items = n.entries
	} else {
		n.items = make([]catalog.Item, 0, len(n.entries))
		for _, it := range n.entries {
			if strings.Contains(searchText(it), needle) {
				n.items = append(n.items, it)
			}
		}
	}
	n.current.cursor.Clamp(len(n.items), n.listHeight)
}

// searchText returns the lowercased text a filter is matched against.
func searchText(it catalog.Item) string {
	parts := []string{it.DisplayName()}
	switch v := it.(type) {
	case catalog.Track:
		parts = append(parts, catalog.ArtistNames(v.Artists), v.Album.Name)
	case catalog.Album:
		parts = append(parts, catalog.ArtistNames(v.Artists))
	case catalog.Playlist:
		parts = append(parts, v.Owner)
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

// --- Entries ---

// Items returns the entries on screen, after filtering.
func (n *Manager) Items() []catalog.Item {
	return n.items
}

// Total returns the number of entries on the page before filtering.
func (n *Manager) Total() int {
	return len(n.entries)
}

// Selected returns the entry under the cursor.
func (n *Manager) Selected() (catalog.Item, bool) {
	pos := n.current.cursor.Pos()
	if pos < 0 || pos >= len(n.items) {
		return nil, false
	}
	return n.items[pos], true
}

// --- Selection ---

// SetListHeight sets the number of visible rows.
func (n *Manager) SetListHeight(h int) {
	n.listHeight = max(h, 1)
	n.current.cursor.Clamp(len(n.items), n.listHeight)
}

// ListHeight returns the number of visible rows.
func (n *Manager) ListHeight() int {
	return n.listHeight
}

// Move shifts the selection by delta rows.
func (n *Manager) Move(delta int) {
	n.current.cursor.Move(delta, len(n.items), n.listHeight)
}

// MovePage shifts the selection by one screen in direction dir (1 or -1).
func (n *Manager) MovePage(dir int) {
	n.Move(dir * n.listHeight)
}

// First selects the first entry.
func (n *Manager) First() {
	n.current.cursor.Jump(0, len(n.items), n.listHeight)
}

// Last selects the last entry.
func (n *Manager) Last() {
	n.current.cursor.Jump(len(n.items)-1, len(n.items), n.listHeight)
}

// Pos returns the selected index.
func (n *Manager) Pos() int {
	return n.current.cursor.Pos()
}

// VisibleRange returns the half-open range of entries on screen.
func (n *Manager) VisibleRange() (start, end int) {
	return n.current.cursor.VisibleRange(len(n.items), n.listHeight)
}
