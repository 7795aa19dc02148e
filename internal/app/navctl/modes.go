// Package navctl provides the browse pages and their navigation history.
package navctl

import (
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/ui/cursor"
)

// PageKind identifies a browse page.
type PageKind string

const (
	// PageLikedTracks lists the user's liked tracks.
	PageLikedTracks PageKind = "liked_tracks"
	// PageSavedAlbums lists the albums saved to the library.
	PageSavedAlbums PageKind = "saved_albums"
	// PageFollowedArtists lists the followed artists.
	PageFollowedArtists PageKind = "followed_artists"
	// PagePlaylists lists the user's playlists.
	PagePlaylists PageKind = "playlists"
	// PagePlaylistTracks lists the tracks of one playlist.
	PagePlaylistTracks PageKind = "playlist_tracks"
)

var pageTitles = map[PageKind]string{
	PageLikedTracks:     "Liked tracks",
	PageSavedAlbums:     "Saved albums",
	PageFollowedArtists: "Followed artists",
	PagePlaylists:       "Playlists",
	PagePlaylistTracks:  "Playlist",
}

// Title returns the page heading.
func (k PageKind) Title() string {
	return pageTitles[k]
}

// Page is one entry of the navigation history. It keeps its own selection
// and filter so going back restores them.
type Page struct {
	Kind     PageKind
	Playlist catalog.Playlist // set for PagePlaylistTracks
	Filter   string

	cursor cursor.Cursor
}

// Title returns the page heading, naming the playlist on a tracks page.
func (p Page) Title() string {
	if p.Kind == PagePlaylistTracks && p.Playlist.Name != "" {
		return p.Kind.Title() + ": " + p.Playlist.Name
	}
	return p.Kind.Title()
}
