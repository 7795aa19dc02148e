// Package catalog builds the context menu actions offered for tracks,
// albums, artists and playlists.
package catalog

import "strings"

// ID is a stable streaming-service identifier.
type ID string

// Kind names an entity kind. It is also the path segment of share links.
type Kind string

const (
	KindTrack    Kind = "track"
	KindAlbum    Kind = "album"
	KindArtist   Kind = "artist"
	KindPlaylist Kind = "playlist"
)

// Item is an entity that can carry a context menu.
// The set of implementations is closed to this package.
type Item interface {
	ItemID() ID
	ItemKind() Kind
	DisplayName() string
	item()
}

// Artist is a performer.
type Artist struct {
	ID        ID     `koanf:"id"`
	Name      string `koanf:"name"`
	Followers int    `koanf:"followers"`
}

// Album is a release by one or more artists.
type Album struct {
	ID      ID       `koanf:"id"`
	Name    string   `koanf:"name"`
	Artists []Artist `koanf:"artists"`
	Year    int      `koanf:"year"`
}

// Track is a single recording.
type Track struct {
	ID         ID       `koanf:"id"`
	Name       string   `koanf:"name"`
	Artists    []Artist `koanf:"artists"`
	Album      Album    `koanf:"album"`
	DurationMs int      `koanf:"duration_ms"`
}

// Playlist is a user or editorial track list.
type Playlist struct {
	ID         ID      `koanf:"id"`
	Name       string  `koanf:"name"`
	Owner      string  `koanf:"owner"`
	TrackCount int     `koanf:"track_count"`
	Tracks     []Track `koanf:"tracks"`
}

// Size returns the declared track count, or the number of listed tracks
// when no count was given.
func (p Playlist) Size() int {
	if p.TrackCount > 0 {
		return p.TrackCount
	}
	return len(p.Tracks)
}

func (t Track) ItemID() ID          { return t.ID }
func (t Track) ItemKind() Kind      { return KindTrack }
func (t Track) DisplayName() string { return t.Name }

func (a Album) ItemID() ID          { return a.ID }
func (a Album) ItemKind() Kind      { return KindAlbum }
func (a Album) DisplayName() string { return a.Name }

func (a Artist) ItemID() ID          { return a.ID }
func (a Artist) ItemKind() Kind      { return KindArtist }
func (a Artist) DisplayName() string { return a.Name }

func (p Playlist) ItemID() ID          { return p.ID }
func (p Playlist) ItemKind() Kind      { return KindPlaylist }
func (p Playlist) DisplayName() string { return p.Name }

func (Track) item()    {}
func (Album) item()    {}
func (Artist) item()   {}
func (Playlist) item() {}

// ArtistNames returns the artist names joined with ", ".
func ArtistNames(artists []Artist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// FirstArtist returns the first credited artist, if any.
func FirstArtist(artists []Artist) (Artist, bool) {
	if len(artists) == 0 {
		return Artist{}, false
	}
	return artists[0], true
}
