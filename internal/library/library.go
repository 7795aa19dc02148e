// Package library holds a read-only snapshot of the user's saved items.
package library

import (
	"fmt"
	"slices"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/spotterm/internal/catalog"
)

// Data is the raw content of a user library.
type Data struct {
	User            string             `koanf:"user"` // owner name matched against Playlist.Owner
	LikedTracks     []catalog.Track    `koanf:"liked_tracks"`
	SavedAlbums     []catalog.Album    `koanf:"saved_albums"`
	FollowedArtists []catalog.Artist   `koanf:"followed_artists"`
	Playlists       []catalog.Playlist `koanf:"playlists"`
}

type idSet map[catalog.ID]struct{}

func (s idSet) has(id catalog.ID) bool {
	_, ok := s[id]
	return ok
}

// Snapshot answers membership queries in constant time.
// It never changes after construction.
type Snapshot struct {
	user string

	tracks    []catalog.Track
	albums    []catalog.Album
	artists   []catalog.Artist
	playlists []catalog.Playlist

	trackIDs    idSet
	albumIDs    idSet
	artistIDs   idSet
	playlistIDs idSet

	known map[catalog.Kind]map[catalog.ID]catalog.Item
}

// Verify Snapshot implements catalog.Library at compile time.
var _ catalog.Library = (*Snapshot)(nil)

// NewSnapshot indexes data. Duplicate IDs keep their first occurrence.
func NewSnapshot(data Data) *Snapshot {
	s := &Snapshot{user: data.User}
	s.tracks, s.trackIDs = dedupe(data.LikedTracks, catalog.Track.ItemID)
	s.albums, s.albumIDs = dedupe(data.SavedAlbums, catalog.Album.ItemID)
	s.artists, s.artistIDs = dedupe(data.FollowedArtists, catalog.Artist.ItemID)
	s.playlists, s.playlistIDs = dedupe(data.Playlists, catalog.Playlist.ItemID)
	s.index()
	return s
}

// index records every entity reachable from the snapshot, including the
// albums and artists credited on tracks, so links to them resolve.
func (s *Snapshot) index() {
	s.known = make(map[catalog.Kind]map[catalog.ID]catalog.Item)
	add := func(it catalog.Item) {
		if it.ItemID() == "" {
			return
		}
		byID := s.known[it.ItemKind()]
		if byID == nil {
			byID = make(map[catalog.ID]catalog.Item)
			s.known[it.ItemKind()] = byID
		}
		if _, ok := byID[it.ItemID()]; !ok {
			byID[it.ItemID()] = it
		}
	}
	addTrack := func(t catalog.Track) {
		add(t)
		add(t.Album)
		for _, a := range t.Artists {
			add(a)
		}
		for _, a := range t.Album.Artists {
			add(a)
		}
	}

	for _, a := range s.artists {
		add(a)
	}
	for _, al := range s.albums {
		add(al)
		for _, a := range al.Artists {
			add(a)
		}
	}
	for _, p := range s.playlists {
		add(p)
	}
	for _, t := range s.tracks {
		addTrack(t)
	}
	for _, p := range s.playlists {
		for _, t := range p.Tracks {
			addTrack(t)
		}
	}
}

// Empty returns a snapshot with nothing saved.
func Empty() *Snapshot {
	return NewSnapshot(Data{})
}

func dedupe[T any](items []T, id func(T) catalog.ID) ([]T, idSet) {
	set := make(idSet, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		key := id(it)
		if set.has(key) {
			continue
		}
		set[key] = struct{}{}
		out = append(out, it)
	}
	return out, set
}

// Load reads a library snapshot from a TOML file.
func Load(path string) (*Snapshot, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read library %s: %w", path, err)
	}

	var data Data
	if err := k.Unmarshal("", &data); err != nil {
		return nil, fmt.Errorf("decode library %s: %w", path, err)
	}
	return NewSnapshot(data), nil
}

func (s *Snapshot) IsLikedTrack(id catalog.ID) bool      { return s.trackIDs.has(id) }
func (s *Snapshot) HasSavedAlbum(id catalog.ID) bool     { return s.albumIDs.has(id) }
func (s *Snapshot) IsFollowingArtist(id catalog.ID) bool { return s.artistIDs.has(id) }
func (s *Snapshot) HasPlaylist(id catalog.ID) bool       { return s.playlistIDs.has(id) }

// LikedTracks returns the liked tracks in library order.
func (s *Snapshot) LikedTracks() []catalog.Track { return slices.Clone(s.tracks) }

// SavedAlbums returns the saved albums in library order.
func (s *Snapshot) SavedAlbums() []catalog.Album { return slices.Clone(s.albums) }

// FollowedArtists returns the followed artists in library order.
func (s *Snapshot) FollowedArtists() []catalog.Artist { return slices.Clone(s.artists) }

// Playlists returns the user playlists in library order.
func (s *Snapshot) Playlists() []catalog.Playlist { return slices.Clone(s.playlists) }

// User returns the library owner's name.
func (s *Snapshot) User() string { return s.user }

// Owns reports whether the library user owns p, which allows removing
// tracks from it.
func (s *Snapshot) Owns(p catalog.Playlist) bool {
	return s.user != "" && p.Owner == s.user
}

// Find returns the entity of the given kind and ID if the snapshot
// mentions it anywhere. Saved and followed entries take precedence over
// copies embedded in tracks.
func (s *Snapshot) Find(kind catalog.Kind, id catalog.ID) (catalog.Item, bool) {
	it, ok := s.known[kind][id]
	return it, ok
}
