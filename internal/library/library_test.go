package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spotterm/internal/catalog"
)

func TestSnapshot_Membership(t *testing.T) {
	s := NewSnapshot(Data{
		LikedTracks:     []catalog.Track{{ID: "t1"}},
		SavedAlbums:     []catalog.Album{{ID: "al1"}},
		FollowedArtists: []catalog.Artist{{ID: "ar1"}},
		Playlists:       []catalog.Playlist{{ID: "pl1"}},
	})

	assert.True(t, s.IsLikedTrack("t1"))
	assert.False(t, s.IsLikedTrack("t2"))
	assert.True(t, s.HasSavedAlbum("al1"))
	assert.False(t, s.HasSavedAlbum("t1"))
	assert.True(t, s.IsFollowingArtist("ar1"))
	assert.False(t, s.IsFollowingArtist("ar2"))
	assert.True(t, s.HasPlaylist("pl1"))
	assert.False(t, s.HasPlaylist("pl2"))
}

func TestSnapshot_Empty(t *testing.T) {
	s := Empty()

	assert.False(t, s.IsLikedTrack("t1"))
	assert.Empty(t, s.LikedTracks())
	assert.Empty(t, s.SavedAlbums())
	assert.Empty(t, s.FollowedArtists())
	assert.Empty(t, s.Playlists())
}

func TestSnapshot_DedupeKeepsFirst(t *testing.T) {
	s := NewSnapshot(Data{
		SavedAlbums: []catalog.Album{
			{ID: "al1", Name: "First"},
			{ID: "al2", Name: "Other"},
			{ID: "al1", Name: "Duplicate"},
		},
	})

	albums := s.SavedAlbums()
	require.Len(t, albums, 2)
	assert.Equal(t, "First", albums[0].Name)
	assert.Equal(t, "Other", albums[1].Name)
}

func TestSnapshot_ListsAreCopies(t *testing.T) {
	s := NewSnapshot(Data{Playlists: []catalog.Playlist{{ID: "pl1", Name: "Mix"}}})

	lists := s.Playlists()
	lists[0].Name = "changed"

	assert.Equal(t, "Mix", s.Playlists()[0].Name)
}

func TestSnapshot_UsableAsCatalogLibrary(t *testing.T) {
	s := NewSnapshot(Data{LikedTracks: []catalog.Track{{ID: "t1"}}})

	actions := catalog.TrackActions(catalog.Track{ID: "t1"}, s)

	assert.Equal(t, catalog.TrackRemoveFromLiked, actions[len(actions)-1])
}

func TestSnapshot_Owns(t *testing.T) {
	s := NewSnapshot(Data{User: "me"})

	assert.True(t, s.Owns(catalog.Playlist{ID: "pl1", Owner: "me"}))
	assert.False(t, s.Owns(catalog.Playlist{ID: "pl2", Owner: "someone"}))
	assert.False(t, Empty().Owns(catalog.Playlist{ID: "pl3"}))
}

func TestSnapshot_Find(t *testing.T) {
	s := NewSnapshot(Data{
		LikedTracks: []catalog.Track{{
			ID:      "t1",
			Name:    "Intro",
			Artists: []catalog.Artist{{ID: "ar9", Name: "Guest"}},
			Album:   catalog.Album{ID: "al1", Name: "Embedded copy"},
		}},
		SavedAlbums: []catalog.Album{{ID: "al1", Name: "Debut", Year: 2001}},
		Playlists: []catalog.Playlist{{
			ID:     "pl1",
			Tracks: []catalog.Track{{ID: "t7", Name: "Deep cut"}},
		}},
	})

	tests := []struct {
		name     string
		kind     catalog.Kind
		id       catalog.ID
		wantName string
		wantOK   bool
	}{
		{"liked track", catalog.KindTrack, "t1", "Intro", true},
		{"saved album wins over embedded", catalog.KindAlbum, "al1", "Debut", true},
		{"artist credited on track", catalog.KindArtist, "ar9", "Guest", true},
		{"playlist track", catalog.KindTrack, "t7", "Deep cut", true},
		{"unknown id", catalog.KindTrack, "t404", "", false},
		{"wrong kind", catalog.KindArtist, "t1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := s.Find(tt.kind, tt.id)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantName, it.DisplayName())
				assert.Equal(t, tt.kind, it.ItemKind())
			}
		})
	}
}

const fixture = `
user = "me"

[[liked_tracks]]
id = "t1"
name = "Intro"
duration_ms = 185000

  [[liked_tracks.artists]]
  id = "ar1"
  name = "The Band"

  [liked_tracks.album]
  id = "al1"
  name = "Debut"

[[saved_albums]]
id = "al1"
name = "Debut"
year = 2001

[[followed_artists]]
id = "ar1"
name = "The Band"
followers = 12345

[[playlists]]
id = "pl1"
name = "Road trip"
owner = "me"
track_count = 42

  [[playlists.tracks]]
  id = "t2"
  name = "Highway"
  duration_ms = 201000
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	tracks := s.LikedTracks()
	require.Len(t, tracks, 1)
	assert.Equal(t, catalog.ID("t1"), tracks[0].ID)
	assert.Equal(t, "Intro", tracks[0].Name)
	assert.Equal(t, 185000, tracks[0].DurationMs)
	require.Len(t, tracks[0].Artists, 1)
	assert.Equal(t, "The Band", tracks[0].Artists[0].Name)
	assert.Equal(t, catalog.ID("al1"), tracks[0].Album.ID)

	assert.True(t, s.HasSavedAlbum("al1"))
	assert.True(t, s.IsFollowingArtist("ar1"))
	assert.Equal(t, 12345, s.FollowedArtists()[0].Followers)
	assert.True(t, s.HasPlaylist("pl1"))
	assert.Equal(t, 42, s.Playlists()[0].TrackCount)
	assert.Equal(t, "me", s.User())
	assert.True(t, s.Owns(s.Playlists()[0]))

	require.Len(t, s.Playlists()[0].Tracks, 1)
	it, ok := s.Find(catalog.KindTrack, "t2")
	require.True(t, ok)
	assert.Equal(t, "Highway", it.DisplayName())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[liked_tracks]\nid ="), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}
