package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testLinkBase = "https://open.spotify.com"

func TestLink(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Track{ID: "t1"}, testLinkBase + "/track/t1"},
		{Album{ID: "al1"}, testLinkBase + "/album/al1"},
		{Artist{ID: "ar1"}, testLinkBase + "/artist/ar1"},
		{Playlist{ID: "p1"}, testLinkBase + "/playlist/p1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.item.ItemKind()), func(t *testing.T) {
			assert.Equal(t, tt.want, Link(testLinkBase, tt.item))
			assert.Equal(t, tt.want, Link(testLinkBase+"/", tt.item), "trailing slash on testLinkBase")
		})
	}
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		wantKind Kind
		wantID   ID
		wantOK   bool
	}{
		{"track", testLinkBase + "/track/4uLU6hMCjMI75M1A2tKUQC", KindTrack, "4uLU6hMCjMI75M1A2tKUQC", true},
		{"query stripped", testLinkBase + "/album/al1?si=abc", KindAlbum, "al1", true},
		{"trailing slash", testLinkBase + "/artist/ar1/", KindArtist, "ar1", true},
		{"surrounding space", "  " + testLinkBase + "/playlist/p1\n", KindPlaylist, "p1", true},
		{"uri form", "spotify:track:t9", KindTrack, "t9", true},
		{"other host", "https://example.com/track/t1", "", "", false},
		{"unknown kind", testLinkBase + "/show/s1", "", "", false},
		{"missing id", testLinkBase + "/track/", "", "", false},
		{"extra segments", testLinkBase + "/track/t1/extra", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id, ok := ParseLink(testLinkBase, tt.link)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestLink_RoundTrip(t *testing.T) {
	p := Playlist{ID: "p42"}

	kind, id, ok := ParseLink(testLinkBase, Link(testLinkBase, p))

	assert.True(t, ok)
	assert.Equal(t, KindPlaylist, kind)
	assert.Equal(t, p.ID, id)
}

func TestPlaylist_Size(t *testing.T) {
	assert.Equal(t, 12, Playlist{TrackCount: 12, Tracks: []Track{{ID: "t1"}}}.Size())
	assert.Equal(t, 2, Playlist{Tracks: []Track{{ID: "t1"}, {ID: "t2"}}}.Size())
	assert.Zero(t, Playlist{}.Size())
}
