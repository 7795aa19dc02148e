package icons

import "github.com/llehouerou/spotterm/internal/catalog"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Track    string
	Artist   string
	Album    string
	Playlist string
	Liked    string
	Playing  string
}

var (
	nerdIcons = Icons{
		Track:    "\uf001 ",     // nf-fa-music
		Artist:   "\uf007 ",     // nf-fa-user
		Album:    "\U000f0025 ", // nf-md-album
		Playlist: "\U000f0cb8 ", // nf-md-playlist_music
		Liked:    "\U000f02d0",  // nf-md-heart
		Playing:  "\U000f040a ", // nf-md-play
	}

	unicodeIcons = Icons{
		Track:    "🎵 ",
		Artist:   "👤 ",
		Album:    "💿 ",
		Playlist: "📋 ",
		Liked:    "♥",
		Playing:  "▶ ",
	}

	noneIcons = Icons{
		Liked:   "*",
		Playing: "> ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// For returns the prefix icon of an entity kind, empty for style "none".
func For(kind catalog.Kind) string {
	switch kind {
	case catalog.KindTrack:
		return current.Track
	case catalog.KindAlbum:
		return current.Album
	case catalog.KindArtist:
		return current.Artist
	case catalog.KindPlaylist:
		return current.Playlist
	}
	return ""
}

// Format prefixes name with the icon of kind.
func Format(kind catalog.Kind, name string) string {
	return For(kind) + name
}

// Liked returns the liked track marker.
func Liked() string {
	return current.Liked
}

// Playing returns the now-playing prefix.
func Playing() string {
	return current.Playing
}
