package catalog

// Action is a menu entry offered for an item.
type Action interface {
	ActionType() string
	Label() string
}

// TrackAction is an action on a track.
type TrackAction string

const (
	TrackGoToArtist                TrackAction = "go_to_artist"
	TrackGoToAlbum                 TrackAction = "go_to_album"
	TrackGoToRadio                 TrackAction = "go_to_track_radio"
	TrackShowAlbumActions          TrackAction = "show_actions_on_album"
	TrackShowArtistActions         TrackAction = "show_actions_on_artist"
	TrackCopyLink                  TrackAction = "copy_track_link"
	TrackAddToPlaylist             TrackAction = "add_to_playlist"
	TrackAddToQueue                TrackAction = "add_to_queue"
	TrackDeleteFromCurrentPlaylist TrackAction = "delete_from_current_playlist"
	TrackAddToLiked                TrackAction = "add_to_liked_tracks"
	TrackRemoveFromLiked           TrackAction = "delete_from_liked_tracks"
)

// AlbumAction is an action on an album.
type AlbumAction string

const (
	AlbumGoToArtist        AlbumAction = "go_to_artist"
	AlbumGoToRadio         AlbumAction = "go_to_album_radio"
	AlbumShowArtistActions AlbumAction = "show_actions_on_artist"
	AlbumCopyLink          AlbumAction = "copy_album_link"
	AlbumAddToLibrary      AlbumAction = "add_to_library"
	AlbumRemoveFromLibrary AlbumAction = "delete_from_library"
)

// ArtistAction is an action on an artist.
type ArtistAction string

const (
	ArtistGoToRadio ArtistAction = "go_to_artist_radio"
	ArtistCopyLink  ArtistAction = "copy_artist_link"
	ArtistFollow    ArtistAction = "follow"
	ArtistUnfollow  ArtistAction = "unfollow"
)

// PlaylistAction is an action on a playlist.
type PlaylistAction string

const (
	PlaylistGoToRadio         PlaylistAction = "go_to_playlist_radio"
	PlaylistCopyLink          PlaylistAction = "copy_playlist_link"
	PlaylistAddToLibrary      PlaylistAction = "add_to_library"
	PlaylistRemoveFromLibrary PlaylistAction = "delete_from_library"
)

var trackLabels = map[TrackAction]string{
	TrackGoToArtist:                "Go to artist",
	TrackGoToAlbum:                 "Go to album",
	TrackGoToRadio:                 "Go to track radio",
	TrackShowAlbumActions:          "Show album actions",
	TrackShowArtistActions:         "Show artist actions",
	TrackCopyLink:                  "Copy track link",
	TrackAddToPlaylist:             "Add to playlist",
	TrackAddToQueue:                "Add to queue",
	TrackDeleteFromCurrentPlaylist: "Delete from current playlist",
	TrackAddToLiked:                "Add to liked tracks",
	TrackRemoveFromLiked:           "Remove from liked tracks",
}

var albumLabels = map[AlbumAction]string{
	AlbumGoToArtist:        "Go to artist",
	AlbumGoToRadio:         "Go to album radio",
	AlbumShowArtistActions: "Show artist actions",
	AlbumCopyLink:          "Copy album link",
	AlbumAddToLibrary:      "Add to library",
	AlbumRemoveFromLibrary: "Remove from library",
}

var artistLabels = map[ArtistAction]string{
	ArtistGoToRadio: "Go to artist radio",
	ArtistCopyLink:  "Copy artist link",
	ArtistFollow:    "Follow",
	ArtistUnfollow:  "Unfollow",
}

var playlistLabels = map[PlaylistAction]string{
	PlaylistGoToRadio:         "Go to playlist radio",
	PlaylistCopyLink:          "Copy playlist link",
	PlaylistAddToLibrary:      "Add to library",
	PlaylistRemoveFromLibrary: "Remove from library",
}

// ActionType implements action.Action.
func (a TrackAction) ActionType() string { return "track." + string(a) }

// Label returns the menu text.
func (a TrackAction) Label() string { return trackLabels[a] }

// ActionType implements action.Action.
func (a AlbumAction) ActionType() string { return "album." + string(a) }

// Label returns the menu text.
func (a AlbumAction) Label() string { return albumLabels[a] }

// ActionType implements action.Action.
func (a ArtistAction) ActionType() string { return "artist." + string(a) }

// Label returns the menu text.
func (a ArtistAction) Label() string { return artistLabels[a] }

// ActionType implements action.Action.
func (a PlaylistAction) ActionType() string { return "playlist." + string(a) }

// Label returns the menu text.
func (a PlaylistAction) Label() string { return playlistLabels[a] }
