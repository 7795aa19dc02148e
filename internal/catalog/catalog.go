package catalog

// Library is a read-only view of what the user saved or follows.
// Membership is by ID only.
type Library interface {
	IsLikedTrack(id ID) bool
	HasSavedAlbum(id ID) bool
	IsFollowingArtist(id ID) bool
	HasPlaylist(id ID) bool
}

var (
	trackBase = []TrackAction{
		TrackGoToArtist,
		TrackGoToAlbum,
		TrackGoToRadio,
		TrackShowAlbumActions,
		TrackShowArtistActions,
		TrackCopyLink,
		TrackAddToPlaylist,
		TrackAddToQueue,
	}
	albumBase = []AlbumAction{
		AlbumGoToArtist,
		AlbumGoToRadio,
		AlbumShowArtistActions,
		AlbumCopyLink,
	}
	artistBase = []ArtistAction{
		ArtistGoToRadio,
		ArtistCopyLink,
	}
	playlistBase = []PlaylistAction{
		PlaylistGoToRadio,
		PlaylistCopyLink,
	}
)

// withToggle returns a fresh copy of base followed by remove when member is
// true, add otherwise.
func withToggle[A any](base []A, member bool, add, remove A) []A {
	out := make([]A, len(base), len(base)+1)
	copy(out, base)
	if member {
		return append(out, remove)
	}
	return append(out, add)
}

// TrackActions returns the menu for a track.
func TrackActions(t Track, lib Library) []TrackAction {
	return withToggle(trackBase, lib.IsLikedTrack(t.ID), TrackAddToLiked, TrackRemoveFromLiked)
}

// TrackActionsInPlaylist returns the menu for a track listed inside a
// playlist. When the user owns the playlist, a delete entry is offered just
// before the liked toggle.
func TrackActionsInPlaylist(t Track, lib Library, owned bool) []TrackAction {
	actions := TrackActions(t, lib)
	if !owned {
		return actions
	}
	last := len(actions) - 1
	out := make([]TrackAction, 0, len(actions)+1)
	out = append(out, actions[:last]...)
	out = append(out, TrackDeleteFromCurrentPlaylist, actions[last])
	return out
}

// AlbumActions returns the menu for an album.
func AlbumActions(a Album, lib Library) []AlbumAction {
	return withToggle(albumBase, lib.HasSavedAlbum(a.ID), AlbumAddToLibrary, AlbumRemoveFromLibrary)
}

// ArtistActions returns the menu for an artist.
func ArtistActions(a Artist, lib Library) []ArtistAction {
	return withToggle(artistBase, lib.IsFollowingArtist(a.ID), ArtistFollow, ArtistUnfollow)
}

// PlaylistActions returns the menu for a playlist.
func PlaylistActions(p Playlist, lib Library) []PlaylistAction {
	return withToggle(playlistBase, lib.HasPlaylist(p.ID), PlaylistAddToLibrary, PlaylistRemoveFromLibrary)
}

// For returns the menu for any item kind.
func For(item Item, lib Library) []Action {
	switch it := item.(type) {
	case Track:
		return toActions(TrackActions(it, lib))
	case Album:
		return toActions(AlbumActions(it, lib))
	case Artist:
		return toActions(ArtistActions(it, lib))
	case Playlist:
		return toActions(PlaylistActions(it, lib))
	}
	return nil
}

// ForPlaylistTrack returns the menu for a track listed inside a playlist.
func ForPlaylistTrack(t Track, lib Library, owned bool) []Action {
	return toActions(TrackActionsInPlaylist(t, lib, owned))
}

func toActions[A Action](in []A) []Action {
	out := make([]Action, len(in))
	for i, a := range in {
		out[i] = a
	}
	return out
}
