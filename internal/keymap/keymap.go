package keymap

// Binding maps key strings (as reported by tea.KeyMsg.String) to a command.
type Binding struct {
	Command Command
	Keys    []string
	Context string // "global", "playback", "navigation", "popup", "page", "track-table"
}

// Contexts lists binding contexts in help order.
var Contexts = []string{
	"global",
	"playback",
	"navigation",
	"popup",
	"page",
	"track-table",
}

// Bindings contains the default key bindings.
var Bindings = []Binding{
	// Global
	{CommandQuit, []string{"q", "ctrl+c"}, "global"},
	{CommandOpenCommandHelp, []string{"?"}, "global"},
	{CommandClosePopup, []string{"esc"}, "global"},
	{CommandFocusNextWindow, []string{"tab"}, "global"},
	{CommandFocusPreviousWindow, []string{"shift+tab"}, "global"},
	{CommandSwitchTheme, []string{"T"}, "global"},
	{CommandSwitchDevice, []string{"D"}, "global"},
	{CommandRefreshPlayback, []string{"r"}, "global"},

	// Playback
	{CommandNextTrack, []string{"n"}, "playback"},
	{CommandPreviousTrack, []string{"p"}, "playback"},
	{CommandResumePause, []string{" "}, "playback"},
	{CommandPlayRandom, []string{"."}, "playback"},
	{CommandRepeat, []string{"ctrl+r"}, "playback"},
	{CommandShuffle, []string{"ctrl+s"}, "playback"},
	{CommandVolumeUp, []string{"+"}, "playback"},
	{CommandVolumeDown, []string{"-"}, "playback"},
	{CommandMute, []string{"_"}, "playback"},
	{CommandSeekForward, []string{">"}, "playback"},
	{CommandSeekBackward, []string{"<"}, "playback"},

	// Navigation
	{CommandSelectNext, []string{"j", "down", "ctrl+n"}, "navigation"},
	{CommandSelectPrevious, []string{"k", "up", "ctrl+p"}, "navigation"},
	{CommandPageSelectNext, []string{"pgdown", "ctrl+f"}, "navigation"},
	{CommandPageSelectPrev, []string{"pgup", "ctrl+b"}, "navigation"},
	{CommandSelectFirst, []string{"g", "home"}, "navigation"},
	{CommandSelectLast, []string{"G", "end"}, "navigation"},
	{CommandChooseSelected, []string{"enter"}, "navigation"},

	// Popups
	{CommandSearch, []string{"/"}, "popup"},
	{CommandQueue, []string{"Z"}, "popup"},
	{CommandShowActionsOnSelectedItem, []string{"a"}, "popup"},
	{CommandShowActionsOnCurrentTrack, []string{"A"}, "popup"},
	{CommandAddSelectedItemToQueue, []string{"z"}, "popup"},
	{CommandBrowseUserPlaylists, []string{"alt+p"}, "popup"},
	{CommandBrowseFollowedArtists, []string{"alt+f"}, "popup"},
	{CommandBrowseSavedAlbums, []string{"alt+s"}, "popup"},

	// Pages
	{CommandLibraryPage, []string{"f1"}, "page"},
	{CommandCurrentlyPlayingContextPage, []string{"f2"}, "page"},
	{CommandTopTrackPage, []string{"f3"}, "page"},
	{CommandRecentlyPlayedTrackPage, []string{"f4"}, "page"},
	{CommandLikedTrackPage, []string{"f5"}, "page"},
	{CommandSearchPage, []string{"f6"}, "page"},
	{CommandBrowsePage, []string{"f7"}, "page"},
	{CommandPreviousPage, []string{"backspace"}, "page"},
	{CommandOpenLinkFromClipboard, []string{"O"}, "page"},

	// Track table
	{CommandSortTrackByTitle, []string{"alt+t"}, "track-table"},
	{CommandSortTrackByArtists, []string{"alt+a"}, "track-table"},
	{CommandSortTrackByAlbum, []string{"alt+l"}, "track-table"},
	{CommandSortTrackByDuration, []string{"alt+d"}, "track-table"},
	{CommandSortTrackByAddedDate, []string{"alt+e"}, "track-table"},
	{CommandReverseTrackOrder, []string{"alt+r"}, "track-table"},
	{CommandMovePlaylistItemUp, []string{"ctrl+k"}, "track-table"},
	{CommandMovePlaylistItemDown, []string{"ctrl+j"}, "track-table"},
}

// ByContext returns the default bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// Merge returns defaults followed by overrides, ready for NewResolver.
// Neither input is modified.
func Merge(defaults, overrides []Binding) []Binding {
	out := make([]Binding, 0, len(defaults)+len(overrides))
	out = append(out, defaults...)
	return append(out, overrides...)
}
