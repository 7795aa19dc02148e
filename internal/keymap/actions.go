// Package keymap defines the global command table and its key bindings.
package keymap

import "fmt"

// Command represents a user-triggerable application command.
type Command string

const (
	CommandNone Command = "none"

	// Playback
	CommandNextTrack     Command = "next_track"
	CommandPreviousTrack Command = "previous_track"
	CommandResumePause   Command = "resume_pause"
	CommandPlayRandom    Command = "play_random"
	CommandRepeat        Command = "repeat"
	CommandShuffle       Command = "shuffle"
	CommandVolumeUp      Command = "volume_up"
	CommandVolumeDown    Command = "volume_down"
	CommandMute          Command = "mute"
	CommandSeekForward   Command = "seek_forward"
	CommandSeekBackward  Command = "seek_backward"

	// Global
	CommandQuit            Command = "quit"
	CommandOpenCommandHelp Command = "open_command_help"
	CommandClosePopup      Command = "close_popup"

	// List navigation
	CommandSelectNext      Command = "select_next_or_scroll_down"
	CommandSelectPrevious  Command = "select_previous_or_scroll_up"
	CommandPageSelectNext  Command = "page_select_next_or_scroll_down"
	CommandPageSelectPrev  Command = "page_select_previous_or_scroll_up"
	CommandSelectFirst     Command = "select_first_or_scroll_to_top"
	CommandSelectLast      Command = "select_last_or_scroll_to_bottom"
	CommandChooseSelected  Command = "choose_selected"
	CommandRefreshPlayback Command = "refresh_playback"

	CommandFocusNextWindow     Command = "focus_next_window"
	CommandFocusPreviousWindow Command = "focus_previous_window"

	// Popups
	CommandSwitchTheme               Command = "switch_theme"
	CommandSwitchDevice              Command = "switch_device"
	CommandSearch                    Command = "search"
	CommandQueue                     Command = "queue"
	CommandShowActionsOnSelectedItem Command = "show_actions_on_selected_item"
	CommandShowActionsOnCurrentTrack Command = "show_actions_on_current_track"
	CommandAddSelectedItemToQueue    Command = "add_selected_item_to_queue"
	CommandBrowseUserPlaylists       Command = "browse_user_playlists"
	CommandBrowseFollowedArtists     Command = "browse_user_followed_artists"
	CommandBrowseSavedAlbums         Command = "browse_user_saved_albums"

	// Pages
	CommandCurrentlyPlayingContextPage Command = "currently_playing_context_page"
	CommandTopTrackPage                Command = "top_track_page"
	CommandRecentlyPlayedTrackPage     Command = "recently_played_track_page"
	CommandLikedTrackPage              Command = "liked_track_page"
	CommandLibraryPage                 Command = "library_page"
	CommandSearchPage                  Command = "search_page"
	CommandBrowsePage                  Command = "browse_page"
	CommandPreviousPage                Command = "previous_page"
	CommandOpenLinkFromClipboard       Command = "open_spotify_link_from_clipboard"

	// Track table
	CommandSortTrackByTitle     Command = "sort_track_by_title"
	CommandSortTrackByArtists   Command = "sort_track_by_artists"
	CommandSortTrackByAlbum     Command = "sort_track_by_album"
	CommandSortTrackByDuration  Command = "sort_track_by_duration"
	CommandSortTrackByAddedDate Command = "sort_track_by_added_date"
	CommandReverseTrackOrder    Command = "reverse_track_order"

	CommandMovePlaylistItemUp   Command = "move_playlist_item_up"
	CommandMovePlaylistItemDown Command = "move_playlist_item_down"
)

// All lists every command in help order.
var All = []Command{
	CommandNone,
	CommandNextTrack,
	CommandPreviousTrack,
	CommandResumePause,
	CommandPlayRandom,
	CommandRepeat,
	CommandShuffle,
	CommandVolumeUp,
	CommandVolumeDown,
	CommandMute,
	CommandSeekForward,
	CommandSeekBackward,
	CommandQuit,
	CommandOpenCommandHelp,
	CommandClosePopup,
	CommandSelectNext,
	CommandSelectPrevious,
	CommandPageSelectNext,
	CommandPageSelectPrev,
	CommandSelectFirst,
	CommandSelectLast,
	CommandChooseSelected,
	CommandRefreshPlayback,
	CommandFocusNextWindow,
	CommandFocusPreviousWindow,
	CommandSwitchTheme,
	CommandSwitchDevice,
	CommandSearch,
	CommandQueue,
	CommandShowActionsOnSelectedItem,
	CommandShowActionsOnCurrentTrack,
	CommandAddSelectedItemToQueue,
	CommandBrowseUserPlaylists,
	CommandBrowseFollowedArtists,
	CommandBrowseSavedAlbums,
	CommandCurrentlyPlayingContextPage,
	CommandTopTrackPage,
	CommandRecentlyPlayedTrackPage,
	CommandLikedTrackPage,
	CommandLibraryPage,
	CommandSearchPage,
	CommandBrowsePage,
	CommandPreviousPage,
	CommandOpenLinkFromClipboard,
	CommandSortTrackByTitle,
	CommandSortTrackByArtists,
	CommandSortTrackByAlbum,
	CommandSortTrackByDuration,
	CommandSortTrackByAddedDate,
	CommandReverseTrackOrder,
	CommandMovePlaylistItemUp,
	CommandMovePlaylistItemDown,
}

var descriptions = map[Command]string{
	CommandNone:                        "do nothing",
	CommandNextTrack:                   "next track",
	CommandPreviousTrack:               "previous track",
	CommandResumePause:                 "resume/pause based on the current playback",
	CommandPlayRandom:                  "play a random track in the current context",
	CommandRepeat:                      "cycle the repeat mode",
	CommandShuffle:                     "toggle the shuffle mode",
	CommandVolumeUp:                    "increase playback volume by 5%",
	CommandVolumeDown:                  "decrease playback volume by 5%",
	CommandMute:                        "toggle playback volume between 0% and previous level",
	CommandSeekForward:                 "seek forward by 5s",
	CommandSeekBackward:                "seek backward by 5s",
	CommandQuit:                        "quit the application",
	CommandOpenCommandHelp:             "open a command help popup",
	CommandClosePopup:                  "close a popup",
	CommandSelectNext:                  "select the next item in a list/table or scroll down",
	CommandSelectPrevious:              "select the previous item in a list/table or scroll up",
	CommandPageSelectNext:              "select the next page item in a list/table or scroll a page down",
	CommandPageSelectPrev:              "select the previous page item in a list/table or scroll a page up",
	CommandSelectFirst:                 "select the first item in a list/table or scroll to the top",
	CommandSelectLast:                  "select the last item in a list/table or scroll to the bottom",
	CommandChooseSelected:              "choose the selected item and act on it",
	CommandRefreshPlayback:             "manually refresh the current playback",
	CommandFocusNextWindow:             "focus the next focusable window (if any)",
	CommandFocusPreviousWindow:         "focus the previous focusable window (if any)",
	CommandSwitchTheme:                 "open a popup for switching theme",
	CommandSwitchDevice:                "open a popup for switching device",
	CommandSearch:                      "open a popup for searching in the current page",
	CommandQueue:                       "open a popup for showing the current queue",
	CommandShowActionsOnSelectedItem:   "open a popup showing actions on a selected item",
	CommandShowActionsOnCurrentTrack:   "open a popup showing actions on the current track",
	CommandAddSelectedItemToQueue:      "add the selected item to queue",
	CommandBrowseUserPlaylists:         "open a popup for browsing user's playlists",
	CommandBrowseFollowedArtists:       "open a popup for browsing user's followed artists",
	CommandBrowseSavedAlbums:           "open a popup for browsing user's saved albums",
	CommandCurrentlyPlayingContextPage: "go to the currently playing context page",
	CommandTopTrackPage:                "go to the user top track page",
	CommandRecentlyPlayedTrackPage:     "go to the user recently played track page",
	CommandLikedTrackPage:              "go to the user liked track page",
	CommandLibraryPage:                 "go to the user library page",
	CommandSearchPage:                  "go to the search page",
	CommandBrowsePage:                  "go to the browse page",
	CommandPreviousPage:                "go to the previous page",
	CommandOpenLinkFromClipboard:       "open a Spotify link from clipboard",
	CommandSortTrackByTitle:            "sort the track table (if any) by track's title",
	CommandSortTrackByArtists:          "sort the track table (if any) by track's artists",
	CommandSortTrackByAlbum:            "sort the track table (if any) by track's album",
	CommandSortTrackByDuration:         "sort the track table (if any) by track's duration",
	CommandSortTrackByAddedDate:        "sort the track table (if any) by track's added date",
	CommandReverseTrackOrder:           "reverse the order of the track table (if any)",
	CommandMovePlaylistItemUp:          "move playlist item up one position",
	CommandMovePlaylistItemDown:        "move playlist item down one position",
}

// Desc returns the static help text of the command.
func (c Command) Desc() string {
	return descriptions[c]
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (Command, error) {
	c := Command(name)
	if _, ok := descriptions[c]; !ok {
		return "", fmt.Errorf("unknown command %q", name)
	}
	return c, nil
}
