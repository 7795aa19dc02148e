// internal/app/messages.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/catalog"
)

// ExecResultMsg reports the outcome of an Executor request.
type ExecResultMsg struct {
	Request Request
	Err     error
}

// LinkCopiedMsg reports the outcome of copying an item's share link.
type LinkCopiedMsg struct {
	Item catalog.Item
	Link string
	Err  error
}

// ClipboardLinkMsg carries the clipboard content read to open a link.
type ClipboardLinkMsg struct {
	Text string
	Err  error
}

// ExecCmd runs req on exec off the event loop.
func ExecCmd(exec Executor, req Request) tea.Cmd {
	return func() tea.Msg {
		return ExecResultMsg{Request: req, Err: exec.Run(context.Background(), req)}
	}
}

// CopyLinkCmd writes the share link of item to clip.
func CopyLinkCmd(clip Clipboard, base string, item catalog.Item) tea.Cmd {
	link := catalog.Link(base, item)
	return func() tea.Msg {
		return LinkCopiedMsg{Item: item, Link: link, Err: clip.WriteAll(link)}
	}
}

// ReadLinkCmd reads the clipboard for open_spotify_link_from_clipboard.
func ReadLinkCmd(clip Clipboard) tea.Cmd {
	return func() tea.Msg {
		text, err := clip.ReadAll()
		return ClipboardLinkMsg{Text: text, Err: err}
	}
}
