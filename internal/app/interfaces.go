// internal/app/interfaces.go
package app

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/keymap"
)

// Compile-time assertions that the defaults satisfy their interfaces.
var (
	_ Executor  = Offline{}
	_ Clipboard = SystemClipboard{}
)

// Request is a command or menu action that the streaming backend carries
// out. Exactly one of Command and Action is set.
type Request struct {
	Command keymap.Command
	Action  catalog.Action
	Item    catalog.Item // target entity, if any
	Context catalog.Item // playlist the item was listed in, if any
}

// Describe returns a short label for status lines and error messages.
func (r Request) Describe() string {
	label := string(r.Command)
	if r.Action != nil {
		label = r.Action.Label()
	}
	if r.Item != nil {
		label += ": " + r.Item.DisplayName()
	}
	return label
}

// Executor runs requests against the streaming backend.
type Executor interface {
	Run(ctx context.Context, req Request) error
}

// ErrOffline is returned when no backend is attached.
var ErrOffline = errors.New("no player backend connected")

// Offline is the Executor used when no backend is configured.
// It rejects every request with ErrOffline.
type Offline struct{}

// Run implements Executor.
func (Offline) Run(context.Context, Request) error {
	return ErrOffline
}

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the platform clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
