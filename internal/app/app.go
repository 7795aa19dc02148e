// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/navctl"
	"github.com/llehouerou/spotterm/internal/app/popupctl"
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/config"
	"github.com/llehouerou/spotterm/internal/keymap"
	"github.com/llehouerou/spotterm/internal/library"
	"github.com/llehouerou/spotterm/internal/ui"
	"github.com/llehouerou/spotterm/internal/ui/headerbar"
	"github.com/llehouerou/spotterm/internal/ui/layout"
)

// Options configures a Model. Zero fields get defaults.
type Options struct {
	Library   *library.Snapshot // default: empty library
	Resolver  *keymap.Resolver  // default: keymap.Bindings
	Executor  Executor          // default: Offline
	Clipboard Clipboard         // default: SystemClipboard
	LinkBase  string            // default: config.DefaultLinkBase
}

// Model is the root application model containing all state.
type Model struct {
	Library    *library.Snapshot
	Resolver   *keymap.Resolver
	Nav        *navctl.Manager
	Popups     *popupctl.Manager
	Executor   Executor
	Clipboard  Clipboard
	LinkBase   string
	NowPlaying *catalog.Track
	Status     string
	Width      int
	Height     int
}

// New creates the application model.
func New(opts Options) Model {
	if opts.Library == nil {
		opts.Library = library.Empty()
	}
	if opts.Resolver == nil {
		opts.Resolver = keymap.NewResolver(keymap.Bindings)
	}
	if opts.Executor == nil {
		opts.Executor = Offline{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.LinkBase == "" {
		opts.LinkBase = config.DefaultLinkBase
	}

	return Model{
		Library:   opts.Library,
		Resolver:  opts.Resolver,
		Nav:       navctl.New(opts.Library),
		Popups:    popupctl.New(),
		Executor:  opts.Executor,
		Clipboard: opts.Clipboard,
		LinkBase:  opts.LinkBase,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// listHeight returns the rows available to the browse list.
func (m Model) listHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: ui.HeaderHeight,
		TabBarHeight: m.tabBarHeight(),
		StatusHeight: ui.StatusHeight,
		BorderHeight: ui.BorderHeight,
	})
}

func (m Model) tabBarHeight() int {
	if m.Width < headerbar.MinWidth {
		return 0
	}
	return headerbar.Height
}
