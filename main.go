package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/spotterm/internal/app"
	"github.com/llehouerou/spotterm/internal/config"
	"github.com/llehouerou/spotterm/internal/errmsg"
	"github.com/llehouerou/spotterm/internal/icons"
	"github.com/llehouerou/spotterm/internal/keymap"
	"github.com/llehouerou/spotterm/internal/library"
	"github.com/llehouerou/spotterm/internal/ui/render"
)

// version is set during build with -ldflags
var version = "dev"

// flags shared by the root command and its subcommands.
type flags struct {
	config  string
	library string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "spotterm",
		Short:         "Terminal client for browsing and acting on a music library",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			model, err := f.model()
			if err != nil {
				return err
			}
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run terminal interface: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&f.config, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/spotterm/config.toml, then ./config.toml)")
	root.PersistentFlags().StringVarP(&f.library, "library", "l", "", "library snapshot file, overrides the config")

	root.AddCommand(newCommandsCmd(f), newLibraryCmd(f), newVersionCmd())
	return root
}

func newCommandsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List every command with its keys and description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			r, err := resolver(cfg)
			if err != nil {
				return err
			}
			printCommands(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newLibraryCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "Check the library snapshot and print what it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			lib, err := f.loadLibrary(cfg)
			if err != nil {
				return err
			}
			printLibrary(cmd.OutOrStdout(), lib)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of spotterm",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spotterm version %s\n", version)
		},
	}
}

func (f *flags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	return cfg, nil
}

// loadLibrary reads the snapshot named by --library or the config. With
// neither, the library is empty.
func (f *flags) loadLibrary(cfg *config.Config) (*library.Snapshot, error) {
	path := f.library
	if path == "" {
		if !cfg.HasLibrary() {
			return library.Empty(), nil
		}
		path = cfg.Library
	}
	lib, err := library.Load(path)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpLibraryLoad, err)
	}
	return lib, nil
}

func (f *flags) model() (app.Model, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return app.Model{}, err
	}
	lib, err := f.loadLibrary(cfg)
	if err != nil {
		return app.Model{}, err
	}
	r, err := resolver(cfg)
	if err != nil {
		return app.Model{}, err
	}
	icons.Init(cfg.Icons)
	return app.New(app.Options{
		Library:  lib,
		Resolver: r,
		LinkBase: cfg.LinkBase,
	}), nil
}

// resolver applies the config's keymap overrides on top of the defaults.
func resolver(cfg *config.Config) (*keymap.Resolver, error) {
	overrides, err := cfg.Bindings()
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	return keymap.NewResolver(keymap.Merge(keymap.Bindings, overrides)), nil
}

func printCommands(w io.Writer, r *keymap.Resolver) {
	for _, c := range r.Commands() {
		keys := make([]string, 0, len(r.KeysFor(c)))
		for _, k := range r.KeysFor(c) {
			if k == " " {
				k = "space"
			}
			keys = append(keys, k)
		}
		fmt.Fprintf(w, "%-36s %-22s %s\n", c, strings.Join(keys, ", "), c.Desc())
	}
}

func printLibrary(w io.Writer, lib *library.Snapshot) {
	if u := lib.User(); u != "" {
		fmt.Fprintf(w, "user: %s\n", u)
	}
	fmt.Fprintln(w, render.Count(len(lib.LikedTracks()), "liked track"))
	fmt.Fprintln(w, render.Count(len(lib.SavedAlbums()), "saved album"))
	fmt.Fprintln(w, render.Count(len(lib.FollowedArtists()), "followed artist"))
	fmt.Fprintln(w, render.Count(len(lib.Playlists()), "playlist"))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
