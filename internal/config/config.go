package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/spotterm/internal/keymap"
)

const (
	appName        = "spotterm"
	configFileName = "config.toml"

	// DefaultLinkBase is the web player address shared links point to.
	DefaultLinkBase = "https://open.spotify.com"
)

type Config struct {
	Library  string `koanf:"library"`   // read-only TOML snapshot of the user library
	LinkBase string `koanf:"link_base"` // prefix for copied links, no trailing slash
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"

	// Key binding overrides, applied after the defaults
	Keymaps []KeymapConfig `koanf:"keymaps"`
}

// KeymapConfig rebinds keys to a command. Binding to "none" unbinds them.
type KeymapConfig struct {
	Command string   `koanf:"command"`
	Keys    []string `koanf:"keys"`
}

// Load reads the config. With an explicit path only that file is read and
// it must exist; otherwise the XDG config file and ./config.toml are read if
// present, the latter taking precedence.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	paths := getConfigPaths()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, err
		}
		paths = []string{explicit}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{
		LinkBase: DefaultLinkBase,
		Icons:    "none",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Library = expandPath(cfg.Library)
	cfg.LinkBase = strings.TrimRight(cfg.LinkBase, "/")
	if cfg.LinkBase == "" {
		cfg.LinkBase = DefaultLinkBase
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/spotterm/config.toml (or a system config dir)
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName)); err == nil {
		paths = append(paths, p)
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, configFileName)

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Bindings converts the keymap overrides. Unknown command names and
// overrides without keys are rejected.
func (c *Config) Bindings() ([]keymap.Binding, error) {
	out := make([]keymap.Binding, 0, len(c.Keymaps))
	for i, km := range c.Keymaps {
		cmd, err := keymap.ParseCommand(km.Command)
		if err != nil {
			return nil, fmt.Errorf("keymaps[%d]: %w", i, err)
		}
		if len(km.Keys) == 0 {
			return nil, fmt.Errorf("keymaps[%d]: no keys for %q", i, km.Command)
		}
		out = append(out, keymap.Binding{Command: cmd, Keys: km.Keys, Context: "user"})
	}
	return out, nil
}

// HasLibrary reports whether a library snapshot file is configured.
func (c *Config) HasLibrary() bool {
	return c.Library != ""
}
