package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args in an empty config environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	xdg.Reload()
	t.Chdir(dir)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "spotterm version dev\n", out)
}

func TestCommands_ListsDefaults(t *testing.T) {
	out, err := run(t, "commands")

	require.NoError(t, err)
	assert.Contains(t, out, "next_track")
	assert.Contains(t, out, "quit the application")
	assert.Contains(t, out, "space")
}

func TestCommands_AppliesOverrides(t *testing.T) {
	cfg := writeFile(t, "config.toml", `
[[keymaps]]
command = "search"
keys = ["ctrl+o"]
`)

	out, err := run(t, "--config", cfg, "commands")

	require.NoError(t, err)
	assert.Contains(t, out, "/, ctrl+o")
}

func TestCommands_BadOverride(t *testing.T) {
	cfg := writeFile(t, "config.toml", `
[[keymaps]]
command = "fly"
keys = ["f"]
`)

	_, err := run(t, "--config", cfg, "commands")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load config")
}

func TestLibrary_Summary(t *testing.T) {
	lib := writeFile(t, "library.toml", `
user = "me"

[[liked_tracks]]
id = "t1"
name = "Intro"

[[playlists]]
id = "pl1"
name = "Road trip"
`)

	out, err := run(t, "--library", lib, "library")

	require.NoError(t, err)
	assert.Equal(t, "user: me\n1 liked track\n0 saved albums\n0 followed artists\n1 playlist\n", out)
}

func TestLibrary_Empty(t *testing.T) {
	out, err := run(t, "library")

	require.NoError(t, err)
	assert.Contains(t, out, "0 liked tracks")
}

func TestLibrary_MissingFile(t *testing.T) {
	_, err := run(t, "--library", filepath.Join(t.TempDir(), "missing.toml"), "library")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load library")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLibrary_FromConfig(t *testing.T) {
	lib := writeFile(t, "library.toml", `
[[saved_albums]]
id = "al1"
name = "Debut"
`)
	cfg := writeFile(t, "config.toml", "library = \""+filepath.ToSlash(lib)+"\"\n")

	out, err := run(t, "--config", cfg, "library")

	require.NoError(t, err)
	assert.Contains(t, out, "1 saved album\n")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")

	require.NoError(t, err, "version does not read the config")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "commands")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
