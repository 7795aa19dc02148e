package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/icons"
	"github.com/llehouerou/spotterm/internal/ui/testutil"
)

func TestFormatItem(t *testing.T) {
	icons.Init("none")
	lib := newTestLibrary()
	band := catalog.Artist{ID: "ar1", Name: "The Band", Followers: 1200}

	tests := []struct {
		name     string
		item     catalog.Item
		lib      bool
		contains []string
		suffix   string
	}{
		{
			name:     "liked track marked",
			item:     catalog.Track{ID: "t1", Name: "Intro", Artists: []catalog.Artist{band}, DurationMs: 185000},
			lib:      true,
			contains: []string{"Intro", "The Band"},
			suffix:   "* 3:05",
		},
		{
			name:   "liked track without library",
			item:   catalog.Track{ID: "t1", Name: "Intro", DurationMs: 185000},
			suffix: " 3:05",
		},
		{
			name:   "track not liked",
			item:   catalog.Track{ID: "t9", Name: "Highway", DurationMs: 60000},
			lib:    true,
			suffix: " 1:00",
		},
		{
			name:     "album year",
			item:     catalog.Album{ID: "al1", Name: "Debut", Artists: []catalog.Artist{band}, Year: 2001},
			contains: []string{"Debut", "The Band"},
			suffix:   "2001",
		},
		{
			name:     "artist followers",
			item:     band,
			contains: []string{"The Band"},
			suffix:   "1,200 followers",
		},
		{
			name:     "playlist size",
			item:     catalog.Playlist{ID: "pl1", Name: "Road trip", Owner: "me", TrackCount: 3},
			contains: []string{"Road trip", "me"},
			suffix:   "3 tracks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lib
			if !tt.lib {
				l = nil
			}
			row := formatItem(tt.item, l, 60)

			assert.Equal(t, 60, testutil.MeasureWidth(row))
			for _, c := range tt.contains {
				assert.Contains(t, row, c)
			}
			assert.True(t, strings.HasSuffix(row, tt.suffix), "row %q", row)
			if tt.suffix == " 3:05" {
				assert.NotContains(t, row, "*")
			}
		})
	}
}

func TestView_NerdIcons(t *testing.T) {
	icons.Init("nerd")
	t.Cleanup(func() { icons.Init("none") })
	m, _ := newTestModel()

	out := testutil.StripANSI(m.View())

	assert.Contains(t, out, icons.Format(catalog.KindTrack, "Intro"))
}

func TestView_TabBar(t *testing.T) {
	m, _ := newTestModel()

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "f5 Liked tracks │ alt+s Saved albums │ alt+f Followed artists │ alt+p Playlists")

	m = send(m, testutil.Alt('p'), testutil.Key(tea.KeyEnter))
	assert.Contains(t, testutil.StripANSI(m.View()), "alt+p Playlists")
}

func TestView_NarrowDropsAlbumColumn(t *testing.T) {
	m, _ := newTestModel()

	assert.Contains(t, testutil.StripANSI(m.View()), "Debut")

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Intro")
	assert.NotContains(t, out, "Debut")
}

func TestView_TinyWindowHidesTabBar(t *testing.T) {
	m, _ := newTestModel()
	m = send(m, tea.WindowSizeMsg{Width: 15, Height: 10})

	assert.Equal(t, 0, m.tabBarHeight())
	assert.NotContains(t, testutil.StripANSI(m.View()), "alt+p")
}
