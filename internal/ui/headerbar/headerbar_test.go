package headerbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/spotterm/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tabs := []Tab{
		{Key: "alt+l", Name: "Liked", Active: true},
		{Key: "alt+p", Name: "Playlists"},
		{Name: "Albums"},
	}

	out := testutil.StripANSI(Render(tabs, 80))

	assert.Contains(t, out, "alt+l Liked │ alt+p Playlists │ Albums")
	assert.True(t, strings.HasPrefix(out, " "), "content is centered")
	assert.LessOrEqual(t, testutil.MeasureWidth(out), 80)
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render([]Tab{{Name: "Liked"}}, MinWidth-1))
}
