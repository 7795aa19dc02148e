package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCompose_OverlaysCenteredContent(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	overlay := strings.Join([]string{
		"",
		"   XYZ    ",
	}, "\n")

	got := Compose(base, overlay, 10, 3)
	lines := strings.Split(got, "\n")

	if lines[0] != "aaaaaaaaaa" {
		t.Errorf("line 0 = %q, want untouched", lines[0])
	}
	if lines[1] != "bbbXYZbbbb" {
		t.Errorf("line 1 = %q, want %q", lines[1], "bbbXYZbbbb")
	}
	if lines[2] != "cccccccccc" {
		t.Errorf("line 2 = %q, want untouched", lines[2])
	}
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "    X", 6, 1)

	if got != "ab  X " {
		t.Errorf("Compose = %q, want %q", got, "ab  X ")
	}
}

func TestRenderBordered_FitsScreen(t *testing.T) {
	out := RenderBordered("hello", 40, 12, SizeAuto)
	lines := strings.Split(out, "\n")

	if len(lines) != 12 {
		t.Errorf("got %d lines, want 12", len(lines))
	}
	if !strings.Contains(ansi.Strip(out), "hello") {
		t.Error("expected content in bordered output")
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > 40 {
			t.Errorf("line %d width %d exceeds screen", i, w)
		}
	}
}

func TestRenderError(t *testing.T) {
	out := ansi.Strip(RenderError("boom", 60, 20))

	for _, want := range []string{"Error", "boom", "Press any key"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in error popup", want)
		}
	}
}
