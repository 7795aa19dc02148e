// Package popup renders modal popups over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/spotterm/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 70} // Help
	SizeInput = SizeConfig{MaxWidth: 60}                // Search
	SizeAuto  = SizeConfig{}                            // Actions, error
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = lipgloss.Width(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = max(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = lipgloss.Height(content) + 4 // padding + border
	height = min(height, screenH-4)
	return width, height
}

// RenderError renders an error dialog, centered.
func RenderError(msg string, screenW, screenH int) string {
	t := styles.T()
	content := t.S().Error.Bold(true).Render("Error") + "\n\n" +
		t.S().Base.Render(msg) + "\n\n" +
		t.S().Subtle.Render("Press any key to dismiss")
	return RenderBordered(content, screenW, screenH, SizeAuto)
}

// Compose overlays popupView on top of base. Blank cells of the overlay
// let the base show through on each side of the popup box.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, line := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Truncate(under, start, "")
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		row := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix += strings.Repeat(" ", width-end-w)
			}
			row += suffix
		}
		baseLines[i] = row
	}

	return strings.Join(baseLines, "\n")
}
