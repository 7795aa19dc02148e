package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders bold text blending from the primary to the secondary
// theme colour, one grapheme cluster at a time.
func Gradient(text string) string {
	return GradientBetween(text, T().Primary, T().Secondary)
}

// GradientBetween renders bold text blending from one hex colour to another.
// Non-hex colours fall back to a plain bold foreground of from.
func GradientBetween(text string, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil || len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cl := range clusters {
		c := c1.BlendLab(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(cl))
	}
	return b.String()
}
