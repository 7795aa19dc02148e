// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// MinWidth is the narrowest terminal the bar renders in.
const MinWidth = 20

// Tab is one browse page shortcut. Key is the first key bound to the
// page, empty when it has none.
type Tab struct {
	Key    string
	Name   string
	Active bool
}

// Styles
var (
	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar string for the given width, centered.
// It is empty below MinWidth.
func Render(tabs []Tab, width int) string {
	if width < MinWidth {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	separator := separatorStyle.Render(" │ ")

	for _, t := range tabs {
		keyStyle, nameStyle := inactiveKeyStyle, inactiveNameStyle
		if t.Active {
			keyStyle, nameStyle = activeKeyStyle, activeNameStyle
		}

		part := nameStyle.Render(t.Name)
		if t.Key != "" {
			part = keyStyle.Render(t.Key) + " " + part
		}
		parts = append(parts, part)
	}

	content := strings.Join(parts, separator)

	// Center the content
	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		padLeft := (width - contentWidth) / 2
		content = strings.Repeat(" ", padLeft) + content
	}

	return content
}
