package popup

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotterm/internal/app/handler"
)

// Popup defines the contract for modal popup components.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content (without outer border/centering).
	View() string

	// SetSize sets the available dimensions for the popup content.
	SetSize(width, height int)
}

// KeyHandler is implemented by popups that may decline a key so it reaches
// the global command table. Popups without it consume every key.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) handler.Result
}
