package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component shown over the current screen.
type Popup interface {
	// Init returns any initial command (e.g. focusing a text input).
	Init() tea.Cmd

	// Update handles messages and returns the updated popup.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content without border or centering.
	View() string

	// SetSize sets the room available to the popup content.
	SetSize(width, height int)
}
