// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/popup"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// maxMessageWidth keeps long prompts readable on wide terminals.
const maxMessageWidth = 50

// Model is a yes/no confirmation popup with Cancel and Confirm buttons.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
	yes     bool // Confirm button focused
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup. Confirm is focused first.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
	m.yes = true
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "h", "l", "tab", "shift+tab":
		m.yes = !m.yes
	case "enter":
		return m, m.close(m.yes)
	case "y", "Y":
		return m, m.close(true)
	case "esc", "n", "N":
		return m, m.close(false)
	}
	return m, nil
}

func (m *Model) close(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	width := min(maxMessageWidth, m.Width()-8)
	message := t.S().Base.Render(render.Wrap(m.message, width))

	cancel, ok := t.S().Chip.Render("Cancel"), t.S().Chip.Render("Confirm")
	if m.yes {
		ok = t.S().Badge.Render("Confirm")
	} else {
		cancel = t.S().Badge.Render("Cancel")
	}

	hint := t.S().Subtle.Render("←/→ choose · enter select · y/n")
	return t.S().Heading.Render(m.title) + "\n\n" +
		message + "\n\n" +
		cancel + "  " + ok + "\n\n" +
		hint
}
