// Package textinput provides a single-line text input popup.
package textinput

import (
	bubbletextinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/popup"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// CharLimit bounds what can be typed into the popup.
const CharLimit = 120

// Model is a text input popup backed by a bubbles text input.
type Model struct {
	ui.Base
	title   string
	input   bubbletextinput.Model
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	return Model{input: newInput()}
}

func newInput() bubbletextinput.Model {
	in := bubbletextinput.New()
	in.Prompt = "> "
	in.CharLimit = CharLimit
	return in
}

// Start initializes the input with a title, optional initial text and a
// placeholder shown while the input is empty.
func (m *Model) Start(title, initialText, placeholder string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input = newInput()
	m.input.Placeholder = placeholder
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.input = newInput()
}

// SetSize sets the popup dimensions and fits the input to them.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-6, 10)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return bubbletextinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}
		case tea.KeyEnter:
			text := m.input.Value()
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	title := t.S().Heading.Render(m.title)
	input := t.S().InputSel.Render(m.input.View())
	hint := t.S().Subtle.Render("Enter: confirm, Esc: cancel")

	return title + "\n\n" + input + "\n\n" + hint
}
