// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/popup"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"tabs",
	"list",
	"sermons",
	"connect",
	"form",
	"live",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":  "Global",
	"tabs":    "Tabs",
	"list":    "Lists",
	"sermons": "Sermons",
	"connect": "Connect",
	"form":    "Forms",
	"live":    "Live Stream",
}

// chromeHeight is the title, footer and the blank lines around them.
const chromeHeight = 4

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	contexts []string
	view     viewport.Model
}

// New creates a new help bindings model.
func New() Model {
	return Model{view: viewport.New(0, 0)}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.refresh()
}

// SetSize sets the room available and fits the viewport to it.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.refresh()
}

// ScrollOffset returns the first visible line.
func (m Model) ScrollOffset() int {
	return m.view.YOffset
}

func (m *Model) refresh() {
	content := m.buildContent()
	m.view.Width = lipgloss.Width(content)
	m.view.Height = max(m.Height()-chromeHeight-popup.ChromeHeight, 5)
	m.view.SetContent(content)
	m.view.GotoTop()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.view.LineDown(1)
	case "k", "up":
		m.view.LineUp(1)
	case "pgdown", "ctrl+d":
		m.view.SetYOffset(m.view.YOffset + m.view.Height/2)
	case "pgup", "ctrl+u":
		m.view.SetYOffset(m.view.YOffset - m.view.Height/2)
	}
	return m, nil
}

// View implements popup.Popup. The popup manager adds the border.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	var result strings.Builder
	result.WriteString(t.S().Title.Render("Help"))
	result.WriteString("\n\n")
	result.WriteString(m.view.View())
	result.WriteString("\n\n")
	result.WriteString(t.S().Subtle.Render(m.buildFooter()))
	return result.String()
}

func (m Model) buildContent() string {
	var sb strings.Builder
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	// Find max key width for alignment
	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(label))
			sb.WriteString("\n")
			sb.WriteString(t.S().Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		key := keyLabel(b)
		sb.WriteString(keyStyle.Render(key + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(key))))
		sb.WriteString("  ")
		sb.WriteString(t.S().Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins a binding's keys, spelling out the space bar.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.view.TotalLineCount() <= m.view.Height {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}
