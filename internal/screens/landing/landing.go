// Package landing is the splash screen shown before sign-in.
package landing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "landing"

const (
	welcomeTitle = "Welcome to Our Community"
	welcomeText  = "Join us in worship, fellowship, and serving God together as we grow in faith and love."
)

var buttons = []struct {
	label string
	to    content.Route
}{
	{"Get Started", content.RouteAuth},
	{"Continue as Guest", content.RouteHome},
}

// Model is the landing screen.
type Model struct {
	deps     screens.Deps
	layout   layout.Layout
	width    int
	height   int
	selected int
}

// New creates the landing screen.
func New(deps screens.Deps) *Model {
	return &Model{deps: deps}
}

// Init skips the landing page for a signed-in member.
func (m *Model) Init() tea.Cmd {
	if m.deps.Session != nil && m.deps.Session.IsAuthenticated() {
		return action.Cmd(source, action.Navigate{To: content.RouteHome})
	}
	return nil
}

// Update handles button selection.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k", "shift+tab":
		m.selected = (m.selected + len(buttons) - 1) % len(buttons)
	case "down", "j", "tab":
		m.selected = (m.selected + 1) % len(buttons)
	case "enter", " ":
		return m, action.Cmd(source, action.Navigate{To: buttons[m.selected].to})
	case "g":
		return m, action.Cmd(source, action.Navigate{To: content.RouteHome})
	}
	return m, nil
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return false }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "↑/↓ choose · enter continue · g guest · q quit" }

// View renders the splash centered on the screen.
func (m *Model) View() string {
	t := styles.T()
	church := m.deps.Church
	textWidth := min(m.layout.ContentWidth(), 60)

	var lines []string
	if logo := icons.For("church"); logo != "" {
		lines = append(lines, t.S().Heading.Render(strings.TrimSpace(logo)), "")
	}
	lines = append(lines,
		screens.Title(m.layout, church.ShortName),
		t.S().Muted.Render(church.Tagline),
	)
	lines = append(lines, blank(m.layout.Gap()+1)...)
	lines = append(lines, t.S().Title.Render(welcomeTitle))
	for _, l := range strings.Split(render.Wrap(welcomeText, textWidth), "\n") {
		lines = append(lines, t.S().Muted.Render(strings.TrimRight(l, " ")))
	}
	lines = append(lines, blank(m.layout.Gap()+1)...)

	for i, b := range buttons {
		style := t.S().Chip
		if i == m.selected {
			style = t.S().Badge
		}
		lines = append(lines, style.Render(b.label))
	}

	for i, l := range lines {
		lines[i] = render.Center(l, m.width)
	}
	top := max((m.height-len(lines))/2, 0)
	return strings.Repeat("\n", top) + strings.Join(lines, "\n")
}

func blank(n int) []string {
	return make([]string, n)
}
