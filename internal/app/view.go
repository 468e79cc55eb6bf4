// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/popup"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
	"github.com/gccma/gccma/internal/ui/tabbar"
)

// globalHints close every footer.
const globalHints = "? help · q quit"

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.Layout.TooSmall() {
		return m.renderTooSmall()
	}

	route := m.Navigation.Route()
	var parts []string
	if route.IsTab() {
		parts = append(parts, tabbar.Render(route, m.width, m.Layout.Compact()))
	}
	parts = append(parts, enforceHeight(m.Navigation.Current().View(), m.bodyHeight(route)))
	if len(m.Notifications) > 0 {
		parts = append(parts, m.renderNotifications())
	}
	parts = append(parts, m.renderFooter())

	view := strings.Join(parts, "\n")

	// Overlay all popups
	view = m.Popups.RenderOverlay(view)

	// Ensure view is exactly terminal height (pad or truncate if needed)
	return enforceHeight(view, m.height)
}

// --- Layout ---

// resize rebuilds the layout and hands every screen its new body size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.Layout = layout.New(width, height, m.grid, m.scaleOpts)
	m.Popups.SetSize(width, height)
	m.relayout()
}

// relayout re-sizes every live screen, e.g. after a notification shows.
func (m *Model) relayout() {
	m.Navigation.Each(func(route content.Route, s screens.Screen) screens.Screen {
		m.layoutScreen(route, s)
		return s
	})
}

func (m *Model) layoutScreen(route content.Route, s screens.Screen) {
	if m.width == 0 || m.height == 0 {
		return
	}
	s.SetLayout(m.Layout, m.width, m.bodyHeight(route))
}

// bodyHeight is what is left for a screen between the tab bar and the
// footer.
func (m Model) bodyHeight(route content.Route) int {
	h := m.height - ui.FooterHeight - layout.NotificationHeight(len(m.Notifications))
	if route.IsTab() {
		h -= tabbar.Height
	}
	return max(h, 0)
}

// --- Chrome ---

func (m Model) renderFooter() string {
	t := styles.T()
	hints := m.Navigation.Current().Hints()
	if hints != "" {
		hints += " · "
	}
	return " " + t.S().Subtle.Render(render.Truncate(hints+globalHints, m.width-2))
}

// renderNotifications renders all notification messages.
func (m Model) renderNotifications() string {
	if len(m.Notifications) == 0 {
		return ""
	}

	t := styles.T()
	innerWidth := m.width - 2 // Account for borders

	// Style: checkmark + message
	checkStyle := lipgloss.NewStyle().Foreground(t.Primary)
	msgStyle := lipgloss.NewStyle().Foreground(t.FgBase)

	lines := make([]string, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		text := render.Truncate(n.Message, innerWidth-4)
		lines = append(lines, " "+checkStyle.Render("✓")+" "+msgStyle.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderTooSmall() string {
	t := styles.T()
	msg := t.S().Muted.Render("Terminal too small") + "\n" +
		t.S().Subtle.Render(fmt.Sprintf("Resize to at least %dx%d", ui.MinWidth, ui.MinHeight))
	return popup.Center(msg, m.width, m.height)
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	if targetHeight <= 0 {
		return ""
	}
	lines := strings.Split(view, "\n")
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		// Pad with empty lines
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}
