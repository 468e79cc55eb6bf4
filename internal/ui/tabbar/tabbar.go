// Package tabbar renders the row of main sections at the top of the app.
package tabbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Height is the tab row plus the separator under it.
const Height = 2

// tab represents a tab bar entry.
type tab struct {
	route content.Route
	name  string
}

var tabs = []tab{
	{content.RouteHome, "Home"},
	{content.RouteSermons, "Sermons"},
	{content.RouteEvents, "Events"},
	{content.RouteConnect, "Connect"},
	{content.RouteMore, "More"},
}

// Label returns the display name of a tab route, or "" for non-tabs.
func Label(r content.Route) string {
	for _, t := range tabs {
		if t.route == r {
			return t.name
		}
	}
	return ""
}

// Render returns the tab bar for the given width. Compact bars show
// initials instead of names. Routes that are not tabs leave every tab
// inactive.
func Render(current content.Route, width int, compact bool) string {
	if width < 10 {
		return ""
	}
	t := styles.T()
	activeKey := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	activeName := activeKey.Underline(true)
	inactiveKey := t.S().Subtle
	inactiveName := t.S().Muted
	separator := t.S().Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for i, tb := range tabs {
		name := tb.name
		if compact {
			name = render.Initials(name)
		}
		key := strconv.Itoa(i + 1)

		if tb.route == current {
			parts = append(parts, activeKey.Render(key)+" "+activeName.Render(name))
		} else {
			parts = append(parts, inactiveKey.Render(key)+" "+inactiveName.Render(name))
		}
	}

	row := render.Center(strings.Join(parts, separator), width)
	return row + "\n" + t.S().Subtle.Render(render.Separator(width))
}
