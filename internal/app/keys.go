// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/app/handler"
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/keymap"
)

// tabKeys maps the direct tab shortcuts to their routes.
var tabKeys = map[keymap.Action]content.Route{
	keymap.ActionTabHome:    content.RouteHome,
	keymap.ActionTabSermons: content.RouteSermons,
	keymap.ActionTabEvents:  content.RouteEvents,
	keymap.ActionTabConnect: content.RouteConnect,
	keymap.ActionTabMore:    content.RouteMore,
}

// handleKeyMsg routes a key to the popups, then the app shortcuts, then
// the current screen.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	k := handler.Key{
		Name:      msg.String(),
		Action:    m.Keys.Resolve(msg.String()),
		Capturing: m.Navigation.Current().Capturing(),
	}

	handled, cmd := handler.Chain(k,
		m.handleQuitKey,
		m.handleHelpKey,
		m.handleBackKey,
		m.handleTabKeys,
	)
	if handled {
		return m, cmd
	}
	return m.updateCurrent(msg)
}

// handleQuitKey quits on ctrl+c, and on q unless a field is being typed in.
func (m *Model) handleQuitKey(k handler.Key) handler.Result {
	if k.Action != keymap.ActionQuit || (k.Capturing && k.Name != "ctrl+c") {
		return handler.NotHandled
	}
	m.deps.Logger().Info("quit", "route", m.Navigation.Route())
	return handler.Handled(tea.Quit)
}

func (m *Model) handleHelpKey(k handler.Key) handler.Result {
	if k.Action != keymap.ActionHelp || k.Capturing {
		return handler.NotHandled
	}
	return handler.Handled(m.Popups.ShowHelp(m.Navigation.Current().HelpContexts()))
}

// handleBackKey leaves pushed screens. On a tab it falls through to the
// screen.
func (m *Model) handleBackKey(k handler.Key) handler.Result {
	if k.Action != keymap.ActionBack || !m.back() {
		return handler.NotHandled
	}
	return handler.Done
}

// handleTabKeys switches tabs, only while a tab is shown.
func (m *Model) handleTabKeys(k handler.Key) handler.Result {
	route := m.Navigation.Route()
	if k.Capturing || !route.IsTab() {
		return handler.NotHandled
	}

	switch k.Action {
	case keymap.ActionNextTab:
		return handler.Handled(m.navigate(stepTab(route, 1)))
	case keymap.ActionPrevTab:
		return handler.Handled(m.navigate(stepTab(route, -1)))
	default:
		if to, ok := tabKeys[k.Action]; ok {
			return handler.Handled(m.navigate(to))
		}
	}
	return handler.NotHandled
}

// stepTab returns the tab delta places from current, wrapping around.
func stepTab(current content.Route, delta int) content.Route {
	n := len(content.Tabs)
	for i, t := range content.Tabs {
		if t == current {
			return content.Tabs[((i+delta)%n+n)%n]
		}
	}
	return content.RouteHome
}
