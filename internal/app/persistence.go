// internal/app/persistence.go
package app

import (
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/state"
)

func loadNavigation(deps screens.Deps) state.NavigationState {
	if deps.State == nil {
		return state.NavigationState{}
	}
	nav, err := deps.State.GetNavigation()
	if err != nil {
		deps.Logger().Warn("load navigation state", "err", err)
		return state.NavigationState{}
	}
	if nav == nil {
		return state.NavigationState{}
	}
	return *nav
}

// startTab is the tab opened after sign-in: the configured start screen,
// else the last used tab, else Home.
func (m Model) startTab() content.Route {
	if m.startScreen.IsTab() {
		return m.startScreen
	}
	if last := content.Route(m.lastNav.Tab); last.IsTab() {
		return last
	}
	return content.RouteHome
}

// restoreCategory applies the saved category filter to a new screen.
func (m Model) restoreCategory(route content.Route, s screens.Screen) {
	f, ok := s.(screens.Filtered)
	if !ok {
		return
	}
	switch route {
	case content.RouteSermons:
		if m.lastNav.SermonCategory != "" {
			f.SetCategory(m.lastNav.SermonCategory)
		}
	case content.RouteEvents:
		if m.lastNav.EventCategory != "" {
			f.SetCategory(m.lastNav.EventCategory)
		}
	default:
	}
}

// saveNavigationState stores the active tab and category filters when
// they changed. Nothing is saved outside the tabs.
func (m *Model) saveNavigationState() {
	route := m.Navigation.Route()
	if !route.IsTab() {
		return
	}

	nav := m.lastNav
	nav.Tab = string(route)
	if f, ok := m.Navigation.Tab(content.RouteSermons).(screens.Filtered); ok {
		nav.SermonCategory = f.Category()
	}
	if f, ok := m.Navigation.Tab(content.RouteEvents).(screens.Filtered); ok {
		nav.EventCategory = f.Category()
	}
	if nav == m.lastNav {
		return
	}

	m.lastNav = nav
	if m.deps.State != nil {
		m.deps.State.SaveNavigation(nav)
	}
}
