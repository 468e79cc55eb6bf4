// internal/app/navctl/manager.go
package navctl

import (
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
)

// Factory builds the screen for a route.
type Factory func(route content.Route) screens.Screen

type entry struct {
	route  content.Route
	screen screens.Screen
}

// Manager tracks the current screen, the back stack and the tab screens,
// which are created once and kept while switching tabs.
type Manager struct {
	factory Factory
	current entry
	stack   []entry
	tabs    map[content.Route]screens.Screen
}

// New creates a Manager with no current screen.
func New(factory Factory) *Manager {
	return &Manager{
		factory: factory,
		tabs:    make(map[content.Route]screens.Screen),
	}
}

// --- Current ---

// Route returns the current route.
func (n *Manager) Route() content.Route {
	return n.current.route
}

// Current returns the current screen, or nil before the first Go.
func (n *Manager) Current() screens.Screen {
	return n.current.screen
}

// SetCurrent replaces the current screen after an Update.
func (n *Manager) SetCurrent(s screens.Screen) {
	n.current.screen = s
	if n.current.route.IsTab() {
		n.tabs[n.current.route] = s
	}
}

// Tab returns the cached screen of a tab, or nil if it was never opened.
func (n *Manager) Tab(route content.Route) screens.Screen {
	return n.tabs[route]
}

// Each passes every live screen through fn and keeps what it returns:
// the back stack, the cached tabs, then the current screen. Each screen
// is visited once.
func (n *Manager) Each(fn func(route content.Route, s screens.Screen) screens.Screen) {
	stacked := make(map[content.Route]bool, len(n.stack))
	for i, e := range n.stack {
		s := fn(e.route, e.screen)
		n.stack[i].screen = s
		if e.route.IsTab() {
			n.tabs[e.route] = s
			stacked[e.route] = true
		}
	}
	for r, s := range n.tabs {
		if r == n.current.route || stacked[r] {
			continue
		}
		n.tabs[r] = fn(r, s)
	}
	if n.current.screen != nil {
		n.SetCurrent(fn(n.current.route, n.current.screen))
	}
}

// Depth returns the number of screens Back can return to.
func (n *Manager) Depth() int {
	return len(n.stack)
}

// --- Moves ---

// Go opens route. Tabs drop the back stack and reuse their screen; other
// routes are pushed. Going to the current route does nothing. created
// reports a new screen that still needs its layout and Init.
func (n *Manager) Go(route content.Route) (s screens.Screen, created bool) {
	if route == n.current.route && n.current.screen != nil {
		return n.current.screen, false
	}

	if route.IsTab() {
		n.stack = nil
		if cached := n.tabs[route]; cached != nil {
			n.current = entry{route: route, screen: cached}
			return cached, false
		}
		s = n.factory(route)
		n.tabs[route] = s
		n.current = entry{route: route, screen: s}
		return s, true
	}

	if n.current.screen != nil {
		n.stack = append(n.stack, n.current)
	}
	s = n.factory(route)
	n.current = entry{route: route, screen: s}
	return s, true
}

// Back returns to the previous screen. It reports false when the stack
// is empty.
func (n *Manager) Back() bool {
	if len(n.stack) == 0 {
		return false
	}
	n.current = n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Reset forgets every screen and opens route.
func (n *Manager) Reset(route content.Route) screens.Screen {
	n.stack = nil
	n.tabs = make(map[content.Route]screens.Screen)
	n.current = entry{}
	s, _ := n.Go(route)
	return s
}
