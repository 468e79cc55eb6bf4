// Package app is the root Bubble Tea model. It owns navigation, popups,
// notifications and the frame around the current screen.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/app/navctl"
	"github.com/gccma/gccma/internal/app/popupctl"
	"github.com/gccma/gccma/internal/config"
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/responsive"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/screens/connect"
	"github.com/gccma/gccma/internal/screens/events"
	"github.com/gccma/gccma/internal/screens/givingform"
	"github.com/gccma/gccma/internal/screens/home"
	"github.com/gccma/gccma/internal/screens/landing"
	"github.com/gccma/gccma/internal/screens/live"
	"github.com/gccma/gccma/internal/screens/more"
	"github.com/gccma/gccma/internal/screens/prayerform"
	"github.com/gccma/gccma/internal/screens/sermons"
	"github.com/gccma/gccma/internal/screens/signin"
	"github.com/gccma/gccma/internal/state"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Model is the application state.
type Model struct {
	deps       screens.Deps
	Navigation *navctl.Manager
	Popups     *popupctl.Manager
	Keys       *keymap.Resolver

	Layout    layout.Layout
	grid      responsive.Grid
	scaleOpts responsive.Options
	width     int
	height    int

	Notifications      []Notification
	nextNotificationID int64

	startScreen content.Route
	lastNav     state.NavigationState
}

// New builds the app on the landing screen. cfg may be nil.
func New(cfg *config.Config, deps screens.Deps) Model {
	if cfg == nil {
		cfg = &config.Config{}
	}
	lc := cfg.GetLayoutConfig()

	m := Model{
		deps:        deps,
		Navigation:  navctl.New(screenFactory(deps)),
		Popups:      popupctl.New(),
		Keys:        keymap.NewResolver(keymap.ForContexts("global", "tabs")),
		grid:        lc.Grid(),
		scaleOpts:   lc.ScalerOptions(),
		startScreen: content.Route(cfg.StartScreen),
	}
	m.lastNav = loadNavigation(deps)
	styles.SetDark(darkMode(cfg, deps))

	m.Navigation.Go(content.RouteLanding)
	return m
}

// screenFactory builds screens for navctl.
func screenFactory(deps screens.Deps) navctl.Factory {
	return func(route content.Route) screens.Screen {
		switch route {
		case content.RouteLanding:
			return landing.New(deps)
		case content.RouteAuth:
			return signin.New(deps)
		case content.RouteSermons:
			return sermons.New(deps)
		case content.RouteEvents:
			return events.New(deps)
		case content.RouteConnect:
			return connect.New(deps)
		case content.RouteMore:
			return more.New(deps)
		case content.RouteLiveStream:
			return live.New(deps)
		case content.RouteGiving:
			return givingform.New(deps)
		case content.RoutePrayerRequest:
			return prayerform.New(deps)
		case content.RouteHome, content.RouteNone:
		}
		return home.New(deps)
	}
}

// darkMode resolves the theme: the config wins over the saved preference.
func darkMode(cfg *config.Config, deps screens.Deps) bool {
	switch cfg.Theme {
	case "dark":
		return true
	case "light":
		return false
	}
	if deps.State == nil {
		return false
	}
	prefs, err := deps.State.GetPreferences()
	if err != nil {
		deps.Logger().Warn("load preferences", "err", err)
		return false
	}
	return prefs.DarkMode
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Navigation.Current().Init()
}

// Route returns the route of the current screen.
func (m Model) Route() content.Route {
	return m.Navigation.Route()
}

// Current returns the current screen.
func (m Model) Current() screens.Screen {
	return m.Navigation.Current()
}
