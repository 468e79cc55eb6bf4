// Package screens holds what every screen of the app shares: the Screen
// contract, the dependencies screens are built with and common
// rendering helpers.
package screens

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/applog"
	"github.com/gccma/gccma/internal/auth"
	"github.com/gccma/gccma/internal/config"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/livestream"
	"github.com/gccma/gccma/internal/notify"
	"github.com/gccma/gccma/internal/state"
	"github.com/gccma/gccma/internal/ui/layout"
)

// Screen is one page of the app. The app owns the tab bar, footer,
// popups and notifications; a screen draws the body between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string

	// SetLayout is called on every resize with the body dimensions.
	SetLayout(l layout.Layout, width, height int)

	// Capturing reports whether keys are text input, so the app must not
	// treat q or digits as shortcuts.
	Capturing() bool

	// HelpContexts lists the keymap contexts shown in the help popup.
	HelpContexts() []string

	// Hints is the key hint line shown in the footer.
	Hints() string
}

// Deps are the services screens are built with.
type Deps struct {
	Church  config.ChurchConfig
	Session *auth.Session
	State   state.Interface
	Log     *slog.Logger
	Now     func() time.Time
	Rand    livestream.Source // nil uses a time-seeded source
	Desktop notify.Notifier   // nil sends no desktop notifications
}

// Clock returns the current time from Now, or time.Now.
func (d Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Logger returns Log, or a logger that discards.
func (d Deps) Logger() *slog.Logger {
	if d.Log == nil {
		return applog.Discard()
	}
	return d.Log
}

// Filtered is a screen with a category filter that is restored across
// runs.
type Filtered interface {
	Category() string
	SetCategory(category string)
}

// NextOption cycles through options by delta, wrapping. An unknown
// current value counts as the first option.
func NextOption(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// IsOption reports whether v is one of options.
func IsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// Move applies a list navigation action to a flat selection of n targets
// and reports whether it was one.
func Move(a keymap.Action, selected, n int) (int, bool) {
	if n == 0 {
		return 0, a == keymap.ActionMoveDown || a == keymap.ActionMoveUp
	}
	switch a {
	case keymap.ActionMoveDown:
		return min(selected+1, n-1), true
	case keymap.ActionMoveUp:
		return max(selected-1, 0), true
	case keymap.ActionJumpStart:
		return 0, true
	case keymap.ActionJumpEnd:
		return n - 1, true
	}
	return selected, false
}

// ComingSoon is the notice for menu items that lead outside the app.
func ComingSoon(title string) string {
	return title + " is coming soon"
}
