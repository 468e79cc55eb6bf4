// Package action defines how screens and popups talk to the app.
package action

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
)

// Action is something a component asks the app to do.
type Action interface {
	ActionType() string
}

// Msg wraps an Action with the name of the component that sent it.
type Msg struct {
	Source string // e.g. "sermons", "confirm"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

// Navigate opens a route. Tabs switch; other screens push onto the back
// stack.
type Navigate struct{ To content.Route }

func (Navigate) ActionType() string { return "navigate" }

// Back pops the back stack.
type Back struct{}

func (Back) ActionType() string { return "back" }

// Logout ends the session and returns to the landing screen.
type Logout struct{}

func (Logout) ActionType() string { return "logout" }

// SetDarkMode switches the theme.
type SetDarkMode struct{ On bool }

func (SetDarkMode) ActionType() string { return "set_dark_mode" }

// Notify shows a short-lived notice at the bottom of the screen.
type Notify struct{ Text string }

func (Notify) ActionType() string { return "notify" }

// Push sends a desktop notification when the member has notifications
// turned on.
type Push struct {
	Title    string
	Body     string
	Category string // see notify.Category*
}

func (Push) ActionType() string { return "push" }

// ShowError shows the error popup.
type ShowError struct{ Text string }

func (ShowError) ActionType() string { return "show_error" }

// ShowDetail shows a read-only popup, e.g. a sermon's description.
type ShowDetail struct {
	Title string
	Body  string
}

func (ShowDetail) ActionType() string { return "show_detail" }

// AskConfirm opens a yes/no popup. Context comes back in the confirm
// result so the asking screen can act on it.
type AskConfirm struct {
	Title   string
	Message string
	Context any
}

func (AskConfirm) ActionType() string { return "ask_confirm" }

// AskText opens the text input popup. The result comes back to the
// asking screen with Context.
type AskText struct {
	Title       string
	Value       string
	Placeholder string
	Context     any
}

func (AskText) ActionType() string { return "ask_text" }
