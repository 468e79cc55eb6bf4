// Package handler runs the app's key handlers in order until one claims
// the key.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/keymap"
)

// Key is a key press as the handlers see it.
type Key struct {
	Name      string        // e.g. "q", "ctrl+c", "shift+tab"
	Action    keymap.Action // resolved from the app bindings, or ""
	Capturing bool          // the current screen is taking text
}

// Result is what a handler decided about a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on.
var NotHandled = Result{}

// Done claims the key without a command.
var Done = Result{Handled: true}

// Handled claims the key and runs cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler looks at a key and may claim it.
type Handler func(k Key) Result

// Chain offers k to each handler in turn and stops at the first that
// claims it.
func Chain(k Key, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(k); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
