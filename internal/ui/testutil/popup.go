package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/popup"
)

// PopupHarness drives a popup with key presses the way the app does and
// records the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and records its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// Popup returns the popup after the updates so far.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup's rendered content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendKey presses each key by name, e.g. "y", "enter" or "shift+tab",
// and returns the command of the last one.
func (h *PopupHarness) SendKey(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		h.popup, cmd = h.popup.Update(Key(k))
		h.record(cmd)
	}
	return cmd
}

// SendText types s one rune at a time.
func (h *PopupHarness) SendText(s string) {
	for _, k := range Type(s) {
		var cmd tea.Cmd
		h.popup, cmd = h.popup.Update(k)
		h.record(cmd)
	}
}

// Commands returns the commands recorded since creation or ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the recorded commands.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// Result runs the last command and returns the action it sent to the
// app, e.g. a confirm.Result. Popups that close send exactly one.
func (h *PopupHarness) Result() (action.Action, bool) {
	msgs := Actions(h.LastCommand())
	if len(msgs) == 0 {
		return nil, false
	}
	return msgs[0].Action, true
}

// ViewContains reports whether a line of the plain-text view contains
// substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns an error message if view doesn't contain substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns an error message if view contains substr.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
