// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/helpbindings"
	"github.com/gccma/gccma/internal/ui/popup"
	"github.com/gccma/gccma/internal/ui/textinput"
)

// dismissHint is the footer of popups closed by any key.
const dismissHint = "Press any key to dismiss"

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	detail   *popup.Dialog
	errorMsg string
	width    int
	height   int
}

// New creates a new Manager with initialized components.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes:  map[Type]popup.SizeConfig{
			// All popups default to SizeAuto
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.sizes[t])
		pop.SetSize(w, h)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Detail:
		return p.detail != nil
	case Help, Confirm, TextInput:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(p.sizes[t])
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Error:
		p.errorMsg = ""
	case Detail:
		p.detail = nil
	case Help, Confirm, TextInput:
		delete(p.popups, t)
	}
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		w := p.width * size.WidthPct / 100
		h := p.height * size.HeightPct / 100
		return w, h
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowTextInput displays a text input popup.
func (p *Manager) ShowTextInput(title, value, placeholder string, context any) tea.Cmd {
	ti := textinput.New()
	ti.Start(title, value, placeholder, context, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// ShowDetail displays a read-only dialog.
func (p *Manager) ShowDetail(title, body string) {
	p.detail = &popup.Dialog{Title: title, Body: body, Footer: dismissHint}
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// --- Key Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	switch active {
	case None:
		return false, nil
	case Error, Detail:
		// Read-only popups: dismiss on any key
		p.Hide(active)
		return true, nil
	case Help, Confirm, TextInput:
	}

	pop := p.popups[active]
	if pop == nil {
		return false, nil
	}

	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		switch t {
		case Error:
			base = popup.Compose(base, p.renderError(), p.width)
			continue
		case Detail:
			base = popup.Compose(base, p.detail.Render(p.width, p.height), p.width)
			continue
		case None, Help, Confirm, TextInput:
		}

		pop := p.popups[t]
		if pop == nil {
			continue
		}

		rendered := popup.RenderBordered(pop.View(), p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width)
	}
	return base
}

func (p *Manager) renderError() string {
	d := popup.Dialog{Title: "Error", Body: p.errorMsg, Footer: dismissHint}
	return d.Render(p.width, p.height)
}
