// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/app/popupctl"
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/helpbindings"
	"github.com/gccma/gccma/internal/ui/styles"
	"github.com/gccma/gccma/internal/ui/textinput"
)

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case action.Msg:
		return m.handleAction(msg)
	case NotificationClearMsg:
		m.clearNotification(msg.ID)
		return m, nil
	}
	return m.broadcast(msg)
}

// updateCurrent sends msg to the current screen only.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	s, cmd := m.Navigation.Current().Update(msg)
	m.Navigation.SetCurrent(s)
	m.saveNavigationState()
	return m, cmd
}

// broadcast sends msg to every live screen. Results of async work and
// timer ticks are private to the screen that started them, so a screen
// left behind on the back stack still gets its own.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	m.Navigation.Each(func(_ content.Route, s screens.Screen) screens.Screen {
		next, cmd := s.Update(msg)
		cmds = append(cmds, cmd)
		return next
	})
	m.saveNavigationState()
	return m, tea.Batch(cmds...)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case action.Navigate:
		cmd := m.navigate(a.To)
		return m, cmd
	case action.Back:
		m.back()
		return m, nil
	case action.Logout:
		cmd := m.logout()
		return m, cmd
	case action.SetDarkMode:
		styles.SetDark(a.On)
		return m, nil
	case action.Notify:
		cmd := m.notify(a.Text)
		return m, cmd
	case action.Push:
		return m, m.push(a)
	case action.ShowError:
		m.deps.Logger().Warn("error shown", "source", msg.Source, "text", a.Text)
		m.Popups.ShowError(a.Text)
		return m, nil
	case action.ShowDetail:
		m.Popups.ShowDetail(a.Title, a.Body)
		return m, nil
	case action.AskConfirm:
		return m, m.Popups.ShowConfirm(a.Title, a.Message, a.Context)
	case action.AskText:
		return m, m.Popups.ShowTextInput(a.Title, a.Value, a.Placeholder, a.Context)
	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		return m.updateCurrent(msg)
	case textinput.Result:
		m.Popups.Hide(popupctl.TextInput)
		return m.updateCurrent(msg)
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil
	}
	return m, nil
}

// navigate opens route. Signing in lands on the start tab instead of
// Home.
func (m *Model) navigate(to content.Route) tea.Cmd {
	from := m.Navigation.Route()
	if to == content.RouteHome && (from == content.RouteLanding || from == content.RouteAuth) {
		to = m.startTab()
	}

	s, created := m.Navigation.Go(to)
	m.deps.Logger().Debug("navigate", "from", from, "to", to, "created", created)

	m.layoutScreen(to, s)
	var cmd tea.Cmd
	if created {
		m.restoreCategory(to, s)
		cmd = s.Init()
	}
	m.saveNavigationState()
	return cmd
}

// back pops the back stack, if there is one.
func (m *Model) back() bool {
	if !m.Navigation.Back() {
		return false
	}
	m.layoutScreen(m.Navigation.Route(), m.Navigation.Current())
	m.saveNavigationState()
	return true
}

// logout ends the session and starts over on the landing screen.
func (m *Model) logout() tea.Cmd {
	if m.deps.Session != nil {
		m.deps.Session.Logout()
	}
	m.deps.Logger().Info("logged out")
	s := m.Navigation.Reset(content.RouteLanding)
	m.layoutScreen(content.RouteLanding, s)
	return s.Init()
}
