// Package more is the last tab: profile, extra menus, settings and
// account actions.
package more

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/auth"
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/errmsg"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/state"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "more"

// request tags the confirm dialogs of the app section.
type request int

const (
	shareApp request = iota
	rateApp
	logout
)

type appAction struct {
	title   string
	icon    string
	ask     string
	done    string
	request request
}

var appActions = []appAction{
	{
		title: "Share App", icon: "people", request: shareApp,
		ask:  "Share the GCCMA app with friends and family!",
		done: "App shared successfully",
	},
	{
		title: "Rate App", icon: "give", request: rateApp,
		ask:  "We appreciate your feedback! Please rate our app in the store.",
		done: "Thank you for your rating",
	},
	{
		title: "Logout", icon: "church", request: logout,
		ask: "Are you sure you want to logout from your account?",
	},
}

type setting struct {
	title    string
	subtitle string
}

var settings = []setting{
	{"Push Notifications", "Receive updates about events and services"},
	{"Dark Mode", "Toggle dark mode theme"},
}

const (
	settingNotifications = iota
	settingDarkMode
)

// prefsLoadedMsg carries the saved settings.
type prefsLoadedMsg struct {
	prefs state.Preferences
	err   error
}

var keys = keymap.NewResolver(keymap.ByContext("list"))

// Model is the more screen. The selection runs through the main menu,
// settings, resources, about items and the app section.
type Model struct {
	deps     screens.Deps
	layout   layout.Layout
	width    int
	height   int
	page     screens.Page
	prefs    state.Preferences
	menu     []content.MenuItem
	res      []content.MenuItem
	about    []content.MenuItem
	selected int
}

// New creates the more screen with default settings until Init loads the
// saved ones.
func New(deps screens.Deps) *Model {
	return &Model{
		deps:  deps,
		page:  screens.NewPage(),
		prefs: state.DefaultPreferences(),
		menu:  content.MainMenu(),
		res:   content.Resources(),
		about: content.About(),
	}
}

// Preferences returns the settings as shown.
func (m *Model) Preferences() state.Preferences { return m.prefs }

// Selected returns the index of the selected target.
func (m *Model) Selected() int { return m.selected }

func (m *Model) targets() int {
	return len(m.menu) + len(settings) + len(m.res) + len(m.about) + len(appActions)
}

// Init loads the saved settings.
func (m *Model) Init() tea.Cmd {
	st := m.deps.State
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		p, err := st.GetPreferences()
		return prefsLoadedMsg{prefs: p, err: err}
	}
}

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		if msg.err != nil {
			m.deps.Logger().Warn("load preferences", "error", msg.err)
			return m, nil
		}
		m.prefs = msg.prefs
		return m, nil

	case action.Msg:
		if res, ok := msg.Action.(confirm.Result); ok && res.Confirmed {
			if req, mine := res.Context.(request); mine {
				return m, m.confirmed(req)
			}
		}
		return m, nil

	case tea.KeyMsg:
		a := keys.Resolve(msg.String())
		if next, moved := screens.Move(a, m.selected, m.targets()); moved {
			m.selected = next
			return m, nil
		}
		if a == keymap.ActionSelect || msg.String() == " " {
			return m, m.open()
		}
	}
	return m, nil
}

func (m *Model) open() tea.Cmd {
	i := m.selected
	if i < len(m.menu) {
		return openItem(m.menu[i])
	}
	i -= len(m.menu)
	if i < len(settings) {
		return m.toggle(i)
	}
	i -= len(settings)
	if i < len(m.res) {
		return openItem(m.res[i])
	}
	i -= len(m.res)
	if i < len(m.about) {
		return openItem(m.about[i])
	}
	i -= len(m.about)
	if i < len(appActions) {
		a := appActions[i]
		return action.Cmd(source, action.AskConfirm{Title: a.title, Message: a.ask, Context: a.request})
	}
	return nil
}

func openItem(item content.MenuItem) tea.Cmd {
	if item.Opens() {
		return action.Cmd(source, action.Navigate{To: item.Route})
	}
	return action.Cmd(source, action.Notify{Text: screens.ComingSoon(item.Title)})
}

func (m *Model) toggle(i int) tea.Cmd {
	var cmds []tea.Cmd
	switch i {
	case settingNotifications:
		m.prefs.Notifications = !m.prefs.Notifications
		text := "Notifications disabled"
		if m.prefs.Notifications {
			text = "Notifications enabled"
		}
		cmds = append(cmds, action.Cmd(source, action.Notify{Text: text}))
	case settingDarkMode:
		m.prefs.DarkMode = !m.prefs.DarkMode
		cmds = append(cmds, action.Cmd(source, action.SetDarkMode{On: m.prefs.DarkMode}))
	}
	cmds = append(cmds, m.save())
	return tea.Batch(cmds...)
}

func (m *Model) save() tea.Cmd {
	st := m.deps.State
	if st == nil {
		return nil
	}
	p := m.prefs
	log := m.deps.Logger()
	return func() tea.Msg {
		if err := st.SavePreferences(p); err != nil {
			log.Error("save preferences", "error", err)
			return action.Msg{Source: source, Action: action.ShowError{Text: errmsg.Format(errmsg.OpPreferencesSave, err)}}
		}
		return nil
	}
}

func (m *Model) confirmed(req request) tea.Cmd {
	for _, a := range appActions {
		if a.request != req {
			continue
		}
		if req == logout {
			return action.Cmd(source, action.Logout{})
		}
		return action.Cmd(source, action.Notify{Text: a.done})
	}
	return nil
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.page.SetSize(l.ContentWidth(), height)
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return false }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "tabs", "list"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "j/k move · enter open · space toggle" }

func (m *Model) user() auth.User {
	if m.deps.Session != nil {
		if u, ok := m.deps.Session.User(); ok {
			return u
		}
	}
	return auth.User{}
}

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	w := m.layout.ContentWidth()
	gap := make([]string, m.layout.Gap())
	b := screens.NewLines(m.selected)

	b.Add(screens.Title(m.layout, "More"))
	if !m.layout.Compact() {
		b.Add(t.S().Muted.Render("Explore additional features"))
	}
	b.Add(gap...)
	b.Add(m.profile(w)...)
	b.Add(gap...)

	for _, item := range m.menu {
		b.Item(screens.MenuRow(item, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("Settings"))
	for i, s := range settings {
		on := m.prefs.Notifications
		if i == settingDarkMode {
			on = m.prefs.DarkMode
		}
		line := icons.Checkbox(on) + " " + t.S().Title.Render(s.title) + t.S().Muted.Render(" · "+s.subtitle)
		b.Item(screens.Selectable(line, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("Resources"))
	for _, item := range m.res {
		b.Item(screens.MenuRow(item, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("About"))
	for _, item := range m.about {
		b.Item(screens.MenuRow(item, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("App"))
	for _, a := range appActions {
		title := icons.For(a.icon) + a.title
		style := t.S().Title
		if a.request == logout {
			style = t.S().Error
		}
		b.Item(screens.Selectable(style.Render(title), b.Selected(), w))
	}
	b.Add("", t.S().Subtle.Render(render.Fit("Version 1.0.0", w)))

	start, end := b.Focus()
	return render.Indent(m.page.Render(b.Lines, start, end), m.layout.Padding())
}

func (m *Model) profile(width int) []string {
	t := styles.T()
	u := m.user()
	name, email, initials := u.FullName(), u.Email, u.Initials()
	if name == "" {
		name, email, initials = content.GuestName, content.GuestEmail, "GU"
	}
	inner := max(width-4, 1)
	body := t.S().Badge.Render(initials) + " " + t.S().Title.Render(name) + "\n" +
		render.Fit(t.S().Muted.Render(email), inner)
	if u.MemberSince != "" {
		body += "\n" + render.Fit(t.S().Heading.Render("Member since "+u.MemberSince), inner)
	}
	return strings.Split(styles.CardStyle(false).Width(max(width-2, 1)).Render(body), "\n")
}
