// Package connect is the community tab: ways to get involved, contact
// details, social accounts and an introduction to the church.
package connect

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/errmsg"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "connect"

var keys = keymap.NewResolver(keymap.ForContexts("list", "connect"))

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Model is the connect screen. The selection runs through the options,
// then the contact entries, then the social accounts.
type Model struct {
	deps     screens.Deps
	layout   layout.Layout
	width    int
	height   int
	page     screens.Page
	options  []content.MenuItem
	contact  []content.Link
	social   []content.Link
	selected int
}

// New creates the connect screen.
func New(deps screens.Deps) *Model {
	return &Model{
		deps:    deps,
		page:    screens.NewPage(),
		options: content.ConnectOptions(),
		contact: content.ContactInfo(deps.Church),
		social:  content.SocialLinks(deps.Church),
	}
}

func (m *Model) targets() int {
	return len(m.options) + len(m.contact) + len(m.social)
}

// Selected returns the index of the selected target.
func (m *Model) Selected() int { return m.selected }

// Init implements screens.Screen.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	a := keys.Resolve(key.String())
	if next, moved := screens.Move(a, m.selected, m.targets()); moved {
		m.selected = next
		return m, nil
	}
	switch a {
	case keymap.ActionSelect:
		return m, m.open()
	case keymap.ActionCopy:
		if l, ok := m.selectedLink(); ok {
			return m, copyLink(l)
		}
	}
	return m, nil
}

// selectedLink returns the contact entry or social account under the
// selection.
func (m *Model) selectedLink() (content.Link, bool) {
	i := m.selected - len(m.options)
	if i < 0 {
		return content.Link{}, false
	}
	if i < len(m.contact) {
		return m.contact[i], true
	}
	i -= len(m.contact)
	if i < len(m.social) {
		return m.social[i], true
	}
	return content.Link{}, false
}

func (m *Model) open() tea.Cmd {
	i := m.selected
	if i < len(m.options) {
		opt := m.options[i]
		if opt.Opens() {
			return action.Cmd(source, action.Navigate{To: opt.Route})
		}
		return action.Cmd(source, action.Notify{Text: screens.ComingSoon(opt.Title)})
	}
	i -= len(m.options)
	if i < len(m.contact) {
		return openLink(m.contact[i])
	}
	i -= len(m.contact)
	if i < len(m.social) {
		return openLink(m.social[i])
	}
	return nil
}

// openLink shows where a link leads; the terminal cannot dial or browse.
func openLink(l content.Link) tea.Cmd {
	if l.Value == "" {
		return action.Cmd(source, action.Notify{Text: l.Label + " is not available"})
	}
	body := l.Value
	if l.URL != "" && l.URL != l.Value {
		body += "\n\n" + l.URL
	}
	return action.Cmd(source, action.ShowDetail{Title: l.Label, Body: body})
}

// copyLink puts the link's URL, or its value when it has none, on the
// system clipboard.
func copyLink(l content.Link) tea.Cmd {
	text := l.URL
	if text == "" {
		text = l.Value
	}
	if text == "" {
		return action.Cmd(source, action.Notify{Text: l.Label + " is not available"})
	}
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return action.Msg{Source: source, Action: action.ShowError{Text: errmsg.FormatWith(errmsg.OpLinkCopy, l.Label, err)}}
		}
		return action.Msg{Source: source, Action: action.Notify{Text: l.Label + " link copied"}}
	}
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
func (m *Model) HelpContexts() []string { return []string{"global", "tabs", "list", "connect"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "j/k move · enter open · y copy link" }

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	w := m.layout.ContentWidth()
	gap := make([]string, m.layout.Gap())
	b := screens.NewLines(m.selected)

	b.Add(screens.Title(m.layout, "Connect"))
	if !m.layout.Compact() {
		b.Add(t.S().Muted.Render("Stay connected with our community"))
	}
	b.Add(gap...)

	b.Add(screens.Section("Get Connected"))
	for _, o := range m.options {
		b.Item(screens.MenuRow(o, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("Contact Information"))
	for _, l := range m.contact {
		b.Item(linkRow(l, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("Follow Us"))
	for _, l := range m.social {
		b.Item(linkRow(l, b.Selected(), w))
	}
	b.Add(gap...)

	b.Add(screens.Section("About " + m.deps.Church.ShortName))
	b.Add(strings.Split(render.Wrap(content.ChurchAbout, w), "\n")...)
	if len(m.deps.Church.ServiceTimes) > 0 {
		b.Add("", t.S().Heading.Render("Service Times"))
		for _, s := range m.deps.Church.ServiceTimes {
			b.Add(t.S().Muted.Render("• " + s))
		}
	}
	b.Add(gap...)

	b.Add(screens.Section("Pastoral Team"))
	for _, p := range content.PastoralTeam() {
		b.Add(t.S().Title.Render(p.Name), t.S().Heading.Render(p.Role))
		b.Add(strings.Split(t.S().Muted.Render(render.Wrap(p.About, w)), "\n")...)
	}

	start, end := b.Focus()
	return render.Indent(m.page.Render(b.Lines, start, end), m.layout.Padding())
}

func linkRow(l content.Link, selected bool, width int) string {
	t := styles.T()
	label := icons.For(l.Icon) + l.Label
	if l.Color != "" {
		label = t.AccentStyle(l.Color).Render(icons.For(l.Icon)) + l.Label
	}
	return screens.Selectable(t.S().Title.Render(label)+t.S().Muted.Render("  "+l.Value), selected, width)
}
