// Package prayerform is the prayer request form. Requests are kept in the
// local prayer journal.
package prayerform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/errmsg"
	"github.com/gccma/gccma/internal/notify"
	"github.com/gccma/gccma/internal/prayer"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/form"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "prayer"

// Field keys.
const (
	keyAnonymous = "anonymous"
	keyName      = "name"
	keyEmail     = "email"
	keyCategory  = "category"
	keyRequest   = "request"
	keyUrgent    = "urgent"
	keySubmit    = "submit"
)

// maxFormWidth keeps the form readable on wide terminals.
const maxFormWidth = 70

// savedMsg reports the outcome of saving a request.
type savedMsg struct {
	entry prayer.Entry
	err   error
}

// Model is the prayer request screen.
type Model struct {
	deps       screens.Deps
	layout     layout.Layout
	width      int
	height     int
	form       form.Model
	submitting bool
}

// New creates an empty prayer request form.
func New(deps screens.Deps) *Model {
	req := prayer.NewRequest()
	return &Model{
		deps: deps,
		form: form.New(
			form.Toggle(keyAnonymous, "Submit anonymously", false),
			form.Text(keyName, "Your Name", "Enter your name"),
			form.Text(keyEmail, "Email (optional)", "Enter your email"),
			form.Choice(keyCategory, "Category", prayer.Categories, req.Category),
			form.Area(keyRequest, "Prayer Request", "Share your prayer request..."),
			form.Toggle(keyUrgent, "This is an urgent prayer request", false),
			form.Button(keySubmit, "Submit Prayer Request"),
		),
	}
}

// Request returns the form contents.
func (m *Model) Request() prayer.Request {
	return prayer.Request{
		Anonymous: m.form.On(keyAnonymous),
		Name:      m.form.Value(keyName),
		Email:     m.form.Value(keyEmail),
		Category:  m.form.Value(keyCategory),
		Text:      m.form.Value(keyRequest),
		Urgent:    m.form.On(keyUrgent),
	}
}

// Error returns the validation message shown under the form.
func (m *Model) Error() string { return m.form.Error() }

// Init implements screens.Screen.
func (m *Model) Init() tea.Cmd { return m.form.Init() }

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	if saved, ok := msg.(savedMsg); ok {
		return m, m.saved(saved)
	}
	if _, ok := msg.(tea.KeyMsg); ok && m.submitting {
		return m, nil
	}

	res, cmd := m.form.Update(msg)
	switch res.Event {
	case form.Submitted:
		return m, tea.Batch(cmd, m.submit())
	case form.Pressed:
		if res.Key == keySubmit {
			return m, tea.Batch(cmd, m.submit())
		}
	case form.Changed:
		m.form.SetError(nil)
		if res.Key == keyAnonymous {
			anon := m.form.On(keyAnonymous)
			m.form.SetHidden(keyName, anon)
			m.form.SetHidden(keyEmail, anon)
		}
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	req := m.Request()
	if err := req.Validate(); err != nil {
		m.form.SetError(err)
		return nil
	}
	req = req.Normalized()
	m.submitting = true

	st := m.deps.State
	if st == nil {
		return func() tea.Msg { return savedMsg{entry: prayer.Entry{Request: req}} }
	}
	return func() tea.Msg {
		e, err := st.AddPrayer(req)
		return savedMsg{entry: e, err: err}
	}
}

func (m *Model) saved(msg savedMsg) tea.Cmd {
	m.submitting = false
	if msg.err != nil {
		m.deps.Logger().Error("save prayer request", "error", msg.err)
		return action.Cmd(source, action.ShowError{Text: errmsg.Format(errmsg.OpPrayerSave, msg.err)})
	}
	m.deps.Logger().Info("prayer request submitted",
		"id", msg.entry.ID, "category", msg.entry.Request.Category, "urgent", msg.entry.Request.Urgent)
	return tea.Batch(
		action.Cmd(source, action.ShowDetail{Title: prayer.SubmittedTitle, Body: prayer.Submitted}),
		action.Cmd(source, action.Push{
			Title:    prayer.SubmittedTitle,
			Body:     prayer.Submitted,
			Category: notify.CategoryPrayer,
		}),
		action.Cmd(source, action.Back{}),
	)
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.form.SetSize(m.formWidth(), max(height-len(m.header()), 3))
}

func (m *Model) formWidth() int {
	return min(m.layout.ContentWidth(), maxFormWidth)
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return m.form.Capturing() }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "form"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "tab next · space toggle · ←/→ category · ctrl+s submit · esc back" }

func (m *Model) header() []string {
	t := styles.T()
	lines := []string{
		screens.Title(m.layout, "Prayer Request"),
		t.S().Muted.Render("Share your prayer needs with us"),
	}
	if !m.layout.Compact() {
		lines = append(lines, "")
		lines = append(lines, screens.Verse(content.PrayerVerse, m.formWidth())...)
	}
	return append(lines, "")
}

// View implements screens.Screen.
func (m *Model) View() string {
	lines := m.header()
	if m.submitting {
		lines = append(lines, styles.T().S().Muted.Render("Submitting..."))
	} else {
		lines = append(lines, m.form.View())
	}
	return render.Indent(strings.Join(lines, "\n"), m.layout.Padding())
}
