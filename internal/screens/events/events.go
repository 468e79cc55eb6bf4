// Package events lists upcoming church events and adds them to the
// user's calendar.
package events

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/errmsg"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/notify"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/state"
	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/list"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "events"

const rowHeight = 2

// Notices shown after adding an event.
const (
	AddedNotice = "Event added to your calendar"
	addTitle    = "Add to Calendar"
)

// addRequest tags the confirm dialog asking to add event.
type addRequest struct {
	event content.Event
}

// calendarLoadedMsg carries the IDs of events already on the calendar.
type calendarLoadedMsg struct {
	ids []string
	err error
}

// addedMsg reports the outcome of adding an event.
type addedMsg struct {
	event content.Event
	err   error
}

var keys = keymap.NewResolver(keymap.ForContexts("list"))

// Model is the events screen.
type Model struct {
	deps   screens.Deps
	layout layout.Layout
	width  int
	height int

	all      []content.Event
	category string
	list     list.Model[content.Event]
	saved    map[string]bool
}

// New creates the events screen showing every event.
func New(deps screens.Deps) *Model {
	m := &Model{
		deps:     deps,
		all:      content.Events(),
		category: content.CategoryAll,
		list:     list.New[content.Event](ui.ScrollMargin),
		saved:    make(map[string]bool),
	}
	m.refilter()
	return m
}

// Category implements screens.Filtered.
func (m *Model) Category() string { return m.category }

// SetCategory implements screens.Filtered. Unknown categories show all.
func (m *Model) SetCategory(category string) {
	if !screens.IsOption(content.EventCategories, category) {
		category = content.CategoryAll
	}
	m.category = category
	m.refilter()
}

// Visible returns the events in the selected category.
func (m *Model) Visible() []content.Event { return m.list.Items() }

// OnCalendar reports whether the event with id was added.
func (m *Model) OnCalendar(id string) bool { return m.saved[id] }

func (m *Model) refilter() {
	m.list.SetItems(content.FilterEvents(m.all, m.category))
	m.list.Reset()
}

// Init loads the events already on the calendar.
func (m *Model) Init() tea.Cmd {
	st := m.deps.State
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := st.ListCalendar()
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.EventID)
		}
		return calendarLoadedMsg{ids: ids, err: err}
	}
}

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		if msg.err != nil {
			m.deps.Logger().Warn("load calendar", "error", msg.err)
			return m, action.Cmd(source, action.ShowError{Text: errmsg.Format(errmsg.OpCalendarLoad, msg.err)})
		}
		for _, id := range msg.ids {
			m.saved[id] = true
		}
		return m, nil

	case addedMsg:
		return m, m.handleAdded(msg)

	case action.Msg:
		if res, ok := msg.Action.(confirm.Result); ok {
			if req, mine := res.Context.(addRequest); mine && res.Confirmed {
				return m, m.add(req.event)
			}
		}
		return m, nil

	case tea.KeyMsg:
		a := keys.Resolve(msg.String())
		switch a {
		case keymap.ActionPrevFilter:
			m.SetCategory(screens.NextOption(content.EventCategories, m.category, -1))
			return m, nil
		case keymap.ActionNextFilter:
			m.SetCategory(screens.NextOption(content.EventCategories, m.category, 1))
			return m, nil
		}

		res := m.list.HandleAction(a)
		if res.Selected {
			if e, ok := m.list.Selected(); ok {
				return m, action.Cmd(source, action.AskConfirm{
					Title:   addTitle,
					Message: fmt.Sprintf("Would you like to add %q to your calendar?", e.Title),
					Context: addRequest{event: e},
				})
			}
		}
	}
	return m, nil
}

func (m *Model) add(e content.Event) tea.Cmd {
	st := m.deps.State
	if st == nil {
		return func() tea.Msg { return addedMsg{event: e} }
	}
	return func() tea.Msg {
		_, err := st.AddToCalendar(e)
		return addedMsg{event: e, err: err}
	}
}

func (m *Model) handleAdded(msg addedMsg) tea.Cmd {
	switch {
	case msg.err == nil:
		m.saved[msg.event.ID] = true
		m.deps.Logger().Info("event added to calendar", "event", msg.event.ID)
		return tea.Batch(
			action.Cmd(source, action.Notify{Text: AddedNotice}),
			action.Cmd(source, action.Push{
				Title:    msg.event.Title,
				Body:     msg.event.DateLabel() + " · " + msg.event.TimeRange() + "\n" + msg.event.Location,
				Category: notify.CategoryEvent,
			}),
		)
	case errors.Is(msg.err, state.ErrAlreadyOnCalendar):
		m.saved[msg.event.ID] = true
		return action.Cmd(source, action.Notify{Text: fmt.Sprintf("%q is already on your calendar", msg.event.Title)})
	default:
		m.deps.Logger().Error("add event to calendar", "event", msg.event.ID, "error", msg.err)
		return action.Cmd(source, action.ShowError{
			Text: errmsg.FormatWith(errmsg.OpCalendarAdd, msg.event.Title, msg.err),
		})
	}
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.list.SetSize(l.ContentWidth(), max((height-len(m.header()))/rowHeight, 1))
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return false }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "tabs", "list"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "h/l category · j/k move · enter add to calendar" }

func (m *Model) header() []string {
	t := styles.T()
	lines := []string{screens.Title(m.layout, "Events")}
	if !m.layout.Compact() {
		lines = append(lines, t.S().Muted.Render("Stay connected with church activities"))
	}
	lines = append(lines, "")
	lines = append(lines, screens.Chips(content.EventCategories, m.category, m.layout.ContentWidth(), content.CategoryColor)...)
	lines = append(lines, "")
	return lines
}

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	w := m.layout.ContentWidth()
	lines := m.header()

	if m.list.Len() == 0 {
		lines = append(lines, t.S().Muted.Render("No events in this category"))
		return render.Indent(strings.Join(lines, "\n"), m.layout.Padding())
	}

	now := m.deps.Clock()
	lines = append(lines, m.list.Render(func(e content.Event, selected bool) string {
		title := screens.EventDate(e) + " " + t.S().Title.Render(e.Title)
		if m.saved[e.ID] {
			title += " " + t.S().Success.Render("✓")
		}
		meta := t.S().Muted.Render(e.TimeRange() + " · " + e.Location + " · " + e.Relative(now))
		return screens.Selectable(title, selected, w) + "\n" + " " + render.Fit(meta, w-1)
	})...)
	return render.Indent(strings.Join(lines, "\n"), m.layout.Padding())
}
