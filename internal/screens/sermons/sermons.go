// Package sermons lists recorded messages with a search box and category
// filter.
package sermons

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/list"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
	"github.com/gccma/gccma/internal/ui/textinput"
)

const source = "sermons"

// rowHeight is the number of lines per sermon.
const rowHeight = 2

// searchRequest tags the text input popup opened for the query.
type searchRequest struct{}

var keys = keymap.NewResolver(keymap.ForContexts("list", "sermons"))

// Model is the sermons screen.
type Model struct {
	deps   screens.Deps
	layout layout.Layout
	width  int
	height int

	all    []content.Sermon
	filter content.SermonFilter
	list   list.Model[content.Sermon]
}

// New creates the sermons screen showing every sermon.
func New(deps screens.Deps) *Model {
	m := &Model{
		deps:   deps,
		all:    content.Sermons(),
		filter: content.SermonFilter{Category: content.CategoryAll},
		list:   list.New[content.Sermon](ui.ScrollMargin),
	}
	m.refilter()
	return m
}

// Query returns the search text.
func (m *Model) Query() string { return m.filter.Query }

// Category implements screens.Filtered.
func (m *Model) Category() string { return m.filter.Category }

// SetCategory implements screens.Filtered. Unknown categories show all.
func (m *Model) SetCategory(category string) {
	if !screens.IsOption(content.SermonCategories, category) {
		category = content.CategoryAll
	}
	m.filter.Category = category
	m.refilter()
}

// Visible returns the sermons passing the filter.
func (m *Model) Visible() []content.Sermon { return m.list.Items() }

func (m *Model) refilter() {
	m.list.SetItems(content.FilterSermons(m.all, m.filter))
	m.list.Reset()
}

// Init implements screens.Screen.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case action.Msg:
		if res, ok := msg.Action.(textinput.Result); ok {
			if _, mine := res.Context.(searchRequest); mine && !res.Canceled {
				m.filter.Query = res.Text
				m.refilter()
				m.deps.Logger().Debug("sermon search", "query", m.filter.Query, "results", m.list.Len())
			}
		}
		return m, nil

	case tea.KeyMsg:
		a := keys.Resolve(msg.String())
		switch a {
		case keymap.ActionPrevFilter:
			m.SetCategory(screens.NextOption(content.SermonCategories, m.filter.Category, -1))
			return m, nil
		case keymap.ActionNextFilter:
			m.SetCategory(screens.NextOption(content.SermonCategories, m.filter.Category, 1))
			return m, nil
		case keymap.ActionSearch:
			return m, action.Cmd(source, action.AskText{
				Title:       "Search Sermons",
				Value:       m.filter.Query,
				Placeholder: "Title or speaker",
				Context:     searchRequest{},
			})
		case keymap.ActionClearSearch:
			m.filter.Query = ""
			m.refilter()
			return m, nil
		}

		res := m.list.HandleAction(a)
		if res.Selected {
			if s, ok := m.list.Selected(); ok {
				return m, action.Cmd(source, screens.SermonDetail(s))
			}
		}
	}
	return m, nil
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.list.SetSize(l.ContentWidth(), max((height-m.headerHeight())/rowHeight, 1))
}

func (m *Model) headerHeight() int {
	return len(m.header())
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return false }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "tabs", "list", "sermons"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "/ search · h/l category · j/k move · enter details" }

func (m *Model) header() []string {
	t := styles.T()
	w := m.layout.ContentWidth()

	lines := []string{screens.Title(m.layout, "Sermons")}
	if !m.layout.Compact() {
		lines = append(lines, t.S().Muted.Render("Listen to inspiring messages"))
	}

	search := t.S().Subtle.Render("/ Search sermons...")
	if m.filter.Query != "" {
		search = t.S().Base.Render("Search: "+m.filter.Query) + t.S().Subtle.Render("  ctrl+l clear")
	}
	lines = append(lines, "", render.Fit(search, w))
	lines = append(lines, screens.Chips(content.SermonCategories, m.filter.Category, w, nil)...)
	lines = append(lines, t.S().Muted.Render(countLabel(m.list.Len())), "")
	return lines
}

func countLabel(n int) string {
	if n == 1 {
		return "1 sermon"
	}
	return fmt.Sprintf("%d sermons", n)
}

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	w := m.layout.ContentWidth()
	lines := m.header()

	if m.list.Len() == 0 {
		lines = append(lines, t.S().Muted.Render("No sermons found"))
		return render.Indent(strings.Join(lines, "\n"), m.layout.Padding())
	}

	lines = append(lines, m.list.Render(func(s content.Sermon, selected bool) string {
		title := t.S().Title.Render(icons.For("book") + s.Title)
		meta := t.S().Heading.Render(s.Speaker) +
			t.S().Muted.Render(" · "+s.DateLabel()+" · "+content.FormatDuration(s.Duration))
		return screens.Selectable(title, selected, w) + "\n" + " " + render.Fit(meta, w-1)
	})...)
	return render.Indent(strings.Join(lines, "\n"), m.layout.Padding())
}
