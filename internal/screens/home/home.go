// Package home is the first tab: welcome header, quick actions, the
// latest sermon, upcoming events and the verse of the day.
package home

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "home"

// upcomingCount is how many events the home screen lists.
const upcomingCount = 3

var keys = keymap.NewResolver(keymap.ByContext("list"))

// Model is the home screen. The selection runs through the quick actions,
// then the latest sermon, then the upcoming events.
type Model struct {
	deps     screens.Deps
	layout   layout.Layout
	width    int
	height   int
	page     screens.Page
	actions  []content.MenuItem
	sermon   content.Sermon
	hasSerm  bool
	events   []content.Event
	selected int
}

// New creates the home screen.
func New(deps screens.Deps) *Model {
	sermon, ok := content.LatestSermon(content.Sermons())
	return &Model{
		deps:    deps,
		page:    screens.NewPage(),
		actions: content.QuickActions(),
		sermon:  sermon,
		hasSerm: ok,
		events:  content.Upcoming(content.Events(), upcomingCount),
	}
}

func (m *Model) targets() int {
	n := len(m.actions) + len(m.events)
	if m.hasSerm {
		n++
	}
	return n
}

func (m *Model) columns() int {
	return m.layout.Grid(2, 2, 4)
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
	nQuick := len(m.actions)
	cols := m.columns()
	last := m.targets() - 1

	switch keys.Resolve(key.String()) {
	case keymap.ActionNextFilter:
		m.selected = min(m.selected+1, last)
	case keymap.ActionPrevFilter:
		m.selected = max(m.selected-1, 0)
	case keymap.ActionMoveDown:
		switch {
		case m.selected < nQuick && m.selected+cols < nQuick:
			m.selected += cols
		case m.selected < nQuick:
			m.selected = min(nQuick, last)
		default:
			m.selected = min(m.selected+1, last)
		}
	case keymap.ActionMoveUp:
		switch {
		case m.selected < nQuick:
			m.selected = max(m.selected-cols, m.selected%cols)
		case m.selected == nQuick:
			m.selected = nQuick - 1
		default:
			m.selected--
		}
	case keymap.ActionJumpStart:
		m.selected = 0
	case keymap.ActionJumpEnd:
		m.selected = last
	case keymap.ActionSelect:
		return m, m.open()
	}
	return m, nil
}

func (m *Model) open() tea.Cmd {
	i := m.selected
	if i < len(m.actions) {
		return action.Cmd(source, action.Navigate{To: m.actions[i].Route})
	}
	i -= len(m.actions)
	if m.hasSerm {
		if i == 0 {
			return action.Cmd(source, screens.SermonDetail(m.sermon))
		}
		i--
	}
	if i < len(m.events) {
		return action.Cmd(source, action.Navigate{To: content.RouteEvents})
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
func (m *Model) Hints() string { return "arrows move · enter open · ? help" }

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	w := m.layout.ContentWidth()
	gap := make([]string, m.layout.Gap())

	lines := []string{
		t.S().Muted.Render("Welcome to"),
		screens.Title(m.layout, m.deps.Church.ShortName),
		t.S().Muted.Render(m.deps.Church.Tagline),
	}
	lines = append(lines, gap...)

	focusStart, focusEnd := 0, 0
	mark := func(block []string, selected bool) {
		if selected {
			focusStart, focusEnd = len(lines), len(lines)+len(block)
		}
		lines = append(lines, block...)
	}

	lines = append(lines, screens.Section("Quick Actions"))
	cols := m.columns()
	for row := 0; row*cols < len(m.actions); row++ {
		end := min((row+1)*cols, len(m.actions))
		tiles := make([]string, 0, cols)
		selectedRow := false
		for i := row * cols; i < end; i++ {
			tiles = append(tiles, m.tile(m.actions[i], i == m.selected, m.layout.TileWidth(cols)))
			selectedRow = selectedRow || i == m.selected
		}
		mark(strings.Split(joinTiles(tiles), "\n"), selectedRow)
	}
	lines = append(lines, gap...)

	idx := len(m.actions)
	if m.hasSerm {
		lines = append(lines, screens.Section("Latest Sermon"))
		mark(m.sermonCard(idx == m.selected, w), idx == m.selected)
		idx++
		lines = append(lines, gap...)
	}

	lines = append(lines, render.Row(screens.Section("Upcoming Events"), t.S().Heading.Render("See All"), w))
	for _, e := range m.events {
		row := screens.EventDate(e) + " " + t.S().Title.Render(e.Title) +
			t.S().Muted.Render(" · "+e.TimeRange()+" · "+e.Location)
		mark([]string{screens.Selectable(row, idx == m.selected, w)}, idx == m.selected)
		idx++
	}
	lines = append(lines, gap...)

	lines = append(lines, screens.Section("Verse of the Day"))
	lines = append(lines, screens.Verse(content.VerseOfTheDay, w)...)

	if m.selected == 0 {
		focusStart = 0
	}
	if m.selected == m.targets()-1 {
		focusEnd = len(lines)
	}
	return render.Indent(m.page.Render(lines, focusStart, focusEnd), m.layout.Padding())
}

func (m *Model) tile(item content.MenuItem, selected bool, width int) string {
	t := styles.T()
	label := t.AccentStyle(item.Color).Render(icons.For(item.Icon)) + t.S().Title.Render(item.Title)
	return styles.CardStyle(selected).
		Width(max(width-2, 1)).
		Render(render.Fit(label, max(width-4, 1)))
}

func joinTiles(tiles []string) string {
	spaced := make([]string, 0, 2*len(tiles))
	for i, tl := range tiles {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, tl)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

func (m *Model) sermonCard(selected bool, width int) []string {
	t := styles.T()
	s := m.sermon
	inner := max(width-4, 1)
	body := strings.Join([]string{
		render.Fit(t.S().Title.Render(s.Title), inner),
		render.Fit(t.S().Heading.Render(s.Speaker), inner),
		render.Fit(t.S().Muted.Render(s.DateLabel()+" · "+content.FormatDuration(s.Duration)), inner),
	}, "\n")
	return strings.Split(styles.CardStyle(selected).Width(max(width-2, 1)).Render(body), "\n")
}
