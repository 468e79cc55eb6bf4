// Package live is the live stream screen: a simulated broadcast with a
// drifting viewer count, this week's schedule and shortcuts to giving and
// prayer.
package live

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/livestream"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "live"

// Notices.
const (
	SharedNotice     = "Live stream link shared successfully"
	FullscreenNotice = "Entering fullscreen mode..."
	shareMessage     = "Share this live service with friends and family!"
)

// shareRequest tags the share confirm dialog.
type shareRequest struct{}

var streams atomic.Int64

var keys = keymap.NewResolver(keymap.ForContexts("list", "live"))

// Model is the live stream screen.
type Model struct {
	deps    screens.Deps
	layout  layout.Layout
	width   int
	height  int
	view    viewport.Model
	stream  int64
	viewers *livestream.Viewers
	player  livestream.Player
}

// New opens a stream with a fresh viewer count.
func New(deps screens.Deps) *Model {
	return &Model{
		deps:    deps,
		view:    viewport.New(0, 0),
		stream:  streams.Add(1),
		viewers: livestream.NewViewers(deps.Rand),
	}
}

// Viewers returns the current viewer count.
func (m *Model) Viewers() int { return m.viewers.Count() }

// Playing reports whether the stream plays.
func (m *Model) Playing() bool { return m.player.Playing() }

// Init starts the viewer count ticker.
func (m *Model) Init() tea.Cmd {
	return livestream.Tick(m.stream)
}

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case livestream.TickMsg:
		if msg.Stream != m.stream {
			return m, nil
		}
		n := m.viewers.Step()
		m.deps.Logger().Debug("viewer count", "viewers", n)
		return m, livestream.Tick(m.stream)

	case action.Msg:
		if res, ok := msg.Action.(confirm.Result); ok && res.Confirmed {
			if _, mine := res.Context.(shareRequest); mine {
				return m, action.Cmd(source, action.Notify{Text: SharedNotice})
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch keys.Resolve(msg.String()) {
		case keymap.ActionPlayPause:
			m.player.Toggle()
		case keymap.ActionShare:
			return m, action.Cmd(source, action.AskConfirm{
				Title:   "Share Live Stream",
				Message: shareMessage,
				Context: shareRequest{},
			})
		case keymap.ActionGive:
			return m, action.Cmd(source, action.Navigate{To: content.RouteGiving})
		case keymap.ActionPray:
			return m, action.Cmd(source, action.Navigate{To: content.RoutePrayerRequest})
		case keymap.ActionFull:
			return m, action.Cmd(source, action.Notify{Text: FullscreenNotice})
		case keymap.ActionPrevious:
			return m, action.Cmd(source, action.Navigate{To: content.RouteSermons})
		case keymap.ActionMoveDown:
			m.view.LineDown(1)
		case keymap.ActionMoveUp:
			m.view.LineUp(1)
		}
	}
	return m, nil
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.view.Width = l.ContentWidth()
	m.view.Height = height
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return false }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "live"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "space play/pause · g give · p pray · s share · esc back" }

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	w := m.layout.ContentWidth()
	gap := make([]string, m.layout.Gap())

	badge := lipgloss.NewStyle().Background(t.Error).Foreground(t.FgInverse).Bold(true).Render(" ● LIVE ")
	header := screens.Title(m.layout, "Live Service") + " " + badge
	lines := []string{render.Row(header, t.S().Muted.Render(m.viewers.Label()), w)}
	lines = append(lines, gap...)

	lines = append(lines, m.playerCard(w)...)
	lines = append(lines, gap...)

	lines = append(lines,
		t.S().Title.Render(livestream.Title),
		t.S().Muted.Render(livestream.ServiceTime),
		t.S().Heading.Render(livestream.Speaker),
	)
	lines = append(lines, strings.Split(render.Wrap(livestream.About, w), "\n")...)
	lines = append(lines, "", actionsRow())
	lines = append(lines, gap...)

	lines = append(lines, screens.Section("This Week's Services"))
	for _, s := range livestream.Schedule() {
		row := t.S().Title.Render(s.Day+" "+s.Hour) + "  " + s.Title + t.S().Muted.Render(" · "+s.Location)
		if s.Live {
			row += " " + lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render("LIVE")
		}
		lines = append(lines, render.Fit(row, w))
	}
	lines = append(lines, gap...)

	lines = append(lines, screens.Section("Previous Services"))
	lines = append(lines, strings.Split(t.S().Muted.Render(render.Wrap(livestream.Previous, w)), "\n")...)
	lines = append(lines, t.S().Heading.Render("w")+" Watch Previous Services")

	m.view.SetContent(strings.Join(lines, "\n"))
	return render.Indent(m.view.View(), m.layout.Padding())
}

func (m *Model) playerCard(width int) []string {
	t := styles.T()
	inner := max(width-4, 1)
	state := t.S().Heading.Render("▶") + " Press space to play"
	if m.player.Playing() {
		state = t.S().Heading.Render("❚❚") + " Playing · " +
			lipgloss.NewStyle().Foreground(t.Error).Render("● Streaming Live")
	}
	body := strings.Join([]string{
		render.Center(t.S().Title.Render(livestream.Broadcast), inner),
		render.Center(t.S().Muted.Render(livestream.Airing), inner),
		"",
		render.Center(state, inner),
	}, "\n")
	return strings.Split(styles.CardStyle(m.player.Playing()).Width(max(width-2, 1)).Render(body), "\n")
}

func actionsRow() string {
	t := styles.T()
	key := func(k, label string) string {
		return t.S().Badge.Render(k) + " " + label
	}
	return strings.Join([]string{
		key("g", "Give"),
		key("p", "Prayer"),
		key("s", "Share"),
		key("f", "Fullscreen"),
	}, "  ")
}
