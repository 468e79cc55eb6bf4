package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Title renders a screen title: the gradient banner on roomy terminals,
// a plain heading otherwise.
func Title(l layout.Layout, text string) string {
	if l.Banner() {
		return styles.Banner(text)
	}
	return styles.T().S().Heading.Render(text)
}

// Section renders a section heading.
func Section(text string) string {
	return styles.T().S().Title.Render(text)
}

// Chips renders a row of filter chips, wrapped to width, with active
// highlighted. colors optionally tints each chip's badge.
func Chips(options []string, active string, width int, color func(string) string) []string {
	t := styles.T()
	var rows []string
	row := ""
	for _, o := range options {
		var chip string
		if o == active {
			badge := t.S().Badge
			if color != nil {
				badge = badge.Background(lipgloss.Color(color(o)))
			}
			chip = badge.Render(o)
		} else {
			chip = t.S().Chip.Render(o)
		}
		if row != "" && lipgloss.Width(row)+1+lipgloss.Width(chip) > width {
			rows = append(rows, row)
			row = ""
		}
		if row != "" {
			row += " "
		}
		row += chip
	}
	if row != "" {
		rows = append(rows, row)
	}
	return rows
}

// Verse renders a scripture passage in italics with its reference.
func Verse(v content.Verse, width int) []string {
	t := styles.T()
	text := t.S().Base.Italic(true).Render(render.Wrap(v.Text, width))
	ref := t.S().Heading.Render("— " + v.Reference)
	return append(strings.Split(text, "\n"), ref)
}

// MenuRow renders an icon, title and subtitle on one line.
func MenuRow(item content.MenuItem, selected bool, width int) string {
	t := styles.T()
	title := icons.Format(item.Icon, item.Title)
	if item.Color != "" {
		title = t.AccentStyle(item.Color).Render(icons.For(item.Icon)) + item.Title
	}
	line := title
	if item.Subtitle != "" {
		line += t.S().Muted.Render(" · " + item.Subtitle)
	}
	return Selectable(line, selected, width)
}

// Selectable marks the selected line with a cursor bar and truncates it
// to width.
func Selectable(line string, selected bool, width int) string {
	t := styles.T()
	if selected {
		return t.S().Heading.Render("▌") + t.S().Cursor.Render(render.Fit(line, width-1))
	}
	return " " + render.Fit(line, width-1)
}

// SermonDetail is the popup shown for a sermon.
func SermonDetail(s content.Sermon) action.ShowDetail {
	body := s.Speaker + "\n" +
		s.DateLabel() + " · " + content.FormatDuration(s.Duration) + " · " + s.Category +
		"\n\n" + s.Description
	return action.ShowDetail{Title: s.Title, Body: body}
}

// EventDate renders the day and month badge of an event in its category
// colour, e.g. " 30 JUL ".
func EventDate(e content.Event) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(content.CategoryColor(e.Category))).
		Foreground(styles.T().FgInverse).
		Bold(true).
		Render(" " + e.Day() + " " + e.Month() + " ")
}
