package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Dialog is a static popup: title, wrapped body and a footer hint.
type Dialog struct {
	Title  string
	Body   string
	Footer string
	Width  int // content width; 0 fits the body up to the screen
}

// Content renders the dialog content without border, wrapping the body to
// at most maxWidth columns.
func (d Dialog) Content(maxWidth int) string {
	t := styles.T()

	width := d.Width
	if width == 0 {
		width = max(maxLineWidth(d.Body), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	width = max(min(width, maxWidth), 1)

	var parts []string
	if d.Title != "" {
		parts = append(parts, render.Center(t.S().Heading.Render(d.Title), width), "")
	}
	parts = append(parts, render.Wrap(d.Body, width))
	if d.Footer != "" {
		parts = append(parts, "", render.Center(t.S().Subtle.Render(d.Footer), width))
	}
	return strings.Join(parts, "\n")
}

// Render returns the bordered dialog centered on a termWidth x termHeight
// canvas, ready for Compose.
func (d Dialog) Render(termWidth, termHeight int) string {
	return RenderBordered(d.Content(termWidth-8), termWidth, termHeight, SizeAuto)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Columns and rows taken by the border and padding of a popup.
const (
	ChromeWidth  = 6
	ChromeHeight = 4
)

// SizeConfig defines how a popup is sized on screen.
type SizeConfig struct {
	WidthPct  int // percentage of screen width (0 = fit content)
	HeightPct int // percentage of screen height (0 = fit content)
	MaxWidth  int // maximum width in columns (0 = no limit)
}

var (
	SizeAuto = SizeConfig{}
	SizeWide = SizeConfig{WidthPct: 80, HeightPct: 70, MaxWidth: 90}
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		width = screenW * size.WidthPct / 100
		height = screenH * size.HeightPct / 100
	} else {
		width = maxLineWidth(content) + ChromeWidth
		height = strings.Count(content, "\n") + 1 + ChromeHeight
	}
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-2)
	height = min(height, screenH-2)
	return max(width, 4), max(height, 4)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := strings.Repeat(" ", max((termWidth-boxWidth)/2, 0))

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(padLeft)
		b.WriteString(line)
	}
	return b.String()
}

// Compose overlays popupView on base. Leading and trailing spaces of each
// overlay line are transparent; everything between replaces the base.
// Both inputs may contain ANSI styling.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		startCol := len(plain) - len(trimmed) // leading ASCII spaces
		endCol := startCol + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		baseLines[i] = spliceLine(baseLine, ansi.Cut(overlayLine, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// spliceLine replaces columns [start, end) of line with mid, padding where
// a wide character straddles either edge.
func spliceLine(line, mid string, start, end, width int) string {
	prefix := ansi.Cut(line, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}
	if end >= width {
		return prefix + mid
	}

	suffix := ansi.Cut(line, end, width)
	want := width - end
	switch w := ansi.StringWidth(suffix); {
	case w > want:
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	case w < want:
		suffix += strings.Repeat(" ", want-w)
	}
	return prefix + mid + suffix
}
