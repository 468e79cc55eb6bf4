// Package render provides text layout helpers for the screens.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (except tab) and invalid UTF-8 so
// user-typed text cannot break the terminal. Non-breaking spaces become
// plain spaces.
func Sanitize(s string) string {
	if strings.IndexFunc(s, needsSanitize) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case needsSanitize(r):
			return -1
		}
		return r
	}, s)
}

func needsSanitize(r rune) bool {
	return (r != '\t' && unicode.IsControl(r)) || r == '\u00a0' || r == utf8.RuneError
}

// Truncate shortens s to maxWidth display columns, ending in "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with spaces up to width display columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns exactly width columns of s.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right on one line of the given width, separated by at
// least one space.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center pads s on both sides to width. Styled input is measured by its
// visible width.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Wrap word-wraps plain text to width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(Sanitize(s))
}

// Indent prefixes every line of s with n spaces.
func Indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// Separator creates a horizontal rule of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Initials shortens a label to its first letter, e.g. "Sermons" to "S".
func Initials(label string) string {
	for _, r := range label {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// Fit returns exactly width columns of styled text, truncating with "…"
// without breaking escape sequences.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}
