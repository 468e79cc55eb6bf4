package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// Page is a scrolling body that keeps a range of lines, usually the
// selected item, in view.
type Page struct {
	view viewport.Model
}

// NewPage creates an empty page.
func NewPage() Page {
	return Page{view: viewport.New(0, 0)}
}

// SetSize sets the visible area.
func (p *Page) SetSize(width, height int) {
	p.view.Width = width
	p.view.Height = height
}

// Offset is the first visible line.
func (p *Page) Offset() int {
	return p.view.YOffset
}

// Render shows lines, scrolled as little as possible so that lines
// [focusStart, focusEnd) are visible.
func (p *Page) Render(lines []string, focusStart, focusEnd int) string {
	p.view.SetContent(strings.Join(lines, "\n"))
	off := p.view.YOffset
	if focusEnd-off > p.view.Height {
		off = focusEnd - p.view.Height
	}
	if focusStart < off {
		off = focusStart
	}
	p.view.SetYOffset(off)
	return p.view.View()
}

// Lines accumulates the lines of a page and remembers where the selected
// item was drawn.
type Lines struct {
	Lines    []string
	selected int
	next     int
	start    int
	end      int
}

// NewLines starts a page whose selected item is the selected-th Item.
func NewLines(selected int) *Lines {
	return &Lines{selected: selected}
}

// Add appends plain lines.
func (b *Lines) Add(lines ...string) {
	b.Lines = append(b.Lines, lines...)
}

// Selected reports whether the next Item is the selected one.
func (b *Lines) Selected() bool {
	return b.next == b.selected
}

// Item appends the lines of one selectable item.
func (b *Lines) Item(lines ...string) {
	if b.Selected() {
		b.start, b.end = len(b.Lines), len(b.Lines)+len(lines)
	}
	b.Lines = append(b.Lines, lines...)
	b.next++
}

// Focus returns the line range to keep in view. The first item pulls the
// top of the page in and the last item the bottom.
func (b *Lines) Focus() (start, end int) {
	start, end = b.start, b.end
	if b.selected == 0 {
		start = 0
	}
	if b.selected == b.next-1 {
		end = len(b.Lines)
	}
	return start, end
}
