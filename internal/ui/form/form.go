// Package form provides a keyboard-driven form of text inputs, toggles,
// option chips and buttons.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

// Event says what an Update did.
type Event int

const (
	None Event = iota
	// Changed means the value of Result.Key changed.
	Changed
	// Pressed means the button Result.Key was activated.
	Pressed
	// Submitted means the submit shortcut was used.
	Submitted
)

// Result reports the outcome of an Update.
type Result struct {
	Event Event
	Key   string
}

var keys = keymap.NewResolver(keymap.ByContext("form"))

// Model is a vertical form. Fields are shared pointers so screens can
// keep references to the ones they read.
type Model struct {
	ui.Base
	fields []*Field
	focus  int
	err    string
	offset int
}

// New builds a form focused on its first visible field.
func New(fields ...*Field) Model {
	m := Model{fields: fields}
	m.focus = m.nextVisible(-1, 1)
	if f := m.Focused(); f != nil {
		f.focus()
	}
	return m
}

// Field returns the field with key, or nil.
func (m *Model) Field(key string) *Field {
	for _, f := range m.fields {
		if f.Key == key {
			return f
		}
	}
	return nil
}

// Value returns the value of the field with key.
func (m *Model) Value(key string) string {
	if f := m.Field(key); f != nil {
		return f.Value()
	}
	return ""
}

// On returns the state of the toggle with key.
func (m *Model) On(key string) bool {
	if f := m.Field(key); f != nil {
		return f.On()
	}
	return false
}

// Focused returns the field with the cursor, or nil for an empty form.
func (m *Model) Focused() *Field {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	return m.fields[m.focus]
}

// FocusKey moves the cursor to the field with key if it is visible.
func (m *Model) FocusKey(key string) {
	for i, f := range m.fields {
		if f.Key == key && !f.hidden {
			m.setFocus(i)
			return
		}
	}
}

// SetHidden shows or hides the field with key, moving the cursor off it
// when needed.
func (m *Model) SetHidden(key string, hidden bool) {
	f := m.Field(key)
	if f == nil {
		return
	}
	f.hidden = hidden
	if cur := m.Focused(); cur != nil && cur.hidden {
		m.setFocus(m.nextVisible(m.focus, 1))
	}
}

// Capturing reports whether keys go to a text field.
func (m *Model) Capturing() bool {
	f := m.Focused()
	return f != nil && f.typing()
}

// SetError shows err under the form; nil clears it.
func (m *Model) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

// Error returns the message shown under the form.
func (m *Model) Error() string { return m.err }

// SetSize sets the dimensions and fits the inputs to the width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	for _, f := range m.fields {
		f.setWidth(width)
	}
}

func (m *Model) nextVisible(from, delta int) int {
	n := len(m.fields)
	for step := 1; step <= n; step++ {
		i := ((from+delta*step)%n + n) % n
		if !m.fields[i].hidden {
			return i
		}
	}
	return -1
}

func (m *Model) setFocus(i int) {
	if cur := m.Focused(); cur != nil {
		cur.blur()
	}
	m.focus = i
	if next := m.Focused(); next != nil {
		next.focus()
	}
}

func (m *Model) move(delta int) {
	if len(m.fields) == 0 {
		return
	}
	m.setFocus(m.nextVisible(m.focus, delta))
}

// Init starts the cursor blink of the focused input.
func (m *Model) Init() tea.Cmd {
	if m.Capturing() {
		return textinput.Blink
	}
	return nil
}

// Update handles a message for the focused field.
func (m *Model) Update(msg tea.Msg) (Result, tea.Cmd) {
	f := m.Focused()
	if f == nil {
		return Result{}, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(f, msg)
	}

	switch keys.Resolve(key.String()) {
	case keymap.ActionNextField:
		if f.Kind != KindArea || key.Type != tea.KeyDown {
			m.move(1)
			return Result{}, nil
		}
	case keymap.ActionPrevField:
		if f.Kind != KindArea || key.Type != tea.KeyUp {
			m.move(-1)
			return Result{}, nil
		}
	case keymap.ActionSubmit:
		return Result{Event: Submitted}, nil
	case keymap.ActionToggle:
		if !f.typing() {
			return m.activate(f), nil
		}
	}

	switch key.Type {
	case tea.KeyEnter:
		switch f.Kind {
		case KindText, KindPassword:
			m.move(1)
			return Result{}, nil
		case KindToggle, KindButton, KindChoice:
			return m.activate(f), nil
		}
	case tea.KeyLeft, tea.KeyRight:
		if f.Kind == KindChoice {
			if key.Type == tea.KeyLeft {
				f.cycle(-1)
			} else {
				f.cycle(1)
			}
			return Result{Event: Changed, Key: f.Key}, nil
		}
	case tea.KeyRunes, tea.KeySpace:
		if f.typing() && f.Accept != nil {
			for _, r := range key.Runes {
				if !f.Accept(f.Value(), r) {
					return Result{}, nil
				}
			}
		}
	}

	if !f.typing() {
		return Result{}, nil
	}
	return m.forward(f, msg)
}

// activate toggles, advances a choice or presses a button.
func (m *Model) activate(f *Field) Result {
	switch f.Kind {
	case KindToggle:
		f.on = !f.on
		return Result{Event: Changed, Key: f.Key}
	case KindChoice:
		f.cycle(1)
		return Result{Event: Changed, Key: f.Key}
	case KindButton:
		return Result{Event: Pressed, Key: f.Key}
	}
	return Result{}
}

func (m *Model) forward(f *Field, msg tea.Msg) (Result, tea.Cmd) {
	before := f.Value()
	var cmd tea.Cmd
	switch f.Kind {
	case KindText, KindPassword:
		f.input, cmd = f.input.Update(msg)
	case KindArea:
		f.area, cmd = f.area.Update(msg)
	default:
		return Result{}, nil
	}
	if f.Value() != before {
		return Result{Event: Changed, Key: f.Key}, cmd
	}
	return Result{}, cmd
}

// View renders the visible fields, scrolled so the focused one shows.
func (m *Model) View() string {
	var lines []string
	focusStart, focusEnd := 0, 0
	for i, f := range m.fields {
		if f.hidden {
			continue
		}
		block := m.renderField(f, i == m.focus)
		if i == m.focus {
			focusStart = len(lines)
			focusEnd = focusStart + len(block)
		}
		lines = append(lines, block...)
		lines = append(lines, "")
	}
	if m.err != "" {
		errLines := strings.Split(render.Wrap(m.err, m.Width()), "\n")
		for _, l := range errLines {
			lines = append(lines, styles.T().S().Error.Render(l))
		}
	}

	if h := m.Height(); h > 0 && len(lines) > h {
		// Keep the focused field and, when it fits, the error in view.
		end := focusEnd
		if m.err != "" && len(lines)-focusStart <= h {
			end = len(lines)
		}
		m.offset = min(m.offset, focusStart)
		if end-m.offset > h {
			m.offset = end - h
		}
		m.offset = max(0, min(m.offset, len(lines)-h))
		lines = lines[m.offset : m.offset+h]
	} else {
		m.offset = 0
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderField(f *Field, focused bool) []string {
	t := styles.T()
	label := t.S().Muted.Render(f.Label)
	if focused {
		label = t.S().Heading.Render(f.Label)
	}
	inputStyle := t.S().Input
	if focused {
		inputStyle = t.S().InputSel
	}
	width := max(m.Width(), 1)

	switch f.Kind {
	case KindText, KindPassword:
		return append([]string{label}, strings.Split(inputStyle.Width(width).Render(f.input.View()), "\n")...)
	case KindArea:
		return append([]string{label}, strings.Split(inputStyle.Render(f.area.View()), "\n")...)
	case KindToggle:
		row := icons.Checkbox(f.on) + " " + f.Label
		if focused {
			return []string{t.S().Cursor.Render(row)}
		}
		return []string{t.S().Base.Render(row)}
	case KindChoice:
		return append([]string{label}, chips(f, focused, width)...)
	case KindButton:
		style := t.S().Chip
		if focused {
			style = t.S().Badge
		}
		return []string{render.Center(style.Render(f.Label), width)}
	}
	return nil
}

// chips lays the options out in rows no wider than width.
func chips(f *Field, focused bool, width int) []string {
	t := styles.T()
	var rows []string
	var row string
	for i, o := range f.options {
		style := t.S().Chip
		if i == f.choice {
			style = t.S().Badge
		}
		chip := style.Render(o)
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
	if focused && len(rows) > 0 {
		rows[0] = t.S().Heading.Render("‹") + rows[0] + t.S().Heading.Render("›")
	}
	return rows
}
