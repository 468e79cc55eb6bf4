package form

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// Kind is the type of a form field.
type Kind int

const (
	KindText Kind = iota
	KindPassword
	KindArea
	KindToggle
	KindChoice
	KindButton
)

// areaHeight is the number of text rows of a multi-line field.
const areaHeight = 4

// Field is one row of a form.
type Field struct {
	Key   string
	Label string
	Kind  Kind

	// Accept filters typed runes for text fields; nil accepts all.
	Accept func(current string, r rune) bool

	input   textinput.Model
	area    textarea.Model
	on      bool
	options []string
	choice  int // -1 when nothing is chosen
	hidden  bool
}

// Text creates a single-line input.
func Text(key, label, placeholder string) *Field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 120
	return &Field{Key: key, Label: label, Kind: KindText, input: in}
}

// Password creates a masked single-line input.
func Password(key, label, placeholder string) *Field {
	f := Text(key, label, placeholder)
	f.Kind = KindPassword
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// Area creates a multi-line input.
func Area(key, label, placeholder string) *Field {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 2000
	ta.SetHeight(areaHeight)
	return &Field{Key: key, Label: label, Kind: KindArea, area: ta}
}

// Toggle creates an on/off checkbox.
func Toggle(key, label string, on bool) *Field {
	return &Field{Key: key, Label: label, Kind: KindToggle, on: on}
}

// Choice creates a row of options. An unknown selected value leaves
// nothing chosen.
func Choice(key, label string, options []string, selected string) *Field {
	f := &Field{Key: key, Label: label, Kind: KindChoice, options: options, choice: -1}
	f.SetChoice(selected)
	return f
}

// Button creates an action row.
func Button(key, label string) *Field {
	return &Field{Key: key, Label: label, Kind: KindButton}
}

// typing reports whether the field takes text, so that plain keys are
// input rather than shortcuts.
func (f *Field) typing() bool {
	return f.Kind == KindText || f.Kind == KindPassword || f.Kind == KindArea
}

// Value returns the text of an input or the chosen option.
func (f *Field) Value() string {
	switch f.Kind {
	case KindText, KindPassword:
		return f.input.Value()
	case KindArea:
		return f.area.Value()
	case KindChoice:
		if f.choice < 0 {
			return ""
		}
		return f.options[f.choice]
	}
	return ""
}

// SetValue replaces the text of an input field.
func (f *Field) SetValue(s string) {
	switch f.Kind {
	case KindText, KindPassword:
		f.input.SetValue(s)
	case KindArea:
		f.area.SetValue(s)
	}
}

// On returns the state of a toggle.
func (f *Field) On() bool { return f.on }

// SetOn sets the state of a toggle.
func (f *Field) SetOn(on bool) { f.on = on }

// SetChoice chooses the option equal to v, or nothing.
func (f *Field) SetChoice(v string) {
	f.choice = -1
	for i, o := range f.options {
		if o == v {
			f.choice = i
			return
		}
	}
}

// cycle moves the choice by delta, wrapping. From no choice, forward
// picks the first option and backward the last.
func (f *Field) cycle(delta int) {
	n := len(f.options)
	if n == 0 {
		return
	}
	if f.choice < 0 {
		if delta > 0 {
			f.choice = 0
		} else {
			f.choice = n - 1
		}
		return
	}
	f.choice = ((f.choice+delta)%n + n) % n
}

// Hidden reports whether the field is skipped.
func (f *Field) Hidden() bool { return f.hidden }

func (f *Field) focus() {
	switch f.Kind {
	case KindText, KindPassword:
		f.input.Focus()
	case KindArea:
		f.area.Focus()
	}
}

func (f *Field) blur() {
	switch f.Kind {
	case KindText, KindPassword:
		f.input.Blur()
	case KindArea:
		f.area.Blur()
	}
}

// setWidth only touches the widget the field owns; the others are zero
// values and a zero textarea cannot be resized.
func (f *Field) setWidth(w int) {
	switch f.Kind {
	case KindText, KindPassword:
		f.input.Width = max(w-1, 1)
	case KindArea:
		f.area.SetWidth(max(w, 2))
	}
}
