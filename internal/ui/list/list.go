// Package list provides a generic scrollable list component.
package list

import (
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/ui"
	"github.com/gccma/gccma/internal/ui/cursor"
)

// Result tells the parent what a key did to the list.
type Result struct {
	Moved    bool // cursor moved
	Selected bool // enter on an item
	Index    int  // cursor position after the action
}

// Model is a generic scrollable list. It owns navigation; the parent renders
// the rows in VisibleRange.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false when empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Select moves the cursor to index.
func (m *Model[T]) Select(index int) {
	m.cursor.Jump(index, len(m.items), m.Height())
}

// Reset moves the cursor to the first item.
func (m *Model[T]) Reset() {
	m.cursor.Reset()
}

// VisibleRange returns [start, end) of the rows that fit in the list height.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.Height())
}

// HandleAction applies a resolved key action.
func (m *Model[T]) HandleAction(a keymap.Action) Result {
	if m.cursor.HandleAction(a, len(m.items), m.Height()) {
		return Result{Moved: true, Index: m.cursor.Pos()}
	}
	if a == keymap.ActionSelect && len(m.items) > 0 {
		return Result{Selected: true, Index: m.cursor.Pos()}
	}
	return Result{Index: m.cursor.Pos()}
}

// Render calls row for each visible item and returns the lines.
func (m Model[T]) Render(row func(item T, selected bool) string) []string {
	start, end := m.VisibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, row(m.items[i], i == m.cursor.Pos()))
	}
	return lines
}
