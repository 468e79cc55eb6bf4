package screens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/keymap"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/testutil"
)

func TestNextOption(t *testing.T) {
	opts := []string{"All", "Youth", "Worship"}
	assert.Equal(t, "Youth", NextOption(opts, "All", 1))
	assert.Equal(t, "Worship", NextOption(opts, "All", -1))
	assert.Equal(t, "All", NextOption(opts, "Worship", 1))
	assert.Equal(t, "Youth", NextOption(opts, "nope", 1))
	assert.Equal(t, "x", NextOption(nil, "x", 1))
}

func TestIsOption(t *testing.T) {
	assert.True(t, IsOption(content.EventCategories, "Youth"))
	assert.False(t, IsOption(content.EventCategories, "Choir"))
}

func TestDeps_Defaults(t *testing.T) {
	var d Deps
	assert.WithinDuration(t, time.Now(), d.Clock(), time.Minute)
	assert.NotNil(t, d.Logger())

	fixed := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	d.Now = func() time.Time { return fixed }
	assert.Equal(t, fixed, d.Clock())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Events", testutil.StripANSI(Title(layout.Default(60, 24), "Events")))
	assert.Equal(t, "Events", testutil.StripANSI(Title(layout.Default(120, 24), "Events")))
}

func TestChips_Wrap(t *testing.T) {
	rows := Chips(content.SermonCategories, "Youth", 30, nil)
	assert.Greater(t, len(rows), 1)
	for _, r := range rows {
		assert.LessOrEqual(t, testutil.MeasureWidth(r), 30)
	}
}

func TestSelectable(t *testing.T) {
	line := Selectable("Youth Night", true, 20)
	assert.Equal(t, 20, testutil.MeasureWidth(line))
	assert.Contains(t, testutil.StripANSI(line), "▌Youth Night")

	assert.Equal(t, " Youth…", testutil.StripANSI(Selectable("Youth Night", false, 7)))
}

func TestSermonDetail(t *testing.T) {
	s := content.Sermons()[0]
	d := SermonDetail(s)
	assert.Equal(t, s.Title, d.Title)
	assert.Contains(t, d.Body, s.Description)
	assert.Contains(t, d.Body, "min")
}

func TestEventDate(t *testing.T) {
	e := content.Events()[0]
	assert.Equal(t, " 30 JUL ", testutil.StripANSI(EventDate(e)))
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		a        keymap.Action
		selected int
		want     int
		moved    bool
	}{
		{"down", keymap.ActionMoveDown, 0, 1, true},
		{"down at end", keymap.ActionMoveDown, 4, 4, true},
		{"up at start", keymap.ActionMoveUp, 0, 0, true},
		{"jump end", keymap.ActionJumpEnd, 1, 4, true},
		{"jump start", keymap.ActionJumpStart, 3, 0, true},
		{"other", keymap.ActionSelect, 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Move(tt.a, tt.selected, 5)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.moved, moved)
		})
	}

	got, _ := Move(keymap.ActionMoveDown, 0, 0)
	assert.Equal(t, 0, got)
}

func TestLines_Focus(t *testing.T) {
	b := NewLines(1)
	b.Add("title", "")
	b.Item("first")
	assert.True(t, b.Selected())
	b.Item("second a", "second b")
	b.Item("third")
	b.Add("footer")

	start, end := b.Focus()
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)

	first := NewLines(0)
	first.Add("title")
	first.Item("a")
	first.Item("b")
	start, _ = first.Focus()
	assert.Equal(t, 0, start, "first item keeps the title in view")

	last := NewLines(1)
	last.Item("a")
	last.Item("b")
	last.Add("trailer")
	_, end = last.Focus()
	assert.Equal(t, 3, end, "last item pulls in the trailer")
}
