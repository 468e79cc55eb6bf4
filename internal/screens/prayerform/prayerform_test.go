package prayerform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/prayer"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/state"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/testutil"
)

func newForm(st state.Interface) *Model {
	m := New(screens.Deps{State: st})
	m.SetLayout(layout.Default(100, 40), 100, 37)
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(testutil.Key(k))
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, k := range testutil.Type(s) {
		m.Update(k)
	}
}

// fill enters a named request: anonymous → name → email → category → request.
func fill(m *Model, name, text string) {
	press(m, "tab")
	typeText(m, name)
	press(m, "tab", "tab", "tab")
	typeText(m, text)
}

// finish runs the save command and returns what the screen does next.
func finish(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	for _, c := range flatten(cmd) {
		if msg, ok := c().(savedMsg); ok {
			_, next := m.Update(msg)
			return next
		}
	}
	t.Fatal("no save command")
	return nil
}

func flatten(cmd tea.Cmd) []tea.Cmd {
	if cmd == nil {
		return nil
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		var out []tea.Cmd
		for _, c := range batch {
			out = append(out, flatten(c)...)
		}
		return out
	}
	return []tea.Cmd{cmd}
}

func TestEmptyRequest(t *testing.T) {
	m := newForm(state.NewMock())
	cmd := press(m, "ctrl+s")
	assert.Equal(t, prayer.ErrEmptyRequest.Error(), m.Error())
	assert.Empty(t, testutil.Actions(cmd))
	assert.Contains(t, testutil.StripANSI(m.View()), "Please enter your prayer request")
}

func TestMissingName(t *testing.T) {
	m := newForm(state.NewMock())
	press(m, "tab", "tab", "tab", "tab")
	typeText(m, "healing")
	press(m, "ctrl+s")
	assert.Equal(t, prayer.ErrMissingName.Error(), m.Error())
}

func TestTypingClearsError(t *testing.T) {
	m := newForm(state.NewMock())
	press(m, "ctrl+s")
	require.NotEmpty(t, m.Error())
	press(m, "tab")
	typeText(m, "A")
	assert.Empty(t, m.Error())
}

func TestSubmitSavesAndCloses(t *testing.T) {
	st := state.NewMock()
	m := newForm(st)
	fill(m, "Ann", "healing for my mother")
	press(m, "tab", " ") // urgent

	req := m.Request()
	assert.Equal(t, "Ann", req.Name)
	assert.Equal(t, "General", req.Category)
	assert.True(t, req.Urgent)

	next := finish(t, m, press(m, "ctrl+s"))

	detail, ok := testutil.FindAction[action.ShowDetail](next)
	require.True(t, ok)
	assert.Equal(t, prayer.SubmittedTitle, detail.Title)
	assert.Equal(t, prayer.Submitted, detail.Body)
	_, ok = testutil.FindAction[action.Back](next)
	assert.True(t, ok)

	entries, err := st.ListPrayers()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "healing for my mother", entries[0].Request.Text)
	assert.True(t, entries[0].Request.Urgent)
}

func TestAnonymousHidesName(t *testing.T) {
	st := state.NewMock()
	m := newForm(st)
	press(m, " ")
	assert.True(t, m.Request().Anonymous)
	view := testutil.StripANSI(m.View())
	assert.NotContains(t, view, "Your Name")

	// name and email are skipped: anonymous → category → request
	press(m, "tab", "tab")
	typeText(m, "peace")
	finish(t, m, press(m, "ctrl+s"))

	entries, _ := st.ListPrayers()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Request.Anonymous)
	assert.Equal(t, "Anonymous", entries[0].Request.DisplayName())
}

func TestCategoryChoice(t *testing.T) {
	m := newForm(state.NewMock())
	press(m, "tab", "tab", "tab", "right")
	assert.Equal(t, "Health", m.Request().Category)
	press(m, "left", "left")
	assert.Equal(t, "Relationships", m.Request().Category)
}

func TestSaveFailure(t *testing.T) {
	st := state.NewMock()
	st.FailWrites = true
	m := newForm(st)
	fill(m, "Ann", "healing")

	next := finish(t, m, press(m, "ctrl+s"))
	shown, ok := testutil.FindAction[action.ShowError](next)
	require.True(t, ok)
	assert.Contains(t, shown.Text, "Failed to submit prayer request")
	_, closed := testutil.FindAction[action.Back](next)
	assert.False(t, closed)
}

func TestKeysIgnoredWhileSubmitting(t *testing.T) {
	m := newForm(state.NewMock())
	fill(m, "Ann", "healing")
	press(m, "ctrl+s")
	assert.Nil(t, press(m, "ctrl+s"))
	assert.Contains(t, testutil.StripANSI(m.View()), "Submitting...")
}

func TestViewShowsVerse(t *testing.T) {
	m := newForm(nil)
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Prayer Request")
	assert.Contains(t, view, "James 5:16")
	assert.Contains(t, view, "Submit anonymously")
}
