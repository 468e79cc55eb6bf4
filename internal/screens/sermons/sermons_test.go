package sermons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/testutil"
	"github.com/gccma/gccma/internal/ui/textinput"
)

func newSermons(cols, rows int) *Model {
	m := New(screens.Deps{})
	m.SetLayout(layout.Default(cols, rows), cols, rows-3)
	return m
}

func search(m *Model, query string) {
	m.Update(textinput.ActionMsg(textinput.Result{Text: query, Context: searchRequest{}}))
}

func TestShowsAllSermons(t *testing.T) {
	m := newSermons(80, 24)
	assert.Len(t, m.Visible(), len(content.Sermons()))
	assert.Equal(t, content.CategoryAll, m.Category())

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Sermons")
	assert.Contains(t, view, "Walking in Faith")
	assert.Contains(t, view, "Pastor John Smith")
}

func TestCategoryCycling(t *testing.T) {
	m := newSermons(80, 24)
	m.Update(testutil.Key("l"))
	assert.Equal(t, "Sunday Service", m.Category())
	for _, s := range m.Visible() {
		assert.Equal(t, "Sunday Service", s.Category)
	}

	m.Update(testutil.Key("h"))
	m.Update(testutil.Key("h"))
	assert.Equal(t, "Special Events", m.Category(), "wraps backwards")
}

func TestSetCategory_Unknown(t *testing.T) {
	m := newSermons(80, 24)
	m.SetCategory("Bible Study")
	assert.Equal(t, "Bible Study", m.Category())
	m.SetCategory("Gardening")
	assert.Equal(t, content.CategoryAll, m.Category())
}

func TestSearchAsksForText(t *testing.T) {
	m := newSermons(80, 24)
	_, cmd := m.Update(testutil.Key("/"))
	ask, ok := testutil.FindAction[action.AskText](cmd)
	require.True(t, ok)
	assert.Equal(t, "Search Sermons", ask.Title)
	assert.IsType(t, searchRequest{}, ask.Context)
}

func TestSearchFilters(t *testing.T) {
	m := newSermons(80, 24)
	search(m, "prayer")
	assert.Equal(t, "prayer", m.Query())
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "The Power of Prayer", m.Visible()[0].Title)

	assert.Contains(t, testutil.StripANSI(m.View()), "Search: prayer")
}

func TestSearchBySpeaker(t *testing.T) {
	m := newSermons(80, 24)
	search(m, "sarah")
	for _, s := range m.Visible() {
		assert.Equal(t, "Pastor Sarah Johnson", s.Speaker)
	}
}

func TestSearchIgnoresOtherResults(t *testing.T) {
	m := newSermons(80, 24)
	m.Update(textinput.ActionMsg(textinput.Result{Text: "prayer", Context: "other"}))
	assert.Empty(t, m.Query())

	m.Update(textinput.ActionMsg(textinput.Result{Text: "prayer", Context: searchRequest{}, Canceled: true}))
	assert.Empty(t, m.Query())
}

func TestClearSearch(t *testing.T) {
	m := newSermons(80, 24)
	search(m, "prayer")
	m.Update(testutil.Key("ctrl+l"))
	assert.Empty(t, m.Query())
	assert.Len(t, m.Visible(), len(content.Sermons()))
}

func TestNoResults(t *testing.T) {
	m := newSermons(80, 24)
	search(m, "zzzz")
	assert.Empty(t, m.Visible())
	assert.Contains(t, testutil.StripANSI(m.View()), "No sermons found")

	_, cmd := m.Update(testutil.Key("enter"))
	assert.Nil(t, cmd)
}

func TestEnterShowsDetail(t *testing.T) {
	m := newSermons(80, 24)
	m.Update(testutil.Key("j"))
	_, cmd := m.Update(testutil.Key("enter"))
	detail, ok := testutil.FindAction[action.ShowDetail](cmd)
	require.True(t, ok)
	assert.Equal(t, content.Sermons()[1].Title, detail.Title)
}

func TestCategoryResetsCursor(t *testing.T) {
	m := newSermons(80, 24)
	m.Update(testutil.Key("j"))
	m.Update(testutil.Key("l"))
	_, cmd := m.Update(testutil.Key("enter"))
	detail, ok := testutil.FindAction[action.ShowDetail](cmd)
	require.True(t, ok)
	assert.Equal(t, m.Visible()[0].Title, detail.Title)
}

func TestRowsFitWidth(t *testing.T) {
	m := newSermons(60, 20)
	for _, line := range testutil.SplitLines(m.View()) {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 60)
	}
}
