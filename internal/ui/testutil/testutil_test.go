package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/gccma/gccma/internal/ui/action"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Home", StripANSI("\x1b[38;2;52;152;219mHome\x1b[0m"))
	assert.Equal(t, 4, MeasureWidth("\x1b[1mHome\x1b[0m"))
}

func TestLines(t *testing.T) {
	out := "Sermons\nEvents\n\n"
	assert.Equal(t, []string{"Sermons", "Events"}, SplitLines(out))
	assert.Equal(t, "Events", FindLine(out, "Ev"))
	assert.True(t, ContainsLine(out, "Serm"))
	assert.Empty(t, FindLine(out, "Connect"))
	assert.Empty(t, AssertContains(out, "Events"))
	assert.NotEmpty(t, AssertNotContains(out, "Events"))
}

func TestKey(t *testing.T) {
	for _, k := range []string{"enter", "esc", "tab", "up", "q", "G", "ctrl+c", " "} {
		assert.Equal(t, k, Key(k).String())
	}
	keys := Type("ab")
	assert.Len(t, keys, 2)
	assert.Equal(t, "b", keys[1].String())
}

func TestActions_FlattensBatches(t *testing.T) {
	cmd := tea.Batch(
		action.Cmd("a", action.Notify{Text: "one"}),
		func() tea.Msg { return "not an action" },
		action.Cmd("b", action.Back{}),
	)
	got := Actions(cmd)
	assert.Len(t, got, 2)

	n, ok := FindAction[action.Notify](cmd)
	assert.True(t, ok)
	assert.Equal(t, "one", n.Text)

	_, ok = FindAction[action.ShowError](cmd)
	assert.False(t, ok)
	assert.Nil(t, Actions(nil))
}
