package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/gccma/gccma/internal/keymap"
)

func claim(a keymap.Action, cmd tea.Cmd) Handler {
	return func(k Key) Result {
		if k.Action != a {
			return NotHandled
		}
		return Handled(cmd)
	}
}

func TestChain_FirstClaimWins(t *testing.T) {
	var calls []string
	quit := func(k Key) Result {
		calls = append(calls, "quit")
		if k.Action == keymap.ActionQuit {
			return Handled(tea.Quit)
		}
		return NotHandled
	}
	help := func(Key) Result {
		calls = append(calls, "help")
		return Done
	}
	never := func(Key) Result {
		calls = append(calls, "never")
		return Done
	}

	handled, cmd := Chain(Key{Name: "?", Action: keymap.ActionHelp}, quit, help, never)
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"quit", "help"}, calls)
}

func TestChain_NobodyClaims(t *testing.T) {
	handled, cmd := Chain(Key{Name: "x"},
		claim(keymap.ActionQuit, tea.Quit),
		claim(keymap.ActionHelp, nil),
	)
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestChain_ReturnsCommand(t *testing.T) {
	handled, cmd := Chain(Key{Name: "q", Action: keymap.ActionQuit},
		claim(keymap.ActionHelp, nil),
		claim(keymap.ActionQuit, tea.Quit),
	)
	assert.True(t, handled)
	if assert.NotNil(t, cmd) {
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestChain_Empty(t *testing.T) {
	handled, cmd := Chain(Key{Name: "q"})
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestResults(t *testing.T) {
	assert.False(t, NotHandled.Handled)
	assert.True(t, Done.Handled)
	assert.Nil(t, Done.Cmd)
	assert.True(t, Handled(nil).Handled)
}
