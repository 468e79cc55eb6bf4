package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/content"
)

func TestCmd(t *testing.T) {
	msg := Cmd("home", Navigate{To: content.RouteGiving})()
	m, ok := msg.(Msg)
	require.True(t, ok)
	assert.Equal(t, "home", m.Source)
	assert.Equal(t, Navigate{To: content.RouteGiving}, m.Action)
}

func TestActionTypesDistinct(t *testing.T) {
	actions := []Action{Navigate{}, Back{}, Logout{}, SetDarkMode{}, Notify{}, Push{}, ShowError{}, ShowDetail{}, AskConfirm{}, AskText{}}
	seen := map[string]bool{}
	for _, a := range actions {
		assert.False(t, seen[a.ActionType()], a.ActionType())
		seen[a.ActionType()] = true
	}
}
