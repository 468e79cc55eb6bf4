package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/auth"
	"github.com/gccma/gccma/internal/config"
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/testutil"
)

func newLanding(session *auth.Session) *Model {
	cfg := &config.Config{}
	m := New(screens.Deps{Church: cfg.GetChurchConfig(), Session: session})
	m.SetLayout(layout.Default(80, 24), 80, 23)
	return m
}

func TestInit_SignedInSkipsToHome(t *testing.T) {
	s := auth.NewSession()
	assert.Nil(t, newLanding(s).Init())

	s.Login(auth.User{ID: "1", FirstName: "John"})
	nav, ok := testutil.FindAction[action.Navigate](newLanding(s).Init())
	require.True(t, ok)
	assert.Equal(t, content.RouteHome, nav.To)
}

func TestEnter_GetStartedOpensAuth(t *testing.T) {
	m := newLanding(auth.NewSession())
	_, cmd := m.Update(testutil.Key("enter"))

	nav, ok := testutil.FindAction[action.Navigate](cmd)
	require.True(t, ok)
	assert.Equal(t, content.RouteAuth, nav.To)
}

func TestGuest(t *testing.T) {
	m := newLanding(auth.NewSession())
	m.Update(testutil.Key("down"))
	_, cmd := m.Update(testutil.Key("enter"))

	nav, ok := testutil.FindAction[action.Navigate](cmd)
	require.True(t, ok)
	assert.Equal(t, content.RouteHome, nav.To)

	// selection wraps
	m.Update(testutil.Key("down"))
	assert.Equal(t, 0, m.selected)
}

func TestView(t *testing.T) {
	view := testutil.StripANSI(newLanding(nil).View())
	for _, want := range []string{"GCCMA", "Growing in Christ, Changing the World", "Welcome to Our Community", "Get Started", "Continue as Guest"} {
		assert.Contains(t, view, want)
	}
}
