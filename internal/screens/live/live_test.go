package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/livestream"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/testutil"
)

// fixed always returns v, so every step moves the count by v-2.
type fixed int

func (f fixed) IntN(int) int { return int(f) }

func newLive(rnd livestream.Source) *Model {
	m := New(screens.Deps{Rand: rnd})
	m.SetLayout(layout.Default(100, 60), 100, 57)
	return m
}

func TestStartsAt142(t *testing.T) {
	m := newLive(fixed(2))
	assert.Equal(t, livestream.InitialViewers, m.Viewers())
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "LIVE")
	assert.Contains(t, view, "142 watching")
}

func TestTickStepsAndRearms(t *testing.T) {
	m := newLive(fixed(4))
	_, cmd := m.Update(livestream.TickMsg{Stream: m.stream, At: time.Now()})
	assert.Equal(t, 144, m.Viewers())
	assert.NotNil(t, cmd, "next tick is scheduled")
}

func TestStaleTickIgnored(t *testing.T) {
	old := newLive(fixed(4))
	m := newLive(fixed(4))
	require.NotEqual(t, old.stream, m.stream)

	_, cmd := m.Update(livestream.TickMsg{Stream: old.stream})
	assert.Nil(t, cmd)
	assert.Equal(t, livestream.InitialViewers, m.Viewers())
}

func TestPlayPause(t *testing.T) {
	m := newLive(nil)
	assert.False(t, m.Playing())
	assert.Contains(t, testutil.StripANSI(m.View()), "Press space to play")

	m.Update(testutil.Key(" "))
	assert.True(t, m.Playing())
	assert.Contains(t, testutil.StripANSI(m.View()), "Streaming Live")

	m.Update(testutil.Key(" "))
	assert.False(t, m.Playing())
}

func TestShare(t *testing.T) {
	m := newLive(nil)
	_, cmd := m.Update(testutil.Key("s"))
	ask, ok := testutil.FindAction[action.AskConfirm](cmd)
	require.True(t, ok)
	assert.Equal(t, "Share Live Stream", ask.Title)
	assert.Equal(t, "Share this live service with friends and family!", ask.Message)

	_, cmd = m.Update(confirm.ActionMsg(confirm.Result{Confirmed: true, Context: ask.Context}))
	notice, ok := testutil.FindAction[action.Notify](cmd)
	require.True(t, ok)
	assert.Equal(t, SharedNotice, notice.Text)
}

func TestShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want content.Route
	}{
		{"g", content.RouteGiving},
		{"p", content.RoutePrayerRequest},
		{"w", content.RouteSermons},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newLive(nil)
			_, cmd := m.Update(testutil.Key(tt.key))
			nav, ok := testutil.FindAction[action.Navigate](cmd)
			require.True(t, ok)
			assert.Equal(t, tt.want, nav.To)
		})
	}
}

func TestFullscreen(t *testing.T) {
	m := newLive(nil)
	_, cmd := m.Update(testutil.Key("f"))
	notice, ok := testutil.FindAction[action.Notify](cmd)
	require.True(t, ok)
	assert.Equal(t, FullscreenNotice, notice.Text)
}

func TestScheduleShown(t *testing.T) {
	m := newLive(nil)
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "This Week's Services")
	assert.Contains(t, view, "Morning Worship")
	assert.Contains(t, view, "Conference Room A")
}

func TestScrollsOnSmallScreens(t *testing.T) {
	m := New(screens.Deps{})
	m.SetLayout(layout.Default(80, 14), 80, 11)
	assert.NotContains(t, testutil.StripANSI(m.View()), "Watch Previous Services")
	for range 40 {
		m.Update(testutil.Key("j"))
	}
	assert.Contains(t, testutil.StripANSI(m.View()), "Watch Previous Services")
}
