package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Talks to the real notification server; skipped without a session bus.
func TestDesktopRoundTrip(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	require.NoError(t, err)
	if _, ok := n.(Discard); ok {
		t.Skip("session bus unreachable")
	}

	id, err := n.Notify(Notification{
		Title:    "GCCMA Test",
		Body:     "Youth Night · Aug 2",
		Category: CategoryEvent,
		Timeout:  1000,
		Urgency:  UrgencyLow,
	})
	require.NoError(t, err)
	require.NotZero(t, id)
	require.NoError(t, n.Close(id))
}
