package popupctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/ui/testutil"
)

func TestPriority(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	assert.Equal(t, None, p.ActivePopup())

	p.ShowDetail("About", "text")
	assert.Equal(t, Detail, p.ActivePopup())

	p.ShowConfirm("Sure?", "Really", nil)
	assert.Equal(t, Confirm, p.ActivePopup())

	p.ShowError("boom")
	assert.Equal(t, Error, p.ActivePopup())
}

func TestHandleKey_DismissesReadOnly(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.ShowError("boom")
	p.ShowDetail("About", "text")

	handled, _ := p.HandleKey(testutil.Key("x"))
	require.True(t, handled)
	assert.Equal(t, Detail, p.ActivePopup())

	handled, _ = p.HandleKey(testutil.Key("x"))
	require.True(t, handled)
	assert.Equal(t, None, p.ActivePopup())

	handled, _ = p.HandleKey(testutil.Key("x"))
	assert.False(t, handled)
}

func TestRenderOverlay(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	base := ""
	for range 23 {
		base += "\n"
	}
	p.ShowDetail("Sermon", "Walking in faith")
	out := testutil.StripANSI(p.RenderOverlay(base))
	assert.Contains(t, out, "Walking in faith")
	assert.Contains(t, out, "Press any key to dismiss")
}

func TestRenderOrderIsPriorityReversed(t *testing.T) {
	require.Len(t, RenderOrder, len(Priority))
	assert.Equal(t, Error, RenderOrder[len(RenderOrder)-1])
	assert.Equal(t, Detail, RenderOrder[0])
	assert.Equal(t, Error, Priority[0], "reversing must not touch Priority")
	assert.Equal(t, "confirm", Confirm.String())
	assert.Equal(t, "none", None.String())
}
