package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_ReplacesMiddle(t *testing.T) {
	base := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	overlay := "\n   XYZ   \n"

	got := strings.Split(Compose(base, overlay, 10), "\n")
	require.Len(t, got, 3)
	assert.Equal(t, "aaaaaaaaaa", got[0])
	assert.Equal(t, "bbbXYZbbbb", ansi.Strip(got[1]))
	assert.Equal(t, "cccccccccc", got[2])
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "    XY", 8)
	assert.Equal(t, "ab  XY  ", ansi.Strip(got))
}

func TestCompose_StyledOverlay(t *testing.T) {
	styled := "  \x1b[1mBold\x1b[0m"
	got := Compose("..........", styled, 10)
	assert.Equal(t, "..Bold....", ansi.Strip(got))
}

func TestCompose_WideCharacterEdge(t *testing.T) {
	base := "ab祈祷cdefgh"
	got := Compose(base, "   X", 12)
	assert.Equal(t, 12, ansi.StringWidth(got))
}

func TestCompose_OverlayTallerThanBase(t *testing.T) {
	got := Compose("one", "\n\nthree", 5)
	assert.Equal(t, "one", got)
}

func TestCenter(t *testing.T) {
	got := Center("ab\ncd", 6, 4)
	assert.Equal(t, "\n  ab\n  cd", got)
}

func TestDialogContent(t *testing.T) {
	d := Dialog{Title: "Walking in Faith", Body: "A message about trusting God through every season of life.", Footer: "esc close"}
	content := ansi.Strip(d.Content(20))

	for line := range strings.SplitSeq(content, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20, line)
	}
	assert.Contains(t, content, "Walking in Faith")
	assert.Contains(t, content, "esc close")
}

func TestDialogRender_FitsScreen(t *testing.T) {
	d := Dialog{Title: "Error", Body: "Failed to save settings: locked"}
	out := d.Render(40, 12)
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 12)
	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 40)
	}
	assert.Contains(t, ansi.Strip(out), "Failed to save")
}

func TestDimensions(t *testing.T) {
	w, h := dimensions("abc", 80, 24, SizeWide)
	assert.Equal(t, 64, w)
	assert.Equal(t, 16, h)

	w, h = dimensions(strings.Repeat("x", 200), 50, 24, SizeAuto)
	assert.Equal(t, 48, w)
	assert.Equal(t, 5, h)
}
