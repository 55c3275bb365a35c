package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twinwm/twin/screen"
)

func TestCreateReservesTitleBarForApplicationStyle(t *testing.T) {
	scr := screen.Create(200, 200)
	win := Create(scr, StyleApplication, 100, 50, "test", nil, false)

	assert.Equal(t, titleBarHeight+borderWidth, win.Client.Top)
	assert.Equal(t, borderWidth, win.Client.Left)
	assert.Equal(t, 100+2*borderWidth, win.Pixmap.Surface.Width)
	assert.Equal(t, 50+titleBarHeight+2*borderWidth, win.Pixmap.Surface.Height)
}

func TestCreatePlainStyleHasNoInset(t *testing.T) {
	scr := screen.Create(200, 200)
	win := Create(scr, StylePlain, 100, 50, "test", nil, false)

	assert.Equal(t, 0, win.Client.Left)
	assert.Equal(t, 0, win.Client.Top)
	assert.Equal(t, 100, win.Pixmap.Surface.Width)
	assert.Equal(t, 50, win.Pixmap.Surface.Height)
}

func TestCreateWithShadowReservesExtraMargin(t *testing.T) {
	scr := screen.Create(200, 200)
	plain := Create(scr, StylePlain, 100, 50, "plain", nil, false)
	shadowed := Create(scr, StylePlain, 100, 50, "shadowed", nil, true)

	assert.Greater(t, shadowed.Pixmap.Surface.Width, plain.Pixmap.Surface.Width)
	assert.Greater(t, shadowed.Pixmap.Surface.Height, plain.Pixmap.Surface.Height)
	assert.Equal(t, plain.Client, shadowed.Client, "the shadow margin must not shift the client area")
}

func TestPaintWithShadowPaintsRightMargin(t *testing.T) {
	scr := screen.Create(200, 200)
	win := Create(scr, StyleApplication, 40, 30, "win", nil, true)

	win.Paint()

	alpha := win.Pixmap.Surface.At(win.frameW, 1) >> 24
	assert.Greater(t, alpha, uint32(0), "right shadow strip should carry some alpha after painting")
}

func TestCloseButtonSetsIconifiedInsteadOfDestroying(t *testing.T) {
	scr := screen.Create(200, 200)
	destroyed := false
	win := Create(scr, StyleApplication, 100, 50, "test", nil, false)
	win.OnDestroy = func() { destroyed = true }

	rect := win.closeButtonRect()
	win.Dispatch(screen.Event{Kind: screen.ButtonDown, X: rect.Left, Y: rect.Top})

	assert.True(t, win.Iconified)
	assert.False(t, destroyed)
}

func TestMenuButtonInvokesOnMenu(t *testing.T) {
	scr := screen.Create(200, 200)
	clicked := false
	win := Create(scr, StyleApplication, 100, 50, "test", nil, false)
	win.OnMenu = func() { clicked = true }

	rect := win.menuButtonRect()
	handled := win.Dispatch(screen.Event{Kind: screen.ButtonDown, X: rect.Left, Y: rect.Top})

	assert.True(t, handled)
	assert.True(t, clicked)
}
