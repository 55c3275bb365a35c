package widget

import (
	"github.com/twinwm/twin/compose"
	"github.com/twinwm/twin/effects"
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/screen"
)

// Style selects whether a Window draws the application-style title bar
// and resize gadget, or is a plain borderless pixmap host.
type Style int

const (
	StylePlain Style = iota
	StyleApplication
)

const (
	titleBarHeight  = 20
	borderWidth     = 1
	buttonSize      = 14
	resizeGadgetDim = 12

	titleActiveColor   = 0xFF3060C0
	titleInactiveColor = 0xFF808080
	borderColor        = 0xFF404040

	shadowBlurRadius = 4
	shadowColor      = 0x60000000
)

// Window owns a single pixmap hosting a Toplevel box, per spec §4.9:
// "the window owns the pixmap; destroying the window destroys the
// pixmap."
type Window struct {
	Pixmap   *pixmap.Pixmap
	Style    Style
	Client   fixed.Rect // client area in the window pixmap's own coordinates
	Name     string

	Root *Box

	Active, Iconified, Grab, Focused bool

	OnPaint   func(dst *pixmap.Pixmap)
	OnEvent   func(ev screen.Event) bool
	OnDestroy func()
	OnMenu    func()

	dragging   bool
	dragOffX   int
	dragOffY   int

	// shadow, when enabled via Create's shadow argument, occupies a
	// margin on the pixmap's right/bottom edges outside frameW/frameH
	// (spec §4.9 "optional drop-shadow margin", rendered per §4.10).
	shadow         bool
	frameW, frameH int
	shadowCache    effects.Cache
}

// Create allocates a window of the given client size on scr, reserving
// a title bar and border inset for StyleApplication, plus a drop-shadow
// margin on the right/bottom edges when shadow is true, and hosts root
// as its widget tree.
func Create(scr *screen.Screen, style Style, clientW, clientH int, name string, root *Box, shadow bool) *Window {
	var frameW, frameH, clientX, clientY int
	switch style {
	case StyleApplication:
		clientX, clientY = borderWidth, titleBarHeight+borderWidth
		frameW = clientW + 2*borderWidth
		frameH = clientH + titleBarHeight + 2*borderWidth
	default:
		frameW, frameH = clientW, clientH
	}

	totalW, totalH := frameW, frameH
	if shadow {
		sx, sy := effects.Margin(shadowBlurRadius)
		totalW += sx
		totalH += sy
	}

	px := pixmap.Create(compose.FormatARGB32, totalW, totalH)
	win := &Window{
		Pixmap:  px,
		Style:   style,
		Client:  fixed.MakeRect(clientX, clientY, clientX+clientW, clientY+clientH),
		Name:    name,
		Root:    root,
		shadow:  shadow,
		frameW:  frameW,
		frameH:  frameH,
	}
	if root != nil {
		root.Configure(win.Client)
	}
	px.Show(scr, 0, 0, false)
	return win
}

// Paint draws the drop shadow (if enabled), the title bar (when
// StyleApplication), its buttons and the resize gadget, then the
// client-area widget tree.
func (win *Window) Paint() {
	if win.shadow {
		sx, sy := effects.Margin(shadowBlurRadius)
		win.shadowCache.Paint(win.Pixmap.Surface, win.frameW, win.frameH, sx, sy, shadowColor)
	}
	if win.Style == StyleApplication {
		win.paintDecorations()
	}
	if win.Root != nil {
		win.Pixmap.Save()
		win.Pixmap.Clip(win.Client)
		win.Root.Paint(win.Pixmap)
		win.Pixmap.Restore()
	}
	if win.OnPaint != nil {
		win.OnPaint(win.Pixmap)
	}
	win.Pixmap.Damage(win.Pixmap.GetClip())
}

// frameRect is the window's own border/title/client area, excluding any
// drop-shadow margin reserved on the pixmap's right/bottom edges.
func (win *Window) frameRect() fixed.Rect {
	return fixed.MakeRect(0, 0, win.frameW, win.frameH)
}

func (win *Window) paintDecorations() {
	titleColor := uint32(titleInactiveColor)
	if win.Active {
		titleColor = titleActiveColor
	}
	frame := win.frameRect()
	compose.Fill(win.Pixmap.Surface, borderColor, compose.Source, frame)
	titleRect := fixed.MakeRect(borderWidth, borderWidth, frame.Right-borderWidth, titleBarHeight)
	compose.Fill(win.Pixmap.Surface, titleColor, compose.Source, titleRect)

	// Three title-bar buttons (menu, iconify/restore, close) right-aligned
	// per spec §4.9; a resize gadget sits in the bottom-right corner of
	// the frame.
	compose.Fill(win.Pixmap.Surface, 0xFFC04040, compose.Source, win.closeButtonRect())
	compose.Fill(win.Pixmap.Surface, 0xFFC0C040, compose.Source, win.iconifyButtonRect())
	compose.Fill(win.Pixmap.Surface, 0xFFA0A0A0, compose.Source, win.menuButtonRect())

	resizeRect := fixed.MakeRect(frame.Right-resizeGadgetDim, frame.Bottom-resizeGadgetDim, frame.Right, frame.Bottom)
	compose.Fill(win.Pixmap.Surface, borderColor, compose.Source, resizeRect)
}

func (win *Window) closeButtonRect() fixed.Rect {
	frame := win.frameRect()
	x := frame.Right - borderWidth - buttonSize
	btnY := (titleBarHeight - buttonSize) / 2
	return fixed.MakeRect(x, btnY, x+buttonSize, btnY+buttonSize)
}

func (win *Window) iconifyButtonRect() fixed.Rect {
	r := win.closeButtonRect()
	return r.Translate(-(buttonSize + 2), 0)
}

func (win *Window) menuButtonRect() fixed.Rect {
	r := win.iconifyButtonRect()
	return r.Translate(-(buttonSize + 2), 0)
}

// Dispatch routes ev: title-bar drag-move and button clicks when
// StyleApplication, otherwise forwarding to the client-area widget
// tree translated into client-local coordinates (spec §4.9).
func (win *Window) Dispatch(ev screen.Event) bool {
	if win.OnEvent != nil && win.OnEvent(ev) {
		return true
	}

	switch ev.Kind {
	case screen.Activate:
		win.Active = true
		win.Pixmap.Damage(win.Pixmap.GetClip())
		return true
	case screen.Deactivate:
		win.Active = false
		win.Pixmap.Damage(win.Pixmap.GetClip())
		return true
	case screen.Destroy:
		win.destroy()
		return true
	}

	if win.Style == StyleApplication && win.handleTitleBar(ev) {
		return true
	}

	if win.Client.Contains(ev.X, ev.Y) && win.Root != nil {
		local := ev
		local.X -= win.Client.Left
		local.Y -= win.Client.Top
		switch ev.Kind {
		case screen.ButtonDown, screen.ButtonUp, screen.Motion:
			return win.Root.Button(local)
		case screen.KeyDown, screen.KeyUp, screen.Ucs4:
			return win.Root.Key(local)
		}
	}
	return false
}

func (win *Window) handleTitleBar(ev screen.Event) bool {
	titleRect := fixed.MakeRect(0, 0, win.frameW, titleBarHeight)
	switch ev.Kind {
	case screen.ButtonDown:
		if win.closeButtonRect().Contains(ev.X, ev.Y) {
			// spec §4.9: clicking the close area sets an "iconify" flag
			// rather than destroying the window.
			win.Iconified = true
			return true
		}
		if win.iconifyButtonRect().Contains(ev.X, ev.Y) {
			win.Iconified = !win.Iconified
			return true
		}
		if win.menuButtonRect().Contains(ev.X, ev.Y) {
			if win.OnMenu != nil {
				win.OnMenu()
			}
			return true
		}
		if titleRect.Contains(ev.X, ev.Y) {
			win.dragging = true
			win.dragOffX, win.dragOffY = ev.X, ev.Y
			return true
		}
	case screen.Motion:
		if win.dragging {
			win.Pixmap.Move(win.Pixmap.ScreenX()+ev.X-win.dragOffX, win.Pixmap.ScreenY()+ev.Y-win.dragOffY)
			return true
		}
	case screen.ButtonUp:
		if win.dragging {
			win.dragging = false
			return true
		}
	}
	return false
}

func (win *Window) destroy() {
	if win.Root != nil {
		win.Root.Destroy()
	}
	if win.OnDestroy != nil {
		win.OnDestroy()
	}
	win.Pixmap.Destroy()
}
