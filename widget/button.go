package widget

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/screen"
)

// Button wraps a Label, emitting a Down signal on press and an Up
// signal on release if the release lands inside the widget, nudging
// the label's offset while pressed for a "sunk" appearance (spec
// §4.9).
type Button struct {
	*Widget
	Label *Label

	Down func()
	Up   func()

	pressed bool
}

// sunkOffset is how far the label shifts while the button is pressed.
var sunkOffset = fixed.Pt(fixed.IntToFixed(1), fixed.IntToFixed(1))

// NewButton creates a Button displaying label, which becomes its sole
// child for layout/paint purposes.
func NewButton(label *Label) *Button {
	b := &Button{Label: label}
	b.Widget = New(b)
	label.Parent = nil // Buttons own their label directly, not via Box
	return b
}

func (b *Button) MeasureSelf(w *Widget) {
	b.Label.QueryGeometry()
	w.PreferredW = b.Label.PreferredW
	w.PreferredH = b.Label.PreferredH
}

func (b *Button) Arrange(w *Widget, extents fixed.Rect) {
	b.Label.Configure(extents)
}

func (b *Button) PaintSelf(w *Widget, dst *pixmap.Pixmap) {
	if b.pressed {
		b.Label.offset = sunkOffset
	} else {
		b.Label.offset = fixed.Point{}
	}
	b.Label.Paint(dst)
}

func (b *Button) HandleButton(w *Widget, ev screen.Event) bool {
	switch ev.Kind {
	case screen.ButtonDown:
		b.pressed = true
		if b.Down != nil {
			b.Down()
		}
		return true
	case screen.ButtonUp:
		wasPressed := b.pressed
		b.pressed = false
		insideLocal := ev.X >= 0 && ev.Y >= 0 && ev.X < w.Extents.Dx() && ev.Y < w.Extents.Dy()
		if wasPressed && insideLocal && b.Up != nil {
			b.Up()
		}
		return true
	}
	return false
}

func (b *Button) HandleKey(w *Widget, ev screen.Event) bool { return false }
func (b *Button) Teardown(w *Widget)                        { b.Label.Destroy() }
