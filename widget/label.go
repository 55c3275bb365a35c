package widget

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/font"
	"github.com/twinwm/twin/geom"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/screen"
)

// Label paints a single line of static text, per spec §4.9.
type Label struct {
	*Widget
	Font      *font.Font
	Text      []rune
	Size      fixed.Fixed
	Style     geom.FontStyle
	TextColor uint32

	// offset nudges where the text is painted; Button uses this for
	// its pressed "sunk" look.
	offset fixed.Point
}

// NewLabel creates a Label displaying text in f at the given pixel size.
func NewLabel(f *font.Font, text string, size fixed.Fixed, color uint32) *Label {
	l := &Label{Font: f, Text: []rune(text), Size: size, TextColor: color}
	l.Widget = New(l)
	return l
}

// MeasureSelf sums each glyph's advance to find the label's preferred
// width, and uses the font's height for its preferred height.
func (l *Label) MeasureSelf(w *Widget) {
	var advance fixed.Fixed
	for _, r := range l.Text {
		g := l.Font.Glyph(r)
		if g == nil {
			continue
		}
		m := font.Measure(l.Font, g, l.Size, l.Style)
		advance += m.Advance
	}
	w.PreferredW = advance
	w.PreferredH = fixed.Mul(fixed.IntToFixed(int(l.Font.Height)), l.Size)
}

func (l *Label) Arrange(w *Widget, extents fixed.Rect) {}

// PaintSelf draws each glyph left to right on a baseline one scaled
// ascent below the top of w's extents.
func (l *Label) PaintSelf(w *Widget, dst *pixmap.Pixmap) {
	baseline := w.Extents.Top + fixed.FixedToInt(fixed.Mul(fixed.IntToFixed(int(l.Font.Ascent)), l.Size))
	pen := fixed.IntToFixed(w.Extents.Left) + l.offset.X
	y := fixed.IntToFixed(baseline) + l.offset.Y

	for _, r := range l.Text {
		g := l.Font.Glyph(r)
		if g == nil {
			continue
		}
		p := geom.NewPath()
		p.SetMatrix(fixed.Translate(pen, y))
		font.Build(p, g, l.Size, l.Style)

		mask := fillPath(p)
		fillMasked(dst, mask, l.TextColor)

		metrics := font.Measure(l.Font, g, l.Size, l.Style)
		pen += metrics.Advance
	}
}

func (l *Label) HandleButton(w *Widget, ev screen.Event) bool { return false }
func (l *Label) HandleKey(w *Widget, ev screen.Event) bool    { return false }
func (l *Label) Teardown(w *Widget)                           {}
