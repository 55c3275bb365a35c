package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/screen"
)

type fixedLeaf struct {
	*Widget
	w, h fixed.Fixed
}

func newFixedLeaf(w, h fixed.Fixed, stretch int) *fixedLeaf {
	l := &fixedLeaf{w: w, h: h}
	l.Widget = New(l)
	l.StretchX = stretch
	l.StretchY = stretch
	return l
}

func (l *fixedLeaf) MeasureSelf(w *Widget)                       { w.PreferredW, w.PreferredH = l.w, l.h }
func (l *fixedLeaf) Arrange(w *Widget, extents fixed.Rect)        {}
func (l *fixedLeaf) PaintSelf(w *Widget, dst *pixmap.Pixmap)      {}
func (l *fixedLeaf) HandleButton(w *Widget, ev screen.Event) bool { return false }
func (l *fixedLeaf) HandleKey(w *Widget, ev screen.Event) bool    { return false }
func (l *fixedLeaf) Teardown(w *Widget)                           {}

func TestBoxAggregatesHorizontalPreferredSize(t *testing.T) {
	box := NewBox(Horizontal)
	box.Add(newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(5), 0).Widget)
	box.Add(newFixedLeaf(fixed.IntToFixed(20), fixed.IntToFixed(8), 0).Widget)

	box.QueryGeometry()
	assert.Equal(t, fixed.IntToFixed(30), box.PreferredW)
	assert.Equal(t, fixed.IntToFixed(8), box.PreferredH)
}

func TestBoxAggregatesVerticalPreferredSize(t *testing.T) {
	box := NewBox(Vertical)
	box.Add(newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(5), 0).Widget)
	box.Add(newFixedLeaf(fixed.IntToFixed(20), fixed.IntToFixed(8), 0).Widget)

	box.QueryGeometry()
	assert.Equal(t, fixed.IntToFixed(20), box.PreferredW)
	assert.Equal(t, fixed.IntToFixed(13), box.PreferredH)
}

func TestBoxConfigureDistributesDeltaByStretch(t *testing.T) {
	box := NewBox(Horizontal)
	a := newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(10), 1)
	b := newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(10), 1)
	box.Add(a.Widget)
	box.Add(b.Widget)
	box.QueryGeometry()

	box.Configure(fixed.MakeRect(0, 0, 40, 10))

	assert.Equal(t, 20, a.Extents.Dx())
	assert.Equal(t, 20, b.Extents.Dx())
	assert.Equal(t, 0, a.Extents.Left)
	assert.Equal(t, 20, b.Extents.Left)
}

func TestBoxConfigureLastChildAbsorbsRounding(t *testing.T) {
	box := NewBox(Horizontal)
	a := newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(10), 1)
	b := newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(10), 1)
	c := newFixedLeaf(fixed.IntToFixed(10), fixed.IntToFixed(10), 1)
	box.Add(a.Widget)
	box.Add(b.Widget)
	box.Add(c.Widget)
	box.QueryGeometry()

	box.Configure(fixed.MakeRect(0, 0, 31, 10))
	total := a.Extents.Dx() + b.Extents.Dx() + c.Extents.Dx()
	assert.Equal(t, 31, total)
}
