// Package widget implements Twin's window/widget tree: boxes, labels,
// buttons, toplevels and windows, their layout and paint dispatch
// contract, and the theme that styles them, per spec §4.9.
package widget

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/screen"
)

// Shape selects which outline Paint fills before type-specific
// painting, per spec §4.9.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeRounded
	ShapeLozenge
	ShapeTab
	ShapeEllipse
)

// Impl is the dispatch contract every concrete widget type (box, label,
// button) implements; Window wraps a pixmap and does not implement it. Its method names are distinct
// from Widget's own convenience methods (which concrete types embed a
// *Widget to inherit) so implementing Impl never shadows them.
type Impl interface {
	// MeasureSelf sets w.PreferredW/PreferredH (labels measure text;
	// boxes aggregate children via max-perpendicular, sum-parallel).
	MeasureSelf(w *Widget)
	// Arrange stores new extents, distributing layout deltas to
	// children for container types.
	Arrange(w *Widget, extents fixed.Rect)
	// PaintSelf draws type-specific content after Widget.Paint has
	// already filled w's shape with its background color.
	PaintSelf(w *Widget, dst *pixmap.Pixmap)
	// HandleButton handles ButtonDown/Up/Motion; returns whether consumed.
	HandleButton(w *Widget, ev screen.Event) bool
	// HandleKey handles KeyDown/Up/Ucs4; returns whether consumed.
	HandleKey(w *Widget, ev screen.Event) bool
	// Teardown runs widget-specific cleanup.
	Teardown(w *Widget)
}

// Widget is the common state every tree node carries, per spec §4.9's
// "a widget has a parent box, next-sibling pointer, extents rectangle
// ..., dispatch function, and an optional copy-geometry-from sibling
// link."
type Widget struct {
	Parent *Box
	Next   *Widget

	Extents fixed.Rect

	PreferredW, PreferredH fixed.Fixed
	StretchX, StretchY     int

	Background   uint32
	Shape        Shape
	CornerRadius fixed.Fixed

	PaintFlag bool
	Focus     bool

	// CopyGeom, when set, makes QueryGeometry copy that sibling's
	// preferred size instead of computing its own.
	CopyGeom *Widget

	Impl Impl
}

// New wires impl as w's dispatch implementation and sets sane defaults.
func New(impl Impl) *Widget {
	return &Widget{Impl: impl, PaintFlag: true, Shape: ShapeRectangle}
}

// QueryGeometry resolves w's preferred size, honoring CopyGeom.
func (w *Widget) QueryGeometry() {
	if w.CopyGeom != nil {
		w.PreferredW = w.CopyGeom.PreferredW
		w.PreferredH = w.CopyGeom.PreferredH
		return
	}
	if w.Impl != nil {
		w.Impl.MeasureSelf(w)
	}
}

// Configure assigns w's extents and lets its Impl react (box layout).
func (w *Widget) Configure(extents fixed.Rect) {
	w.Extents = extents
	if w.Impl != nil {
		w.Impl.Arrange(w, extents)
	}
}

// Paint fills w's shape with its background color, then defers to
// Impl for type-specific content, per spec §4.9.
func (w *Widget) Paint(dst *pixmap.Pixmap) {
	if !w.PaintFlag {
		return
	}
	p := geom.NewPath()
	w.outline(p)
	mask := fillPath(p)
	fillMasked(dst, mask, w.Background)
	if w.Impl != nil {
		w.Impl.PaintSelf(w, dst)
	}
}

func (w *Widget) outline(p *geom.Path) {
	x1, y1 := fixed.IntToFixed(w.Extents.Left), fixed.IntToFixed(w.Extents.Top)
	x2, y2 := fixed.IntToFixed(w.Extents.Right), fixed.IntToFixed(w.Extents.Bottom)
	switch w.Shape {
	case ShapeRounded:
		p.RoundedRectangle(x1, y1, x2, y2, w.CornerRadius)
	case ShapeLozenge:
		p.Lozenge(x1, y1, x2, y2)
	case ShapeTab:
		p.Tab(x1, y1, x2, y2, w.CornerRadius)
	case ShapeEllipse:
		cx := (x1 + x2) / 2
		cy := (y1 + y2) / 2
		p.Ellipse(fixed.Pt(cx, cy), (x2-x1)/2, (y2-y1)/2)
	default:
		p.Rectangle(x1, y1, x2, y2)
	}
}

// Button/Key/Destroy forward to Impl with a sensible default when none
// is set (used by leaf widgets with no interaction, e.g. a plain Label).

func (w *Widget) Button(ev screen.Event) bool {
	if w.Impl == nil {
		return false
	}
	return w.Impl.HandleButton(w, ev)
}

func (w *Widget) Key(ev screen.Event) bool {
	if w.Impl == nil {
		return false
	}
	return w.Impl.HandleKey(w, ev)
}

func (w *Widget) Destroy() {
	if w.Impl != nil {
		w.Impl.Teardown(w)
	}
}
