package widget

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/screen"
)

// Direction selects a Box's layout axis.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Box is a container widget: a layout direction, an ordered child
// list, the child currently capturing button events, and the child
// that receives keyboard input, per spec §3/§4.9.
type Box struct {
	*Widget
	Direction Direction
	Children  []*Widget

	capture *Widget
	focused *Widget
}

// NewBox creates a Box laid out along dir.
func NewBox(dir Direction) *Box {
	b := &Box{Direction: dir}
	b.Widget = New(b)
	return b
}

// Add appends a child, linking it into the Next sibling chain and
// setting its Parent back-pointer.
func (b *Box) Add(child *Widget) {
	child.Parent = b
	if n := len(b.Children); n > 0 {
		b.Children[n-1].Next = child
	}
	b.Children = append(b.Children, child)
	if b.focused == nil && child.Focus {
		b.focused = child
	}
}

// SetFocused moves keyboard focus to child, which must already be a
// child of b.
func (b *Box) SetFocused(child *Widget) {
	b.focused = child
}

// MeasureSelf aggregates children's preferred sizes: sum along the
// layout axis, max across the perpendicular axis (spec §4.9).
func (b *Box) MeasureSelf(w *Widget) {
	var sum, maxPerp fixed.Fixed
	for _, c := range b.Children {
		c.QueryGeometry()
		along, perp := c.PreferredW, c.PreferredH
		if b.Direction == Vertical {
			along, perp = c.PreferredH, c.PreferredW
		}
		sum += along
		if perp > maxPerp {
			maxPerp = perp
		}
	}
	if b.Direction == Vertical {
		w.PreferredW, w.PreferredH = maxPerp, sum
	} else {
		w.PreferredW, w.PreferredH = sum, maxPerp
	}
}

// Arrange distributes the delta between the box's assigned extent
// and its children's aggregated preferred size across children
// proportional to stretch weight, the last child absorbing rounding
// (spec §4.9).
func (b *Box) Arrange(w *Widget, extents fixed.Rect) {
	if len(b.Children) == 0 {
		return
	}
	along := fixed.IntToFixed(extents.Dx())
	perp := fixed.IntToFixed(extents.Dy())
	stretchField := func(c *Widget) int { return c.StretchX }
	prefAlong := func(c *Widget) fixed.Fixed { return c.PreferredW }
	if b.Direction == Vertical {
		along, perp = fixed.IntToFixed(extents.Dy()), fixed.IntToFixed(extents.Dx())
		stretchField = func(c *Widget) int { return c.StretchY }
		prefAlong = func(c *Widget) fixed.Fixed { return c.PreferredH }
	}

	var prefSum fixed.Fixed
	var stretchSum int
	for _, c := range b.Children {
		prefSum += prefAlong(c)
		stretchSum += stretchField(c)
	}
	delta := along - prefSum

	pos := fixed.Fixed(0)
	for i, c := range b.Children {
		size := prefAlong(c)
		if stretchSum > 0 {
			share := fixed.Mul(delta, fixed.Div(fixed.IntToFixed(stretchField(c)), fixed.IntToFixed(stretchSum)))
			size += share
		}
		if i == len(b.Children)-1 {
			size = along - pos
		}
		var rect fixed.Rect
		if b.Direction == Vertical {
			top := extents.Top + fixed.FixedToInt(pos)
			bottom := extents.Top + fixed.FixedToInt(pos+size)
			rect = fixed.MakeRect(extents.Left, top, extents.Left+fixed.FixedToInt(perp), bottom)
		} else {
			left := extents.Left + fixed.FixedToInt(pos)
			right := extents.Left + fixed.FixedToInt(pos+size)
			rect = fixed.MakeRect(left, extents.Top, right, extents.Top+fixed.FixedToInt(perp))
		}
		c.Configure(rect)
		pos += size
	}
}

// PaintSelf recurses into every child whose PaintFlag is set, saving and
// restoring dst's clip around each (spec §4.9).
func (b *Box) PaintSelf(w *Widget, dst *pixmap.Pixmap) {
	for _, c := range b.Children {
		if !c.PaintFlag {
			continue
		}
		dst.Save()
		dst.Clip(c.Extents)
		c.Paint(dst)
		dst.Restore()
	}
}

// HandleButton captures the hit child on ButtonDown, forwarding subsequent
// Motion/ButtonUp to it (translated to child-local coordinates) until
// ButtonUp, per spec §4.9.
func (b *Box) HandleButton(w *Widget, ev screen.Event) bool {
	if b.capture != nil {
		consumed := b.capture.Button(translate(ev, b.capture.Extents))
		if ev.Kind == screen.ButtonUp {
			b.capture = nil
		}
		return consumed
	}
	if ev.Kind != screen.ButtonDown {
		return false
	}
	for _, c := range b.Children {
		if c.Extents.Contains(ev.X, ev.Y) {
			b.capture = c
			return c.Button(translate(ev, c.Extents))
		}
	}
	return false
}

func translate(ev screen.Event, extents fixed.Rect) screen.Event {
	ev.X -= extents.Left
	ev.Y -= extents.Top
	return ev
}

// HandleKey forwards KeyDown/Up/Ucs4 to the focused child (spec §4.9).
func (b *Box) HandleKey(w *Widget, ev screen.Event) bool {
	if b.focused == nil {
		return false
	}
	return b.focused.Key(ev)
}

// Teardown recursively destroys every child.
func (b *Box) Teardown(w *Widget) {
	for _, c := range b.Children {
		c.Destroy()
	}
}
