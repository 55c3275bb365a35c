// Package screen implements Twin's Z-ordered pixmap stack: damage
// tracking, scanline update emission, cursor compositing, and pointer/
// keyboard event routing, per spec §4.6.
package screen

import (
	"github.com/twinwm/twin/compose"
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/pixmap"
)

// Sink receives the scanlines screen.Update produces. PutBegin is
// called once before the first emitted line and PutEnd once after the
// last; PutSpan is called once per damaged scanline with ARGB32 pixels.
type Sink interface {
	PutBegin()
	PutSpan(y int, pixels []uint32)
	PutEnd()
}

// Screen owns a bottom-to-top stack of shown pixmaps, a background
// pattern, a cursor, and the damage rectangle accumulated since the
// last Update.
type Screen struct {
	Width, Height int

	stack []*pixmap.Pixmap // index 0 = bottom, last = top

	background *pixmap.Pixmap
	backgroundColor uint32

	cursor     *pixmap.Pixmap
	cursorHotX, cursorHotY int
	cursorX, cursorY       int

	damage fixed.Rect

	active  *pixmap.Pixmap
	capture *pixmap.Pixmap // click-locked event target
	hover   *pixmap.Pixmap // pixmap that last received Enter

	disableCount int
	damagedCB    func()
	eventFilter  func(Event) bool

	span []uint32
}

// Create allocates a screen of the given size, filled with a white
// background by default.
func Create(w, h int) *Screen {
	return &Screen{
		Width:           w,
		Height:          h,
		backgroundColor: 0xFFFFFFFF,
	}
}

// Destroy detaches every shown pixmap.
func (s *Screen) Destroy() {
	for _, p := range append([]*pixmap.Pixmap(nil), s.stack...) {
		p.Hide()
	}
	s.stack = nil
}

func (s *Screen) damagePixmap(p *pixmap.Pixmap, r fixed.Rect) {
	s.Damage(r.Left, r.Top, r.Right, r.Bottom)
}

func (s *Screen) raise(p *pixmap.Pixmap) {
	s.removeFromStack(p)
	s.stack = append(s.stack, p)
}

func (s *Screen) lower(p *pixmap.Pixmap) {
	s.removeFromStack(p)
	s.stack = append([]*pixmap.Pixmap{p}, s.stack...)
}

func (s *Screen) remove(p *pixmap.Pixmap) {
	s.removeFromStack(p)
	if s.active == p {
		s.active = nil
	}
	if s.capture == p {
		s.capture = nil
	}
	if s.hover == p {
		s.hover = nil
	}
}

func (s *Screen) removeFromStack(p *pixmap.Pixmap) {
	for i, q := range s.stack {
		if q == p {
			s.stack = append(s.stack[:i], s.stack[i+1:]...)
			return
		}
	}
}

// Damage marks the screen-space rectangle (left,top)-(right,bottom)
// dirty, intersected with the screen's own extents.
func (s *Screen) Damage(left, top, right, bottom int) {
	r := fixed.MakeRect(left, top, right, bottom).Intersect(fixed.MakeRect(0, 0, s.Width, s.Height))
	if r.Empty() {
		return
	}
	s.damage = s.damage.Union(r)
	if s.disableCount == 0 && s.damagedCB != nil {
		s.damagedCB()
	}
}

// Resize changes the screen's extents, damaging the whole new area.
func (s *Screen) Resize(w, h int) {
	s.Width, s.Height = w, h
	s.Damage(0, 0, w, h)
}

// Damaged reports whether any area is currently dirty.
func (s *Screen) Damaged() bool {
	return !s.damage.Empty()
}

// RegisterDamaged installs cb, invoked whenever new damage is recorded
// while updates are enabled.
func (s *Screen) RegisterDamaged(cb func()) {
	s.damagedCB = cb
}

// DisableUpdate/EnableUpdate balance a suppression counter; Update is a
// no-op while the counter is above zero. Re-enabling at zero re-triggers
// the damaged callback if damage accumulated in the meantime.
func (s *Screen) DisableUpdate() {
	s.disableCount++
}

func (s *Screen) EnableUpdate() {
	if s.disableCount > 0 {
		s.disableCount--
	}
	if s.disableCount == 0 && s.Damaged() && s.damagedCB != nil {
		s.damagedCB()
	}
}

// SetActive/GetActive control which pixmap receives keyboard/UCS-4
// events, sending Deactivate to the previous active pixmap and
// Activate to the new one.
func (s *Screen) SetActive(p *pixmap.Pixmap, dispatch func(*pixmap.Pixmap, Event)) {
	if s.active == p {
		return
	}
	prev := s.active
	s.active = p
	if dispatch == nil {
		return
	}
	if prev != nil {
		dispatch(prev, Event{Kind: Deactivate})
	}
	if p != nil {
		dispatch(p, Event{Kind: Activate})
	}
}

func (s *Screen) GetActive() *pixmap.Pixmap {
	return s.active
}

// SetBackground installs a pixmap as the tiled background pattern;
// passing nil reverts to the solid backgroundColor.
func (s *Screen) SetBackground(p *pixmap.Pixmap) {
	s.background = p
	s.Damage(0, 0, s.Width, s.Height)
}

func (s *Screen) GetBackground() *pixmap.Pixmap {
	return s.background
}

// SetCursor installs px as the cursor image with hotspot (hx, hy),
// damaging the old and new cursor rectangles.
func (s *Screen) SetCursor(px *pixmap.Pixmap, hx, hy int) {
	old := s.cursorRect()
	s.cursor = px
	s.cursorHotX, s.cursorHotY = hx, hy
	s.Damage(old.Left, old.Top, old.Right, old.Bottom)
	nr := s.cursorRect()
	s.Damage(nr.Left, nr.Top, nr.Right, nr.Bottom)
}

func (s *Screen) cursorRect() fixed.Rect {
	if s.cursor == nil || s.cursor.Surface == nil {
		return fixed.Rect{}
	}
	x := s.cursorX - s.cursorHotX
	y := s.cursorY - s.cursorHotY
	return fixed.MakeRect(x, y, x+s.cursor.Surface.Width, y+s.cursor.Surface.Height)
}

// Update composites every damaged scanline bottom-to-top through sink,
// clears the damage rectangle on success, and is a no-op while updates
// are disabled (spec §4.6).
func (s *Screen) Update(sink Sink) {
	if s.disableCount > 0 || !s.Damaged() || sink == nil {
		return
	}
	r := s.damage.Intersect(fixed.MakeRect(0, 0, s.Width, s.Height))
	if r.Empty() {
		s.damage = fixed.Rect{}
		return
	}

	width := r.Dx()
	if cap(s.span) < width {
		s.span = make([]uint32, width)
	}
	span := s.span[:width]

	sink.PutBegin()
	for y := r.Top; y < r.Bottom; y++ {
		s.renderLine(y, r.Left, width, span)
		sink.PutSpan(y, span)
	}
	sink.PutEnd()

	s.damage = fixed.Rect{}
}

func (s *Screen) renderLine(y, left, width int, span []uint32) {
	bg := s.background
	for i := 0; i < width; i++ {
		if bg != nil && bg.Surface != nil {
			x := left + i
			span[i] = bg.Surface.At(x%max1(bg.Surface.Width), y%max1(bg.Surface.Height))
		} else {
			span[i] = s.backgroundColor
		}
	}

	for _, p := range s.stack {
		if p.Surface == nil {
			continue
		}
		rect := p.GetClip().Translate(p.ScreenX(), p.ScreenY())
		if y < rect.Top || y >= rect.Bottom {
			continue
		}
		lo := max(left, rect.Left)
		hi := min(left+width, rect.Right)
		for x := lo; x < hi; x++ {
			sv := p.Surface.At(x-p.ScreenX(), y-p.ScreenY())
			i := x - left
			span[i] = compose.Blend(operatorFor(p.Surface.Format), span[i], sv)
		}
	}

	if s.cursor != nil && s.cursor.Surface != nil {
		cr := s.cursorRect()
		if y >= cr.Top && y < cr.Bottom {
			lo := max(left, cr.Left)
			hi := min(left+width, cr.Right)
			cx0 := s.cursorX - s.cursorHotX
			cy0 := s.cursorY - s.cursorHotY
			for x := lo; x < hi; x++ {
				sv := s.cursor.Surface.At(x-cx0, y-cy0)
				i := x - left
				span[i] = compose.Blend(compose.Over, span[i], sv)
			}
		}
	}
}

func (s *Screen) backgroundFill(x, y int) uint32 {
	return s.backgroundColor
}

func operatorFor(f compose.Format) compose.Operator {
	if f == compose.FormatRGB16 {
		return compose.Source
	}
	return compose.Over
}

func max1(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}
