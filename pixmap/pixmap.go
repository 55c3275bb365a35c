// Package pixmap implements Twin's drawable surface: an owned pixel
// buffer with a clip stack, drawing origin, on-screen position, and a
// place in its screen's Z-order, per spec §4.5.
package pixmap

import (
	"github.com/twinwm/twin/compose"
	"github.com/twinwm/twin/fixed"
)

// Screen is the subset of the screen/ package a Pixmap needs to notify
// about damage and Z-order changes, kept as an interface here so
// pixmap/ does not import screen/ (screen/ imports pixmap/ instead).
type Screen interface {
	damagePixmap(p *Pixmap, r fixed.Rect)
	raise(p *Pixmap)
	lower(p *Pixmap)
	remove(p *Pixmap)
}

// Pixmap is an addressable ARGB32/RGB16/A8 surface that can be shown on
// a screen, clipped, moved, and drawn into.
type Pixmap struct {
	Surface *compose.Surface

	// origin is the top-left of Clip in pixmap-local coordinates,
	// tracked for drawing convenience per spec §4.5.
	origin fixed.Point

	// clip is the current clip rectangle in pixmap-local coordinates.
	clip     fixed.Rect
	fullRect fixed.Rect
	clipStack []fixed.Rect

	transform fixed.Matrix

	// screen position: the pixmap's top-left in screen coordinates
	// once shown.
	screen   Screen
	x, y     int
	up, down *Pixmap
	shown    bool

	disableCount int
	borrowed     bool // true when allocated via CreateConst

	resampleScratch []uint32
}

// Create allocates a new owned pixmap of the given format and size.
func Create(format compose.Format, w, h int) *Pixmap {
	s := compose.NewSurface(format, w, h)
	full := s.Bounds()
	return &Pixmap{
		Surface:   s,
		clip:      full,
		fullRect:  full,
		transform: fixed.Identity(),
	}
}

// CreateConst wraps an existing, caller-owned surface without copying
// its pixels — Destroy will not free it.
func CreateConst(s *compose.Surface) *Pixmap {
	full := s.Bounds()
	return &Pixmap{
		Surface:   s,
		clip:      full,
		fullRect:  full,
		transform: fixed.Identity(),
		borrowed:  true,
	}
}

// Destroy removes p from its screen, if shown, and releases its buffer
// unless it was created with CreateConst.
func (p *Pixmap) Destroy() {
	if p == nil {
		return
	}
	if p.shown {
		p.Hide()
	}
	if !p.borrowed {
		p.Surface = nil
	}
}

// Show places p on scr at (x, y); lower=true inserts it at the bottom
// of the Z-order instead of the top.
func (p *Pixmap) Show(scr Screen, x, y int, lower bool) {
	if p.shown {
		p.Hide()
	}
	p.screen = scr
	p.x, p.y = x, y
	p.shown = true
	if lower {
		scr.lower(p)
	} else {
		scr.raise(p)
	}
	p.Damage(p.fullRect)
}

// Hide removes p from its screen without releasing its buffer.
func (p *Pixmap) Hide() {
	if !p.shown {
		return
	}
	old := p.onScreenRect()
	scr := p.screen
	p.shown = false
	p.screen = nil
	if scr != nil {
		scr.remove(p)
		scr.damagePixmap(p, old)
	}
}

// Move relocates p to (x, y) in screen coordinates, damaging both the
// old and new on-screen rectangles.
func (p *Pixmap) Move(x, y int) {
	old := p.onScreenRect()
	p.x, p.y = x, y
	if p.screen != nil {
		p.screen.damagePixmap(p, old)
		p.screen.damagePixmap(p, p.onScreenRect())
	}
}

// ScreenX and ScreenY return the pixmap's current on-screen position;
// both are zero until Show is called.
func (p *Pixmap) ScreenX() int { return p.x }
func (p *Pixmap) ScreenY() int { return p.y }

func (p *Pixmap) onScreenRect() fixed.Rect {
	w := p.fullRect.Dx()
	h := p.fullRect.Dy()
	return fixed.MakeRect(p.x, p.y, p.x+w, p.y+h)
}

// Raise and Lower change p's position within its screen's Z-order.
func (p *Pixmap) Raise() {
	if p.screen != nil {
		p.screen.raise(p)
	}
}

func (p *Pixmap) Lower() {
	if p.screen != nil {
		p.screen.lower(p)
	}
}

// EnableUpdate/DisableUpdate balance a per-pixmap suppression counter;
// damage reported while disabled is dropped, and when the counter
// returns to zero EnableUpdate damages the whole current clip rectangle
// instead (mirrors spec §4.6's screen-level disable counter, applied at
// pixmap scope).
func (p *Pixmap) DisableUpdate() {
	p.disableCount++
}

func (p *Pixmap) EnableUpdate() {
	if p.disableCount > 0 {
		p.disableCount--
	}
	if p.disableCount == 0 {
		p.Damage(p.clip)
	}
}

func (p *Pixmap) updatesEnabled() bool { return p.disableCount == 0 }

// SetOrigin sets the drawing origin, tracked as the clip's top-left.
func (p *Pixmap) SetOrigin(origin fixed.Point) {
	p.origin = origin
}

// GetOrigin returns the current drawing origin.
func (p *Pixmap) GetOrigin() fixed.Point {
	return p.origin
}

// Clip intersects the current clip rectangle with r (spec §4.5
// invariant: "clip changes are intersections with the existing clip").
func (p *Pixmap) Clip(r fixed.Rect) {
	p.clip = p.clip.Intersect(r)
	p.origin = fixed.Pt(fixed.IntToFixed(p.clip.Left), fixed.IntToFixed(p.clip.Top))
}

// SetClip replaces the clip rectangle outright, still bounded by the
// pixmap's own extents.
func (p *Pixmap) SetClip(r fixed.Rect) {
	p.clip = r.Intersect(p.fullRect)
	p.origin = fixed.Pt(fixed.IntToFixed(p.clip.Left), fixed.IntToFixed(p.clip.Top))
}

// GetClip returns the current clip rectangle.
func (p *Pixmap) GetClip() fixed.Rect {
	return p.clip
}

// Save pushes the current clip rectangle onto a stack for later Restore.
func (p *Pixmap) Save() {
	p.clipStack = append(p.clipStack, p.clip)
}

// Restore pops the most recently saved clip rectangle; a Restore with
// an empty stack is a no-op.
func (p *Pixmap) Restore() {
	n := len(p.clipStack)
	if n == 0 {
		return
	}
	p.clip = p.clipStack[n-1]
	p.clipStack = p.clipStack[:n-1]
}

// ResetClip restores the clip to the pixmap's full extents and drops
// any saved clip stack.
func (p *Pixmap) ResetClip() {
	p.clip = p.fullRect
	p.clipStack = nil
	p.origin = fixed.Point{}
}

// Damage marks r (in pixmap-local coordinates, clipped to the current
// clip rectangle) dirty, forwarding it to the owning screen in
// screen-space coordinates.
func (p *Pixmap) Damage(r fixed.Rect) {
	r = r.Intersect(p.clip)
	if r.Empty() || !p.updatesEnabled() {
		return
	}
	if p.screen != nil {
		p.screen.damagePixmap(p, r.Translate(p.x, p.y))
	}
}

// Transparent reports whether the pixel at local coordinate (x, y) is
// out of bounds or fully transparent (spec §4.5).
func (p *Pixmap) Transparent(x, y int) bool {
	if p.Surface == nil {
		return true
	}
	if x < 0 || y < 0 || x >= p.Surface.Width || y >= p.Surface.Height {
		return true
	}
	return p.Surface.At(x, y)>>24 == 0
}

// Transform returns the pixmap's current coordinate transform.
func (p *Pixmap) Transform() fixed.Matrix {
	return p.transform
}

// SetTransform installs a new coordinate transform for subsequent draws.
func (p *Pixmap) SetTransform(m fixed.Matrix) {
	p.transform = m
}

// resampleBuffer returns a scratch row buffer of at least width
// elements, growing (never shrinking) p's cached allocation, per spec
// §4.4's "caches its resample scratch buffer, reallocating only when
// the requested width grows."
func (p *Pixmap) resampleBuffer(width int) []uint32 {
	if cap(p.resampleScratch) < width {
		p.resampleScratch = make([]uint32, width)
	}
	return p.resampleScratch[:width]
}

// Dispatch delivers an incoming event to the pixmap's owner. Screens
// call this after routing; pixmap/ itself has no widget/window logic,
// so by default it simply reports the event was not consumed. Windows
// (widget/ package) wrap a Pixmap and override this behavior by
// composing, not embedding.
type Dispatcher interface {
	Dispatch(event interface{}) bool
}

func (p *Pixmap) Dispatch(event interface{}, d Dispatcher) bool {
	if d == nil {
		return false
	}
	return d.Dispatch(event)
}
