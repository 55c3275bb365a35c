package screen

import "github.com/twinwm/twin/pixmap"

// Deliver is how a screen hands an Event to a specific pixmap; the
// widget layer supplies this to bridge screen.Event into its own
// dispatch contract. It returns whether the event was consumed.
type Deliver func(p *pixmap.Pixmap, ev Event) bool

// SetEventFilter installs a pre-dispatch filter that may consume an
// event before screen routing runs.
func (s *Screen) SetEventFilter(f func(Event) bool) {
	s.eventFilter = f
}

// Dispatch routes ev to the appropriate pixmap(s) per spec §4.6's
// event-routing rules, using deliver to hand the event to a pixmap.
func (s *Screen) Dispatch(ev Event, deliver Deliver) bool {
	if s.eventFilter != nil && s.eventFilter(ev) {
		return true
	}

	switch ev.Kind {
	case Motion, ButtonDown, ButtonUp:
		return s.dispatchPointer(ev, deliver)
	case KeyDown, KeyUp, Ucs4:
		if s.active != nil {
			return deliver(s.active, ev)
		}
		return false
	default:
		if s.active != nil {
			return deliver(s.active, ev)
		}
		return false
	}
}

func (s *Screen) dispatchPointer(ev Event, deliver Deliver) bool {
	if ev.Kind == Motion {
		oldRect := s.cursorRect()
		s.cursorX, s.cursorY = ev.X, ev.Y
		newRect := s.cursorRect()
		s.Damage(oldRect.Left, oldRect.Top, oldRect.Right, oldRect.Bottom)
		s.Damage(newRect.Left, newRect.Top, newRect.Right, newRect.Bottom)
	}

	if s.capture != nil {
		consumed := deliver(s.capture, ev)
		if ev.Kind == ButtonUp {
			s.capture = nil
		}
		return consumed
	}

	target := s.hitTest(ev.X, ev.Y)

	if target != s.hover {
		if s.hover != nil {
			deliver(s.hover, Event{Kind: Leave, X: ev.X, Y: ev.Y})
		}
		if target != nil {
			deliver(target, Event{Kind: Enter, X: ev.X, Y: ev.Y})
		}
		s.hover = target
	}

	if target == nil {
		return false
	}

	if ev.Kind == ButtonDown {
		s.capture = target
	}

	return deliver(target, ev)
}

// hitTest walks the Z-stack top-to-bottom, skipping pixmaps whose
// pixel at (x, y) is out-of-bounds or fully transparent.
func (s *Screen) hitTest(x, y int) *pixmap.Pixmap {
	for i := len(s.stack) - 1; i >= 0; i-- {
		p := s.stack[i]
		lx := x - p.ScreenX()
		ly := y - p.ScreenY()
		if !p.Transparent(lx, ly) {
			return p
		}
	}
	return nil
}
