package screen

import "github.com/twinwm/twin/fixed"

// Kind identifies the variety of an Event, per spec §4.6's event routing.
type Kind int

const (
	ButtonDown Kind = iota
	ButtonUp
	Motion
	KeyDown
	KeyUp
	Ucs4
	Activate
	Deactivate
	Enter
	Leave
	Paint
	QueryGeometry
	Configure
	Destroy
)

// Event is the payload screen.Dispatch routes to pixmaps/windows.
type Event struct {
	Kind Kind

	// Pointer events.
	X, Y   int
	Button int

	// Keyboard events.
	Key  int
	Rune rune

	// Configure/QueryGeometry.
	Rect fixed.Rect
}
