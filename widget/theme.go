package widget

import "github.com/twinwm/twin/fixed"

// Theme holds the color and metric defaults new widgets pick up when
// no explicit value is set, grounded on the visual-style split of
// color/font/metric fields the teacher's theme package used.
type Theme struct {
	Background uint32
	Foreground uint32
	Highlight  uint32
	Border     uint32
	ButtonBg   uint32
	ButtonFg   uint32

	Pad        int
	Gap        int
	BorderW    int
	Radius     fixed.Fixed
	FontHeight fixed.Fixed
}

// Default returns Twin's built-in light theme.
func Default() *Theme {
	return &Theme{
		Background: 0xFFF0F0F0,
		Foreground: 0xFF000000,
		Highlight:  0xFFD0E0FF,
		Border:     0xFF808080,
		ButtonBg:   0xFFE0E0E0,
		ButtonFg:   0xFF000000,

		Pad:        6,
		Gap:        4,
		BorderW:    1,
		Radius:     fixed.IntToFixed(4),
		FontHeight: fixed.IntToFixed(14),
	}
}

// Apply sets a widget's background, shape, and corner radius from the
// theme.
func (t *Theme) Apply(w *Widget, shape Shape) {
	w.Background = t.Background
	w.Shape = shape
	w.CornerRadius = t.Radius
}
