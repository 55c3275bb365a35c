package geom

import "github.com/twinwm/twin/fixed"

// arcSides returns the number of line segments used to flatten an arc of
// the given maximum radius, per spec §4.2.1: max_radius / SFIXED_TOLERANCE,
// clamped to 1024, rounded up to a power of two.
func arcSides(maxRadius fixed.Fixed) int {
	// max_radius / SFIXED_TOLERANCE, where SFIXED_TOLERANCE is a quarter
	// pixel: max_radius_in_pixels * 4 == int(maxRadius) * 4 / One.
	n := (int(maxRadius) * 4) / int(fixed.One)
	if n < 1 {
		n = 1
	}
	if n > 1024 {
		n = 1024
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Arc appends an elliptical arc centered at c with radii (rx, ry), from
// start angle to start+sweep, to the path. The path is first moved to
// the arc's starting point if it has no current subpath; otherwise a
// line is drawn to it, matching common path-building convention. The
// sweep's exact endpoints are always emitted, not merely the nearest
// grid angle (spec §4.2.1).
func (path *Path) Arc(c fixed.Point, rx, ry fixed.Fixed, start, sweep fixed.Angle) {
	maxR := rx
	if ry > maxR {
		maxR = ry
	}
	sides := arcSides(maxR)

	emit := func(a fixed.Angle, first bool) {
		p := fixed.Pt(
			c.X+fixed.Mul(rx, fixed.Cos(a)),
			c.Y+fixed.Mul(ry, fixed.Sin(a)),
		)
		if first {
			if path.hasCur {
				path.Draw(p.X, p.Y)
			} else {
				path.Move(p.X, p.Y)
			}
			return
		}
		path.Draw(p.X, p.Y)
	}

	emit(start, true)
	if sides > 0 {
		step := fixed.Div(fixed.IntToFixed(int(sweep)), fixed.IntToFixed(sides))
		for i := 1; i < sides; i++ {
			a := start + fixed.Angle(fixed.FixedRound(fixed.Mul(fixed.IntToFixed(i), step)))
			emit(a, false)
		}
	}
	emit(start+sweep, false)
}

// Circle appends a full circle of the given radius centered at c.
func (path *Path) Circle(c fixed.Point, radius fixed.Fixed) {
	path.Ellipse(c, radius, radius)
}

// Ellipse appends a full ellipse centered at c with semi-axes (rx, ry).
func (path *Path) Ellipse(c fixed.Point, rx, ry fixed.Fixed) {
	path.Arc(c, rx, ry, fixed.Angle0, fixed.Angle360)
	path.Close()
}

// Rectangle appends an axis-aligned rectangle with corners (x1,y1) and
// (x2,y2).
func (path *Path) Rectangle(x1, y1, x2, y2 fixed.Fixed) {
	path.Move(x1, y1)
	path.Draw(x2, y1)
	path.Draw(x2, y2)
	path.Draw(x1, y2)
	path.Close()
}

// RoundedRectangle appends a rectangle with corners rounded to the given
// radius.
func (path *Path) RoundedRectangle(x1, y1, x2, y2, radius fixed.Fixed) {
	if radius <= 0 {
		path.Rectangle(x1, y1, x2, y2)
		return
	}
	r := radius
	path.Move(x1+r, y1)
	path.Draw(x2-r, y1)
	path.Arc(fixed.Pt(x2-r, y1+r), r, r, fixed.Angle(-1024), fixed.Angle90)
	path.Draw(x2, y2-r)
	path.Arc(fixed.Pt(x2-r, y2-r), r, r, fixed.Angle0, fixed.Angle90)
	path.Draw(x1+r, y2)
	path.Arc(fixed.Pt(x1+r, y2-r), r, r, fixed.Angle(1024), fixed.Angle90)
	path.Draw(x1, y1+r)
	path.Arc(fixed.Pt(x1+r, y1+r), r, r, fixed.Angle180, fixed.Angle90)
	path.Close()
}

// Lozenge appends a rectangle whose corners are rounded to a half-height
// radius, producing the pill/stadium shape used by Twin's "lozenge"
// widget background.
func (path *Path) Lozenge(x1, y1, x2, y2 fixed.Fixed) {
	radius := (y2 - y1) / 2
	path.RoundedRectangle(x1, y1, x2, y2, radius)
}

// Tab appends a rectangle with only its top two corners rounded, the
// shape of a window's title-bar tab.
func (path *Path) Tab(x1, y1, x2, y2, radius fixed.Fixed) {
	r := radius
	path.Move(x1, y2)
	path.Draw(x1, y1+r)
	path.Arc(fixed.Pt(x1+r, y1+r), r, r, fixed.Angle180, fixed.Angle90)
	path.Draw(x2-r, y1)
	path.Arc(fixed.Pt(x2-r, y1+r), r, r, fixed.Angle(-1024), fixed.Angle90)
	path.Draw(x2, y2)
	path.Close()
}
