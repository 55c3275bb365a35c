package fixed

// Point is a location using general (Q15.16) fixed coordinates.
type Point struct {
	X, Y Fixed
}

// SPoint is a location using screen-fixed (Q11.4) coordinates, the
// rasterizer's native grid.
type SPoint struct {
	X, Y SFixed
}

// Pt returns the Point (x, y).
func Pt(x, y Fixed) Point { return Point{x, y} }

// SPt returns the SPoint (x, y).
func SPt(x, y SFixed) SPoint { return SPoint{x, y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// ToSPoint converts a Point to an SPoint.
func (p Point) ToSPoint() SPoint { return SPoint{p.X.ToSFixed(), p.Y.ToSFixed()} }

// ToPoint converts an SPoint to a Point.
func (p SPoint) ToPoint() Point { return Point{p.X.ToFixed(), p.Y.ToFixed()} }

// Eq reports whether p and q are the same point.
func (p SPoint) Eq(q SPoint) bool { return p.X == q.X && p.Y == q.Y }

// Rect is an axis-aligned integer rectangle: inclusive left/top, exclusive
// right/bottom, matching spec §3.
type Rect struct {
	Left, Top, Right, Bottom int
}

// MakeRect returns the rectangle with the given edges, canonicalized so
// Left <= Right and Top <= Bottom.
func MakeRect(left, top, right, bottom int) Rect {
	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return Rect{left, top, right, bottom}
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Right - r.Left }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Bottom - r.Top }

// Intersect returns the intersection of r and s; the result is Empty if
// they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Left:   max(r.Left, s.Left),
		Top:    max(r.Top, s.Top),
		Right:  min(r.Right, s.Right),
		Bottom: min(r.Bottom, s.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle containing both r and s. An empty
// operand is ignored; Union of two empties is empty.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, s.Left),
		Top:    min(r.Top, s.Top),
		Right:  max(r.Right, s.Right),
		Bottom: max(r.Bottom, s.Bottom),
	}
}

// Contains reports whether x,y lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}
