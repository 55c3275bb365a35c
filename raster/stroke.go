package raster

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
)

// penSides is the number of sides used to approximate the stroke pen
// (a circle) as a convex polygon before the convolution walk.
const penSides = 16

// pen returns a convex polygon approximating a disk of the given radius,
// centered on the origin, used as the convolution kernel for stroking.
func pen(radius fixed.Fixed) []fixed.SPoint {
	pts := make([]fixed.SPoint, 0, penSides)
	for i := 0; i < penSides; i++ {
		a := fixed.Angle(i * int(fixed.Angle360) / penSides)
		pts = append(pts, fixed.SPoint{
			X: fixed.Mul(radius, fixed.Cos(a)).ToSFixed(),
			Y: fixed.Mul(radius, fixed.Sin(a)).ToSFixed(),
		})
	}
	return geom.ConvexHull(pts)
}

// Stroke returns the outline subpaths of sub offset by half of width on
// each side (the Minkowski sum of the path with a disk of radius
// width/2), using the convolution approach of spec §4.3: walk the stroke
// path and the pen's convex hull together, advancing whichever boundary
// leads, and close caps per cap.
func Stroke(sub []fixed.SPoint, width fixed.Fixed, capStyle geom.CapStyle, closed bool) []fixed.SPoint {
	if len(sub) < 2 {
		return nil
	}
	radius := width / 2
	hull := pen(radius)
	if len(hull) == 0 {
		return nil
	}

	if closed {
		return strokeClosed(sub, hull)
	}
	return strokeOpen(sub, hull, capStyle, radius)
}

// strokeClosed produces the outer offset ring of a closed polygon: the
// path is walked once, offsetting each vertex by the pen point whose
// outward normal best matches the local turn direction.
func strokeClosed(sub []fixed.SPoint, hull []fixed.SPoint) []fixed.SPoint {
	out := make([]fixed.SPoint, 0, len(sub))
	n := len(sub)
	for i := 0; i < n; i++ {
		prev := sub[(i-1+n)%n]
		cur := sub[i]
		next := sub[(i+1)%n]
		offset := leadingPenPoint(hull, prev, cur, next)
		out = append(out, fixed.SPoint{X: cur.X + offset.X, Y: cur.Y + offset.Y})
	}
	return out
}

// strokeOpen walks the stroke path outward along one side, caps the far
// end, walks back along the other side, and caps the near end, producing
// a single closed polygon suitable for filling.
func strokeOpen(sub []fixed.SPoint, hull []fixed.SPoint, capStyle geom.CapStyle, radius fixed.Fixed) []fixed.SPoint {
	n := len(sub)
	var out []fixed.SPoint

	for i := 0; i < n; i++ {
		cur := sub[i]
		var prev, next fixed.SPoint
		switch {
		case i == 0:
			prev, next = cur, sub[i+1]
		case i == n-1:
			prev, next = sub[i-1], cur
		default:
			prev, next = sub[i-1], sub[i+1]
		}
		offset := leadingPenPoint(hull, prev, cur, next)
		out = append(out, fixed.SPoint{X: cur.X + offset.X, Y: cur.Y + offset.Y})
	}

	out = append(out, capPoints(sub[n-1], sub[n-2], hull, capStyle, true, radius)...)

	for i := n - 1; i >= 0; i-- {
		cur := sub[i]
		var prev, next fixed.SPoint
		switch {
		case i == n-1:
			prev, next = cur, sub[i-1]
		case i == 0:
			prev, next = sub[i+1], cur
		default:
			prev, next = sub[i+1], sub[i-1]
		}
		offset := leadingPenPoint(hull, prev, cur, next)
		// prev/next are reversed here, so the offset already lies on the
		// other side of the path.
		out = append(out, fixed.SPoint{X: cur.X + offset.X, Y: cur.Y + offset.Y})
	}

	out = append(out, capPoints(sub[0], sub[1], hull, capStyle, false, radius)...)
	return out
}

// leadingPenPoint returns the hull point whose direction best matches
// the outward bisector of the turn at cur (between the segments
// prev->cur and cur->next), approximating the convolution walker's
// "advance the pen while the cross product sign indicates the pen
// boundary leads" rule with a direct angular search.
func leadingPenPoint(hull []fixed.SPoint, prev, cur, next fixed.SPoint) fixed.SPoint {
	in := normal(prev, cur)
	out := normal(cur, next)
	bx := in.X + out.X
	by := in.Y + out.Y
	if bx == 0 && by == 0 {
		bx, by = in.X, in.Y
	}
	return bestHullPoint(hull, fixed.SPoint{X: bx, Y: by})
}

// bestHullPoint returns the hull point with the largest dot product
// against dir, i.e. the pen boundary point that leads when the pen
// travels in direction dir.
func bestHullPoint(hull []fixed.SPoint, dir fixed.SPoint) fixed.SPoint {
	best := hull[0]
	bestDot := dotS(best, dir)
	for _, h := range hull[1:] {
		d := dotS(h, dir)
		if d > bestDot {
			bestDot = d
			best = h
		}
	}
	return best
}

// normal returns the outward-pointing (left-hand) normal of segment a->b.
func normal(a, b fixed.SPoint) fixed.SPoint {
	dx := int32(b.X) - int32(a.X)
	dy := int32(b.Y) - int32(a.Y)
	return fixed.SPoint{X: fixed.SFixed(dy), Y: fixed.SFixed(-dx)}
}

func dotS(a, b fixed.SPoint) int64 {
	return int64(a.X)*int64(b.X) + int64(a.Y)*int64(b.Y)
}

// capPoints returns the pen offsets closing a subpath end at p, per the
// requested cap style. from is the path vertex the stroke arrives from,
// giving the cap its tangent direction; leading selects which side of
// the stroke the cap connects (the far end when walking outward, the
// near end on return); radius is the pen's half-width.
func capPoints(p, from fixed.SPoint, hull []fixed.SPoint, style geom.CapStyle, leading bool, radius fixed.Fixed) []fixed.SPoint {
	switch style {
	case geom.CapRound:
		out := make([]fixed.SPoint, len(hull))
		for i := range hull {
			idx := i
			if !leading {
				idx = len(hull) - 1 - i
			}
			hp := hull[idx]
			out[i] = fixed.SPoint{X: p.X + hp.X, Y: p.Y + hp.Y}
		}
		return out
	case geom.CapProjecting:
		// Extend half a pen width past the endpoint along the segment's
		// tangent, then overwrite the flat butt edge (the straight line
		// the two side offsets would otherwise draw between each other)
		// with a rectangle out to the two projected corners.
		perp := normal(from, p)
		side := bestHullPoint(hull, perp)
		negSide := fixed.SPoint{X: -side.X, Y: -side.Y}

		dx := fixed.SFixed(int32(p.X) - int32(from.X))
		dy := fixed.SFixed(int32(p.Y) - int32(from.Y))
		angle := fixed.Atan2(dy.ToFixed(), dx.ToFixed())
		ext := fixed.SPoint{
			X: fixed.Mul(radius, fixed.Cos(angle)).ToSFixed(),
			Y: fixed.Mul(radius, fixed.Sin(angle)).ToSFixed(),
		}

		a := fixed.SPoint{X: p.X + side.X + ext.X, Y: p.Y + side.Y + ext.Y}
		b := fixed.SPoint{X: p.X + negSide.X + ext.X, Y: p.Y + negSide.Y + ext.Y}
		if leading {
			return []fixed.SPoint{a, b}
		}
		return []fixed.SPoint{b, a}
	default: // CapButt
		return nil
	}
}
