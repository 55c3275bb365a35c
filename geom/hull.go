package geom

import (
	"sort"

	"github.com/twinwm/twin/fixed"
)

// ConvexHull returns the convex hull of pts as a counter-clockwise
// polygon, computed with a Graham scan pivoting on the bottom-most,
// then left-most, point. Collinear points are discarded in favor of the
// farthest one (spec §4.2.1). Fewer than 3 distinct points yields pts
// unchanged.
func ConvexHull(pts []fixed.SPoint) []fixed.SPoint {
	if len(pts) < 3 {
		out := make([]fixed.SPoint, len(pts))
		copy(out, pts)
		return out
	}

	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y > pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	rest := make([]fixed.SPoint, 0, len(pts)-1)
	for _, p := range pts {
		if p != pivot {
			rest = append(rest, p)
		}
	}

	sort.Slice(rest, func(i, j int) bool {
		oi := orientation(pivot, rest[i], rest[j])
		if oi == 0 {
			// Collinear with pivot: keep the farther point first so the
			// scan below discards the nearer duplicate.
			return distSq(pivot, rest[i]) > distSq(pivot, rest[j])
		}
		return oi > 0 // counter-clockwise from pivot first
	})

	// Drop all but the farthest point among runs collinear with pivot.
	dedup := rest[:0:0]
	for i := 0; i < len(rest); i++ {
		if i > 0 && orientation(pivot, rest[i-1], rest[i]) == 0 {
			continue
		}
		dedup = append(dedup, rest[i])
	}

	hull := []fixed.SPoint{pivot}
	for _, p := range dedup {
		for len(hull) >= 2 && orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

// orientation returns >0 if a->b->c turns counter-clockwise, <0 if
// clockwise, 0 if collinear.
func orientation(a, b, c fixed.SPoint) int64 {
	return (int64(b.X)-int64(a.X))*(int64(c.Y)-int64(a.Y)) -
		(int64(b.Y)-int64(a.Y))*(int64(c.X)-int64(a.X))
}

func distSq(a, b fixed.SPoint) int64 {
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	return dx*dx + dy*dy
}
