package geom

import "github.com/twinwm/twin/fixed"

// curveTolerance is the squared perpendicular-distance tolerance (in
// screen-fixed grid units squared) below which a flattened curve segment
// is considered straight enough, matching spec §4.2.1's
// SFIXED_TOLERANCE^2 = (ONE/4)^2 = 16.
const curveTolerance int64 = 16

// maxCurveDepth bounds the de Casteljau recursion so a degenerate curve
// cannot recurse forever.
const maxCurveDepth = 24

// segmentDistSq returns the larger of the squared perpendicular distances
// from b and c to the line through a and d.
func segmentDistSq(a, b, c, d fixed.SPoint) int64 {
	return max64(pointLineDistSq(a, d, b), pointLineDistSq(a, d, c))
}

func pointLineDistSq(a, d, p fixed.SPoint) int64 {
	adx := int64(d.X) - int64(a.X)
	ady := int64(d.Y) - int64(a.Y)
	apx := int64(p.X) - int64(a.X)
	apy := int64(p.Y) - int64(a.Y)
	cross := adx*apy - ady*apx
	lenSq := adx*adx + ady*ady
	if lenSq == 0 {
		return apx*apx + apy*apy
	}
	return (cross * cross) / lenSq
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func midS(a, b fixed.SFixed) fixed.SFixed { return fixed.SFixed((int32(a) + int32(b)) / 2) }

func midPoint(a, b fixed.SPoint) fixed.SPoint {
	return fixed.SPoint{X: midS(a.X, b.X), Y: midS(a.Y, b.Y)}
}

// Curve appends a cubic Bezier from the current point through control
// points c1, c2 to p, flattened by recursive de Casteljau subdivision.
func (path *Path) Curve(c1, c2, p fixed.Point) {
	a := path.state.Matrix.TransformPoint(path.curPoint).ToSPoint()
	b1 := path.state.Matrix.TransformPoint(c1).ToSPoint()
	b2 := path.state.Matrix.TransformPoint(c2).ToSPoint()
	d := path.state.Matrix.TransformPoint(p).ToSPoint()
	path.flattenCubic(a, b1, b2, d, 0)
	path.curPoint = p
}

// flattenCubic recursively subdivides the cubic (a,b1,b2,d) until the
// maximum perpendicular deviation of the control points from the chord
// a-d is within tolerance, emitting the endpoint of each flat segment.
func (path *Path) flattenCubic(a, b1, b2, d fixed.SPoint, depth int) {
	if depth >= maxCurveDepth || segmentDistSq(a, b1, b2, d) <= curveTolerance {
		path.pushTransformed(d)
		return
	}
	// de Casteljau split at t=1/2.
	ab1 := midPoint(a, b1)
	b1b2 := midPoint(b1, b2)
	b2d := midPoint(b2, d)
	abb := midPoint(ab1, b1b2)
	bbd := midPoint(b1b2, b2d)
	mid := midPoint(abb, bbd)

	path.flattenCubic(a, ab1, abb, mid, depth+1)
	path.flattenCubic(mid, bbd, b2d, d, depth+1)
}

// QuadraticCurve appends a quadratic Bezier from the current point
// through control point c to p, by elevating it to the equivalent cubic
// (a common, numerically exact reduction) and flattening that.
func (path *Path) QuadraticCurve(c, p fixed.Point) {
	cur := path.curPoint
	// c1 = cur + 2/3*(c-cur), c2 = p + 2/3*(c-p)
	twoThirds := fixed.Div(fixed.IntToFixed(2), fixed.IntToFixed(3))
	qc1 := fixed.Pt(cur.X+fixed.Mul(twoThirds, c.X-cur.X), cur.Y+fixed.Mul(twoThirds, c.Y-cur.Y))
	qc2 := fixed.Pt(p.X+fixed.Mul(twoThirds, c.X-p.X), p.Y+fixed.Mul(twoThirds, c.Y-p.Y))
	path.Curve(qc1, qc2, p)
}
