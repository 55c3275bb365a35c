package fixed

// Matrix is a 3x2 affine transform in Fixed coordinates:
//
//	[ m[0][0] m[0][1] ]   x' = x*m00 + y*m10 + m20
//	[ m[1][0] m[1][1] ]   y' = x*m01 + y*m11 + m21
//	[ m[2][0] m[2][1] ]
//
// The last row holds the translation, matching spec §3.
type Matrix [3][2]Fixed

// Identity is the identity transform.
func Identity() Matrix {
	return Matrix{
		{One, 0},
		{0, One},
		{0, 0},
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsAxisAligned reports whether m maps the x and y axes onto the axes:
// either it only scales and translates (m01 == m10 == 0), or it swaps
// the axes, as a quarter-turn rotation does (m00 == m11 == 0). This is
// the condition under which spec §4.7 auto-hinting applies.
func (m Matrix) IsAxisAligned() bool {
	return (m[0][1] == 0 && m[1][0] == 0) || (m[0][0] == 0 && m[1][1] == 0)
}

// Multiply returns a composed with b, applying a first then b (a*b in
// row-vector convention: point * a * b).
func Multiply(a, b Matrix) Matrix {
	var r Matrix
	r[0][0] = Mul(a[0][0], b[0][0]) + Mul(a[0][1], b[1][0])
	r[0][1] = Mul(a[0][0], b[0][1]) + Mul(a[0][1], b[1][1])
	r[1][0] = Mul(a[1][0], b[0][0]) + Mul(a[1][1], b[1][0])
	r[1][1] = Mul(a[1][0], b[0][1]) + Mul(a[1][1], b[1][1])
	r[2][0] = Mul(a[2][0], b[0][0]) + Mul(a[2][1], b[1][0]) + b[2][0]
	r[2][1] = Mul(a[2][0], b[0][1]) + Mul(a[2][1], b[1][1]) + b[2][1]
	return r
}

// Translate returns a translation matrix by (dx, dy).
func Translate(dx, dy Fixed) Matrix {
	m := Identity()
	m[2][0] = dx
	m[2][1] = dy
	return m
}

// Scale returns a scaling matrix by (sx, sy).
func Scale(sx, sy Fixed) Matrix {
	return Matrix{
		{sx, 0},
		{0, sy},
		{0, 0},
	}
}

// Rotate returns a rotation matrix by the given angle.
func Rotate(a Angle) Matrix {
	c, s := Cos(a), Sin(a)
	return Matrix{
		{c, s},
		{-s, c},
		{0, 0},
	}
}

// Shear returns a shearing matrix with the given x and y shear factors.
func Shear(sx, sy Fixed) Matrix {
	return Matrix{
		{One, sy},
		{sx, One},
		{0, 0},
	}
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: Mul(p.X, m[0][0]) + Mul(p.Y, m[1][0]) + m[2][0],
		Y: Mul(p.X, m[0][1]) + Mul(p.Y, m[1][1]) + m[2][1],
	}
}

// Invert returns the inverse of m. If m is singular, Invert returns the
// identity matrix (no-op on invalid input, per spec §7).
func (m Matrix) Invert() Matrix {
	det := Mul(m[0][0], m[1][1]) - Mul(m[0][1], m[1][0])
	if det == 0 {
		return Identity()
	}
	invDet := Div(One, det)
	var r Matrix
	r[0][0] = Mul(m[1][1], invDet)
	r[0][1] = Mul(-m[0][1], invDet)
	r[1][0] = Mul(-m[1][0], invDet)
	r[1][1] = Mul(m[0][0], invDet)
	r[2][0] = -(Mul(m[2][0], r[0][0]) + Mul(m[2][1], r[1][0]))
	r[2][1] = -(Mul(m[2][0], r[0][1]) + Mul(m[2][1], r[1][1]))
	return r
}
