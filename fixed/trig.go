package fixed

// Angle is a signed 13-bit angle; one full turn is ANGLE360 units.
type Angle int16

// Angle constants, matching spec §3.
const (
	Angle0   Angle = 0
	Angle90  Angle = 1024
	Angle180 Angle = 2048
	Angle270 Angle = 3072
	Angle360 Angle = 4096
)

// quarterSin holds the coefficients of a degree-5 minimax polynomial
// approximating sin(x) on the first octant (0..45 degrees), in Fixed
// units, evaluated via Horner's method.
//
// sin(u*45deg) ~= c1*u + c3*u^3 + c5*u^5, u in [0, 1].
var quarterSin = [3]Fixed{
	Fixed(51472), // c1, ~0.78540 (pi/4)
	Fixed(-5292), // c3
	Fixed(161),   // c5
}

// quarterCos holds the coefficients of a degree-6 polynomial
// approximating cos(x) on the same first octant, evaluated via Horner's
// method.
//
// cos(u*45deg) ~= d0 + d2*u^2 + d4*u^4 + d6*u^6, u in [0, 1].
var quarterCos = [4]Fixed{
	One,           // d0 = 1
	Fixed(-20214), // d2
	Fixed(1039),   // d4
	Fixed(-21),    // d6
}

// normalizeAngle reduces a to [0, Angle360).
func normalizeAngle(a Angle) Angle {
	a %= Angle360
	if a < 0 {
		a += Angle360
	}
	return a
}

// sinQuarterFixed evaluates the quarterSin polynomial at u in [0,1].
func sinQuarterFixed(u Fixed) Fixed {
	u2 := Mul(u, u)
	acc := quarterSin[2]
	acc = quarterSin[1] + Mul(u2, acc)
	acc = quarterSin[0] + Mul(u2, acc)
	return Mul(u, acc)
}

// cosQuarterFixed evaluates the quarterCos polynomial at u in [0,1].
func cosQuarterFixed(u Fixed) Fixed {
	u2 := Mul(u, u)
	acc := quarterCos[3]
	acc = quarterCos[2] + Mul(u2, acc)
	acc = quarterCos[1] + Mul(u2, acc)
	acc = quarterCos[0] + Mul(u2, acc)
	return acc
}

// sinOctantFixed evaluates sin for a reduced into [0, Angle90]. It folds
// a second time at 45 degrees and delegates to whichever of the sin/cos
// quarter-range polynomials above stays accurate over a quarter turn,
// rather than evaluating a single polynomial across the full quadrant
// (spec §4.1, the tight sin^2+cos^2 tolerance of §8 invariant 2).
func sinOctantFixed(a Angle) Fixed {
	const angle45 = Angle90 / 2
	if a <= angle45 {
		u := Div(IntToFixed(int(a)), IntToFixed(int(angle45)))
		return sinQuarterFixed(u)
	}
	u := Div(IntToFixed(int(Angle90-a)), IntToFixed(int(angle45)))
	return cosQuarterFixed(u)
}

// Sin returns sin(a) as a Fixed in [-One, One]. sin(0) == 0 and
// sin(Angle90) == One exactly (spec §4.1, §8 invariant 2).
func Sin(a Angle) Fixed {
	a = normalizeAngle(a)
	neg := false
	if a >= Angle180 {
		a -= Angle180
		neg = true
	}
	if a > Angle90 {
		a = Angle180 - a
	}
	if a == Angle90 {
		if neg {
			return -One
		}
		return One
	}
	v := sinOctantFixed(a)
	if neg {
		return -v
	}
	return v
}

// Cos returns cos(a) as a Fixed, computed as Sin(a + Angle90).
func Cos(a Angle) Fixed {
	return Sin(a + Angle90)
}

// Tan returns tan(a); when cos(a) == 0 it returns FixedMax (for a
// positive-leaning branch) or FixedMin per spec §4.1.
func Tan(a Angle) Fixed {
	c := Cos(a)
	if c == 0 {
		if Sin(a) < 0 {
			return FixedMin
		}
		return FixedMax
	}
	return Div(Sin(a), c)
}

// Atan2 returns the angle of the vector (x, y) using a 15-iteration CORDIC
// rotation on |y|, |x| followed by quadrant fix-up, matching spec §4.1.
func Atan2(y, x Fixed) Angle {
	if x == 0 && y == 0 {
		return 0
	}

	ax, ay := x.Abs(), y.Abs()
	// CORDIC vectoring mode: rotate (ax, ay) toward the x-axis,
	// accumulating the angle, so ay -> 0.
	var angle Fixed
	cx, cy := ax, ay
	for i := 0; i < len(cordicAngles); i++ {
		step := Fixed(cordicAngles[i])
		if cy > 0 {
			nx := cx + (cy >> uint(i))
			ny := cy - (cx >> uint(i))
			cx, cy = nx, ny
			angle += step
		} else if cy < 0 {
			nx := cx - (cy >> uint(i))
			ny := cy + (cx >> uint(i))
			cx, cy = nx, ny
			angle -= step
		}
	}
	// angle accumulated as a fraction of a right angle; scale to Angle units.
	a := Angle(FixedRound(Mul(angle, IntToFixed(int(Angle90)))))

	switch {
	case x >= 0 && y >= 0:
		return normalizeAngle(a)
	case x < 0 && y >= 0:
		return normalizeAngle(Angle180 - a)
	case x < 0 && y < 0:
		return normalizeAngle(Angle180 + a)
	default:
		return normalizeAngle(Angle360 - a)
	}
}

// cordicAngles holds atan(2^-i) in Fixed "fraction of a right angle" units
// for the first 15 CORDIC iterations.
var cordicAngles = [15]Fixed{
	fracOfRightAngle(45.0), fracOfRightAngle(26.565051177078),
	fracOfRightAngle(14.036243467926), fracOfRightAngle(7.125016348902),
	fracOfRightAngle(3.576334374999), fracOfRightAngle(1.789910608541),
	fracOfRightAngle(0.895173710211), fracOfRightAngle(0.447614170860),
	fracOfRightAngle(0.223810500368), fracOfRightAngle(0.111905677273),
	fracOfRightAngle(0.055952891566), fracOfRightAngle(0.027976452617),
	fracOfRightAngle(0.013988227142), fracOfRightAngle(0.006994113675),
	fracOfRightAngle(0.003497056850),
}

// fracOfRightAngle converts a constant angle in degrees, known at compile
// time, to a Fixed fraction of 90 degrees (so Mul(result, Angle90-as-Fixed)
// yields the angle back in Angle units). Only used to build the constant
// cordicAngles table above.
func fracOfRightAngle(degrees float64) Fixed {
	return Fixed((degrees / 90.0) * float64(One))
}
