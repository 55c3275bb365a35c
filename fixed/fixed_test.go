package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulDiv(t *testing.T) {
	half := One / 2
	assert.Equal(t, One, Mul(IntToFixed(2), half))
	assert.Equal(t, half, Div(One, IntToFixed(2)))
}

func TestDivByZero(t *testing.T) {
	assert.Equal(t, FixedMax, Div(One, 0))
	assert.Equal(t, FixedMin, Div(-One, 0))
}

func TestSqrtOfSquare(t *testing.T) {
	// 181 is the largest integer whose square still fits in Q15.16.
	for _, v := range []int{0, 1, 2, 3, 7, 100, 150, 181} {
		a := IntToFixed(v)
		got := Sqrt(Mul(a, a))
		diff := (got - a).Abs()
		assert.LessOrEqualf(t, int(diff), 1, "sqrt(%d^2) = %d, want ~%d", v, got, a)
	}
}

func TestSqrtNonPositive(t *testing.T) {
	assert.Equal(t, Fixed(0), Sqrt(0))
	assert.Equal(t, Fixed(0), Sqrt(-One))
}

func TestSqrtOfOne(t *testing.T) {
	got := Sqrt(One)
	assert.LessOrEqual(t, int((got - One).Abs()), 1)
}

func TestFixedRoundTrip(t *testing.T) {
	f := IntToFixed(42)
	assert.Equal(t, 42, FixedToInt(f))
	assert.Equal(t, 42, FixedRound(f))
}

func TestSFixedConversion(t *testing.T) {
	f := IntToFixed(3)
	s := f.ToSFixed()
	assert.Equal(t, IntToSFixed(3), s)
	assert.Equal(t, f, s.ToFixed())
}

func TestMulSNoOverflow(t *testing.T) {
	a := IntToSFixed(100)
	b := IntToSFixed(100)
	got := MulS(a, b)
	// 100 in Q11.4 is 1600; 1600*1600 = 2560000, representable in DFixed (Q23.8, 32-bit).
	assert.Equal(t, DFixed(1600*1600), got)
}
