package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityIsIdentity(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.False(t, Translate(One, 0).IsIdentity())
}

func TestTranslateTransformsPoint(t *testing.T) {
	m := Translate(IntToFixed(3), IntToFixed(4))
	p := m.TransformPoint(Pt(IntToFixed(1), IntToFixed(1)))
	assert.Equal(t, IntToFixed(4), p.X)
	assert.Equal(t, IntToFixed(5), p.Y)
}

func TestMultiplyComposesTransforms(t *testing.T) {
	t1 := Translate(IntToFixed(1), 0)
	t2 := Translate(0, IntToFixed(1))
	composed := Multiply(t1, t2)
	p := composed.TransformPoint(Pt(0, 0))
	assert.Equal(t, IntToFixed(1), p.X)
	assert.Equal(t, IntToFixed(1), p.Y)
}

func TestInvertUndoesTransform(t *testing.T) {
	m := Multiply(Translate(IntToFixed(5), IntToFixed(-2)), Scale(IntToFixed(2), IntToFixed(3)))
	inv := m.Invert()
	p := Pt(IntToFixed(7), IntToFixed(11))
	roundTrip := inv.TransformPoint(m.TransformPoint(p))
	assert.LessOrEqual(t, int((roundTrip.X - p.X).Abs()), 2)
	assert.LessOrEqual(t, int((roundTrip.Y - p.Y).Abs()), 2)
}

func TestIsAxisAligned(t *testing.T) {
	assert.True(t, Identity().IsAxisAligned())
	assert.True(t, Scale(IntToFixed(2), IntToFixed(2)).IsAxisAligned())
	assert.False(t, Rotate(Angle(512)).IsAxisAligned())
}
