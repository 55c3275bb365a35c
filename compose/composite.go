package compose

import "github.com/twinwm/twin/fixed"

// Source is either a Surface sampled at an offset (and optionally
// transformed) or a solid premultiplied ARGB32 color.
type Source struct {
	// Surface, when non-nil, is sampled at (dst coordinate - Origin),
	// or through Transform's inverse when Transform is not the identity.
	Surface   *Surface
	Origin    fixed.Point
	Transform fixed.Matrix

	// Solid is used when Surface is nil: every destination pixel reads
	// this constant premultiplied ARGB32 color.
	Solid uint32
}

// SolidSource returns a Source that paints a constant color.
func SolidSource(argb uint32) Source {
	return Source{Transform: fixed.Identity(), Solid: argb}
}

// SurfaceSource returns a Source sampling s 1:1, offset so that
// destination point `origin` reads s's pixel (0,0).
func SurfaceSource(s *Surface, origin fixed.Point) Source {
	return Source{Surface: s, Origin: origin, Transform: fixed.Identity()}
}

func (s Source) isIdentity() bool {
	return s.Surface == nil || s.Transform.IsIdentity()
}

func (s Source) sample(dstX, dstY int) uint32 {
	if s.Surface == nil {
		return s.Solid
	}
	sx := dstX - fixed.FixedToInt(s.Origin.X)
	sy := dstY - fixed.FixedToInt(s.Origin.Y)
	return s.Surface.At(sx, sy)
}

// sampleBilinear maps destination point (dstX, dstY) through the
// inverse of s.Transform (after removing Origin) and bilinearly
// interpolates among the four surrounding source pixels, treating
// reads outside the source's bounds as zero (spec §4.4 "Non-identity
// transforms").
func (s Source) sampleBilinear(dstX, dstY int) uint32 {
	if s.Surface == nil {
		return s.Solid
	}
	inv := s.Transform.Invert()
	p := inv.TransformPoint(fixed.Pt(fixed.IntToFixed(dstX)-s.Origin.X, fixed.IntToFixed(dstY)-s.Origin.Y))

	fx := int(p.X)
	fy := int(p.Y)
	x0 := fx >> fixed.FixedShift
	y0 := fy >> fixed.FixedShift
	fracX := uint32(fx&0xFFFF) >> 8 // 0..255
	fracY := uint32(fy&0xFFFF) >> 8

	c00 := s.Surface.At(x0, y0)
	c10 := s.Surface.At(x0+1, y0)
	c01 := s.Surface.At(x0, y0+1)
	c11 := s.Surface.At(x0+1, y0+1)

	top := lerpARGB(c00, c10, fracX)
	bot := lerpARGB(c01, c11, fracX)
	return lerpARGB(top, bot, fracY)
}

func lerpARGB(a, b uint32, t uint32) uint32 {
	aa, ar, ag, ab := argbChannels(a)
	ba, br, bg, bb := argbChannels(b)
	inv := 255 - t
	return packARGB(
		mulDiv255(aa, inv)+mulDiv255(ba, t),
		mulDiv255(ar, inv)+mulDiv255(br, t),
		mulDiv255(ag, inv)+mulDiv255(bg, t),
		mulDiv255(ab, inv)+mulDiv255(bb, t),
	)
}

// Composite blends src (optionally through mask) onto dst within rect,
// clipped to dst's own bounds, using op. It returns the rectangle that
// was actually mutated (spec §8 invariant 4), or an empty rect if there
// was nothing to do (spec §7: empty clip/rect is a no-op, not an error).
func Composite(dst *Surface, op Operator, src Source, mask *Surface, maskOrigin fixed.Point, rect fixed.Rect) fixed.Rect {
	if dst == nil {
		return fixed.Rect{}
	}
	clipped := rect.Intersect(dst.Bounds())
	if clipped.Empty() {
		return fixed.Rect{}
	}

	for y := clipped.Top; y < clipped.Bottom; y++ {
		for x := clipped.Left; x < clipped.Right; x++ {
			var sv uint32
			if src.isIdentity() {
				sv = src.sample(x, y)
			} else {
				sv = src.sampleBilinear(x, y)
			}
			if mask != nil {
				mx := x - fixed.FixedToInt(maskOrigin.X)
				my := y - fixed.FixedToInt(maskOrigin.Y)
				ma := mask.At(mx, my) >> 24
				sv = applyMask(sv, ma)
			}
			dv := dst.At(x, y)
			dst.Set(x, y, Blend(op, dv, sv))
		}
	}
	return clipped
}

// Fill is a degenerate composite using a solid source, matching spec
// §4.4's fill(px, color, operator, rect).
func Fill(dst *Surface, color uint32, op Operator, rect fixed.Rect) fixed.Rect {
	return Composite(dst, op, SolidSource(color), nil, fixed.Point{}, rect)
}
