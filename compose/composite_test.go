package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twinwm/twin/fixed"
)

// S2 — OVER blend: dst = opaque black, src = 50%-alpha white, premultiplied
// (0x80808080, not the straight-alpha 0x80FFFFFF). Expect dst ~= 0xFF_7F7F7F.
func TestCompositeOverBlend(t *testing.T) {
	dst := NewSurface(FormatARGB32, 1, 1)
	dst.Set(0, 0, 0xFF000000)

	clip := Composite(dst, Over, SolidSource(0x80808080), nil, fixed.Point{}, fixed.MakeRect(0, 0, 1, 1))
	assert.Equal(t, fixed.MakeRect(0, 0, 1, 1), clip)

	got := dst.At(0, 0)
	a, r, g, b := argbChannels(got)
	assert.Equal(t, uint32(0xFF), a)
	assert.InDelta(t, 0x7F, int(r), 1)
	assert.InDelta(t, 0x7F, int(g), 1)
	assert.InDelta(t, 0x7F, int(b), 1)
}

// invariant 6 — composite(dst, OVER, src, full-coverage mask) equals
// composite(dst, SOURCE, src) when src has alpha 255.
func TestCompositeOverWithFullMaskEqualsSource(t *testing.T) {
	mask := NewSurface(FormatA8, 1, 1)
	mask.Set(0, 0, 0xFF000000) // full coverage

	dstOver := NewSurface(FormatARGB32, 1, 1)
	dstOver.Set(0, 0, 0xFF102030)
	Composite(dstOver, Over, SolidSource(0xFF203040), mask, fixed.Point{}, fixed.MakeRect(0, 0, 1, 1))

	dstSource := NewSurface(FormatARGB32, 1, 1)
	dstSource.Set(0, 0, 0xFF102030)
	Composite(dstSource, Source, SolidSource(0xFF203040), nil, fixed.Point{}, fixed.MakeRect(0, 0, 1, 1))

	assert.Equal(t, dstSource.At(0, 0), dstOver.At(0, 0))
}

func TestCompositeClipsToSurfaceBounds(t *testing.T) {
	dst := NewSurface(FormatARGB32, 2, 2)
	clip := Composite(dst, Source, SolidSource(0xFFFFFFFF), nil, fixed.Point{}, fixed.MakeRect(-5, -5, 10, 10))
	assert.Equal(t, fixed.MakeRect(0, 0, 2, 2), clip)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, uint32(0xFFFFFFFF), dst.At(x, y))
		}
	}
}

func TestCompositeEmptyRectIsNoop(t *testing.T) {
	dst := NewSurface(FormatARGB32, 4, 4)
	clip := Composite(dst, Source, SolidSource(0xFFFFFFFF), nil, fixed.Point{}, fixed.MakeRect(2, 2, 2, 5))
	assert.True(t, clip.Empty())
	assert.Equal(t, uint32(0), dst.At(2, 2))
}

func TestFillSolidColorOverTransparentDest(t *testing.T) {
	dst := NewSurface(FormatARGB32, 2, 2)
	Fill(dst, 0xFF00FF00, Source, fixed.MakeRect(0, 0, 2, 2))
	assert.Equal(t, uint32(0xFF00FF00), dst.At(0, 0))
	assert.Equal(t, uint32(0xFF00FF00), dst.At(1, 1))
}

func TestCompositeTransformedSourceSamplesIdentityAsDirectCopy(t *testing.T) {
	src := NewSurface(FormatARGB32, 2, 2)
	src.Set(0, 0, 0xFFAABBCC)
	src.Set(1, 0, 0xFF112233)
	src.Set(0, 1, 0xFF445566)
	src.Set(1, 1, 0xFF778899)

	dst := NewSurface(FormatARGB32, 2, 2)
	s := Source{Surface: src, Transform: fixed.Identity()}
	Composite(dst, Source, s, nil, fixed.Point{}, fixed.MakeRect(0, 0, 2, 2))

	assert.Equal(t, src.At(0, 0), dst.At(0, 0))
	assert.Equal(t, src.At(1, 1), dst.At(1, 1))
}
