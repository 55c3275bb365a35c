package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
)

func sampleFont() *Font {
	f := New(16, 12, 0)
	f.Pages = []Page{
		{Base: 0, Glyphs: make([]Glyph, pageSize)},
		{Base: 128, Glyphs: make([]Glyph, pageSize)},
	}
	f.Pages[0].Glyphs['A'] = Glyph{Left: 0, Right: 8}
	return f
}

func TestGlyphLinearScanFindsPage(t *testing.T) {
	f := sampleFont()
	g := f.Glyph('A')
	assert.Equal(t, fixed.GFixed(8), g.Right)
}

func TestGlyphCachePageHitsOnRepeatedLookup(t *testing.T) {
	f := sampleFont()
	f.Glyph('A')
	assert.Same(t, &f.Pages[0], f.cachePage)
	g := f.Glyph('B')
	assert.Same(t, &f.Pages[0], f.cachePage)
	assert.NotNil(t, g)
}

func TestGlyphMissingPageFallsBackToPageZeroGlyphZero(t *testing.T) {
	f := sampleFont()
	g := f.Glyph(0x10000)
	assert.Same(t, &f.Pages[0].Glyphs[0], g)
}

func TestBuildInterpretsMoveLineEnd(t *testing.T) {
	g := &Glyph{
		Left: 0, Right: fixed.GFixed(1 << fixed.GFixedShift),
		Instructions: []int8{
			int8(OpMove), 0, 0,
			int8(OpLine), 4, 0,
			int8(OpLine), 4, 4,
			int8(OpEnd),
		},
	}
	p := geom.NewPath()
	p.SetMatrix(fixed.Identity())
	Build(p, g, fixed.IntToFixed(16), geom.StyleRoman)
	subs := p.Subpaths()
	assert.Len(t, subs, 1)
	assert.GreaterOrEqual(t, len(subs[0]), 3)
}

func TestBuildQuadAndCurveProduceMultiplePoints(t *testing.T) {
	g := &Glyph{
		Instructions: []int8{
			int8(OpMove), 0, 0,
			int8(OpQuad), 2, 4, 4, 0,
			int8(OpCurve), 1, 1, 2, 2, 4, 4,
			int8(OpEnd),
		},
	}
	p := geom.NewPath()
	p.SetMatrix(fixed.Identity())
	Build(p, g, fixed.IntToFixed(16), geom.StyleRoman)
	subs := p.Subpaths()
	assert.Len(t, subs, 1)
	assert.GreaterOrEqual(t, len(subs[0]), 2)
}

func TestMeasureBoldWidensPen(t *testing.T) {
	f := New(16, 12, fixed.GFixed(1<<fixed.GFixedShift))
	g := &Glyph{Right: fixed.GFixed(1 << fixed.GFixedShift)}
	roman := Measure(f, g, fixed.IntToFixed(16), geom.StyleRoman)
	bold := Measure(f, g, fixed.IntToFixed(16), geom.StyleBold)
	assert.Greater(t, int(bold.PenWidth), int(roman.PenWidth))
}

func TestBundleRoundTrips(t *testing.T) {
	f := sampleFont()
	f.Pages[0].Glyphs['A'].Instructions = []int8{int8(OpMove), 0, 0, int8(OpEnd)}
	f.Pages[0].Glyphs['A'].HSnap = []fixed.GFixed{0, 4, 8}

	data, err := EncodeBundle(f)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	got, err := DecodeBundle(data)
	assert.NoError(t, err)
	assert.Equal(t, f.Height, got.Height)
	assert.Equal(t, f.Pages[0].Glyphs['A'].Right, got.Glyph('A').Right)
	assert.Equal(t, []fixed.GFixed{0, 4, 8}, got.Glyph('A').HSnap)
}
