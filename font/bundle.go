package font

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/twinwm/twin/fixed"
)

// wireGlyph and wireFont mirror Glyph/Font/Page in a form that encodes
// cleanly to cbor (exported fields only, snap arrays as plain slices).
type wireGlyph struct {
	Left, Right     int8
	Ascent, Descent int8
	HSnap, VSnap    []int8
	Instructions    []int8
}

type wirePage struct {
	Base   int32
	Glyphs []wireGlyph
}

type wireFont struct {
	Height, Ascent, PenWidth int8
	Pages                    []wirePage
}

// EncodeBundle serializes f to Twin's cbor glyph-bundle wire format.
func EncodeBundle(f *Font) ([]byte, error) {
	w := wireFont{
		Height:   int8(f.Height),
		Ascent:   int8(f.Ascent),
		PenWidth: int8(f.PenWidth),
	}
	for _, p := range f.Pages {
		wp := wirePage{Base: int32(p.Base)}
		for _, g := range p.Glyphs {
			wp.Glyphs = append(wp.Glyphs, toWireGlyph(g))
		}
		w.Pages = append(w.Pages, wp)
	}
	return cbor.Marshal(w)
}

// DecodeBundle parses a cbor glyph bundle produced by EncodeBundle.
func DecodeBundle(data []byte) (*Font, error) {
	var w wireFont
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("font: decode bundle: %w", err)
	}
	f := New(gfixed(w.Height), gfixed(w.Ascent), gfixed(w.PenWidth))
	for _, wp := range w.Pages {
		p := Page{Base: rune(wp.Base)}
		for _, wg := range wp.Glyphs {
			p.Glyphs = append(p.Glyphs, fromWireGlyph(wg))
		}
		f.Pages = append(f.Pages, p)
	}
	return f, nil
}

func gfixed(v int8) fixed.GFixed { return fixed.GFixed(v) }

func toWireGlyph(g Glyph) wireGlyph {
	w := wireGlyph{
		Left:         int8(g.Left),
		Right:        int8(g.Right),
		Ascent:       int8(g.Ascent),
		Descent:      int8(g.Descent),
		Instructions: append([]int8(nil), g.Instructions...),
	}
	for _, s := range g.HSnap {
		w.HSnap = append(w.HSnap, int8(s))
	}
	for _, s := range g.VSnap {
		w.VSnap = append(w.VSnap, int8(s))
	}
	return w
}

func fromWireGlyph(w wireGlyph) Glyph {
	g := Glyph{
		Left:         gfixed(w.Left),
		Right:        gfixed(w.Right),
		Ascent:       gfixed(w.Ascent),
		Descent:      gfixed(w.Descent),
		Instructions: append([]int8(nil), w.Instructions...),
	}
	for _, s := range w.HSnap {
		g.HSnap = append(g.HSnap, gfixed(s))
	}
	for _, s := range w.VSnap {
		g.VSnap = append(g.VSnap, gfixed(s))
	}
	return g
}
