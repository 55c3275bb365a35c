// Package font implements Twin's stroke/outline glyph table: per-page
// character maps, a UTF-8 decoder accepting the legacy 1-6 byte forms,
// the glyph instruction interpreter, metrics with pen-width/snap-grid
// hinting, and a cbor-encoded wire bundle, per spec §4.7.
package font

import "github.com/twinwm/twin/fixed"

// pageSize is the number of codepoints a single Page covers (spec §3).
const pageSize = 128

// Page maps pageSize consecutive codepoints, starting at Base, to
// glyphs.
type Page struct {
	Base   rune
	Glyphs []Glyph
}

// Font is a complete glyph table: an ordered set of pages (each Glyph
// carries its own Instructions slice), a pen width for stroke-style
// fonts, and the line metrics used to lay out text.
type Font struct {
	Height fixed.GFixed
	Ascent fixed.GFixed

	// PenWidth is non-zero for stroke (as opposed to filled-outline)
	// fonts: glyph paths are stroked with this width instead of filled.
	PenWidth fixed.GFixed

	Pages []Page

	// cachePage implements the "one-entry cache" spec §4.7 calls for:
	// the page found by the most recent lookup.
	cachePage *Page
}

// New creates an empty font; callers populate Pages (typically via
// DecodeBundle) before looking up glyphs.
func New(height, ascent, penWidth fixed.GFixed) *Font {
	return &Font{Height: height, Ascent: ascent, PenWidth: penWidth}
}

// Glyph returns the glyph for r, scanning pages linearly (checking the
// one-entry cache first) and falling back to page 0 glyph 0 if r has
// no page (spec §4.7).
func (f *Font) Glyph(r rune) *Glyph {
	if p := f.cachePage; p != nil && r >= p.Base && int(r-p.Base) < len(p.Glyphs) {
		return &p.Glyphs[r-p.Base]
	}
	for i := range f.Pages {
		p := &f.Pages[i]
		if r >= p.Base && int(r-p.Base) < len(p.Glyphs) {
			f.cachePage = p
			return &p.Glyphs[r-p.Base]
		}
	}
	if len(f.Pages) > 0 && len(f.Pages[0].Glyphs) > 0 {
		return &f.Pages[0].Glyphs[0]
	}
	return nil
}

// Advance returns the horizontal distance this glyph advances the pen,
// in GFixed glyph units.
func (g *Glyph) Advance() fixed.GFixed {
	return g.Right - g.Left
}
