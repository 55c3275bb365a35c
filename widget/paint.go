package widget

import (
	"github.com/twinwm/twin/compose"
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
	"github.com/twinwm/twin/pixmap"
	"github.com/twinwm/twin/raster"
)

// fillPath rasterizes p's subpaths into an anti-aliased coverage mask
// sized to p's own bounds.
func fillPath(p *geom.Path) *raster.Mask {
	b := p.Bounds()
	if b.Empty() {
		return raster.NewMask(fixed.Rect{})
	}
	return raster.Fill(p.Subpaths(), b)
}

// fillMasked composites color over dst through mask, OVER, honoring
// dst's current clip.
func fillMasked(dst *pixmap.Pixmap, mask *raster.Mask, color uint32) {
	if dst == nil || dst.Surface == nil {
		return
	}
	maskSurface := &compose.Surface{
		Format: compose.FormatA8,
		Width:  mask.Bounds.Dx(),
		Height: mask.Bounds.Dy(),
		Stride: mask.Stride,
		Pix:    mask.Pix,
	}
	origin := fixed.Pt(fixed.IntToFixed(mask.Bounds.Left), fixed.IntToFixed(mask.Bounds.Top))
	rect := mask.Bounds.Intersect(dst.GetClip())
	compose.Composite(dst.Surface, compose.Over, compose.SolidSource(color), maskSurface, origin, rect)
}
