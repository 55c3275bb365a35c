package font

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
)

// Metrics holds the pixel-space measurements used to lay out and paint
// a single glyph at a given size and transform.
type Metrics struct {
	Advance fixed.Fixed
	PenWidth fixed.Fixed
}

// Measure computes g's device-space metrics at emSize pixels per em,
// widening the pen for bold styles (spec §4.7: "bold style widens the
// pen by half").
func Measure(f *Font, g *Glyph, emSize fixed.Fixed, style geom.FontStyle) Metrics {
	adv := gToFixed(g.Advance(), emSize)
	pen := gToFixed(f.PenWidth, emSize)
	if style == geom.StyleBold || style == geom.StyleBoldOblique {
		pen += pen / 2
	}
	return Metrics{Advance: adv, PenWidth: pen}
}

// Hint snaps glyph-local coordinate v (already scaled to device space
// by gToFixed) to the nearest pixel edge, used only when the current
// transform is axis-aligned (spec §4.7's auto-hinting rule). snaps is
// the glyph's HSnap or VSnap array in ascending glyph-unit order; v is
// pulled toward whichever snap value it is closest to, then rounded.
func Hint(v fixed.Fixed, snaps []fixed.GFixed, emSize fixed.Fixed) fixed.Fixed {
	if len(snaps) == 0 {
		return fixed.IntToFixed(fixed.FixedRound(v))
	}
	best := gToFixed(snaps[0], emSize)
	bestDist := absFixed(v - best)
	for _, s := range snaps[1:] {
		sv := gToFixed(s, emSize)
		if d := absFixed(v - sv); d < bestDist {
			best, bestDist = sv, d
		}
	}
	return fixed.IntToFixed(fixed.FixedRound(best))
}

func absFixed(v fixed.Fixed) fixed.Fixed {
	if v < 0 {
		return -v
	}
	return v
}

// AxisAlignedHinting reports whether hinting applies under the device
// matrix m, i.e. whether m is axis-aligned (spec §4.7). It only checks
// m; it does not snap or modify any path. Twin hints at the coordinate
// level (see Hint) rather than post-processing the flattened path.
func AxisAlignedHinting(m fixed.Matrix) bool {
	return m.IsAxisAligned()
}
