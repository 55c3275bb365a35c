package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
)

func rect(x0, y0, x1, y1 int) [][]fixed.SPoint {
	p := geom.NewPath()
	p.Rectangle(fixed.IntToFixed(x0), fixed.IntToFixed(y0), fixed.IntToFixed(x1), fixed.IntToFixed(y1))
	return p.Subpaths()
}

// S1 — Solid fill: a 2x2 block at (1,1)..(3,3) should be fully covered,
// and pixels outside it uncovered.
func TestFillSolidBlock(t *testing.T) {
	subs := rect(1, 1, 3, 3)
	mask := Fill(subs, fixed.MakeRect(0, 0, 4, 4))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			cov := mask.At(x, y)
			if inside {
				assert.Equal(t, uint8(255), cov, "pixel (%d,%d) should be fully covered", x, y)
			} else {
				assert.Equal(t, uint8(0), cov, "pixel (%d,%d) should be uncovered", x, y)
			}
		}
	}
}

// S3 — Triangle anti-aliasing: move(0,0), draw(4,0), draw(4,4), close.
// The diagonal pixels are half covered; above the diagonal is full,
// below is empty.
func TestFillTriangleDiagonalIsHalfCovered(t *testing.T) {
	p := geom.NewPath()
	p.Move(0, 0)
	p.Draw(fixed.IntToFixed(4), 0)
	p.Draw(fixed.IntToFixed(4), fixed.IntToFixed(4))
	p.Close()

	mask := Fill(p.Subpaths(), fixed.MakeRect(0, 0, 5, 5))
	for k := 0; k < 4; k++ {
		cov := mask.At(k, k)
		assert.InDeltaf(t, 0x7F, int(cov), 0x20, "diagonal pixel (%d,%d) coverage = %#x", k, k, cov)
	}
	// Strictly above the diagonal (smaller y at a given x, inside the
	// triangle) is fully covered.
	assert.Equal(t, uint8(255), mask.At(3, 0))
	// Strictly below the diagonal is empty.
	assert.Equal(t, uint8(0), mask.At(0, 3))
}

func TestFillEmptyPathProducesEmptyMask(t *testing.T) {
	mask := Fill(nil, fixed.MakeRect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint8(0), mask.At(x, y))
		}
	}
}
