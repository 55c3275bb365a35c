// Package raster implements Twin's software rasterizer: a supersampled,
// anti-aliased polygon scan-converter and a stroke-by-convolution path
// offsetter, per spec §4.3.
package raster

import "github.com/twinwm/twin/fixed"

// Mask is an 8-bit coverage buffer (A8), the output of Fill and Stroke
// and the input to compose.Composite's mask argument.
type Mask struct {
	Bounds fixed.Rect // pixel-space bounds this mask covers
	Stride int
	Pix    []uint8
}

// NewMask allocates a zeroed mask covering r.
func NewMask(r fixed.Rect) *Mask {
	if r.Empty() {
		return &Mask{Bounds: r}
	}
	stride := r.Dx()
	return &Mask{
		Bounds: r,
		Stride: stride,
		Pix:    make([]uint8, stride*r.Dy()),
	}
}

// At returns the coverage at pixmap-space (x, y), or 0 outside Bounds.
func (m *Mask) At(x, y int) uint8 {
	if m == nil || !m.Bounds.Contains(x, y) {
		return 0
	}
	return m.Pix[(y-m.Bounds.Top)*m.Stride+(x-m.Bounds.Left)]
}

// addCoverage adds v to the coverage at local offsets (col, row),
// saturating at 255.
func (m *Mask) addCoverage(col, row int, v int) {
	if col < 0 || row < 0 || col >= m.Stride || row >= m.Bounds.Dy() {
		return
	}
	idx := row*m.Stride + col
	sum := int(m.Pix[idx]) + v
	if sum > 255 {
		sum = 255
	}
	m.Pix[idx] = uint8(sum)
}
