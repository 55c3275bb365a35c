// Package compose implements Twin's compositor: the format x operator
// blending matrix (A8/RGB16/ARGB32 destinations and sources, OVER/SOURCE
// operators, an optional mask of any of the three formats) plus the
// bilinear resampler used when a source or mask carries a non-identity
// transform, per spec §4.4.
package compose

import "github.com/twinwm/twin/fixed"

// Format identifies a pixel surface's storage layout.
type Format int

// Pixel formats, matching spec §3/§6.
const (
	FormatA8 Format = iota
	FormatRGB16
	FormatARGB32
)

// BytesPerPixel returns the storage size of one pixel in f.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatA8:
		return 1
	case FormatRGB16:
		return 2
	case FormatARGB32:
		return 4
	default:
		return 0
	}
}

// Surface is an addressable pixel buffer in one of Twin's three formats.
// ARGB32 pixels are stored premultiplied, per spec §3.
type Surface struct {
	Format Format
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewSurface allocates a zeroed surface of the given format and size.
func NewSurface(f Format, w, h int) *Surface {
	if w <= 0 || h <= 0 {
		return &Surface{Format: f}
	}
	stride := w * f.BytesPerPixel()
	return &Surface{
		Format: f,
		Width:  w,
		Height: h,
		Stride: stride,
		Pix:    make([]byte, stride*h),
	}
}

// Bounds returns the surface's own pixel rectangle.
func (s *Surface) Bounds() fixed.Rect {
	if s == nil {
		return fixed.Rect{}
	}
	return fixed.MakeRect(0, 0, s.Width, s.Height)
}

// At returns the premultiplied ARGB32 value at (x, y), or fully
// transparent if (x, y) is outside the surface (spec §4.4 "Non-identity
// transforms": reads outside the source's clip are 0).
func (s *Surface) At(x, y int) uint32 {
	if s == nil || x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	switch s.Format {
	case FormatA8:
		a := s.Pix[y*s.Stride+x]
		return uint32(a) << 24
	case FormatRGB16:
		off := y*s.Stride + x*2
		v := uint16(s.Pix[off]) | uint16(s.Pix[off+1])<<8
		r, g, b := unpack565(v)
		return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	case FormatARGB32:
		off := y*s.Stride + x*4
		return uint32(s.Pix[off])<<24 | uint32(s.Pix[off+1])<<16 | uint32(s.Pix[off+2])<<8 | uint32(s.Pix[off+3])
	default:
		return 0
	}
}

// Set writes a premultiplied ARGB32 value at (x, y), converting to the
// surface's native format. Out-of-bounds writes are ignored.
func (s *Surface) Set(x, y int, argb uint32) {
	if s == nil || x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	switch s.Format {
	case FormatA8:
		s.Pix[y*s.Stride+x] = byte(argb >> 24)
	case FormatRGB16:
		r := byte(argb >> 16)
		g := byte(argb >> 8)
		b := byte(argb)
		v := pack565(r, g, b)
		off := y*s.Stride + x*2
		s.Pix[off] = byte(v)
		s.Pix[off+1] = byte(v >> 8)
	case FormatARGB32:
		off := y*s.Stride + x*4
		s.Pix[off] = byte(argb >> 24)
		s.Pix[off+1] = byte(argb >> 16)
		s.Pix[off+2] = byte(argb >> 8)
		s.Pix[off+3] = byte(argb)
	}
}

func pack565(r, g, b byte) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func unpack565(v uint16) (r, g, b byte) {
	r = byte((v >> 11) & 0x1F)
	g = byte((v >> 5) & 0x3F)
	b = byte(v & 0x1F)
	// Replicate the high bits into the low bits so 0x1F maps to 0xFF,
	// not 0xF8 (the standard 5/6-bit to 8-bit channel expansion).
	r = r<<3 | r>>2
	g = g<<2 | g>>4
	b = b<<3 | b>>2
	return
}
