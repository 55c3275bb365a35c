package effects

import "github.com/twinwm/twin/compose"

// Shadow geometry constants, standing in for the CSS-style
// offset-x/offset-y/blur-radius parameters named in spec §4.10.
const (
	HorizontalOffset = 3
	VerticalOffset   = 3
	ShadowFadeTail   = 4

	shadowLUTXLen = HorizontalOffset + ShadowFadeTail
	shadowLUTYLen = VerticalOffset + ShadowFadeTail
)

// Margin returns the extra width/height a window pixmap must reserve on
// its right and bottom edges to host a drop shadow: (shadow_x, shadow_y)
// = (2*H_OFFSET + BLUR, 2*V_OFFSET + BLUR) per spec §4.10.
func Margin(blurRadius int) (x, y int) {
	blurRadius = clampRadius(blurRadius)
	return 2*HorizontalOffset + blurRadius, 2*VerticalOffset + blurRadius
}

// gaussianLUT is the 17-entry lookup table approximating a Gaussian
// falloff with (1 - t^2)^2 * 0.92 + 0.08, t in [0, 1], per spec §4.10.
var gaussianLUT = func() [17]float64 {
	var t [17]float64
	for i := range t {
		x := float64(i) / 16
		v := 1 - x*x
		t[i] = v*v*0.92 + 0.08
	}
	return t
}()

func gaussianWeight(t float64) float64 {
	if t <= 0 {
		return gaussianLUT[0]
	}
	if t >= 1 {
		return gaussianLUT[16]
	}
	idx := int(t*16 + 0.5)
	if idx < 0 {
		idx = 0
	} else if idx > 16 {
		idx = 16
	}
	return gaussianLUT[idx]
}

func buildRamp(n int, scale float64) []byte {
	ramp := make([]byte, n)
	step := 0.0
	if n > 1 {
		step = 1.0 / float64(n-1)
	}
	t := 0.0
	for i := 0; i < n; i++ {
		w := gaussianWeight(t)
		ramp[i] = byte(w * scale)
		if n > 1 && t < 1 {
			t += step
		}
	}
	return ramp
}

// Cache holds the precomputed alpha ramps for DropShadow, reused across
// frames when the window's dimensions and shadow alpha are unchanged
// (spec §4.10: "two caches avoid recomputation ... when unchanged").
type Cache struct {
	yRamp  []byte
	yAlpha byte

	bottomRamp  []byte
	bottomWidth int
}

// Paint renders a Gaussian-falloff drop shadow of the given color into
// dst's right/bottom margin, around a window occupying [0,winW)x[0,winH).
// shadowX/shadowY are the margin sizes reserved by Margin. The right and
// bottom strips use independent 1D ramps; the corner where they overlap
// multiplies the two (spec §4.10).
func (c *Cache) Paint(dst *compose.Surface, winW, winH, shadowX, shadowY int, color uint32) {
	if dst == nil {
		return
	}
	alpha := byte(color >> 24)
	if alpha == 0 {
		return
	}
	rgb := color &^ 0xFF000000

	rightExtent := shadowX
	if rightExtent > shadowLUTXLen {
		rightExtent = shadowLUTXLen
	}
	bottomExtent := shadowY
	if bottomExtent > shadowLUTYLen {
		bottomExtent = shadowLUTYLen
	}
	if rightExtent <= 0 && bottomExtent <= 0 {
		return
	}

	xRamp := buildRamp(shadowLUTXLen, float64(alpha))

	var yRamp []byte
	if c.yRamp != nil && c.yAlpha == alpha && len(c.yRamp) == shadowLUTYLen {
		yRamp = c.yRamp
	} else {
		yRamp = buildRamp(shadowLUTYLen, float64(alpha))
		c.yRamp = yRamp
		c.yAlpha = alpha
	}

	yEnd := winH
	if yEnd > dst.Height {
		yEnd = dst.Height
	}
	if rightExtent > 0 {
		for y := 0; y < yEnd; y++ {
			for i := 0; i < rightExtent; i++ {
				dst.Set(winW+i, y, uint32(xRamp[i])<<24|rgb)
			}
		}
	}

	if bottomExtent <= 0 {
		return
	}

	leftSkip := HorizontalOffset
	if leftSkip > winW {
		leftSkip = winW
	}
	bottomWidth := winW - leftSkip - rightExtent
	if bottomWidth < 0 {
		bottomWidth = 0
	}

	var bottomRamp []byte
	if bottomWidth > 0 {
		if c.bottomRamp != nil && c.bottomWidth == bottomWidth && len(c.bottomRamp) == bottomWidth {
			bottomRamp = c.bottomRamp
		} else {
			bottomRamp = buildRamp(bottomWidth, 255)
			c.bottomRamp = bottomRamp
			c.bottomWidth = bottomWidth
		}
	}

	bottomEnd := winH + bottomExtent
	if bottomEnd > dst.Height {
		bottomEnd = dst.Height
	}
	for y := winH; y < bottomEnd; y++ {
		distY := y - winH
		if distY >= len(yRamp) {
			continue
		}
		alphaY := uint32(yRamp[distY])

		for x := 0; x < bottomWidth; x++ {
			a := alphaY * uint32(bottomRamp[x]) / 255
			dst.Set(leftSkip+x, y, a<<24|rgb)
		}
		// Corner: the right-extent columns also fall within the bottom
		// strip's rows, so their alpha is the product of both ramps.
		for i := 0; i < rightExtent; i++ {
			a := alphaY * uint32(xRamp[i]) / 255
			dst.Set(winW+i, y, a<<24|rgb)
		}
	}
}
