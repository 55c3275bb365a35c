package raster

import (
	"sort"

	"github.com/twinwm/twin/fixed"
)

// samplesPerPixel is the supersampling grid used by the general span
// filler: 4 sample rows (spec §4.3's quarter-pixel STEP) times 4 sample
// columns, 16 subsamples contributing 0x10 of coverage each; a fully
// covered pixel sums to 0x100, which addCoverage saturates to 0xFF.
const samplesPerPixel = 4

// unitPerSample is the sfixed distance (in grid units, SOne==16) between
// adjacent samples: a quarter pixel.
const unitPerSample = int(fixed.SOne) / samplesPerPixel

// edge is one non-horizontal edge of a polygon, in screen-fixed (sfixed)
// grid units, expressed as plain ints for scan-conversion arithmetic.
// Non-vertical edges step in x via integer Bresenham state (spec §4.3):
// stepX/incX is the whole-step-per-unit-dy movement, errNum/totalDy the
// fractional remainder that accumulates into an extra +-1 step.
type edge struct {
	top, bot int // y extent, top < bot
	xAtTop   int
	vertical bool // dx == 0
	winding  int  // +1 descending, -1 ascending

	dx      int // bot.X - top.X
	totalDy int // bot.Y - top.Y, > 0
	incX    int // sign of dx: -1, 0, or 1
	stepX   int // abs(dx) / totalDy
	errNum  int // abs(dx) % totalDy

	started bool
	curY    int
	curX    int
	err     int
}

func buildEdges(sub []fixed.SPoint) []edge {
	edges := make([]edge, 0, len(sub))
	n := len(sub)
	for i := 0; i < n; i++ {
		a := sub[i]
		b := sub[(i+1)%n]
		if a.Y == b.Y {
			continue // horizontal edges never generate a crossing
		}
		top, bot := a, b
		winding := 1
		if a.Y > b.Y {
			top, bot = b, a
			winding = -1
		}
		e := edge{
			top:     int(top.Y),
			bot:     int(bot.Y),
			xAtTop:  int(top.X),
			winding: winding,
		}
		if top.X == bot.X {
			e.vertical = true
		} else {
			e.dx = int(bot.X) - int(top.X)
			e.totalDy = e.bot - e.top
			adx := e.dx
			switch {
			case adx > 0:
				e.incX = 1
			case adx < 0:
				e.incX = -1
				adx = -adx
			}
			e.stepX = adx / e.totalDy
			e.errNum = adx % e.totalDy
		}
		edges = append(edges, e)
	}
	return edges
}

// xAt advances the edge's Bresenham state to y and returns x there. Calls
// for a given edge are always made with non-decreasing y (the scan loop
// below visits sample rows in increasing order), so x and the error
// accumulator only ever step forward.
func (e *edge) xAt(y int) int {
	if e.vertical {
		return e.xAtTop
	}
	if !e.started {
		e.curY, e.curX, e.err = e.top, e.xAtTop, 0
		e.started = true
	}
	if delta := y - e.curY; delta > 0 {
		e.curY = y
		e.curX += e.incX * e.stepX * delta
		e.err += e.errNum * delta
		for e.err >= e.totalDy {
			e.err -= e.totalDy
			e.curX += e.incX
		}
	}
	return e.curX
}

// Fill rasterizes the closed subpaths of a path (nonzero winding rule)
// into a newly allocated mask exactly covering their bounds.
func Fill(subpaths [][]fixed.SPoint, bounds fixed.Rect) *Mask {
	mask := NewMask(bounds)
	if bounds.Empty() {
		return mask
	}

	var edges []edge
	for _, sp := range subpaths {
		if len(sp) < 2 {
			continue
		}
		edges = append(edges, buildEdges(sp)...)
	}
	if len(edges) == 0 {
		return mask
	}

	topRow := bounds.Top
	botRow := bounds.Bottom
	leftCol := bounds.Left
	rightCol := bounds.Right

	type crossing struct {
		x        int
		winding  int
		vertical bool
	}

	// fastSpanMinWidth is the span width, in whole pixels, above which an
	// all-vertical-edge span skips the per-subsample filler (spec §4.3:
	// "span width >= 16 pixels x 4 samples").
	const fastSpanMinWidth = 16 * samplesPerPixel * int(fixed.SOne)

	for row := topRow; row < botRow; row++ {
		for sub := 0; sub < samplesPerPixel; sub++ {
			y := row*int(fixed.SOne) + sub*unitPerSample + unitPerSample/2

			var xs []crossing
			for i := range edges {
				e := &edges[i]
				if y < e.top || y >= e.bot {
					continue
				}
				xs = append(xs, crossing{x: e.xAt(y), winding: e.winding, vertical: e.vertical})
			}
			if len(xs) == 0 {
				continue
			}
			sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

			winding := 0
			spanStart := 0
			spanStartVertical := false
			inSpan := false
			for _, c := range xs {
				prevZero := winding == 0
				winding += c.winding
				if prevZero && winding != 0 {
					spanStart = c.x
					spanStartVertical = c.vertical
					inSpan = true
				} else if !prevZero && winding == 0 && inSpan {
					if spanStartVertical && c.vertical && c.x-spanStart >= fastSpanMinWidth {
						fillFastVerticalSpan(mask, row, spanStart, c.x, leftCol, rightCol)
					} else {
						fillSpanSamples(mask, row, sub, spanStart, c.x, leftCol, rightCol)
					}
					inSpan = false
				}
			}
		}
	}
	return mask
}

// fillFastVerticalSpan adds a constant 0x10-per-subsample contribution
// across a wide span bounded by two vertical edges, skipping the partial
// per-column coverage walk the general filler performs (spec §4.3).
func fillFastVerticalSpan(mask *Mask, row, x0, x1, leftCol, rightCol int) {
	const perSubsample = 256 / (samplesPerPixel * samplesPerPixel)
	colStart := x0 / int(fixed.SOne)
	colEnd := (x1 - 1) / int(fixed.SOne)
	for col := colStart + 1; col < colEnd; col++ {
		if col < leftCol || col >= rightCol {
			continue
		}
		mask.addCoverage(col-leftCol, row-mask.Bounds.Top, samplesPerPixel*perSubsample)
	}
	// Leading and trailing partial pixels still need exact subsample
	// counting, same as the general filler.
	fillSpanSamples(mask, row, 0, x0, colStart*int(fixed.SOne)+int(fixed.SOne), leftCol, rightCol)
	fillSpanSamples(mask, row, 0, colEnd*int(fixed.SOne), x1, leftCol, rightCol)
}

// fillSpanSamples adds coverage for the horizontal span [x0, x1) (in
// sfixed grid units) at sample row `sub` of pixel row `row`, splitting
// partial leading/trailing pixels by counting covered sub-columns.
func fillSpanSamples(mask *Mask, row, sub, x0, x1, leftCol, rightCol int) {
	if x1 <= x0 {
		return
	}
	colStart := x0 / int(fixed.SOne)
	colEnd := (x1 - 1) / int(fixed.SOne)

	const perSubsample = 256 / (samplesPerPixel * samplesPerPixel)

	for col := colStart; col <= colEnd; col++ {
		if col < leftCol || col >= rightCol {
			continue
		}
		pixelLeft := col * int(fixed.SOne)
		covered := 0
		for sc := 0; sc < samplesPerPixel; sc++ {
			sx := pixelLeft + sc*unitPerSample + unitPerSample/2
			if sx >= x0 && sx < x1 {
				covered++
			}
		}
		if covered == 0 {
			continue
		}
		// All four sample rows of a pixel row accumulate into the same
		// mask row; only the sub-row's own subsamples differ per call.
		mask.addCoverage(col-leftCol, row-mask.Bounds.Top, covered*perSubsample)
	}
}
