// Package geom implements Twin's path and geometry layer: sub-pixel
// point sequences, subpath splitting, spline/arc flattening, and the
// convex hull used by stroking.
package geom

import "github.com/twinwm/twin/fixed"

// CapStyle selects how an open subpath's ends are rendered when stroked.
type CapStyle int

// Cap styles, matching spec §4.3.
const (
	CapButt CapStyle = iota
	CapRound
	CapProjecting
)

// FontStyle selects the glyph slant/weight a path's text operations use.
type FontStyle int

// Font styles, matching spec §4.7.
const (
	StyleRoman FontStyle = iota
	StyleOblique
	StyleBold
	StyleBoldOblique
)

// State is a path's current graphics state: the transform applied to
// points as they are appended, the font size/style used by text
// operations, and the cap style used when the path is stroked.
type State struct {
	Matrix    fixed.Matrix
	FontSize  fixed.Fixed
	FontStyle FontStyle
	CapStyle  CapStyle
}

// DefaultState returns the identity graphics state.
func DefaultState() State {
	return State{
		Matrix:    fixed.Identity(),
		FontSize:  fixed.IntToFixed(15),
		FontStyle: StyleRoman,
		CapStyle:  CapButt,
	}
}

// Path owns a growing sequence of transformed points, a record of where
// each finalized subpath begins, and the current graphics state, per
// spec §3.
type Path struct {
	pts         []fixed.SPoint
	subpathLens []int

	curLen     int
	hasCur     bool
	curPoint   fixed.Point
	firstPoint fixed.Point

	state State
	stack []State
}

// NewPath returns an empty path with the identity graphics state.
func NewPath() *Path {
	return &Path{state: DefaultState()}
}

// State returns a copy of the path's current graphics state.
func (p *Path) State() State { return p.state }

// SetMatrix replaces the path's current transform.
func (p *Path) SetMatrix(m fixed.Matrix) { p.state.Matrix = m }

// SetFontSize sets the font size used by subsequent text operations.
func (p *Path) SetFontSize(size fixed.Fixed) { p.state.FontSize = size }

// SetFontStyle sets the font style used by subsequent text operations.
func (p *Path) SetFontStyle(s FontStyle) { p.state.FontStyle = s }

// SetCapStyle sets the cap style used when the path is stroked.
func (p *Path) SetCapStyle(c CapStyle) { p.state.CapStyle = c }

// Save pushes a copy of the current graphics state.
func (p *Path) Save() { p.stack = append(p.stack, p.state) }

// Restore pops the most recently saved graphics state. It is a no-op if
// the save stack is empty (spec §7: invalid input is a no-op, not an
// error).
func (p *Path) Restore() {
	if len(p.stack) == 0 {
		return
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

// Empty reports whether the path contains no drawable subpath.
func (p *Path) Empty() bool {
	return len(p.subpathLens) == 0 && p.curLen < 2
}

// finalize closes out the in-progress subpath: a subpath shorter than 2
// points is discarded (invariant ii); otherwise its length is recorded.
func (p *Path) finalize() {
	if p.hasCur {
		if p.curLen < 2 {
			p.pts = p.pts[:len(p.pts)-p.curLen]
		} else {
			p.subpathLens = append(p.subpathLens, p.curLen)
		}
	}
	p.curLen = 0
	p.hasCur = false
}

// pushTransformed appends an already-transformed point to the
// in-progress subpath, starting one if none is open, skipping the
// point if it duplicates the last appended point (invariant i).
func (p *Path) pushTransformed(sp fixed.SPoint) {
	if !p.hasCur {
		p.pts = append(p.pts, sp)
		p.curLen = 1
		p.hasCur = true
		return
	}
	if p.curLen > 0 && p.pts[len(p.pts)-1].Eq(sp) {
		return
	}
	p.pts = append(p.pts, sp)
	p.curLen++
}

// Move starts a new subpath at (x, y), finalizing any subpath already in
// progress (invariant iii).
func (p *Path) Move(x, y fixed.Fixed) {
	p.finalize()
	pt := fixed.Pt(x, y)
	p.curPoint = pt
	p.firstPoint = pt
	p.pushTransformed(p.state.Matrix.TransformPoint(pt).ToSPoint())
}

// RMove starts a new subpath at the current point plus (dx, dy).
func (p *Path) RMove(dx, dy fixed.Fixed) {
	p.Move(p.curPoint.X+dx, p.curPoint.Y+dy)
}

// Draw extends the current subpath to (x, y).
func (p *Path) Draw(x, y fixed.Fixed) {
	pt := fixed.Pt(x, y)
	p.curPoint = pt
	p.pushTransformed(p.state.Matrix.TransformPoint(pt).ToSPoint())
}

// RDraw extends the current subpath to the current point plus (dx, dy).
func (p *Path) RDraw(dx, dy fixed.Fixed) {
	p.Draw(p.curPoint.X+dx, p.curPoint.Y+dy)
}

// Close replays the first point of the current subpath, closing the
// loop (invariant iv). The subpath remains open until the next Move or
// until the path is consumed.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	p.Draw(p.firstPoint.X, p.firstPoint.Y)
}

// CurrentPoint returns the path's current point in user coordinates.
func (p *Path) CurrentPoint() fixed.Point { return p.curPoint }

// Subpaths returns the flattened point sequence of each subpath,
// including the in-progress one if it has at least two points. The
// returned slices alias the path's internal storage and must not be
// mutated.
func (p *Path) Subpaths() [][]fixed.SPoint {
	out := make([][]fixed.SPoint, 0, len(p.subpathLens)+1)
	off := 0
	for _, n := range p.subpathLens {
		out = append(out, p.pts[off:off+n])
		off += n
	}
	if p.hasCur && p.curLen >= 2 {
		out = append(out, p.pts[off:off+p.curLen])
	}
	return out
}

// Bounds returns the smallest integer rectangle containing every point
// of every subpath (finalized or in progress), in screen-fixed pixels.
func (p *Path) Bounds() fixed.Rect {
	subpaths := p.Subpaths()
	if len(subpaths) == 0 {
		return fixed.Rect{}
	}
	minX, minY := int(subpaths[0][0].X), int(subpaths[0][0].Y)
	maxX, maxY := minX, minY
	for _, sp := range subpaths {
		for _, pt := range sp {
			x, y := int(pt.X), int(pt.Y)
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	floorDiv := func(v, d int) int {
		q := v / d
		if v%d != 0 && (v < 0) != (d < 0) {
			q--
		}
		return q
	}
	ceilDiv := func(v, d int) int { return -floorDiv(-v, d) }
	return fixed.MakeRect(
		floorDiv(minX, int(fixed.SOne)), floorDiv(minY, int(fixed.SOne)),
		ceilDiv(maxX, int(fixed.SOne)), ceilDiv(maxY, int(fixed.SOne)),
	)
}

// Append concatenates other's subpaths onto p, preserving subpath
// boundaries. Both paths' points are assumed already in the same
// coordinate space (p's transform is not reapplied).
func (p *Path) Append(other *Path) {
	p.finalize()
	for _, sp := range other.Subpaths() {
		if len(sp) < 2 {
			continue
		}
		start := len(p.pts)
		p.pts = append(p.pts, sp...)
		p.subpathLens = append(p.subpathLens, len(p.pts)-start)
	}
}
