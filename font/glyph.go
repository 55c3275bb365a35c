package font

import (
	"github.com/twinwm/twin/fixed"
	"github.com/twinwm/twin/geom"
)

// Opcode identifies one instruction in a glyph's instruction stream.
type Opcode byte

// The instruction set a glyph outline is built from, per spec §3:
// "m x y", "l x y", "c x1 y1 x2 y2 x3 y3", "2 xc yc x y", "e".
const (
	OpMove  Opcode = 'm'
	OpLine  Opcode = 'l'
	OpCurve Opcode = 'c'
	OpQuad  Opcode = '2'
	OpEnd   Opcode = 'e'
)

func (op Opcode) operandCount() int {
	switch op {
	case OpMove, OpLine:
		return 2
	case OpQuad:
		return 4
	case OpCurve:
		return 6
	case OpEnd:
		return 0
	default:
		return -1
	}
}

// Glyph is one character's outline: left/right side bearings,
// ascent/descent, hinting snap arrays, and its own instruction stream.
type Glyph struct {
	Left, Right   fixed.GFixed
	Ascent, Descent fixed.GFixed
	HSnap, VSnap  []fixed.GFixed
	Instructions  []int8 // opcode byte followed by its operand bytes, repeated, "e"-terminated
}

// gToFixed scales a GFixed glyph-unit coordinate by the font's em size
// (in pixels, as a Fixed) to a device-space Fixed coordinate.
func gToFixed(v fixed.GFixed, emSize fixed.Fixed) fixed.Fixed {
	unit := fixed.Fixed(int32(v)) << (fixed.FixedShift - fixed.GFixedShift)
	return fixed.Mul(unit, emSize)
}

// Build interprets g's instruction stream into a path positioned so
// its origin is the glyph's pen-down point, using emSize pixels per em
// and style to apply oblique shear / bold widening to each point. The
// path's current matrix is set on p by the caller; Build emits
// move/draw/curve commands and closes the subpath at the end opcode.
func Build(p *geom.Path, g *Glyph, emSize fixed.Fixed, style geom.FontStyle) {
	instr := g.Instructions
	for i := 0; i < len(instr); {
		op := Opcode(instr[i])
		i++
		n := op.operandCount()
		if n < 0 || i+n > len(instr) {
			return
		}
		args := instr[i : i+n]
		i += n

		switch op {
		case OpMove:
			x, y := glyphPoint(args[0], args[1], emSize, style)
			p.Move(x, y)
		case OpLine:
			x, y := glyphPoint(args[0], args[1], emSize, style)
			p.Draw(x, y)
		case OpQuad:
			cx, cy := glyphPoint(args[0], args[1], emSize, style)
			x, y := glyphPoint(args[2], args[3], emSize, style)
			p.QuadraticCurve(fixed.Pt(cx, cy), fixed.Pt(x, y))
		case OpCurve:
			c1x, c1y := glyphPoint(args[0], args[1], emSize, style)
			c2x, c2y := glyphPoint(args[2], args[3], emSize, style)
			x, y := glyphPoint(args[4], args[5], emSize, style)
			p.Curve(fixed.Pt(c1x, c1y), fixed.Pt(c2x, c2y), fixed.Pt(x, y))
		case OpEnd:
			p.Close()
			return
		}
	}
}

// glyphPoint converts a pair of signed-byte glyph coordinates into
// device-space Fixed, applying oblique shear and bold widening per
// spec §4.7 ("oblique style shears by atan(1/4); bold widens by half").
func glyphPoint(gx, gy int8, emSize fixed.Fixed, style geom.FontStyle) (x, y fixed.Fixed) {
	x = gToFixed(fixed.GFixed(gx), emSize)
	y = gToFixed(fixed.GFixed(gy), emSize)

	if style == geom.StyleOblique || style == geom.StyleBoldOblique {
		// shear by tan(arctan(1/4)) = 1/4: x += y/4, y measured downward
		// from the glyph's own baseline-relative coordinate.
		x += y / 4
	}
	if style == geom.StyleBold || style == geom.StyleBoldOblique {
		x += x / 2
	}
	return x, y
}
