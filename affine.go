package bezier

import (
	"math"
)

// Affine is a 2D affine transform. Applied to a point it computes
//
//	x' = XX·x + XY·y + X0
//	y' = YX·x + YY·y + Y0
//
// Intersection code uses it to move curves into the frame of a line, where
// crossing the line becomes a root of y(t).
type Affine struct {
	XX, YX, XY, YY, X0, Y0 float64
}

// Translate returns the transform that moves points by v.
func Translate(v Vec2) Affine {
	return Affine{XX: 1, YY: 1, X0: v.X, Y0: v.Y}
}

// Rotate returns the transform that rotates points about the origin by th
// radians. Positive angles turn the positive x axis towards the positive y
// axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{XX: cos, YX: sin, XY: -sin, YY: cos}
}

// AlignLine returns the transform that maps l.P0 to the origin and the
// direction of l onto the positive x axis. Points on l end up with y = 0.
func AlignLine(l Line) Affine {
	d := l.P1.Sub(l.P0)
	return Translate(Vec2(l.P0).Negate()).ThenRotate(-d.Angle())
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		XX: aff.XX*o.XX + aff.XY*o.YX,
		YX: aff.YX*o.XX + aff.YY*o.YX,
		XY: aff.XX*o.XY + aff.XY*o.YY,
		YY: aff.YX*o.XY + aff.YY*o.YY,
		X0: aff.XX*o.X0 + aff.XY*o.Y0 + aff.X0,
		Y0: aff.YX*o.X0 + aff.YY*o.Y0 + aff.Y0,
	}
}

// ThenRotate returns aff followed by a rotation of th radians.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}
