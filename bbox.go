package bezier

import (
	"fmt"
	"math"
)

// Extent is the projection of a bounding box onto one axis.
// Min ≤ Mid ≤ Max and Size = Max − Min.
type Extent struct {
	Min, Mid, Max, Size float64
}

// NewExtent returns the extent spanning lo and hi, in either order.
func NewExtent(lo, hi float64) Extent {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Extent{
		Min:  lo,
		Mid:  0.5 * (lo + hi),
		Max:  hi,
		Size: hi - lo,
	}
}

// Union returns the smallest extent containing e and o.
func (e Extent) Union(o Extent) Extent {
	return NewExtent(min(e.Min, o.Min), max(e.Max, o.Max))
}

// Overlaps reports whether e and o share at least one value.
func (e Extent) Overlaps(o Extent) bool {
	return math.Abs(e.Mid-o.Mid) <= 0.5*(e.Size+o.Size)
}

func (e Extent) Contains(v float64) bool {
	return v >= e.Min && v <= e.Max
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	X, Y Extent
}

// BBoxOf returns the smallest bounding box containing all points. It returns
// the zero BBox if no points are given.
func BBoxOf(pts ...Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	x0, x1 := pts[0].X, pts[0].X
	y0, y1 := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		x0 = min(x0, pt.X)
		x1 = max(x1, pt.X)
		y0 = min(y0, pt.Y)
		y1 = max(y1, pt.Y)
	}
	return BBox{X: NewExtent(x0, x1), Y: NewExtent(y0, y1)}
}

func (b BBox) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", b.X.Min, b.X.Max, b.Y.Min, b.Y.Max)
}

// Min returns the corner with the smallest coordinates.
func (b BBox) Min() Point { return Point{b.X.Min, b.Y.Min} }

// Max returns the corner with the largest coordinates.
func (b BBox) Max() Point { return Point{b.X.Max, b.Y.Max} }

func (b BBox) Center() Point { return Point{b.X.Mid, b.Y.Mid} }

// Overlaps reports whether the two boxes share at least one point. Boxes
// that merely touch overlap.
func (b BBox) Overlaps(o BBox) bool {
	return b.X.Overlaps(o.X) && b.Y.Overlaps(o.Y)
}

// Union returns the smallest box enclosing b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{X: b.X.Union(o.X), Y: b.Y.Union(o.Y)}
}

// Contains reports whether pt lies inside b or on its boundary.
func (b BBox) Contains(pt Point) bool {
	return b.X.Contains(pt.X) && b.Y.Contains(pt.Y)
}

// Expand grows the box by d in every direction.
func (b BBox) Expand(d float64) BBox {
	return BBox{
		X: NewExtent(b.X.Min-d, b.X.Max+d),
		Y: NewExtent(b.Y.Min-d, b.Y.Max+d),
	}
}

// HalfPerimeter returns X.Size + Y.Size. Recursive intersection stops
// subdividing once both boxes fall below a threshold in this measure.
func (b BBox) HalfPerimeter() float64 {
	return b.X.Size + b.Y.Size
}
