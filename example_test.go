package bezier_test

import (
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleBezier_Compute() {
	b := bezier.Cubic(bezier.Pt(0, 0), bezier.Pt(0, 1), bezier.Pt(1, 1), bezier.Pt(1, 0))
	fmt.Println(b.Compute(0.5))
	// Output: (0.5, 0.75)
}

func ExampleLine_Intersect() {
	h := bezier.Line{P0: bezier.Pt(0, 0), P1: bezier.Pt(10, 0)}
	v := bezier.Line{P0: bezier.Pt(5, -5), P1: bezier.Pt(5, 5)}
	hit, st := h.Intersect(v)
	fmt.Println(hit.T0, hit.T1, hit.Point, st)
	// Output: 0.5 0.5 (5, 0) ok
}

func ExampleBezier_LineIntersects() {
	arch := bezier.Cubic(bezier.Pt(0, 0), bezier.Pt(10, 20), bezier.Pt(20, 20), bezier.Pt(30, 0))
	ts := arch.LineIntersects(bezier.Line{P0: bezier.Pt(0, 10), P1: bezier.Pt(30, 10)})
	fmt.Printf("%.4f\n", ts)
	// Output: [0.2113 0.7887]
}

func ExampleBezier_Arcs() {
	// A cubic approximation of a quarter circle of radius 5.
	const k = 5 * 0.5522847498
	b := bezier.Cubic(bezier.Pt(5, 0), bezier.Pt(5, k), bezier.Pt(k, 5), bezier.Pt(0, 5))
	arcs := b.Arcs(0.1)
	fmt.Printf("%d arc, radius %.0f\n", len(arcs), arcs[0].Radius)
	// Output: 1 arc, radius 5
}
