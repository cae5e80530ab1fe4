package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those in points and vectors, with an
// absolute tolerance.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

// cmpBezier compares curves by their control points.
var cmpBezier = cmp.Transformer("points", func(b Bezier) []Point {
	return b.points
})
