package poly

import (
	"errors"
	"math"
)

// DefaultBisectionAccuracy is the number of decimal digits Bisection resolves
// when called with a non-positive accuracy.
const DefaultBisectionAccuracy = 15

// ErrNoBracket is returned by Bisection when f has the same sign at both ends
// of the interval.
var ErrNoBracket = errors.New("poly: interval does not bracket a root")

// Bisection finds a root of f in [lo, hi] by repeatedly halving the
// interval.
//
// accuracy is the number of decimal digits the root should be resolved to;
// Bisection performs exactly ⌈log₂((hi − lo)·10^accuracy)⌉ halvings. If
// |f| at either endpoint is already below 10^−accuracy, that endpoint is
// returned. f must change sign over the interval, otherwise ErrNoBracket is
// returned.
func Bisection(f func(float64) float64, lo, hi float64, accuracy int) (float64, error) {
	if accuracy <= 0 {
		accuracy = DefaultBisectionAccuracy
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	tol := math.Pow10(-accuracy)
	flo := f(lo)
	if math.Abs(flo) <= tol {
		return lo, nil
	}
	fhi := f(hi)
	if math.Abs(fhi) <= tol {
		return hi, nil
	}
	if sign(flo) == sign(fhi) {
		return 0, ErrNoBracket
	}

	iters := int(math.Ceil((math.Log(hi-lo) + float64(accuracy)*math.Ln10) / math.Ln2))
	retained := sign(flo)
	for range iters {
		mid := 0.5 * (lo + hi)
		if sign(f(mid)) == retained {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
