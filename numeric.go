package bezier

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// Each entry is {weight, abscissa}. Only the non-negative half of the
// abscissae is listed; the rule is symmetric.
var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}

// gaussLegendre24 integrates f over [a, b] with the 24-point rule.
func gaussLegendre24(f func(float64) float64, a, b float64) float64 {
	z := 0.5 * (b - a)
	mid := 0.5 * (a + b)
	var sum float64
	for _, c := range gaussLegendreCoeffs24Half {
		w, x := c[0], c[1]
		sum += w * (f(mid+z*x) + f(mid-z*x))
	}
	return z * sum
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// remap maps v from [ds, de] onto [ts, te].
func remap(v, ds, de, ts, te float64) float64 {
	d1 := de - ds
	d2 := te - ts
	v2 := v - ds
	r := v2 / d1
	return ts + d2*r
}
