package bezier

// Reduce splits the curve into simple pieces, as defined by [Bezier.Simple].
//
// The curve is first split at its extrema. Each of those parts is then
// consumed from the front by growing a window in steps of [ReduceStep] for
// as long as the window stays simple.
//
// The parameter ranges of the pieces tile the range of b without gaps or
// overlaps. If some part of the curve can't be made simple even by a single
// step, the curve has no simple reduction and Reduce returns nil.
func (b Bezier) Reduce() []Bezier {
	// x and y extrema closer than this are split at only once
	const extremaMerge = 1e-9

	_, _, ext := b.Extrema()
	ts := make([]float64, 0, len(ext)+2)
	ts = append(ts, 0)
	for _, t := range ext {
		if t > ts[len(ts)-1]+extremaMerge && t < 1-extremaMerge {
			ts = append(ts, t)
		}
	}
	ts = append(ts, 1)

	var out []Bezier
	for i := range len(ts) - 1 {
		part := b.SplitRange(ts[i], ts[i+1])
		pieces, ok := part.reduceSimple()
		if !ok {
			return nil
		}
		out = append(out, pieces...)
	}
	return out
}

// reduceSimple is the second pass of Reduce.
func (b Bezier) reduceSimple() ([]Bezier, bool) {
	var out []Bezier
	t1 := 0.0
	for t1 < 1 {
		good := t1
		for k := 1; ; k++ {
			t2 := min(t1+float64(k)*ReduceStep, 1)
			if !b.SplitRange(t1, t2).Simple() {
				break
			}
			good = t2
			if t2 == 1 {
				break
			}
		}
		if good == t1 {
			return nil, false
		}
		out = append(out, b.SplitRange(t1, good))
		t1 = good
	}
	return out, true
}
