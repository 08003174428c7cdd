package wheel

// Range is the closed value interval a wheel edits. Lower <= Upper is
// required by construction and never re-checked.
type Range struct {
	Lower float64
	Upper float64
}

// Span returns Upper - Lower.
func (r Range) Span() float64 {
	return r.Upper - r.Lower
}

// Clamp pins v into [Lower, Upper].
func (r Range) Clamp(v float64) float64 {
	if v < r.Lower {
		return r.Lower
	}
	if v > r.Upper {
		return r.Upper
	}
	return v
}

// Normalize maps v to its fraction of the range in [0, 1]. A degenerate
// range (Upper == Lower) normalizes to 0 rather than dividing by zero.
func (r Range) Normalize(v float64) float64 {
	if r.Upper == r.Lower {
		return 0
	}
	return (v - r.Lower) / r.Span()
}
