package bezier

// OffsetAt displaces p by width along the unit normal of tangent. Positive
// widths move to the left of the direction of travel in a y-up system (to
// the right in y-down screen space). A zero tangent leaves p unchanged.
func OffsetAt(p Point, tangent Vec2, width float64) Point {
	return p.Translate(tangent.PerpendicularNormal().Mul(width))
}

// Offset returns the polyline running parallel to the sampled curve at
// distance width, using each sample's tangent as the local direction. Rails
// are drawn as a pair of offsets with opposite widths.
func (sc SampledCurve) Offset(width float64) Polyline {
	out := make(Polyline, len(sc.Points))
	for i, p := range sc.Points {
		out[i] = OffsetAt(p, sc.Tangents[i], width)
	}
	return out
}

// Outline returns the closed polygon of the band of half-width width around
// the sampled curve: the offset at +width in reverse order followed by the
// offset at -width.
func (sc SampledCurve) Outline(width float64) Polyline {
	n := len(sc.Points)
	out := make(Polyline, 2*n)
	for i, p := range sc.Points {
		out[n-1-i] = OffsetAt(p, sc.Tangents[i], width)
		out[n+i] = OffsetAt(p, sc.Tangents[i], -width)
	}
	return out
}
