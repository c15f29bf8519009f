package bezier

import (
	"math"

	"github.com/pkg/errors"
)

// lengthTolerance is the relative tolerance used when comparing a requested
// arc length against accumulated segment lengths.
const lengthTolerance = 1e-9

// Polyline is a sequence of points joined by straight segments, usually the
// output of [Sample].
type Polyline []Point

// Segments returns the vector of every segment, from each point to the next.
func (pl Polyline) Segments() []Vec2 {
	if len(pl) < 2 {
		return nil
	}
	out := make([]Vec2, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out[i-1] = pl[i].Sub(pl[i-1])
	}
	return out
}

// SegmentLengths returns the euclidean length of every segment.
func (pl Polyline) SegmentLengths() []float64 {
	if len(pl) < 2 {
		return nil
	}
	out := make([]float64, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out[i-1] = pl[i].Distance(pl[i-1])
	}
	return out
}

// Length returns the total length of the polyline, which approximates the
// arc length of the sampled curve from below.
func (pl Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(pl); i++ {
		sum += pl[i].Distance(pl[i-1])
	}
	return sum
}

// PointAtLength returns the point at arc length l, measured along the
// polyline from its first point.
//
// It returns an error wrapping [ErrNotFound] if l is negative or exceeds the
// polyline's length. Lengths within a small relative tolerance of a segment
// boundary resolve to the boundary point itself.
func (pl Polyline) PointAtLength(l float64) (Point, error) {
	p, _, err := pl.locate(l)
	return p, err
}

// locate is like PointAtLength but additionally returns the index of the
// segment containing the point, or -1 for the polyline's first point.
func (pl Polyline) locate(l float64) (Point, int, error) {
	if len(pl) == 0 {
		return Point{}, -1, errors.Wrap(ErrNotFound, "empty polyline")
	}
	tol := lengthTolerance * max(1, math.Abs(l))
	if l < -tol {
		return Point{}, -1, errors.Wrapf(ErrNotFound, "negative length %g", l)
	}
	if l <= tol {
		return pl[0], -1, nil
	}

	var running float64
	for i := 1; i < len(pl); i++ {
		seg := pl[i].Sub(pl[i-1])
		segLen := seg.Hypot()
		switch {
		case math.Abs(running+segLen-l) <= tol:
			return pl[i], i - 1, nil
		case running+segLen > l:
			return pl[i-1].Translate(seg.Mul((l - running) / segLen)), i - 1, nil
		}
		running += segLen
	}
	return Point{}, -1, errors.Wrapf(ErrNotFound, "length %g exceeds polyline length %g", l, running)
}
