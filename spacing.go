package bezier

import (
	"math"

	"github.com/pkg/errors"
)

// MaxStations bounds the number of intervals [Polyline.Spaced] divides a
// polyline into.
const MaxStations = 1 << 20

// Station is a position along a polyline.
type Station struct {
	Point Point
	// Direction is the unit direction of the polyline at Point.
	Direction Vec2
	// Length is the arc length from the start of the polyline to Point.
	Length float64
}

// Spaced places stations along the polyline at equal arc length intervals,
// starting at the first point and ending at the last.
//
// The interval is the largest length not exceeding spacing that divides the
// polyline's length evenly, so that both ends receive a station. This is
// how sleepers are distributed along a track segment.
//
// spacing must be positive and finite, and the polyline may be split into
// at most [MaxStations] intervals. Anything else is reported as
// [ErrInvalidSpacing].
func (pl Polyline) Spaced(spacing float64) ([]Station, error) {
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		return nil, errors.Wrapf(ErrInvalidSpacing, "got %g", spacing)
	}
	if len(pl) == 0 {
		return nil, nil
	}
	total := pl.Length()
	if total == 0 {
		return []Station{{Point: pl[0]}}, nil
	}

	q := math.Ceil(total / spacing)
	if !(q <= MaxStations) {
		return nil, errors.Wrapf(ErrInvalidSpacing, "spacing %g gives more than %d intervals over length %g", spacing, MaxStations, total)
	}
	n := int(q)
	interval := total / float64(n)
	segs := pl.Segments()
	out := make([]Station, 0, n+1)
	for k := range n + 1 {
		l := min(float64(k)*interval, total)
		p, idx, err := pl.locate(l)
		if err != nil {
			return nil, errors.Wrapf(err, "station %d", k)
		}
		out = append(out, Station{
			Point:     p,
			Direction: directionAt(segs, idx),
			Length:    l,
		})
	}
	return out, nil
}

// directionAt returns the unit direction of segment idx, falling back to the
// nearest non-degenerate segment for zero-length segments and to the first
// one for idx -1.
func directionAt(segs []Vec2, idx int) Vec2 {
	idx = max(idx, 0)
	for i := idx; i < len(segs); i++ {
		if h := segs[i].Hypot(); h > 0 {
			return segs[i].Mul(1 / h)
		}
	}
	for i := idx - 1; i >= 0; i-- {
		if h := segs[i].Hypot(); h > 0 {
			return segs[i].Mul(1 / h)
		}
	}
	return Vec2{}
}
