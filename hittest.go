package bezier

import (
	"context"
	"log/slog"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Hit describes the point on a set of curves that is closest to a query
// point.
type Hit struct {
	// Curve is the index of the closest curve, or -1 if no curve qualified.
	Curve int
	// T is the parameter of Point on the closest curve.
	T float64
	// Point is the closest point.
	Point Point
	// Distance is the euclidean distance from the query point to Point.
	Distance float64
}

// noHit is the zero result of hit tests.
var noHit = Hit{Curve: -1, Distance: math.Inf(1)}

// HitTest finds the curve closest to pt among curves, considering only curves
// that pass within tolerance of pt. It reports false if there is no such
// curve.
//
// Curves are first rejected by the bounding box of their control polygon,
// which contains the curve. Curves the solver reports as degenerate are
// skipped and logged. A curve whose control points all coincide is not
// degenerate; it behaves as a single point.
func HitTest(pt Point, curves []ControlPoints, tolerance float64) (Hit, bool, error) {
	best := noHit
	for i, cp := range curves {
		if err := cp.Validate(); err != nil {
			return noHit, false, errors.Wrapf(err, "curve %d", i)
		}
		if !cp.BoundingBox().Inflate(tolerance, tolerance).Contains(pt) {
			continue
		}
		h, err := nearestOn(pt, i, cp)
		if err != nil {
			return noHit, false, err
		}
		if h.Curve >= 0 && h.Distance <= tolerance && h.Distance < best.Distance {
			best = h
		}
	}
	return best, best.Curve >= 0, nil
}

// NearestPoints projects every query point onto the closest of curves. The
// queries are processed in parallel; the i-th result belongs to the i-th
// query. A result's Curve is -1 only if curves is empty or all curves are
// degenerate.
//
// NearestPoints stops scheduling work once ctx is done and returns ctx's
// error.
func NearestPoints(ctx context.Context, queries []Point, curves []ControlPoints) ([]Hit, error) {
	for i, cp := range curves {
		if err := cp.Validate(); err != nil {
			return nil, errors.Wrapf(err, "curve %d", i)
		}
	}
	Logger().Debug("projecting points",
		slog.Int("queries", len(queries)), slog.Int("curves", len(curves)))

	hits := make([]Hit, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for qi, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			best := noHit
			for ci, cp := range curves {
				if err := gctx.Err(); err != nil {
					return err
				}
				h, err := nearestOn(q, ci, cp)
				if err != nil {
					return err
				}
				if h.Curve >= 0 && h.Distance < best.Distance {
					best = h
				}
			}
			hits[qi] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

// nearestOn projects pt onto curve i. Degenerate curves produce noHit
// instead of an error.
func nearestOn(pt Point, i int, cp ControlPoints) (Hit, error) {
	t, distSq, err := NearestParam(pt, cp)
	if errors.Is(err, ErrDegenerateCurve) {
		Logger().Warn("skipping degenerate curve", slog.Int("curve", i), slog.Any("err", err))
		return noHit, nil
	} else if err != nil {
		return noHit, errors.Wrapf(err, "curve %d", i)
	}
	return Hit{
		Curve:    i,
		T:        t,
		Point:    cp.Eval(t),
		Distance: math.Sqrt(distSq),
	}, nil
}

// ControlRef identifies one control point of one curve.
type ControlRef struct {
	Curve int
	Index int
}

// LocateControlPoints returns every control point of curves within tolerance
// of pt, in curve order. A cheap per-axis test rejects most points before
// the distance is computed.
func LocateControlPoints(pt Point, curves []ControlPoints, tolerance float64) []ControlRef {
	var out []ControlRef
	for ci, cp := range curves {
		for i, p := range cp {
			dx := math.Abs(pt.X - p.X)
			dy := math.Abs(pt.Y - p.Y)
			if dx > tolerance || dy > tolerance {
				continue
			}
			if math.Hypot(dx, dy) <= tolerance {
				out = append(out, ControlRef{Curve: ci, Index: i})
			}
		}
	}
	return out
}
