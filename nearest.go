package bezier

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// Nearest point on a cubic Bézier
//
// The squared distance |B(t) - P|² has its extrema where the vector from P to
// the curve is perpendicular to the tangent, i.e. at the roots of the quintic
// (B(t) - P) · B'(t). We express that quintic in Bernstein form and isolate
// its roots in [0, 1] by recursive subdivision of its control polygon, as
// described by Schneider in "A Bézier curve-based root-finder", Graphics Gems
// (1990).

const (
	// nearestMaxDepth bounds the subdivision depth of the root finder. At
	// this depth the parameter interval is narrower than float64 resolution.
	nearestMaxDepth = 64
	// determinantEpsilon is the relative magnitude below which a line
	// intersection determinant is considered singular.
	determinantEpsilon = 1e-14
)

// cubicZ holds the precomputed products of binomial coefficients
// C(3,i)·C(2,j)/C(5,i+j) that weigh the dot products of control point
// offsets and derivative control points.
var cubicZ = [3][4]float64{
	{1.0, 0.6, 0.3, 0.1},
	{0.4, 0.6, 0.6, 0.4},
	{0.1, 0.3, 0.6, 1.0},
}

// bernsteinForm is a quintic in Bernstein form. X holds the uniform
// parametrization i/5, Y the polynomial's Bernstein coefficients.
type bernsteinForm [6]Point

// bezierForm returns the quintic (c(t) - p) · c'(t) in Bernstein form.
func bezierForm(p Point, c CubicBez) bernsteinForm {
	pts := [4]Point{c.P0, c.P1, c.P2, c.P3}
	var cv [4]Vec2
	for i, cp := range pts {
		cv[i] = cp.Sub(p)
	}
	var d [3]Vec2
	for i := range d {
		d[i] = pts[i+1].Sub(pts[i]).Mul(3)
	}

	var w bernsteinForm
	for i := range w {
		w[i] = Pt(float64(i)/5, 0)
	}
	for j := range d {
		for i := range cv {
			w[i+j].Y += d[j].Dot(cv[i]) * cubicZ[j][i]
		}
	}
	return w
}

func (w *bernsteinForm) split() (left, right bernsteinForm) {
	deCasteljau(w[:], 0.5, left[:], right[:])
	return left, right
}

// crossingCount returns the number of sign changes of the control polygon's
// y coordinates. It is an upper bound on the number of roots in the
// polygon's x range. Zero counts as non-negative.
func (w *bernsteinForm) crossingCount() int {
	n := 0
	neg := w[0].Y < 0
	for _, p := range w[1:] {
		if (p.Y < 0) != neg {
			n++
			neg = !neg
		}
	}
	return n
}

// maxAbsY returns the largest magnitude of the polygon's y coordinates. It
// serves as the scale for singularity tests.
func (w *bernsteinForm) maxAbsY() float64 {
	var m float64
	for _, p := range w {
		m = max(m, math.Abs(p.Y))
	}
	return m
}

// flatEnough reports whether the control polygon is close enough to the
// chord from its first to its last point that the chord's x intercept is
// within epsilon of the true root.
func (w *bernsteinForm) flatEnough(epsilon float64) (bool, error) {
	first, last := w[0], w[len(w)-1]

	// Implicit equation a·x + b·y + c = 0 of the chord.
	a := first.Y - last.Y
	b := last.X - first.X
	c := first.X*last.Y - last.X*first.Y

	var maxAbove, maxBelow float64
	for _, p := range w {
		v := a*p.X + b*p.Y + c
		if v > maxAbove {
			maxAbove = v
		} else if v < maxBelow {
			maxBelow = v
		}
	}

	// Intersect the two lines parallel to the chord that bound the polygon
	// with the line y = 0.
	det := -a
	if isSingular(det, w.maxAbsY()) {
		return false, errors.Wrap(ErrDegenerateCurve, "flatness bound parallel to axis")
	}
	intercept1 := (c - maxAbove) / det
	intercept2 := (c - maxBelow) / det

	left := min(intercept1, intercept2)
	right := max(intercept1, intercept2)
	return right-left < epsilon, nil
}

// xIntercept returns the x coordinate at which the chord from the polygon's
// first to its last point crosses y = 0.
func (w *bernsteinForm) xIntercept() (float64, error) {
	first, last := w[0], w[len(w)-1]
	xNM := last.X - first.X
	yNM := last.Y - first.Y

	det := -yNM
	if isSingular(det, w.maxAbsY()) {
		return 0, errors.Wrap(ErrDegenerateCurve, "chord parallel to axis")
	}
	return (xNM*first.Y - yNM*first.X) / det, nil
}

func isSingular(det, scale float64) bool {
	return scale == 0 || math.Abs(det) <= determinantEpsilon*scale
}

// rootFinder holds the state of one root-finding query. Every query uses its
// own rootFinder, which makes concurrent queries safe.
type rootFinder struct {
	maxDepth int
	epsilon  float64
	roots    []float64
}

func newRootFinder() *rootFinder {
	return &rootFinder{
		maxDepth: nearestMaxDepth,
		epsilon:  math.Ldexp(1, -(nearestMaxDepth + 1)),
	}
}

// find records the roots of w in its x range and returns their number.
func (rf *rootFinder) find(w bernsteinForm, depth int) (int, error) {
	switch cc := w.crossingCount(); {
	case cc == 0:
		return 0, nil
	case depth >= rf.maxDepth:
		// The interval is at the limit of resolution; any roots in it are
		// indistinguishable from its midpoint.
		t := (w[0].X + w[len(w)-1].X) / 2
		Logger().Debug("nearest point: depth limit reached",
			slog.Float64("t", t), slog.Int("crossings", cc))
		rf.roots = append(rf.roots, t)
		return 1, nil
	case cc == 1:
		flat, err := w.flatEnough(rf.epsilon)
		if err != nil {
			return 0, err
		}
		if flat {
			t, err := w.xIntercept()
			if err != nil {
				return 0, err
			}
			rf.roots = append(rf.roots, t)
			return 1, nil
		}
	}

	left, right := w.split()
	nl, err := rf.find(left, depth+1)
	if err != nil {
		return 0, err
	}
	nr, err := rf.find(right, depth+1)
	if err != nil {
		return 0, err
	}
	return nl + nr, nil
}

// NearestParam returns the parameter of the point on the segment described by
// cp that is closest to pt, together with the squared distance to it.
//
// cp must hold 2 or 4 points; straight segments are projected directly.
// Curves whose geometry makes the root finder's line intersections singular
// report an error wrapping [ErrDegenerateCurve].
func NearestParam(pt Point, cp ControlPoints) (t, distSq float64, err error) {
	if err := cp.Validate(); err != nil {
		return 0, 0, err
	}
	if len(cp) == 2 {
		distSq, t = Line{cp.Start(), cp.End()}.Nearest(pt)
		return t, distSq, nil
	}
	c, _ := cp.Cubic()
	return c.nearest(pt)
}

// NearestPoint returns the point on the segment described by cp that is
// closest to pt. See [NearestParam] for details.
func NearestPoint(pt Point, cp ControlPoints) (Point, error) {
	t, _, err := NearestParam(pt, cp)
	if err != nil {
		return Point{}, err
	}
	return cp.Eval(t), nil
}

// Nearest returns the parameter of the point on the curve closest to pt and
// the squared distance to it.
func (c CubicBez) Nearest(pt Point) (t, distSq float64, err error) {
	return c.nearest(pt)
}

func (c CubicBez) nearest(pt Point) (float64, float64, error) {
	rf := newRootFinder()
	if _, err := rf.find(bezierForm(pt, c), 0); err != nil {
		return 0, 0, errors.Wrapf(err, "nearest point to %s", pt)
	}

	bestT := 0.0
	best := pt.DistanceSquared(c.Start())
	for _, t := range rf.roots {
		t = min(max(t, 0), 1)
		if d := pt.DistanceSquared(c.Eval(t)); d < best {
			best = d
			bestT = t
		}
	}
	if d := pt.DistanceSquared(c.End()); d < best {
		best = d
		bestT = 1
	}
	return bestT, best, nil
}
