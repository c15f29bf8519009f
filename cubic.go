package bezier

import "github.com/pkg/errors"

// ControlPoints defines a Bézier segment by its control points.
//
// The engine's public operations accept either 2 points (a straight segment)
// or 4 points (a cubic Bézier: start, two tangent handles, end). The
// evaluation helpers [ControlPoints.Eval] and [ControlPoints.Subdivide] work
// for any non-empty number of points, that is, for Béziers of any degree.
type ControlPoints []Point

// Validate reports an error wrapping [ErrInvalidControlPointCount] unless cp
// holds exactly 2 or 4 points.
func (cp ControlPoints) Validate() error {
	switch len(cp) {
	case 2, 4:
		return nil
	default:
		return errors.Wrapf(ErrInvalidControlPointCount, "got %d control points", len(cp))
	}
}

// Cubic returns the cubic Bézier described by cp. It reports false unless cp
// holds exactly 4 points.
func (cp ControlPoints) Cubic() (CubicBez, bool) {
	if len(cp) != 4 {
		return CubicBez{}, false
	}
	return CubicBez{cp[0], cp[1], cp[2], cp[3]}, true
}

// Start returns the first control point.
func (cp ControlPoints) Start() Point { return cp[0] }

// End returns the last control point.
func (cp ControlPoints) End() Point { return cp[len(cp)-1] }

// Eval evaluates the curve at t using de Casteljau's algorithm. Values of t
// outside [0, 1] extrapolate the curve.
//
// Eval does not call [ControlPoints.Validate], so that it also serves
// polygons of other degrees. An empty cp has no curve and yields the zero
// Point; callers that accept user input validate it first.
func (cp ControlPoints) Eval(t float64) Point {
	if len(cp) == 0 {
		return Point{}
	}
	return deCasteljau(cp, t, nil, nil)
}

// Subdivide splits the curve at t into two curves of the same degree. The
// left curve covers [0, t] and the right curve covers [t, 1] of the
// original parametrization.
//
// Like [ControlPoints.Eval], Subdivide accepts any degree and does not
// validate cp. An empty cp yields two nil halves.
func (cp ControlPoints) Subdivide(t float64) (left, right ControlPoints) {
	if len(cp) == 0 {
		return nil, nil
	}
	left = make(ControlPoints, len(cp))
	right = make(ControlPoints, len(cp))
	deCasteljau(cp, t, left, right)
	return left, right
}

// BoundingBox returns the bounding box of the control polygon. By the convex
// hull property it encloses the curve on [0, 1].
func (cp ControlPoints) BoundingBox() Rect {
	if len(cp) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(cp[0], cp[0])
	for _, p := range cp[1:] {
		r = r.UnionPoint(p)
	}
	return r
}

// maxStackPoints is the largest polygon deCasteljau evaluates without
// allocating. It covers the quintic used by the nearest point solver.
const maxStackPoints = 6

// deCasteljau evaluates the Bézier polygon pts at t. If left and right are
// non-nil, they must have len(pts) elements and receive the control points
// of the two halves: the first entry of every row of the triangle and the
// last entry of every row, respectively.
func deCasteljau(pts []Point, t float64, left, right []Point) Point {
	n := len(pts)
	var buf [maxStackPoints]Point
	var row []Point
	if n <= maxStackPoints {
		row = buf[:n]
	} else {
		row = make([]Point, n)
	}
	copy(row, pts)

	if left != nil {
		left[0] = row[0]
	}
	if right != nil {
		right[n-1] = row[n-1]
	}
	for i := 1; i < n; i++ {
		for j := 0; j < n-i; j++ {
			row[j] = row[j].Lerp(row[j+1], t)
		}
		if left != nil {
			left[i] = row[0]
		}
		if right != nil {
			right[n-1-i] = row[n-1-i]
		}
	}
	return row[0]
}

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// ControlPoints returns the curve's four control points.
func (c CubicBez) ControlPoints() ControlPoints {
	return ControlPoints{c.P0, c.P1, c.P2, c.P3}
}

// Eval evaluates the curve at t using de Casteljau's algorithm.
func (c CubicBez) Eval(t float64) Point {
	pts := [4]Point{c.P0, c.P1, c.P2, c.P3}
	return deCasteljau(pts[:], t, nil, nil)
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Subdivide splits the curve at t, using de Casteljau.
func (c CubicBez) Subdivide(t float64) (CubicBez, CubicBez) {
	pts := [4]Point{c.P0, c.P1, c.P2, c.P3}
	var l, r [4]Point
	deCasteljau(pts[:], t, l[:], r[:])
	return CubicBez{l[0], l[1], l[2], l[3]}, CubicBez{r[0], r[1], r[2], r[3]}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}
