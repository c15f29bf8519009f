package bezier

import "github.com/pkg/errors"

// DefaultSteps is the number of forward-difference steps used for drawing
// track. The polyline error falls with the fourth power of the step size,
// so 30 steps are indistinguishable from the true curve at tile scale.
const DefaultSteps = 30

// SampledCurve is a polyline approximation of a curve together with the
// curve's derivative at every sample.
//
// Points and Tangents have equal length. Tangents are not normalized; for
// cubics they are the first derivative scaled by the step size 1/steps.
type SampledCurve struct {
	Points   []Point
	Tangents []Vec2
}

// Polyline returns the sampled points as a [Polyline].
func (sc SampledCurve) Polyline() Polyline {
	return Polyline(sc.Points)
}

// SampleOptions adjust the behavior of [SampleOpt].
type SampleOptions struct {
	// ReverseStraight emits straight segments end point first, as [p1, p0].
	// Layouts that were tuned against that ordering can set it to keep
	// their sleeper placement unchanged. Curved segments are always sampled
	// from start to end.
	ReverseStraight bool
}

// Sample samples the segment described by cp at steps+1 uniformly spaced
// parameter values from 0 to 1 inclusive. Straight segments (two control
// points) produce exactly two samples.
func Sample(cp ControlPoints, steps int) (SampledCurve, error) {
	return SampleOpt(cp, steps, SampleOptions{})
}

// SampleOpt is like [Sample] but accepts options.
func SampleOpt(cp ControlPoints, steps int, opts SampleOptions) (SampledCurve, error) {
	if err := cp.Validate(); err != nil {
		return SampledCurve{}, err
	}
	if steps < 1 {
		return SampledCurve{}, errors.Wrapf(ErrInvalidStepCount, "got %d steps", steps)
	}
	if len(cp) == 2 {
		chord := cp[1].Sub(cp[0])
		pts := []Point{cp[0], cp[1]}
		if opts.ReverseStraight {
			pts[0], pts[1] = pts[1], pts[0]
		}
		return SampledCurve{
			Points:   pts,
			Tangents: []Vec2{chord, chord},
		}, nil
	}
	c, _ := cp.Cubic()
	return c.Sample(steps), nil
}

// Sample samples the cubic at steps+1 uniformly spaced parameter values using
// forward differencing. Each sample costs a constant number of additions,
// independent of the curve's degree.
//
// steps must be at least 1.
func (c CubicBez) Sample(steps int) SampledCurve {
	h := 1.0 / float64(steps)
	h2 := h * h

	p0, p1, p2, p3 := Vec2(c.P0), Vec2(c.P1), Vec2(c.P2), Vec2(c.P3)
	f := c.P0
	fd := p1.Sub(p0).Mul(3 * h)
	fddPer2 := p0.Sub(p1.Mul(2)).Add(p2).Mul(3 * h2)
	fdddPer2 := p1.Sub(p2).Mul(3).Add(p3).Sub(p0).Mul(3 * h2 * h)

	fddd := fdddPer2.Add(fdddPer2)
	fdd := fddPer2.Add(fddPer2)
	fdddPer6 := fdddPer2.Mul(1.0 / 3)

	out := SampledCurve{
		Points:   make([]Point, 0, steps+1),
		Tangents: make([]Vec2, 0, steps+1),
	}
	for range steps {
		out.Points = append(out.Points, f)
		out.Tangents = append(out.Tangents, fd)
		f = f.Translate(fd.Add(fddPer2).Add(fdddPer6))
		fd = fd.Add(fdd).Add(fdddPer2)
		fdd = fdd.Add(fddd)
		fddPer2 = fddPer2.Add(fdddPer2)
	}
	out.Points = append(out.Points, f)
	out.Tangents = append(out.Tangents, fd)
	return out
}
