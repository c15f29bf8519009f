package bezier

import (
	"errors"
	"math"
	"testing"
)

func TestSampleConcrete(t *testing.T) {
	cp := ControlPoints{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	sc, err := Sample(cp, DefaultSteps)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Points) != 31 || len(sc.Tangents) != 31 {
		t.Fatalf("got %d points and %d tangents, want 31", len(sc.Points), len(sc.Tangents))
	}
	assertNear(t, sc.Points[0], Pt(0, 0), 1e-9)
	assertNear(t, sc.Points[30], Pt(100, 0), 1e-9)

	l := sc.Polyline().Length()
	if l <= 100 || l >= 300 {
		t.Errorf("got length %v, want length in (100, 300)", l)
	}
}

func TestSampleMatchesEval(t *testing.T) {
	for _, c := range testCubics {
		for _, steps := range []int{1, 2, 7, 30, 100} {
			sc := c.Sample(steps)
			if len(sc.Points) != steps+1 {
				t.Fatalf("got %d samples, want %d", len(sc.Points), steps+1)
			}
			h := 1 / float64(steps)
			for i, p := range sc.Points {
				ts := float64(i) * h
				want := c.Eval(ts)
				tol := 1e-9 * max(1, Vec2(want).Hypot())
				assertNear(t, p, want, tol)
				// tangents are derivatives scaled by the step
				assertNear(t, Point(sc.Tangents[i]), Point(c.Deriv(ts).Mul(h)), tol)
			}
			assertNear(t, sc.Points[0], c.Eval(0), 1e-12)
			assertNear(t, sc.Points[steps], c.Eval(1), 1e-9*max(1, Vec2(c.P3).Hypot()))
		}
	}
}

func TestSampleStraight(t *testing.T) {
	cp := ControlPoints{Pt(1, 2), Pt(7, 10)}
	sc, err := Sample(cp, DefaultSteps)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, SampledCurve{
		Points:   []Point{Pt(1, 2), Pt(7, 10)},
		Tangents: []Vec2{Vec(6, 8), Vec(6, 8)},
	}, sc)

	sc, err = SampleOpt(cp, DefaultSteps, SampleOptions{ReverseStraight: true})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, SampledCurve{
		Points:   []Point{Pt(7, 10), Pt(1, 2)},
		Tangents: []Vec2{Vec(6, 8), Vec(6, 8)},
	}, sc)
}

func TestSampleErrors(t *testing.T) {
	cp := ControlPoints{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	if _, err := Sample(cp, 10); !errors.Is(err, ErrInvalidControlPointCount) {
		t.Errorf("got error %v, want %v", err, ErrInvalidControlPointCount)
	}
	cp = testCubics[0].ControlPoints()
	for _, steps := range []int{0, -1} {
		if _, err := Sample(cp, steps); !errors.Is(err, ErrInvalidStepCount) {
			t.Errorf("got error %v, want %v", err, ErrInvalidStepCount)
		}
	}
}

func TestSampledLengthConverges(t *testing.T) {
	for _, c := range testCubics {
		prev := 0.0
		prevDelta := math.Inf(1)
		for steps := 4; steps <= 512; steps *= 2 {
			l := c.Sample(steps).Polyline().Length()
			if l < prev-1e-9*prev {
				t.Errorf("%v: length decreased from %v to %v at %d steps", c, prev, l, steps)
			}
			delta := l - prev
			if steps > 8 && delta > prevDelta {
				t.Errorf("%v: length change grew from %v to %v at %d steps", c, prevDelta, delta, steps)
			}
			prev, prevDelta = l, delta
		}
	}
}

func BenchmarkSample(b *testing.B) {
	c := testCubics[0]
	for range b.N {
		c.Sample(DefaultSteps)
	}
}
