package bezier

import (
	"math"
	"testing"
)

func TestOffsetAt(t *testing.T) {
	// tangent along +x; the normal points along +y
	diff(t, Pt(5, 2), OffsetAt(Pt(5, 0), Vec(30, 0), 2))
	diff(t, Pt(5, -2), OffsetAt(Pt(5, 0), Vec(30, 0), -2))
	diff(t, Pt(5, 0), OffsetAt(Pt(5, 0), Vec(0, 0), 2))
}

func TestSampledCurveOffset(t *testing.T) {
	for _, c := range testCubics[:1] {
		sc := c.Sample(DefaultSteps)
		for _, w := range []float64{-3, 2.5} {
			off := sc.Offset(w)
			if len(off) != len(sc.Points) {
				t.Fatalf("got %d points, want %d", len(off), len(sc.Points))
			}
			for i, p := range off {
				v := p.Sub(sc.Points[i])
				if d := v.Hypot(); math.Abs(d-math.Abs(w)) > 1e-9 {
					t.Errorf("offset point %d at distance %v, want %v", i, d, math.Abs(w))
				}
				if d := v.Dot(sc.Tangents[i]); math.Abs(d) > 1e-9 {
					t.Errorf("offset point %d not perpendicular to tangent", i)
				}
			}
		}
	}
}

func TestSampledCurveOutline(t *testing.T) {
	sc, err := Sample(ControlPoints{Pt(0, 0), Pt(10, 0)}, DefaultSteps)
	if err != nil {
		t.Fatal(err)
	}
	want := Polyline{Pt(10, 1), Pt(0, 1), Pt(0, -1), Pt(10, -1)}
	diff(t, want, sc.Outline(1))
}
