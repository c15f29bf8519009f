package bezier

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(5, 10), Pt(0, 0).Midpoint(Pt(10, 20)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -20)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Pt(2.5, -5), a.Lerp(b, 0.25))
	// extrapolation
	diff(t, Pt(15, -30), a.Lerp(b, 1.5))
}

func TestPointApproxEqual(t *testing.T) {
	if !Pt(1, 1).ApproxEqual(Pt(1+1e-10, 1-1e-10), 1e-9) {
		t.Error("points should be approximately equal")
	}
	if Pt(1, 1).ApproxEqual(Pt(1, 1.1), 1e-9) {
		t.Error("points should not be approximately equal")
	}
}

func TestVecPerpendicular(t *testing.T) {
	v := Vec(3, 4)
	diff(t, Vec(-4, 3), v.Turn90())
	n := v.PerpendicularNormal()
	if d := math.Abs(n.Hypot() - 1); d > 1e-12 {
		t.Errorf("normal has length %v, want 1", n.Hypot())
	}
	if d := n.Dot(v); math.Abs(d) > 1e-12 {
		t.Errorf("normal is not perpendicular, dot product %v", d)
	}
	diff(t, Vec2{}, Vec2{}.PerpendicularNormal())
}
