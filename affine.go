package bezier

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// IsoProjection squashes world space into the 2:1 isometric screen space used
// by tile maps.
var IsoProjection = Scale(1, 0.5)

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive X direction into positive Y. The
// angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// TransformVec applies the linear part of aff to v. Translation does not
// affect vectors.
func (aff Affine) TransformVec(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// Transform applies aff to every control point. Bézier curves are affinely
// invariant, so the result describes the transformed curve.
func (cp ControlPoints) Transform(aff Affine) ControlPoints {
	out := make(ControlPoints, len(cp))
	for i, p := range cp {
		out[i] = p.Transform(aff)
	}
	return out
}

// Transform applies aff to every point of the polyline.
func (pl Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = p.Transform(aff)
	}
	return out
}

// Transform applies aff to the sampled points and its linear part to the
// tangents.
func (sc SampledCurve) Transform(aff Affine) SampledCurve {
	out := SampledCurve{
		Points:   make([]Point, len(sc.Points)),
		Tangents: make([]Vec2, len(sc.Tangents)),
	}
	for i, p := range sc.Points {
		out.Points[i] = p.Transform(aff)
	}
	for i, v := range sc.Tangents {
		out.Tangents[i] = aff.TransformVec(v)
	}
	return out
}
