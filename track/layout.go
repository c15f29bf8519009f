package track

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"github.com/pytile/bezier"
)

// Endpoint is a place on a tile's edge where track may start or end.
type Endpoint struct {
	Point bezier.Point
	// Direction is the unit vector pointing from the edge into the tile.
	Direction bezier.Vec2
}

// parallelEpsilon is the tolerance for treating two unit vectors as
// parallel.
const parallelEpsilon = 1e-9

// Connect returns the control points of the track joining a and b.
//
// Endpoints that face each other across a straight line are joined by a
// straight segment. Otherwise the handles extend curveFactor into the tile
// along each endpoint's direction.
func Connect(a, b Endpoint, curveFactor float64) bezier.ControlPoints {
	chord := b.Point.Sub(a.Point)
	opposed := math.Abs(a.Direction.Dot(b.Direction)+1) <= parallelEpsilon
	if opposed && math.Abs(a.Direction.Cross(chord)) <= parallelEpsilon*max(1, chord.Hypot()) {
		return bezier.ControlPoints{a.Point, b.Point}
	}
	return bezier.ControlPoints{
		a.Point,
		a.Point.Translate(a.Direction.Mul(curveFactor)),
		b.Point.Translate(b.Direction.Mul(curveFactor)),
		b.Point,
	}
}

// Sleeper is a single sleeper, a rectangle across the track.
type Sleeper struct {
	// Center lies on the track's center line.
	Center bezier.Point
	// Corners run clockwise in a y-up system, starting behind the
	// center on the right-hand side of the track.
	Corners [4]bezier.Point
}

// Layout is the geometry of one track segment.
type Layout struct {
	// Curve is the sampled center line.
	Curve bezier.SampledCurve
	// Length is the length of the center line.
	Length   float64
	Rails    [2]bezier.Polyline
	Sleepers []Sleeper
	// Ballast is the closed outline of the ballast bed.
	Ballast bezier.Polyline
}

// Build computes the layout of the track segment described by cp.
func (p Profile) Build(cp bezier.ControlPoints) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	d := p.Dimensions()
	sc, err := bezier.Sample(cp, p.Steps)
	if err != nil {
		return Layout{}, errors.Wrap(err, "could not sample track")
	}
	pl := sc.Polyline()
	stations, err := pl.Spaced(d.SleeperSpacing)
	if err != nil {
		return Layout{}, errors.Wrap(err, "could not place sleepers")
	}

	l := Layout{
		Curve:  sc,
		Length: pl.Length(),
		Rails: [2]bezier.Polyline{
			sc.Offset(d.RailSpacing),
			sc.Offset(-d.RailSpacing),
		},
		Sleepers: make([]Sleeper, len(stations)),
		Ballast:  sc.Outline(d.BallastWidth),
	}
	for i, s := range stations {
		l.Sleepers[i] = sleeperAt(s, d.SleeperWidth, d.SleeperLength)
	}
	bezier.Logger().Debug("built track layout",
		slog.Int("samples", len(sc.Points)),
		slog.Float64("length", l.Length),
		slog.Int("sleepers", len(l.Sleepers)))
	return l, nil
}

func sleeperAt(s bezier.Station, width, length float64) Sleeper {
	back := s.Point.Translate(s.Direction.Mul(-0.5 * width))
	front := s.Point.Translate(s.Direction.Mul(0.5 * width))
	return Sleeper{
		Center: s.Point,
		Corners: [4]bezier.Point{
			bezier.OffsetAt(back, s.Direction, -length),
			bezier.OffsetAt(back, s.Direction, length),
			bezier.OffsetAt(front, s.Direction, length),
			bezier.OffsetAt(front, s.Direction, -length),
		},
	}
}

// Project maps every point of the layout through aff, typically
// [bezier.IsoProjection] on the way to the screen.
func (l Layout) Project(aff bezier.Affine) Layout {
	out := Layout{
		Curve:    l.Curve.Transform(aff),
		Length:   l.Length,
		Rails:    [2]bezier.Polyline{l.Rails[0].Transform(aff), l.Rails[1].Transform(aff)},
		Sleepers: make([]Sleeper, len(l.Sleepers)),
		Ballast:  l.Ballast.Transform(aff),
	}
	for i, s := range l.Sleepers {
		out.Sleepers[i].Center = s.Center.Transform(aff)
		for j, c := range s.Corners {
			out.Sleepers[i].Corners[j] = c.Transform(aff)
		}
	}
	return out
}
