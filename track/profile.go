// Package track turns Bézier track segments into the geometry of a railway
// track: rails, sleepers and the ballast bed.
//
// All dimensions derive from a [Profile], an explicit configuration value
// whose multipliers are relative to the tile size. Profiles are stored as
// TOML.
package track

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/pytile/bezier"
)

// Profile holds the track dimensions relative to the tile size.
//
// TrackWidth and CurveFactor are fractions of TileSize. The remaining track
// dimensions are multiples of the absolute track width, and CurveMultiplier
// is a multiple of the absolute curve factor.
type Profile struct {
	TileSize float64 `toml:"tile_size"`
	// Steps is the number of forward-difference steps per curved segment.
	Steps int `toml:"steps"`

	TrackWidth     float64 `toml:"track_width"`
	TrackSpacing   float64 `toml:"track_spacing"`
	SleeperSpacing float64 `toml:"sleeper_spacing"`
	SleeperWidth   float64 `toml:"sleeper_width"`
	SleeperLength  float64 `toml:"sleeper_length"`
	RailSpacing    float64 `toml:"rail_spacing"`
	RailWidth      float64 `toml:"rail_width"`
	BallastWidth   float64 `toml:"ballast_width"`

	CurveFactor     float64 `toml:"curve_factor"`
	CurveMultiplier float64 `toml:"curve_multiplier"`
}

// DefaultProfile returns the standard gauge profile for 128 pixel tiles.
func DefaultProfile() Profile {
	return Profile{
		TileSize: 128,
		Steps:    bezier.DefaultSteps,

		TrackWidth:     0.05,
		TrackSpacing:   2.0,
		SleeperSpacing: 0.75,
		SleeperWidth:   0.3,
		SleeperLength:  1.5,
		RailSpacing:    0.9,
		RailWidth:      0.2,
		BallastWidth:   2.3,

		CurveFactor:     0.3,
		CurveMultiplier: 0.02,
	}
}

// Validate reports whether all dimensions are usable: every multiplier
// must be positive and finite, and so must the absolute dimensions they
// resolve to.
func (p Profile) Validate() error {
	if p.Steps < 1 {
		return errors.Errorf("steps must be at least 1, got %d", p.Steps)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"tile_size", p.TileSize},
		{"track_width", p.TrackWidth},
		{"track_spacing", p.TrackSpacing},
		{"sleeper_spacing", p.SleeperSpacing},
		{"sleeper_width", p.SleeperWidth},
		{"sleeper_length", p.SleeperLength},
		{"rail_spacing", p.RailSpacing},
		{"rail_width", p.RailWidth},
		{"ballast_width", p.BallastWidth},
		{"curve_factor", p.CurveFactor},
		{"curve_multiplier", p.CurveMultiplier},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 1) {
			return errors.Errorf("%s must be positive and finite, got %g", f.name, f.v)
		}
	}

	// Multipliers that are fine on their own can still overflow or
	// underflow once resolved against the tile size.
	d := p.Dimensions()
	resolved := []struct {
		name string
		v    float64
	}{
		{"track_spacing", d.TrackSpacing},
		{"sleeper_spacing", d.SleeperSpacing},
		{"sleeper_width", d.SleeperWidth},
		{"sleeper_length", d.SleeperLength},
		{"rail_spacing", d.RailSpacing},
		{"rail_width", d.RailWidth},
		{"ballast_width", d.BallastWidth},
		{"curve_factor", d.CurveFactor},
		{"curve_multiplier", d.CurveMultiplier},
	}
	for _, f := range resolved {
		if !(f.v > 0) || math.IsInf(f.v, 1) {
			return errors.Errorf("%s resolves to %g at tile size %g", f.name, f.v, p.TileSize)
		}
	}
	return nil
}

// LoadProfile reads a TOML profile from r. Keys missing from the document
// keep their values from [DefaultProfile]; unknown keys are an error.
func LoadProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Profile{}, errors.Wrap(err, "could not decode track profile")
	}
	if err := p.Validate(); err != nil {
		return Profile{}, errors.Wrap(err, "invalid track profile")
	}
	return p, nil
}

// LoadProfileFile reads a TOML profile from the named file.
func LoadProfileFile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrap(err, "could not read track profile")
	}
	return LoadProfile(bytes.NewReader(b))
}

// Encode writes p to w as TOML.
func (p Profile) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(p), "could not encode track profile")
}

// Dimensions are absolute track dimensions, in the same units as the tile
// size.
type Dimensions struct {
	TrackSpacing   float64
	SleeperSpacing float64
	SleeperWidth   float64
	SleeperLength  float64
	RailSpacing    float64
	RailWidth      float64
	BallastWidth   float64

	CurveFactor     float64
	CurveMultiplier float64
}

// Dimensions resolves the profile's multipliers against its tile size.
// Rails are never thinner than one unit.
func (p Profile) Dimensions() Dimensions {
	trackWidth := p.TileSize * p.TrackWidth
	curveFactor := p.TileSize * p.CurveFactor
	return Dimensions{
		TrackSpacing:    trackWidth * p.TrackSpacing,
		SleeperSpacing:  trackWidth * p.SleeperSpacing,
		SleeperWidth:    trackWidth * p.SleeperWidth,
		SleeperLength:   trackWidth * p.SleeperLength,
		RailSpacing:     trackWidth * p.RailSpacing,
		RailWidth:       max(trackWidth*p.RailWidth, 1),
		BallastWidth:    trackWidth * p.BallastWidth,
		CurveFactor:     curveFactor,
		CurveMultiplier: curveFactor * p.CurveMultiplier,
	}
}
