package bezier

import "github.com/pkg/errors"

// Errors reported by the engine. They are wrapped with additional context;
// use errors.Is to test for them.
var (
	// ErrInvalidControlPointCount is returned when a control point sequence
	// has a length other than 2 or 4.
	ErrInvalidControlPointCount = errors.New("control points must number 2 or 4")
	// ErrInvalidStepCount is returned when sampling with fewer than one step.
	ErrInvalidStepCount = errors.New("step count must be at least 1")
	// ErrNotFound is returned when a requested arc length lies beyond the
	// end of a curve.
	ErrNotFound = errors.New("length not on curve")
	// ErrDegenerateCurve is returned when a nearest point query hits a
	// near-singular line intersection, as happens for curves whose control
	// points coincide.
	ErrDegenerateCurve = errors.New("degenerate curve")
	// ErrInvalidSpacing is returned when spacing stations with an interval
	// that is not positive and finite, or that yields too many stations.
	ErrInvalidSpacing = errors.New("spacing must be positive and finite")
)
