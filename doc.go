// Package bezier provides the curve geometry behind railway track layouts:
// sampling, measuring, subdividing and projecting onto planar cubic Bézier
// curves.
//
// The package produces geometric data only. Drawing rails, sleepers and
// ballast, handling input and storing layouts are the business of its
// callers.
//
// # Control points
//
// Track segments are described by [ControlPoints]. Two points describe a
// straight segment, four points a cubic Bézier whose interior points are the
// tangent handles at either end. Operations that require one of these two
// shapes report [ErrInvalidControlPointCount] for anything else.
//
// # Sampling
//
// [Sample] turns a segment into a [SampledCurve]: points at uniformly spaced
// parameter values together with the (unnormalized) derivative at each. Cubics
// are sampled by forward differencing, which needs a constant number of
// additions per sample. [ControlPoints.Eval] and [ControlPoints.Subdivide]
// use de Casteljau's algorithm instead and work for Béziers of any degree.
//
// # Arc length
//
// A sampled curve's points form a [Polyline], whose [Polyline.Length]
// approximates the curve's arc length from below and converges as the number
// of steps grows. [Polyline.PointAtLength] inverts that relation and
// [Polyline.Spaced] distributes stations evenly along it.
//
// # Nearest points
//
// [NearestPoint] projects a point onto a segment by isolating the roots of a
// quintic in Bernstein form. Each query carries its own state, so queries may
// run concurrently; [NearestPoints] does exactly that for batches of points,
// and [HitTest] selects the curve under a cursor.
//
// # Errors
//
// Errors wrap one of the package's sentinel errors with context. Use
// errors.Is to test for [ErrInvalidControlPointCount], [ErrInvalidStepCount],
// [ErrNotFound], [ErrDegenerateCurve] and [ErrInvalidSpacing].
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog] logger
// that receives solver diagnostics.
package bezier
