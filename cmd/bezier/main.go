// Command bezier exposes the track geometry engine on the command line. Every
// subcommand prints its result as JSON on standard output.
//
// Control points are given as a space separated list of x,y pairs:
//
//	bezier length --points "0,64 38.4,64 64,38.4 64,0"
//	bezier track --points "0,64 128,64" --profile narrow.toml --iso
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pytile/bezier"
	"github.com/pytile/bezier/track"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		slog.Error("bezier failed", "err", err)
		os.Exit(1)
	}
}

// xy is the JSON form of points and vectors.
type xy [2]float64

func pointXY(p bezier.Point) xy { return xy{p.X, p.Y} }
func vecXY(v bezier.Vec2) xy    { return xy{v.X, v.Y} }

func polylineXY(pl []bezier.Point) []xy {
	out := make([]xy, len(pl))
	for i, p := range pl {
		out[i] = pointXY(p)
	}
	return out
}

// parsePoint parses a single "x,y" pair.
func parsePoint(s string) (bezier.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return bezier.Point{}, errors.Errorf("malformed point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return bezier.Point{}, errors.Wrapf(err, "malformed point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return bezier.Point{}, errors.Wrapf(err, "malformed point %q", s)
	}
	p := bezier.Pt(x, y)
	if p.IsInf() || p.IsNaN() {
		return bezier.Point{}, errors.Errorf("point %q is not finite", s)
	}
	return p, nil
}

// parseControlPoints parses a whitespace separated list of x,y pairs.
func parseControlPoints(s string) (bezier.ControlPoints, error) {
	var cp bezier.ControlPoints
	for _, f := range strings.Fields(s) {
		p, err := parsePoint(f)
		if err != nil {
			return nil, err
		}
		cp = append(cp, p)
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return cp, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "could not write result")
}

// Flags carry parse state, so every subcommand gets its own instances.
func pointsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "points",
		Aliases:  []string{"p"},
		Usage:    "control points as space separated x,y pairs, 2 or 4 of them",
		Required: true,
	}
}

func stepsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "steps",
		Aliases: []string{"n"},
		Usage:   "number of forward-difference steps",
		Value:   bezier.DefaultSteps,
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	controlPoints := func(cmd *cli.Command) (bezier.ControlPoints, error) {
		return parseControlPoints(cmd.String("points"))
	}
	sampled := func(cmd *cli.Command) (bezier.SampledCurve, error) {
		cp, err := controlPoints(cmd)
		if err != nil {
			return bezier.SampledCurve{}, err
		}
		return bezier.SampleOpt(cp, int(cmd.Int("steps")), bezier.SampleOptions{
			ReverseStraight: cmd.Bool("reverse-straight"),
		})
	}

	return &cli.Command{
		Name:      "bezier",
		Usage:     "Sample, measure and project track segments",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log solver diagnostics to standard error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				bezier.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "sample",
				Usage: "Print points and tangents of a segment",
				Flags: []cli.Flag{
					pointsFlag(),
					stepsFlag(),
					&cli.BoolFlag{
						Name:  "reverse-straight",
						Usage: "emit straight segments end point first",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					sc, err := sampled(cmd)
					if err != nil {
						return err
					}
					tangents := make([]xy, len(sc.Tangents))
					for i, v := range sc.Tangents {
						tangents[i] = vecXY(v)
					}
					return writeJSON(stdout, struct {
						Points   []xy `json:"points"`
						Tangents []xy `json:"tangents"`
					}{polylineXY(sc.Points), tangents})
				},
			},
			{
				Name:  "length",
				Usage: "Print the approximate arc length of a segment",
				Flags: []cli.Flag{pointsFlag(), stepsFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					sc, err := sampled(cmd)
					if err != nil {
						return err
					}
					return writeJSON(stdout, struct {
						Length float64 `json:"length"`
					}{sc.Polyline().Length()})
				},
			},
			{
				Name:  "at-length",
				Usage: "Print the point at a given arc length along a segment",
				Flags: []cli.Flag{
					pointsFlag(),
					stepsFlag(),
					&cli.Float64Flag{
						Name:     "length",
						Aliases:  []string{"l"},
						Usage:    "arc length measured from the segment's start",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					sc, err := sampled(cmd)
					if err != nil {
						return err
					}
					p, err := sc.Polyline().PointAtLength(cmd.Float64("length"))
					if err != nil {
						return err
					}
					return writeJSON(stdout, struct {
						Point xy `json:"point"`
					}{pointXY(p)})
				},
			},
			{
				Name:  "nearest",
				Usage: "Print the point on a segment closest to a query point",
				Flags: []cli.Flag{
					pointsFlag(),
					&cli.StringFlag{
						Name:     "to",
						Usage:    "query point as x,y",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cp, err := controlPoints(cmd)
					if err != nil {
						return err
					}
					q, err := parsePoint(cmd.String("to"))
					if err != nil {
						return err
					}
					t, distSq, err := bezier.NearestParam(q, cp)
					if err != nil {
						return err
					}
					return writeJSON(stdout, struct {
						T        float64 `json:"t"`
						Point    xy      `json:"point"`
						Distance float64 `json:"distance"`
					}{t, pointXY(cp.Eval(t)), math.Sqrt(distSq)})
				},
			},
			{
				Name:  "split",
				Usage: "Split a segment at a parameter value",
				Flags: []cli.Flag{
					pointsFlag(),
					&cli.Float64Flag{
						Name:  "t",
						Usage: "parameter in [0, 1] at which to split",
						Value: 0.5,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cp, err := controlPoints(cmd)
					if err != nil {
						return err
					}
					left, right := cp.Subdivide(cmd.Float64("t"))
					return writeJSON(stdout, struct {
						Left  []xy `json:"left"`
						Right []xy `json:"right"`
					}{polylineXY(left), polylineXY(right)})
				},
			},
			{
				Name:  "track",
				Usage: "Print the rails, sleepers and ballast of a track segment",
				Flags: []cli.Flag{
					pointsFlag(),
					&cli.StringFlag{
						Name:  "profile",
						Usage: "TOML track profile; defaults to standard gauge on 128 pixel tiles",
					},
					&cli.BoolFlag{
						Name:  "iso",
						Usage: "project the layout into isometric screen space",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cp, err := controlPoints(cmd)
					if err != nil {
						return err
					}
					profile := track.DefaultProfile()
					if path := cmd.String("profile"); path != "" {
						if profile, err = track.LoadProfileFile(path); err != nil {
							return err
						}
					}
					l, err := profile.Build(cp)
					if err != nil {
						return err
					}
					if cmd.Bool("iso") {
						l = l.Project(bezier.IsoProjection)
					}
					return writeJSON(stdout, layoutJSON(l))
				},
			},
			{
				Name:  "profile",
				Usage: "Print the default track profile as TOML",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return track.DefaultProfile().Encode(stdout)
				},
			},
		},
	}
}

type sleeperJSON struct {
	Center  xy    `json:"center"`
	Corners [4]xy `json:"corners"`
}

type trackJSON struct {
	Length   float64       `json:"length"`
	Center   []xy          `json:"center"`
	Rails    [2][]xy       `json:"rails"`
	Sleepers []sleeperJSON `json:"sleepers"`
	Ballast  []xy          `json:"ballast"`
}

func layoutJSON(l track.Layout) trackJSON {
	out := trackJSON{
		Length:   l.Length,
		Center:   polylineXY(l.Curve.Points),
		Rails:    [2][]xy{polylineXY(l.Rails[0]), polylineXY(l.Rails[1])},
		Sleepers: make([]sleeperJSON, len(l.Sleepers)),
		Ballast:  polylineXY(l.Ballast),
	}
	for i, s := range l.Sleepers {
		out.Sleepers[i].Center = pointXY(s.Center)
		for j, c := range s.Corners {
			out.Sleepers[i].Corners[j] = pointXY(c)
		}
	}
	return out
}
