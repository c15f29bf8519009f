package bezier_test

import (
	"fmt"

	"github.com/pytile/bezier"
)

func ExampleSample() {
	cp := bezier.ControlPoints{
		bezier.Pt(0, 0),
		bezier.Pt(0, 100),
		bezier.Pt(100, 100),
		bezier.Pt(100, 0),
	}
	sc, err := bezier.Sample(cp, 2)
	if err != nil {
		panic(err)
	}
	for i, p := range sc.Points {
		fmt.Println(p, sc.Tangents[i])
	}
	// Output:
	// (0, 0) ⟨0, 150⟩
	// (50, 75) ⟨75, 0⟩
	// (100, 0) ⟨0, -150⟩
}

func ExampleNearestPoint() {
	cp := bezier.ControlPoints{
		bezier.Pt(0, 0),
		bezier.Pt(0, 100),
		bezier.Pt(100, 100),
		bezier.Pt(100, 0),
	}
	p, err := bezier.NearestPoint(bezier.Pt(50, 80), cp)
	if err != nil {
		panic(err)
	}
	fmt.Printf("(%.3f, %.3f)\n", p.X, p.Y)
	// Output:
	// (50.000, 75.000)
}

func ExamplePolyline_Spaced() {
	pl := bezier.Polyline{bezier.Pt(0, 0), bezier.Pt(10, 0)}
	stations, err := pl.Spaced(3)
	if err != nil {
		panic(err)
	}
	for _, s := range stations {
		fmt.Println(s.Point)
	}
	// Output:
	// (0, 0)
	// (2.5, 0)
	// (5, 0)
	// (7.5, 0)
	// (10, 0)
}
