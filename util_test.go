package fontdup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 curve.Point, p1 curve.Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Errorf("%v != %v (within %g)", p0, p1, epsilon)
	}
}

// blobPath is a closed single-contour outline using all three segment
// kinds.
func blobPath() curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.LineTo(curve.Pt(100, 0))
	p.QuadTo(curve.Pt(150, 50), curve.Pt(100, 100))
	p.CubicTo(curve.Pt(80, 160), curve.Pt(20, 160), curve.Pt(0, 100))
	p.ClosePath()
	return p
}

// ringPath is a two-contour outline, a square with a square hole.
func ringPath() curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.LineTo(curve.Pt(200, 0))
	p.LineTo(curve.Pt(200, 200))
	p.LineTo(curve.Pt(0, 200))
	p.ClosePath()
	p.MoveTo(curve.Pt(50, 50))
	p.LineTo(curve.Pt(50, 150))
	p.LineTo(curve.Pt(150, 150))
	p.LineTo(curve.Pt(150, 50))
	p.ClosePath()
	return p
}

// hline is a single horizontal line segment from (0, y) to (w, y).
func hline(y, w float64) curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, y))
	p.LineTo(curve.Pt(w, y))
	return p
}
