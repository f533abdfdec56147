package fontio

import (
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func seg(op opentype.SegmentOp, args ...font.SegmentPoint) font.Segment {
	s := font.Segment{Op: op}
	copy(s.Args[:], args)
	return s
}

func p32(x, y float32) font.SegmentPoint {
	return font.SegmentPoint{X: x, Y: y}
}

func TestOutlineToPathClosesContours(t *testing.T) {
	// Two implicit contours, as glyf outlines arrive: no close ops.
	path := outlineToPath([]font.Segment{
		seg(opentype.SegmentOpMoveTo, p32(0, 0)),
		seg(opentype.SegmentOpLineTo, p32(10, 0)),
		seg(opentype.SegmentOpQuadTo, p32(10, 10), p32(0, 10)),
		seg(opentype.SegmentOpMoveTo, p32(2, 2)),
		seg(opentype.SegmentOpCubeTo, p32(4, 2), p32(4, 4), p32(2, 4)),
	})

	want := curve.BezPath{
		curve.MoveTo(curve.Pt(0, 0)),
		curve.LineTo(curve.Pt(10, 0)),
		curve.QuadTo(curve.Pt(10, 10), curve.Pt(0, 10)),
		curve.ClosePath(),
		curve.MoveTo(curve.Pt(2, 2)),
		curve.CubicTo(curve.Pt(4, 2), curve.Pt(4, 4), curve.Pt(2, 4)),
		curve.ClosePath(),
	}
	assert.Equal(t, want, path)
}

func TestOutlineToPathEmpty(t *testing.T) {
	assert.Empty(t, outlineToPath(nil))
}

func TestNormalizeFlipsAndGrounds(t *testing.T) {
	// A square sitting at (100, 100)..(200, 200) on a y-up font grid.
	var p curve.BezPath
	p.MoveTo(curve.Pt(100, 100))
	p.LineTo(curve.Pt(200, 100))
	p.LineTo(curve.Pt(200, 200))
	p.LineTo(curve.Pt(100, 200))
	p.ClosePath()

	got := normalize(p, 2.0)

	// Scaled by 2, y flipped, and translated so the control box's min
	// corner is the origin.
	cbox := got.ControlBox()
	assert.InDelta(t, 0, cbox.MinX(), 1e-9)
	assert.InDelta(t, 0, cbox.MinY(), 1e-9)
	assert.InDelta(t, 200, cbox.Width(), 1e-9)
	assert.InDelta(t, 200, cbox.Height(), 1e-9)

	// The square's top edge on the font grid is the path's low-y edge
	// after the flip.
	first := got[0]
	require.Equal(t, curve.MoveToKind, first.Kind)
	assert.InDelta(t, 0, first.P0.X, 1e-9)
	assert.InDelta(t, 200, first.P0.Y, 1e-9)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, normalize(nil, 1.0))
}

func TestMaxUpem(t *testing.T) {
	assert.EqualValues(t, 0, MaxUpem(nil))
	fonts := []*Font{{upem: 1000}, {upem: 2048}, {upem: 1024}}
	assert.EqualValues(t, 2048, MaxUpem(fonts))
}
