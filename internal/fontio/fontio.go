// Package fontio is the glue between font files and the comparison
// engine: it loads fonts, extracts per-character outlines on a common
// grid, and resolves which files and characters to test.
package fontio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"honnef.co/go/curve"
)

// Font is one loaded font file.
type Font struct {
	Path string

	font *font.Font
	upem uint16
}

// Load reads and parses a font file (TTF or OTF).
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Font{Path: path, font: face.Font, upem: face.Upem()}, nil
}

// LoadAll loads every path, failing on the first font that won't parse.
func LoadAll(paths []string) ([]*Font, error) {
	fonts := make([]*Font, 0, len(paths))
	for _, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}
	return fonts, nil
}

// Upem returns the font's design grid resolution in units per em.
func (f *Font) Upem() uint16 { return f.upem }

// MaxUpem returns the largest units-per-em among fonts. Comparison rules
// and cross-font scaling are based on it. Zero when fonts is empty.
func MaxUpem(fonts []*Font) uint16 {
	var m uint16
	for _, f := range fonts {
		m = max(m, f.upem)
	}
	return m
}

// Letterform extracts c's outline from f, scaled by uniformScale with y
// flipped into a y-down grid, then translated so the control box's
// minimum corner sits at the origin. Grounding the box means a mere
// translation between two fonts doesn't read as a shape difference.
//
// The result is empty when f's character map has no entry for c.
//
// Letterform is safe for concurrent use: the parsed font is read-only
// and each call builds its own short-lived face.
func (f *Font) Letterform(c rune, uniformScale float64) curve.BezPath {
	gid, ok := f.font.NominalGlyph(c)
	if !ok {
		return nil
	}
	// font.Face caches glyph data and is not safe for concurrent use;
	// font.NewFace is cheap enough to do per call.
	face := font.NewFace(f.font)
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil
	}
	return normalize(outlineToPath(outline.Segments), uniformScale)
}

// outlineToPath converts parsed glyph segments into a Bézier path.
// Contours arrive implicitly closed; emit the ClosePath ourselves so
// that each contour's closing edge takes part in comparisons.
func outlineToPath(segs []font.Segment) curve.BezPath {
	var path curve.BezPath
	for _, s := range segs {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if len(path) > 0 {
				path.ClosePath()
			}
			path.MoveTo(pt(s.Args[0]))
		case opentype.SegmentOpLineTo:
			path.LineTo(pt(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			path.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			path.CubicTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if len(path) > 0 {
		path.ClosePath()
	}
	return path
}

func pt(p font.SegmentPoint) curve.Point {
	return curve.Pt(float64(p.X), float64(p.Y))
}

func normalize(path curve.BezPath, uniformScale float64) curve.BezPath {
	if len(path) == 0 {
		return path
	}
	path.ApplyTransform(curve.Scale(uniformScale, -uniformScale))
	cbox := path.ControlBox()
	if cbox.MinX() != 0 || cbox.MinY() != 0 {
		path.ApplyTransform(curve.Translate(curve.Vec(-cbox.MinX(), -cbox.MinY())))
	}
	return path
}
