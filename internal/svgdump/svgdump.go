// Package svgdump renders diagnostic overlays: one SVG per tested
// character, with every source's outline drawn translucently on top of
// the others so disagreements are visible at a glance.
package svgdump

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"honnef.co/go/curve"

	"github.com/fontwork/fontdup"
)

// Dump writes one SVG per character into dir. Characters whose sources
// split into more than one group get an "-inconsistent" filename suffix.
func Dump(dir string, byChar map[rune][]*fontdup.Group) error {
	for c, groups := range byChar {
		if err := dumpChar(dir, c, groups); err != nil {
			return err
		}
	}
	return nil
}

func dumpChar(dir string, c rune, groups []*fontdup.Group) error {
	var paths []curve.BezPath
	for _, g := range groups {
		for _, ip := range g.Members {
			if !ip.IsEmpty() {
				paths = append(paths, ip.Path())
			}
		}
	}
	if len(paths) == 0 {
		return nil
	}

	viewbox := paths[0].BoundingBox()
	for _, p := range paths[1:] {
		viewbox = viewbox.Union(p.BoundingBox())
	}
	markerRadius := viewbox.Width() * 0.02
	margin := 0.1 * max(viewbox.Width(), viewbox.Height())

	suffix := ""
	if len(groups) > 1 {
		suffix = "-inconsistent"
	}
	f, err := os.Create(filepath.Join(dir, fileName(c, suffix)))
	if err != nil {
		return err
	}
	canvas := svg.New(f)
	w := int(math.Ceil(viewbox.Width() + 2*margin))
	h := int(math.Ceil(viewbox.Height() + 2*margin))
	canvas.Startview(w, h,
		int(math.Floor(viewbox.MinX()-margin)),
		int(math.Floor(viewbox.MinY()-margin)),
		w, h)
	for _, p := range paths {
		canvas.Path(p.SVG(curve.SVGOptions{}), "opacity:0.25")
	}
	// Mark where each outline starts drawing; identical shapes often
	// differ only here.
	for _, p := range paths {
		if el := p[0]; el.Kind == curve.MoveToKind {
			canvas.Circle(int(math.Round(el.P0.X)), int(math.Round(el.P0.Y)),
				int(math.Round(markerRadius)), "fill:darkblue;opacity:0.25")
		}
	}
	canvas.End()
	return f.Close()
}

// fileName names the dump after the character itself where that is a
// sane file name, falling back to the codepoint.
func fileName(c rune, suffix string) string {
	switch c {
	case '/', '\\', ':', '.':
		return fmt.Sprintf("u%04X%s.svg", c, suffix)
	}
	return fmt.Sprintf("%c%s.svg", c, suffix)
}
