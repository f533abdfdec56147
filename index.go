package fontdup

import (
	"math"

	"honnef.co/go/curve"
)

// nearestEpsilon is the accuracy passed to exact nearest-point solves.
const nearestEpsilon = 1e-7

// indexedSegment is a path segment plus everything the pruning in
// [IndexedPath.Nearest] needs to bound the segment's distance to a query
// point without solving for the true nearest point.
type indexedSegment struct {
	seg curve.PathSegment
	// bbox is the axis-aligned box of the segment's defining points, not
	// the tight curve bound. It is cheap and always contains the curve,
	// which is all the pruning needs.
	bbox    curve.Rect
	corners [4]curve.Point
	edges   [4]curve.Line
}

func indexSegment(seg curve.PathSegment) indexedSegment {
	bbox := curve.NewRectFromPoints(seg.P0, seg.P1)
	switch seg.Kind {
	case curve.QuadKind:
		bbox = bbox.UnionPoint(seg.P2)
	case curve.CubicKind:
		bbox = bbox.UnionPoint(seg.P2).UnionPoint(seg.P3)
	}
	corners := [4]curve.Point{
		curve.Pt(bbox.MinX(), bbox.MinY()),
		curve.Pt(bbox.MaxX(), bbox.MinY()),
		curve.Pt(bbox.MaxX(), bbox.MaxY()),
		curve.Pt(bbox.MinX(), bbox.MaxY()),
	}
	return indexedSegment{
		seg:     seg,
		bbox:    bbox,
		corners: corners,
		edges: [4]curve.Line{
			{P0: corners[0], P1: corners[1]},
			{P0: corners[1], P1: corners[2]},
			{P0: corners[2], P1: corners[3]},
			{P0: corners[3], P1: corners[0]},
		},
	}
}

// nearnessInterval bounds the squared distance from pt to the nearest
// point on the segment. The upper bound is the distance to the farthest
// box corner; the lower bound is zero inside the box and otherwise the
// distance to the box boundary, which the curve never leaves.
func (is *indexedSegment) nearnessInterval(pt curve.Point) (minD2, maxD2 float64) {
	for _, c := range is.corners {
		maxD2 = max(maxD2, pt.DistanceSquared(c))
	}
	if is.bbox.Contains(pt) {
		return 0, maxD2
	}
	minD2 = math.Inf(1)
	for _, e := range is.edges {
		d2, _ := e.Nearest(pt, nearestEpsilon)
		minD2 = min(minD2, d2)
	}
	return minD2, maxD2
}

// IndexedPath is an outline prepared for repeated nearest-point queries:
// the original path plus one precomputed bounding box per segment. Build
// it once per outline with [Index]; it is read-only afterwards.
type IndexedPath struct {
	path curve.BezPath
	segs []indexedSegment
}

// Index precomputes segment bounds for path.
func Index(path curve.BezPath) *IndexedPath {
	ip := &IndexedPath{path: path}
	for seg := range path.Segments() {
		ip.segs = append(ip.segs, indexSegment(seg))
	}
	return ip
}

// Path returns the indexed outline.
func (ip *IndexedPath) Path() curve.BezPath { return ip.path }

// IsEmpty reports whether the outline has no segments, i.e. nothing is
// actually drawn. A contour reduced to a stray point contributes
// MoveTo/ClosePath elements but no segments, so it counts as empty too.
func (ip *IndexedPath) IsEmpty() bool { return len(ip.segs) == 0 }

// Stats counts the work done by nearest-point queries. Queries with a low
// solve-to-prune ratio are the cheap ones.
type Stats struct {
	// Queries is the number of Nearest calls.
	Queries int
	// Solved is the number of exact per-segment nearest-point solves.
	Solved int
	// Pruned is the number of segments dismissed on bounds alone.
	Pruned int
}

// Scratch is the reusable working set for nearest-point queries. Passing
// it explicitly lets a caller reuse one allocation across the very many
// queries a comparison issues; its contents carry no meaning between
// calls and are cleared at the start of every query.
//
// A Scratch must not be shared between goroutines; give each worker its
// own.
type Scratch struct {
	Stats      Stats
	candidates []candidate
}

type candidate struct {
	idx          int
	minD2, maxD2 float64
}

// Nearest returns the point on the path nearest to pt. Ties between
// equally near segments go to whichever is solved first.
//
// Nearest panics if the path has no segments; asking for the nearest
// point on nothing is a caller bug, not a recoverable condition.
func (ip *IndexedPath) Nearest(pt curve.Point, scratch *Scratch) curve.Point {
	if len(ip.segs) == 0 {
		panic("fontdup: nearest-point query on a path with no segments")
	}
	scratch.Stats.Queries++
	cands := scratch.candidates[:0]

next:
	for i := range ip.segs {
		minD2, maxD2 := ip.segs[i].nearnessInterval(pt)
		// A candidate whose worst case beats this segment's best case
		// proves the segment can't hold the nearest point.
		for _, c := range cands {
			if c.maxD2 < minD2 {
				scratch.Stats.Pruned++
				continue next
			}
		}
		// Conversely, drop candidates this segment now rules out.
		n := 0
		for _, c := range cands {
			if c.minD2 <= maxD2 {
				cands[n] = c
				n++
			} else {
				scratch.Stats.Pruned++
			}
		}
		cands = append(cands[:n], candidate{idx: i, minD2: minD2, maxD2: maxD2})
	}

	// Only the surviving candidates pay for an exact solve.
	bestD2 := math.Inf(1)
	var best curve.Point
	for _, c := range cands {
		seg := ip.segs[c.idx].seg
		d2, t := seg.Nearest(pt, nearestEpsilon)
		scratch.Stats.Solved++
		if d2 < bestD2 {
			bestD2 = d2
			best = seg.Eval(t)
		}
	}
	scratch.candidates = cands
	return best
}
