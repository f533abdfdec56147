// Package fontdup decides whether letterforms drawn by different outline
// definitions are visually the same.
//
// Two fonts frequently encode one shape differently: different curve
// control points, different starting points, different winding. Comparing
// drawing commands therefore tells us nothing. Instead,
// [ApproximatelyEqual] samples points along one outline and measures how
// far each sample is from the nearest point on the other, charging moderate
// disagreements against a budget and rejecting outright when any single
// sample strays past a hard ceiling. [GroupLetterforms] uses that verdict
// to partition many sources' outlines for one character into groups that
// look alike, and [SharedSets] aggregates per-character groups into the
// sets of sources that agree across a whole test string.
//
// Outlines are BezPath values from [honnef.co/go/curve]. Build an
// [IndexedPath] from each outline once and reuse it for every comparison
// involving that outline.
// The index stores each segment's control-point bounding box, letting
// nearest-point queries skip segments that cannot possibly hold the
// nearest point; that pruning is what makes the many thousands of queries
// issued by a grouping run affordable.
//
// Thresholds ([Rules]) are expressed relative to a 1000 units-per-em grid;
// scale them with [Rules.ForUpem] for fonts designed on another grid.
package fontdup
