package fontdup

// Rules are the thresholds that decide whether two letterforms count as
// the same shape. All three values are relative to a 1000 units-per-em
// grid; use [Rules.ForUpem] to rescale them for another grid.
//
// Equivalence ≤ Error is assumed, not enforced.
type Rules struct {
	// Equivalence is how near the nearest point must be to count as the
	// same. The default seems shockingly high but reflects actual observed
	// results: even very visually similar families have diffs up to 2.5 or
	// so.
	Equivalence float64
	// Budget is the total squared separation a comparison may accumulate
	// over samples that land between Equivalence and Error before the
	// letterforms are considered different.
	Budget float64
	// Error is the hard deck: any single sample further apart than this
	// makes the letterforms different, regardless of remaining budget.
	Error float64
}

// DefaultRules returns the thresholds tuned against fonts on a 1000
// units-per-em grid.
func DefaultRules() Rules {
	return Rules{Equivalence: 2.0, Budget: 100.0, Error: 25.0}
}

// ForUpem rescales r for a font designed on a upem grid. The thresholds
// are tuned against a 1000-unit em square; other grid resolutions need
// proportionally larger absolute tolerances to express the same visual
// tolerance.
func (r Rules) ForUpem(upem uint16) Rules {
	if upem == 1000 {
		return r
	}
	scale := float64(upem) / 1000.0
	return Rules{
		Equivalence: r.Equivalence * scale,
		Budget:      r.Budget * scale,
		Error:       r.Error * scale,
	}
}
