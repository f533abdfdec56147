package fontdup

import (
	"errors"
	"fmt"
)

// sampleSteps fixes the parameter grid at t = 0, 0.1, …, 1.0. Both
// endpoints are included, so endpoints shared by adjacent segments get
// sampled twice; the redundancy is harmless.
const sampleSteps = 10

// ErrEmptinessMismatch reports that exactly one of the compared outlines
// is empty. That usually means a glyph is missing from one font, not that
// anything was drawn differently, so callers may want to distinguish it
// from the geometric failures.
var ErrEmptinessMismatch = errors.New("one of the outlines is empty")

// BrokeHardDeckError reports that a single sample point was further from
// the other outline than the rules' error ceiling. No amount of remaining
// budget rescues the comparison.
type BrokeHardDeckError struct {
	Separation float64
	Rules      Rules
}

func (e *BrokeHardDeckError) Error() string {
	return fmt.Sprintf("%.2f exceeds the %.2f error limit", e.Separation, e.Rules.Error)
}

// BudgetExhaustedError reports that too many tolerably-distant samples
// accumulated: no single point broke the hard deck, but collectively the
// outlines are a materially different shape.
type BudgetExhaustedError struct {
	Rules Rules
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("exhausted the %.2f budget", e.Rules.Budget)
}

// ApproximatelyEqual reports whether two outlines draw the same shape,
// within rules. It is meant for non-adversarial, similar curves like
// letterforms; think the same I drawn with two different sets of drawing
// commands.
//
// Every segment of p is sampled at eleven fixed parameters and each
// sample is measured against the nearest point on other. Samples within
// Rules.Equivalence are free. A sample beyond Rules.Error fails the
// comparison immediately with [BrokeHardDeckError]. Anything in between
// deducts its squared separation from Rules.Budget, and overdrawing the
// budget fails with [BudgetExhaustedError].
//
// The comparison is not symmetric: samples come from p, nearest-point
// queries run against other. Swapping the arguments can change the
// verdict.
//
// A nil result means the outlines match. The three error values are
// ordinary decision outcomes, not failures; grouping produces them
// routinely.
func ApproximatelyEqual(p, other *IndexedPath, rules Rules, scratch *Scratch) error {
	if p.IsEmpty() != other.IsEmpty() {
		return ErrEmptinessMismatch
	}

	budget := rules.Budget
	for i := range p.segs {
		seg := p.segs[i].seg
		for step := 0; step <= sampleSteps; step++ {
			t := float64(step) / sampleSteps
			pt := seg.Eval(t)
			nearest := other.Nearest(pt, scratch)
			separation := pt.Distance(nearest)

			if separation <= rules.Equivalence {
				continue
			}
			if separation > rules.Error {
				return &BrokeHardDeckError{Separation: separation, Rules: rules}
			}
			budget -= separation * separation
			Logger().Debug("tolerably distant sample",
				"at", pt, "nearest", nearest,
				"separation", separation,
				"budget", budget, "of", rules.Budget)
			if budget < 0 {
				return &BudgetExhaustedError{Rules: rules}
			}
		}
	}
	return nil
}
