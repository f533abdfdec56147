package fontdup

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRulesForUpemIdentity(t *testing.T) {
	r := DefaultRules()
	diff(t, r, r.ForUpem(1000))
}

func TestRulesForUpem(t *testing.T) {
	r := DefaultRules()
	want := Rules{Equivalence: 4.096, Budget: 204.8, Error: 51.2}
	diff(t, want, r.ForUpem(2048), cmpopts.EquateApprox(0, 1e-9))

	want = Rules{Equivalence: 1.0, Budget: 50.0, Error: 12.5}
	diff(t, want, r.ForUpem(500), cmpopts.EquateApprox(0, 1e-9))
}
