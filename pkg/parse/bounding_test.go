package parse

import (
	"testing"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// TestBoundingIncomparable builds two complete parses whose violation
// multisets each contain a constraint the other lacks, so neither bounds
// the other (spec.md §4.3's "tie in multiset comparison" edge case: both
// survive).
func TestBoundingIncomparable(t *testing.T) {
	cfg := iambicConfig()
	reg := constraint.DefaultRegistry()

	// a: w stressed (w_stress viol only), s also stressed (no s_unstress viol).
	a := New(matrixOf(syllable.Primary, syllable.Primary), cfg, reg)
	aw, _ := a.Extend(meter.Shape("w"))
	as, _ := aw.Extend(meter.Shape("s"))

	// b: w unstressed (no w_stress viol), s unstressed and not weak
	// (s_unstress viol only) — disjoint from a's violation set.
	b := New(matrixOf(syllable.Unstressed, syllable.Unstressed), cfg, reg)
	bw, _ := b.Extend(meter.Shape("w"))
	bs, _ := bw.Extend(meter.Shape("s"))

	if as == nil || bs == nil {
		t.Fatalf("unexpected nil extend")
	}

	if got := as.BoundingRelation(bs); got != Incomparable {
		t.Fatalf("expected Incomparable, got %v (a=%v b=%v)", got, as.ViolationBag(), bs.ViolationBag())
	}

	if as.Bounds(bs) || bs.Bounds(as) {
		t.Fatalf("neither parse should bound the other when incomparable")
	}
}
