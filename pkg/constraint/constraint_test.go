package constraint

import (
	"testing"

	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

func stressed(mono bool) *syllable.Syllable {
	s := &syllable.Syllable{Stress: syllable.Primary, SyllablesInWord: 2}
	if mono {
		s.SyllablesInWord = 1
	}

	return s
}

func unstressed() *syllable.Syllable {
	return &syllable.Syllable{Stress: syllable.Unstressed, SyllablesInWord: 2}
}

func TestDefaultRegistryNamesInSpecOrder(t *testing.T) {
	r := DefaultRegistry()

	want := []string{WPeak, WStress, SUnstress, FootSize, WordBridge, StrongEdge}
	got := r.Names()

	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordBridgeAndStrongEdgeAreTheSameFunction(t *testing.T) {
	r := DefaultRegistry()

	wb, _ := r.Lookup(WordBridge)
	se, _ := r.Lookup(StrongEdge)

	ctx := PositionContext{
		MeterVal:     's',
		Slots:        []*syllable.Syllable{{WordTokenID: 2, PositionInWord: 1, SyllablesInWord: 2}},
		HasPrev:      true,
		PrevMeterVal: 'w',
		PrevLastSlot: &syllable.Syllable{WordTokenID: 1, PositionInWord: 0, SyllablesInWord: 1},
	}

	got1 := wb(ctx)
	got2 := se(ctx)

	if got1[0] != 1 || got2[0] != 1 {
		t.Fatalf("expected both word_bridge and strong_edge to flag a mid-word bridge: %v %v", got1, got2)
	}
}

// TestSimpleIamb covers spec.md §8 scenario 1: alternating stress under a
// binary iambic meter with {w_stress, s_unstress} should have zero
// violations throughout.
func TestSimpleIamb(t *testing.T) {
	syls := []*syllable.Syllable{unstressed(), stressed(false), unstressed(), stressed(false)}

	for i, meterVal := range []byte{'w', 's', 'w', 's'} {
		ctx := PositionContext{MeterVal: meterVal, Slots: syls[i : i+1], MaxSlots: 1}

		if got := wStress(ctx); got[0] != 0 && meterVal == 'w' {
			t.Errorf("slot %d: unexpected w_stress violation for unstressed syllable", i)
		}

		if got := sUnstress(ctx); got[0] != 0 && meterVal == 's' {
			t.Errorf("slot %d: unexpected s_unstress violation for stressed syllable", i)
		}
	}
}

// TestTrochaicMismatch covers spec.md §8 scenario 2: stress pattern
// [+,-,+,-] under the same iambic meter should violate w_stress at the w
// slots (0, 2) and s_unstress at the s slots (1, 3).
func TestTrochaicMismatch(t *testing.T) {
	syls := []*syllable.Syllable{stressed(false), unstressed(), stressed(false), unstressed()}
	meters := []byte{'w', 's', 'w', 's'}

	var total int

	for i, meterVal := range meters {
		ctx := PositionContext{MeterVal: meterVal, Slots: syls[i : i+1], MaxSlots: 1}

		total += int(wStress(ctx)[0])
		total += int(sUnstress(ctx)[0])
	}

	if total != 4 {
		t.Fatalf("expected 4 total violations across w_stress+s_unstress, got %d", total)
	}
}

func TestWPeakFlagsLocalMaximum(t *testing.T) {
	left := unstressed()
	peak := stressed(false)
	right := unstressed()
	left.WordTokenID, peak.WordTokenID, right.WordTokenID = 1, 1, 1
	left.PositionInWord, peak.PositionInWord, right.PositionInWord = 0, 1, 2
	left.SyllablesInWord, peak.SyllablesInWord, right.SyllablesInWord = 3, 3, 3

	ctx := PositionContext{
		MeterVal:     'w',
		Slots:        []*syllable.Syllable{peak},
		HasPrev:      true,
		PrevLastSlot: left,
		HasNext:      true,
		NextSlot:     right,
	}

	if got := wPeak(ctx); got[0] != 1 {
		t.Errorf("expected w_peak to flag a local stress maximum flanked by unstressed neighbours, got %v", got)
	}

	if got := wStress(ctx); got[0] != 1 {
		t.Errorf("expected w_stress (the coarser constraint) to flag it too, got %v", got)
	}
}

func TestWPeakSparesNonLocalMaximum(t *testing.T) {
	left := stressed(false)
	peak := stressed(false)
	left.WordTokenID, peak.WordTokenID = 1, 1

	ctx := PositionContext{
		MeterVal:     'w',
		Slots:        []*syllable.Syllable{peak},
		HasPrev:      true,
		PrevLastSlot: left,
	}

	if got := wPeak(ctx); got[0] != 0 {
		t.Errorf("expected w_peak not to flag a stressed w slot next to another stressed same-word syllable, got %v", got)
	}
}

func TestSUnstressExemptsWeakMonosyllable(t *testing.T) {
	weak := unstressed()
	weak.IsWeak = true
	weak.SyllablesInWord = 1

	ctx := PositionContext{MeterVal: 's', Slots: []*syllable.Syllable{weak}}

	if got := sUnstress(ctx); got[0] != 0 {
		t.Errorf("expected s_unstress to exempt is_weak monosyllables, got %v", got)
	}
}

func TestFootSizeFlagsOversizedPosition(t *testing.T) {
	ctx := PositionContext{
		MeterVal: 'w',
		Slots:    []*syllable.Syllable{unstressed(), unstressed(), unstressed()},
		MaxSlots: 2,
	}

	got := footSize(ctx)
	for i, v := range got {
		if v != 1 {
			t.Errorf("slot %d: expected foot_size violation, got %d", i, v)
		}
	}
}

func TestFootSizeAllowsWithinCap(t *testing.T) {
	ctx := PositionContext{MeterVal: 'w', Slots: []*syllable.Syllable{unstressed()}, MaxSlots: 2}

	if got := footSize(ctx); got[0] != 0 {
		t.Errorf("expected no foot_size violation within cap, got %v", got)
	}
}

func TestWordBridgeFlagsMidWordResumptionAfterBridge(t *testing.T) {
	bridged := &syllable.Syllable{WordTokenID: 1, PositionInWord: 0, SyllablesInWord: 1}
	resumed := &syllable.Syllable{WordTokenID: 2, PositionInWord: 1, SyllablesInWord: 2}

	ctx := PositionContext{
		MeterVal:     's',
		Slots:        []*syllable.Syllable{resumed},
		HasPrev:      true,
		PrevMeterVal: 'w',
		PrevLastSlot: bridged,
	}

	if got := wordBridge(ctx); got[0] != 1 {
		t.Errorf("expected word_bridge violation, got %v", got)
	}
}

func TestWordBridgeAllowsOrdinaryWordStart(t *testing.T) {
	bridged := &syllable.Syllable{WordTokenID: 1, PositionInWord: 0, SyllablesInWord: 1}
	freshStart := &syllable.Syllable{WordTokenID: 2, PositionInWord: 0, SyllablesInWord: 2}

	ctx := PositionContext{
		MeterVal:     's',
		Slots:        []*syllable.Syllable{freshStart},
		HasPrev:      true,
		PrevMeterVal: 'w',
		PrevLastSlot: bridged,
	}

	if got := wordBridge(ctx); got[0] != 0 {
		t.Errorf("expected no word_bridge violation when the s slot starts a fresh word, got %v", got)
	}
}

func TestConstraintsReturnOneFlagPerSlot(t *testing.T) {
	slots := []*syllable.Syllable{unstressed(), unstressed(), unstressed()}
	ctx := PositionContext{MeterVal: 'w', Slots: slots, MaxSlots: 2}

	for name, fn := range map[string]Func{
		WPeak:     wPeak,
		WStress:   wStress,
		SUnstress: sUnstress,
		FootSize:  footSize,
	} {
		if got := fn(ctx); len(got) != len(slots) {
			t.Errorf("%s: got %d flags, want %d", name, len(got), len(slots))
		}
	}
}

func TestBindConfigRejectsUnregisteredName(t *testing.T) {
	r := DefaultRegistry()

	cfg := meter.DefaultConfig()
	cfg.Shapes = []meter.Shape{"w", "s"}
	cfg.ConstraintNames = []string{WStress, "does_not_exist"}

	if err := r.BindConfig(cfg); err == nil {
		t.Fatalf("expected BindConfig to reject an unregistered constraint name")
	}
}

func TestBindConfigAcceptsRegisteredNames(t *testing.T) {
	r := DefaultRegistry()

	cfg := meter.DefaultConfig()
	cfg.Shapes = []meter.Shape{"w", "s"}
	cfg.ConstraintNames = []string{WStress, SUnstress, WordBridge, StrongEdge}

	if err := r.BindConfig(cfg); err != nil {
		t.Fatalf("expected BindConfig to accept registered names, got %v", err)
	}
}
