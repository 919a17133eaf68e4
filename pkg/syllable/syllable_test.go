package syllable

import "testing"

func TestIsStressedPrimary(t *testing.T) {
	s := &Syllable{Stress: Primary}

	if !s.IsStressed(SecondaryAsUnstressed) {
		t.Fatalf("primary stress must count as stressed regardless of secondary mode")
	}
}

func TestSecondaryStressModes(t *testing.T) {
	s := &Syllable{Stress: Secondary}

	if !s.IsStressed(SecondaryAsStressed) {
		t.Errorf("secondary stress should count as stressed under SecondaryAsStressed")
	}

	if s.IsStressed(SecondaryAsUnstressed) {
		t.Errorf("secondary stress should not count as stressed under SecondaryAsUnstressed")
	}

	if !s.IsUnstressed(SecondaryAsUnstressed) {
		t.Errorf("secondary stress should count as unstressed under SecondaryAsUnstressed")
	}

	if s.IsStressed(SecondaryAsDistinct) || s.IsUnstressed(SecondaryAsDistinct) {
		t.Errorf("secondary stress should be neither under SecondaryAsDistinct")
	}
}

func TestIsFirstLastInWord(t *testing.T) {
	s := &Syllable{PositionInWord: 0, SyllablesInWord: 3}
	if !s.IsFirstInWord() {
		t.Errorf("expected first-in-word")
	}

	if s.IsLastInWord() {
		t.Errorf("did not expect last-in-word")
	}

	last := &Syllable{PositionInWord: 2, SyllablesInWord: 3}
	if !last.IsLastInWord() {
		t.Errorf("expected last-in-word")
	}
}

func TestIsMonosyllable(t *testing.T) {
	mono := &Syllable{SyllablesInWord: 1}
	if !mono.IsMonosyllable() {
		t.Errorf("expected monosyllable")
	}

	poly := &Syllable{SyllablesInWord: 2}
	if poly.IsMonosyllable() {
		t.Errorf("did not expect monosyllable")
	}
}
