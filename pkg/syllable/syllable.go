// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package syllable defines the immutable per-syllable feature model the
// metrical parsing core reads.  Syllabification, stress assignment and
// pronunciation lookup are all external collaborators; this package only
// describes the shape of what they hand the parser.
package syllable

// Stress identifies how prominent a syllable's pronunciation is.
type Stress uint8

const (
	// Unstressed indicates the syllable carries no lexical stress.
	Unstressed Stress = iota
	// Primary indicates the syllable carries primary lexical stress.
	Primary
	// Secondary indicates the syllable carries secondary lexical stress
	// (e.g. the first syllable of "understand"). How constraints treat it
	// is controlled by a SecondaryStressMode, resolved once per meter
	// configuration rather than re-decided by every constraint.
	Secondary
)

// SecondaryStressMode answers spec.md §9's open question: whether secondary
// stress should be folded into "stressed", folded into "unstressed", or
// kept as a third category that is neither.
type SecondaryStressMode uint8

const (
	// SecondaryAsStressed treats secondary stress as full stress for every
	// constraint. This is the default (DESIGN.md's resolution of the open
	// question).
	SecondaryAsStressed SecondaryStressMode = iota
	// SecondaryAsUnstressed treats secondary stress as if unstressed.
	SecondaryAsUnstressed
	// SecondaryAsDistinct keeps secondary stress as its own category: a
	// syllable with secondary stress is neither "stressed" nor
	// "unstressed" under this mode, and so is naturally exempt from
	// constraints keyed on either condition unless they explicitly test
	// for Secondary.
	SecondaryAsDistinct
)

// Syllable is an immutable value object describing one syllable of a word
// form. Once constructed, a Syllable is never mutated; every Parse built
// over a WordFormMatrix shares references to the very same Syllable
// instances (spec.md §3's sharing invariant), so equality is by identity
// (pointer), not by value.
type Syllable struct {
	// Text is the display form of the syllable (e.g. "un", "der").
	Text string
	// Stress records the syllable's lexical stress.
	Stress Stress
	// IsHeavy records whether the syllable's rhyme is heavy (closed by a
	// consonant, or containing a long vowel/diphthong, per the upstream
	// phonology module's definition — this package takes the flag as given).
	IsHeavy bool
	// IsStrong marks a syllable whose word-class makes it inherently
	// prosodically strong even when unstressed (e.g. a monosyllabic content
	// word). At most one of IsStrong/IsWeak may be true.
	IsStrong bool
	// IsWeak marks a syllable whose word-class makes it inherently weak
	// (monosyllabic function-word material: articles, prepositions,
	// auxiliary verbs). At most one of IsStrong/IsWeak may be true.
	IsWeak bool
	// WordTokenID identifies the word token this syllable belongs to, for
	// constraints that reason about word boundaries (e.g. word_bridge).
	WordTokenID int
	// PositionInWord is this syllable's zero-based index within its word,
	// for first/last-syllable constraints.
	PositionInWord int
	// SyllablesInWord is the total number of syllables in the containing
	// word, so a constraint can tell whether PositionInWord is the last one
	// without needing to look at a neighbour.
	SyllablesInWord int
	// Meta carries free-form annotations (e.g. a dictionary sense id) that
	// ride along with the syllable without affecting scansion. No
	// constraint or ordering key may read it (SPEC_FULL.md §10).
	Meta map[string]string
}

// EffectiveStress resolves this syllable's Stress down to a concrete
// category under the given SecondaryStressMode. Primary and Unstressed
// pass through unchanged; Secondary resolves per mode.
func (s *Syllable) EffectiveStress(mode SecondaryStressMode) Stress {
	if s.Stress != Secondary {
		return s.Stress
	}

	switch mode {
	case SecondaryAsStressed:
		return Primary
	case SecondaryAsUnstressed:
		return Unstressed
	default:
		return Secondary
	}
}

// IsStressed reports whether this syllable should be treated as stressed by
// a peak-detecting constraint (w_peak, w_stress) under the given mode.
func (s *Syllable) IsStressed(mode SecondaryStressMode) bool {
	return s.EffectiveStress(mode) == Primary
}

// IsUnstressed reports whether this syllable should be treated as
// unstressed by a trough-detecting constraint (s_unstress) under the given
// mode. Note this is not simply "!IsStressed": under SecondaryAsDistinct a
// syllable can be neither.
func (s *Syllable) IsUnstressed(mode SecondaryStressMode) bool {
	return s.EffectiveStress(mode) == Unstressed
}

// IsFirstInWord reports whether this is the first syllable of its word.
func (s *Syllable) IsFirstInWord() bool {
	return s.PositionInWord == 0
}

// IsLastInWord reports whether this is the last syllable of its word.
func (s *Syllable) IsLastInWord() bool {
	return s.PositionInWord == s.SyllablesInWord-1
}

// IsMonosyllable reports whether this syllable's word consists of exactly
// one syllable.
func (s *Syllable) IsMonosyllable() bool {
	return s.SyllablesInWord == 1
}
