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
package parse

import (
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// Less implements spec.md §5's deterministic ranking within one line: a
// total order over a line's parses, grounded on the original's sort_key
// tuple (stripped of its leading stanza/line-number fields, which belong
// to the caller that groups parses by line in the first place, not to the
// parse itself). Bounded parses sort after unbounded ones; ties break on
// ascending score, then on a sequence of structural tie-breakers, ending
// in the literal meter/stress strings so the order is always total.
//
// Tie-break #3 is spec.md §4.2 point 3 and §9's second Open Question: it
// reads cfg.PreferRising to decide which first-position prominence sorts
// first, flipping for trochaic meters, with SPEC_FULL.md §10's ternary-foot
// special case (see prominenceTieBreakKey) taking precedence when it
// applies.
func Less(a, b *Parse, cfg *meter.Config, mode syllable.SecondaryStressMode) bool {
	if a.IsBounded != b.IsBounded {
		return !a.IsBounded
	}

	if sa, sb := a.Score(), b.Score(); sa != sb {
		return sa < sb
	}

	if ap, bp := prominenceTieBreakKey(a), prominenceTieBreakKey(b); ap != bp {
		if cfg.PreferRising {
			return bp
		}

		return ap
	}

	if aa, bb := a.AveragePositionSize(), b.AveragePositionSize(); aa != bb {
		return aa < bb
	}

	if an, bn := a.NumStressedSylls(mode), b.NumStressedSylls(mode); an != bn {
		return an < bn
	}

	if am, bm := a.MeterStr(), b.MeterStr(); am != bm {
		return am < bm
	}

	return a.StressStr(mode) < b.StressStr(mode)
}

// prominenceTieBreakKey reports the prominence tie-break reads for p: for
// ternary-foot parses it reads the fourth slot's prominence rather than
// the first position's, the same special case the original's is_rising
// applies to distinguish anapestic/dactylic readings (`swws` vs `wssw`,
// `wsws` vs `swsw`); every other meter reads the first position directly.
func prominenceTieBreakKey(p *Parse) bool {
	if p.naryFeet() == 3 {
		if mi := p.MeterInts(); len(mi) > 3 {
			return mi[3] == 1
		}
	}

	return firstIsProm(p)
}

func firstIsProm(p *Parse) bool {
	if len(p.Positions) == 0 {
		return false
	}

	return p.Positions[0].IsProminent()
}
