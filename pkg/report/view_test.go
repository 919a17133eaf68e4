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
package report

import (
	"testing"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/search"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

func iambicConfig() *meter.Config {
	cfg := meter.DefaultConfig()
	cfg.Shapes = []meter.Shape{"w", "s"}
	cfg.MaxW, cfg.MaxS = 1, 1
	cfg.ConstraintNames = []string{constraint.WStress, constraint.SUnstress}

	return cfg
}

func matrixOf(t *testing.T, stresses ...syllable.Stress) *meter.WordFormMatrix {
	t.Helper()

	slots := make([]*syllable.Syllable, len(stresses))
	for i, s := range stresses {
		slots[i] = &syllable.Syllable{Stress: s, SyllablesInWord: 1, Text: "x"}
		slots[i].WordTokenID = i
	}

	m, err := meter.NewWordFormMatrix(slots)
	if err != nil {
		t.Fatalf("unexpected matrix error: %v", err)
	}

	return m
}

func scanLine(t *testing.T, cfg *meter.Config, m *meter.WordFormMatrix) *search.Result {
	t.Helper()

	e, err := search.NewEngine(cfg, constraint.DefaultRegistry())
	if err != nil {
		t.Fatalf("unexpected NewEngine error: %v", err)
	}

	res, err := e.ScanLine(m)
	if err != nil {
		t.Fatalf("unexpected ScanLine error: %v", err)
	}

	return res
}

func TestNewLineViewUnparseable(t *testing.T) {
	view := NewLineView(&search.Result{}, syllable.SecondaryAsStressed)

	if !view.Unparseable {
		t.Fatalf("expected an empty result to render as unparseable")
	}

	if len(view.Parses) != 0 {
		t.Fatalf("expected no parses in an unparseable view")
	}
}

// TestNewLineViewSimpleIamb covers spec.md §8 scenario 1 end-to-end through
// the reporting surface: rank 1, prominence string -+-+ (wsws), score 0.
func TestNewLineViewSimpleIamb(t *testing.T) {
	m := matrixOf(t, syllable.Unstressed, syllable.Primary, syllable.Unstressed, syllable.Primary)
	res := scanLine(t, iambicConfig(), m)

	view := NewLineView(res, syllable.SecondaryAsStressed)

	if view.Unparseable {
		t.Fatalf("expected a parseable line")
	}

	if len(view.Parses) == 0 {
		t.Fatalf("expected at least one rendered parse")
	}

	best := view.Parses[0]
	if best.Rank != 1 {
		t.Errorf("expected rank 1, got %d", best.Rank)
	}

	if best.ProminenceString != "-+-+" {
		t.Errorf("expected prominence string -+-+, got %s", best.ProminenceString)
	}

	if best.Score != 0 {
		t.Errorf("expected score 0, got %v", best.Score)
	}

	if best.Ambiguity != res.Ambiguity {
		t.Errorf("expected ambiguity %d to carry through, got %d", res.Ambiguity, best.Ambiguity)
	}

	if len(best.Positions) != 4 {
		t.Fatalf("expected 4 positions (one per slot under max_w=max_s=1), got %d", len(best.Positions))
	}

	for _, pos := range best.Positions {
		if len(pos.Slots) != 1 {
			t.Errorf("expected one slot per position, got %d", len(pos.Slots))
		}
	}
}

// TestNewLineViewCategoricalPruneMarksBounded covers spec.md §8 scenario 4
// through the reporting surface: every rendered parse is bounded and
// carries a non-empty BoundedBy trail.
func TestNewLineViewCategoricalPruneMarksBounded(t *testing.T) {
	cfg := iambicConfig()
	cfg.CategoricalConstraints = []string{constraint.WStress}

	m := matrixOf(t, syllable.Primary, syllable.Primary, syllable.Primary, syllable.Primary)
	res := scanLine(t, cfg, m)

	view := NewLineView(res, syllable.SecondaryAsStressed)

	if view.Unparseable {
		t.Fatalf("expected bounded parses to still render, not unparseable")
	}

	for _, p := range view.Parses {
		if !p.IsBounded {
			t.Errorf("expected every parse to be bounded")
		}

		if len(p.BoundedBy) == 0 {
			t.Errorf("expected a non-empty bounded_by trail on a categorically bounded parse")
		}
	}
}

func TestSlotDiagnosticMeterValMatchesPosition(t *testing.T) {
	m := matrixOf(t, syllable.Primary, syllable.Unstressed)
	cfg := iambicConfig()
	res := scanLine(t, cfg, m)
	view := NewLineView(res, syllable.SecondaryAsStressed)

	if view.Unparseable {
		t.Fatalf("expected a parseable line")
	}

	found := false

	for _, pos := range view.Parses[0].Positions {
		for _, slot := range pos.Slots {
			found = true

			if slot.MeterVal != pos.MeterVal {
				t.Errorf("expected slot meter_val %s to match position %s", slot.MeterVal, pos.MeterVal)
			}
		}
	}

	if !found {
		t.Fatalf("expected at least one slot diagnostic row")
	}
}
