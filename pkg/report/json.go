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
	"encoding/json"
	"fmt"
	"sort"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/parse"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// PositionSnapshot is one position's JSON-serializable form: its meter
// value, the matrix slot indices it consumed (rather than the syllables
// themselves — the matrix is an external collaborator, spec.md §1), and the
// violation vectors already computed for it.
type PositionSnapshot struct {
	MeterVal    string             `json:"meter_val"`
	SlotIndices []int              `json:"slot_indices"`
	Violations  map[string][]uint8 `json:"violations"`
	// Names is every constraint name this position holds violation data
	// for, sorted for determinism (not the original evaluation order,
	// which nothing downstream of a Position actually depends on).
	Names []string `json:"constraint_order"`
}

// ParseSnapshot is the JSON round-trip format spec.md §6 requires: enough
// to reconstruct a Parse's ordering keys bit-identically without
// re-running any constraint, given the same matrix and registry the
// original scan used.
type ParseSnapshot struct {
	MatrixRef string             `json:"matrix_ref"`
	Positions []PositionSnapshot `json:"positions"`
	IsBounded bool               `json:"is_bounded"`
	BoundedBy []string           `json:"bounded_by"`
	Rank      int                `json:"rank"`
	Score     float64            `json:"score"`
}

// Snapshot captures p as a ParseSnapshot. matrixRef is an opaque handle the
// caller uses to look up the WordFormMatrix p was built over; this package
// never serializes syllable data itself (spec.md §1 keeps the syllable
// model an external collaborator).
func Snapshot(p *parse.Parse, matrixRef string, rank int) *ParseSnapshot {
	positions := make([]PositionSnapshot, len(p.Positions))
	offset := 0

	for i, pos := range p.Positions {
		indices := make([]int, pos.Len())
		for j := range indices {
			indices[j] = offset + j
		}
		offset += pos.Len()

		names := make([]string, 0, len(pos.Viold))
		for name := range pos.Viold {
			names = append(names, name)
		}

		sort.Strings(names)

		positions[i] = PositionSnapshot{
			MeterVal:    string(pos.MeterVal),
			SlotIndices: indices,
			Violations:  pos.Viold,
			Names:       names,
		}
	}

	return &ParseSnapshot{
		MatrixRef: matrixRef,
		Positions: positions,
		IsBounded: p.IsBounded,
		BoundedBy: append([]string(nil), p.BoundedBy...),
		Rank:      rank,
		Score:     p.Score(),
	}
}

// MarshalSnapshot renders snap as indented JSON using the stdlib encoder,
// matching spec.md §6's "optional JSON round-trip" surface.
func MarshalSnapshot(snap *ParseSnapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Rehydrate reconstructs a *parse.Parse from snap against matrix, cfg and
// reg, restoring violation data directly from the snapshot rather than
// re-evaluating constraints — this is what makes the round trip
// reproduce ordering keys bit-identically even if the registry has since
// gained or reordered constraints.
func Rehydrate(snap *ParseSnapshot, matrix *meter.WordFormMatrix, cfg *meter.Config, reg *constraint.Registry) (*parse.Parse, error) {
	positions := make([]*parse.Position, len(snap.Positions))

	for i, ps := range snap.Positions {
		if len(ps.MeterVal) != 1 {
			return nil, fmt.Errorf("snapshot position %d: invalid meter value %q", i, ps.MeterVal)
		}

		resolved, err := slotsAt(matrix, ps.SlotIndices)
		if err != nil {
			return nil, fmt.Errorf("snapshot position %d: %w", i, err)
		}

		positions[i] = parse.RestorePosition(ps.MeterVal[0], resolved, ps.Violations, ps.Names)
	}

	return parse.RestoreParse(matrix, cfg, reg, positions, snap.IsBounded, snap.BoundedBy), nil
}

// slotsAt resolves a position's recorded slot indices back to syllable
// references in matrix, in order.
func slotsAt(matrix *meter.WordFormMatrix, indices []int) ([]*syllable.Syllable, error) {
	out := make([]*syllable.Syllable, len(indices))

	for i, idx := range indices {
		if idx < 0 || idx >= matrix.Len() {
			return nil, fmt.Errorf("slot index %d out of range for a %d-syllable matrix", idx, matrix.Len())
		}

		out[i] = matrix.At(idx)
	}

	return out, nil
}
