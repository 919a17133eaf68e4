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
	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// RestorePosition reconstructs a Position from already-computed violation
// data rather than evaluating constraints again. It exists for pkg/report's
// JSON round trip (spec.md §6): a snapshot records what each constraint
// already decided, and restoring it should reproduce the exact same
// Position without depending on the registry that produced it still being
// configured the same way.
func RestorePosition(meterVal byte, slots []*syllable.Syllable, viold map[string][]uint8, names []string) *Position {
	return &Position{MeterVal: meterVal, Slots: slots, Viold: viold, names: names}
}

// RestoreParse reassembles a Parse from a position sequence already built by
// RestorePosition, plus the bounding state a snapshot carries directly
// (spec.md §6 requires bounding/ranking state survive the round trip
// unchanged, not be recomputed).
func RestoreParse(matrix *meter.WordFormMatrix, cfg *meter.Config, reg *constraint.Registry, positions []*Position, isBounded bool, boundedBy []string) *Parse {
	n := 0
	for _, pos := range positions {
		n += pos.Len()
	}

	return &Parse{
		Matrix:             matrix,
		Config:             cfg,
		Registry:           reg,
		Positions:          positions,
		NumSlotsPositioned: n,
		IsBounded:          isBounded,
		BoundedBy:          append([]string(nil), boundedBy...),
	}
}
