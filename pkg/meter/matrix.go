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
package meter

import (
	"fmt"

	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// WordFormMatrix is one concrete pronunciation of a line: an ordered,
// immutable sequence of syllables read left to right. Lines with ambiguous
// pronunciations are represented upstream as multiple WordFormMatrix values
// (the cross-product of readings), each scanned independently by the search
// engine (spec.md §2's "Word Form Matrix" component).
type WordFormMatrix struct {
	slots []*syllable.Syllable
}

// NewWordFormMatrix constructs a matrix from a non-empty, ordered sequence
// of syllables. Returns an error if slots is empty (spec.md §3's N≥1
// invariant).
func NewWordFormMatrix(slots []*syllable.Syllable) (*WordFormMatrix, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("word form matrix must contain at least one syllable")
	}

	cp := make([]*syllable.Syllable, len(slots))
	copy(cp, slots)

	return &WordFormMatrix{cp}, nil
}

// Len returns the number of syllables in this matrix.
func (m *WordFormMatrix) Len() int {
	return len(m.slots)
}

// At returns the syllable at index i (0-based, reading order).
func (m *WordFormMatrix) At(i int) *syllable.Syllable {
	return m.slots[i]
}

// Slots returns the full syllable sequence. Callers must not mutate the
// returned slice's contents' pointees; the slice itself is a defensive copy.
func (m *WordFormMatrix) Slots() []*syllable.Syllable {
	cp := make([]*syllable.Syllable, len(m.slots))
	copy(cp, m.slots)

	return cp
}
