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
	"encoding/json"
	"fmt"
	"os"

	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// syllableDoc is the on-disk shape of one syllable, mirroring configDoc's
// decode-then-construct convention (see config_io.go and DESIGN.md).
type syllableDoc struct {
	Text            string            `json:"text"`
	Stress          string            `json:"stress"`
	IsHeavy         bool              `json:"is_heavy"`
	IsStrong        bool              `json:"is_strong"`
	IsWeak          bool              `json:"is_weak"`
	WordTokenID     int               `json:"word_token_id"`
	PositionInWord  int               `json:"position_in_word"`
	SyllablesInWord int               `json:"syllables_in_word"`
	Meta            map[string]string `json:"meta,omitempty"`
}

// matrixDoc is the on-disk shape of a WordFormMatrix: a flat ordered list
// of syllables. A line with multiple candidate pronunciations is expressed
// upstream as multiple files/matrices, never fanned out here (spec.md §2).
type matrixDoc struct {
	Slots []syllableDoc `json:"slots"`
}

// LoadMatrix reads a WordFormMatrix from a JSON file shaped as
// {"slots": [...]}, one entry per syllable in reading order.
func LoadMatrix(path string) (*WordFormMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word form matrix %s: %w", path, err)
	}

	var doc matrixDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing word form matrix %s: %w", path, err)
	}

	slots := make([]*syllable.Syllable, len(doc.Slots))

	for i, sd := range doc.Slots {
		stress, err := parseStress(sd.Stress)
		if err != nil {
			return nil, fmt.Errorf("word form matrix %s, slot %d: %w", path, i, err)
		}

		slots[i] = &syllable.Syllable{
			Text:            sd.Text,
			Stress:          stress,
			IsHeavy:         sd.IsHeavy,
			IsStrong:        sd.IsStrong,
			IsWeak:          sd.IsWeak,
			WordTokenID:     sd.WordTokenID,
			PositionInWord:  sd.PositionInWord,
			SyllablesInWord: sd.SyllablesInWord,
			Meta:            sd.Meta,
		}
	}

	return NewWordFormMatrix(slots)
}

func parseStress(s string) (syllable.Stress, error) {
	switch s {
	case "unstressed", "":
		return syllable.Unstressed, nil
	case "primary":
		return syllable.Primary, nil
	case "secondary":
		return syllable.Secondary, nil
	default:
		return 0, fmt.Errorf("unrecognized stress %q (want unstressed, primary or secondary)", s)
	}
}
