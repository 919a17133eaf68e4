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

// Package report builds the read-only attribute surface spec.md §4.4
// describes for external layers: a line's ranked parses rendered as plain
// data, a JSON snapshot format, and a terminal table. The core search
// engine makes no formatting decisions; everything here reads a
// search.Result and never feeds back into pkg/parse or pkg/search.
package report

import (
	"sort"

	"github.com/alusilo/go-prosodic/pkg/parse"
	"github.com/alusilo/go-prosodic/pkg/search"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// SlotDiagnostic is one per-slot diagnostic row (spec.md §4.4): the
// syllable it carries, the word it belongs to, the meter value of its
// enclosing position, and every constraint that flagged it.
type SlotDiagnostic struct {
	SyllableText string   `json:"syllable_text"`
	WordTokenID  int      `json:"word_token_id"`
	MeterVal     string   `json:"meter_val"`
	Violations   []string `json:"violations"`
}

// PositionView is one position's rendering: its shape and the full
// per-constraint violation vector spec.md §4.4 requires alongside the
// per-parse summary.
type PositionView struct {
	MeterVal   string             `json:"meter_val"`
	Shape      string             `json:"shape"`
	Violations map[string][]uint8 `json:"violations"`
	Slots      []SlotDiagnostic   `json:"slots"`
}

// ParseView is one parse rendered for an external layer: everything
// spec.md §4.4 lists per parse, plus the line-level ambiguity count it asks
// to be carried alongside each one.
type ParseView struct {
	Rank             int            `json:"rank"`
	ProminenceString string         `json:"prominence_string"`
	StressString     string         `json:"stress_string"`
	Score            float64        `json:"score"`
	IsBounded        bool           `json:"is_bounded"`
	BoundedBy        []string       `json:"bounded_by"`
	Ambiguity        int            `json:"ambiguity"`
	FootType         string         `json:"foot_type,omitempty"`
	Positions        []PositionView `json:"positions"`
}

// LineView is a whole line's reporting surface: its ranked parses, or a
// flag marking it unparseable (spec.md §4.3's UnparseableLine, surfaced
// here as plain data rather than an error).
type LineView struct {
	Unparseable bool        `json:"unparseable"`
	Parses      []ParseView `json:"parses,omitempty"`
}

// NewLineView renders a search.Result as a LineView. mode governs how
// stress strings read secondary stress, matching the meter.Config the
// result was produced under.
func NewLineView(res *search.Result, mode syllable.SecondaryStressMode) LineView {
	if res.IsUnparseable() {
		return LineView{Unparseable: true}
	}

	views := make([]ParseView, len(res.Parses))
	for i, p := range res.Parses {
		views[i] = newParseView(p, i+1, res.Ambiguity, mode)
	}

	return LineView{Parses: views}
}

func newParseView(p *parse.Parse, rank, ambiguity int, mode syllable.SecondaryStressMode) ParseView {
	positions := make([]PositionView, len(p.Positions))

	for i, pos := range p.Positions {
		slots := make([]SlotDiagnostic, pos.Len())

		for j, s := range pos.Slots {
			slots[j] = SlotDiagnostic{
				SyllableText: s.Text,
				WordTokenID:  s.WordTokenID,
				MeterVal:     string(pos.MeterVal),
				Violations:   flaggedConstraints(pos, j),
			}
		}

		positions[i] = PositionView{
			MeterVal:   string(pos.MeterVal),
			Shape:      shapeOf(pos),
			Violations: pos.Viold,
			Slots:      slots,
		}
	}

	return ParseView{
		Rank:             rank,
		ProminenceString: p.MeterStr(),
		StressString:     p.StressStr(mode),
		Score:            p.Score(),
		IsBounded:        p.IsBounded,
		BoundedBy:        p.BoundedBy,
		Ambiguity:        ambiguity,
		FootType:         p.FootType().String(),
		Positions:        positions,
	}
}

// flaggedConstraints returns every constraint name that fired at slot index
// slotIdx within pos, sorted for deterministic rendering (map iteration
// order is not).
func flaggedConstraints(pos *parse.Position, slotIdx int) []string {
	var names []string

	for name, flags := range pos.Viold {
		if slotIdx < len(flags) && flags[slotIdx] != 0 {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

func shapeOf(pos *parse.Position) string {
	b := make([]byte, pos.Len())
	for i := range b {
		b[i] = pos.MeterVal
	}

	return string(b)
}
