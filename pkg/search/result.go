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
package search

import "github.com/alusilo/go-prosodic/pkg/parse"

// Result is one line's scan outcome (spec.md §4.4's Result Surface):
// every complete parse found, in rank order, plus the ambiguity count.
type Result struct {
	// Parses is every complete parse found for the line, ranked best
	// first (parse.Less order). It includes bounded parses, retained for
	// diagnostics, interleaved at their rank position.
	Parses []*parse.Parse
	// Ambiguity is the number of unbounded complete parses — spec.md
	// §4.3's `ambig` count.
	Ambiguity int
}

// IsUnparseable reports whether no complete parse was found at all
// (spec.md §4.3: "report the line as unparseable; do not fall back to a
// partial. This is a normal outcome, not an error.").
func (r *Result) IsUnparseable() bool {
	return len(r.Parses) == 0
}

// Best returns the top-ranked parse, or nil if the line is unparseable.
func (r *Result) Best() *parse.Parse {
	if len(r.Parses) == 0 {
		return nil
	}

	return r.Parses[0]
}

// Unbounded returns every unbounded parse, in rank order.
func (r *Result) Unbounded() []*parse.Parse {
	out := make([]*parse.Parse, 0, r.Ambiguity)

	for _, p := range r.Parses {
		if !p.IsBounded {
			out = append(out, p)
		}
	}

	return out
}
