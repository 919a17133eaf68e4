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

// Bounding classifies how two parses' violation multisets relate to one
// another (spec.md §6).
type Bounding int

const (
	// Incomparable means neither violation multiset is a subset of the
	// other; spec.md §4.2 requires both parses to survive this case.
	Incomparable Bounding = iota
	// Bounds means p's violations are a proper subset of the other parse's:
	// p harmonically bounds it.
	Bounds
	// Bounded means the other parse's violations are a proper subset of
	// p's: the other parse bounds p.
	Bounded
	// Equal means both parses hold exactly the same violation multiset.
	Equal
)

// BoundingRelation reports how p's ViolationBag relates to other's.
func (p *Parse) BoundingRelation(other *Parse) Bounding {
	a, b := p.ViolationBag(), other.ViolationBag()

	switch {
	case a.SubsetOf(b):
		return Bounds
	case b.SubsetOf(a):
		return Bounded
	case a.Equal(b):
		return Equal
	default:
		return Incomparable
	}
}

// Bounds reports whether p harmonically bounds other.
func (p *Parse) Bounds(other *Parse) bool {
	return p.BoundingRelation(other) == Bounds
}
