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

// Package parse builds and scores the Parse entity graph: a Parse owns an
// ordered sequence of Positions, each of which owns a run of slots sharing
// one meter value. Slots reference but never own the underlying Syllable
// instances, which are shared across every Parse built over the same
// WordFormMatrix (spec.md §3's sharing invariant).
package parse

import (
	"fmt"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/prosodyerr"
	"github.com/alusilo/go-prosodic/pkg/syllable"
	"github.com/alusilo/go-prosodic/pkg/util"
)

// Position is one contiguous run of slots sharing a single meter value
// ('w' or 's'), together with the per-constraint, per-slot violation flags
// every registered constraint produced for it.
type Position struct {
	MeterVal byte
	Slots    []*syllable.Syllable
	Viold    map[string][]uint8
	names    []string // constraint names, in registration order
}

// newPosition evaluates every constraint in cfg.ConstraintNames against
// ctx, once, at the moment a position is appended (spec.md §9's
// re-architecture: constraints are pure functions of ctx alone).
func newPosition(meterVal byte, slots []*syllable.Syllable, ctx constraint.PositionContext, reg *constraint.Registry, cfg *meter.Config) (*Position, error) {
	p := &Position{
		MeterVal: meterVal,
		Slots:    slots,
		Viold:    make(map[string][]uint8, len(cfg.ConstraintNames)),
	}

	for _, name := range cfg.ConstraintNames {
		fn, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("constraint %q is not registered", name)
		}

		flags := fn(ctx)
		if len(flags) != len(slots) {
			return nil, &prosodyerr.ConstraintArityMismatch{
				Constraint: name,
				Shape:      shapeString(meterVal, len(slots)),
				Expected:   len(slots),
				Actual:     len(flags),
			}
		}

		p.Viold[name] = flags
		p.names = append(p.names, name)
	}

	return p, nil
}

func shapeString(meterVal byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = meterVal
	}

	return string(b)
}

// Len returns the number of slots in this position.
func (p *Position) Len() int {
	return len(p.Slots)
}

// IsProminent reports whether this is a strong ('s') position.
func (p *Position) IsProminent() bool {
	return p.MeterVal == meter.Strong
}

// ViolationNames returns, in sorted order, every constraint name that
// flagged at least one slot of this position.
func (p *Position) ViolationNames() util.StringSet {
	s := util.NewStringSet()

	for _, name := range p.names {
		for _, f := range p.Viold[name] {
			if f != 0 {
				s = s.Insert(name)
				break
			}
		}
	}

	return s
}

// Score sums this position's weighted violation counts across every
// constraint (spec.md §6's per-constraint contribution to total score).
func (p *Position) Score(cfg *meter.Config) float64 {
	var total float64

	for name, flags := range p.Viold {
		var sum int

		for _, f := range flags {
			sum += int(f)
		}

		total += cfg.Weight(name) * float64(sum)
	}

	return total
}
