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
	"strings"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/syllable"
	"github.com/alusilo/go-prosodic/pkg/util"
)

// Parse is one candidate scansion of a WordFormMatrix: an ordered sequence
// of Positions built up one extend() at a time. Extend and Branch return
// new values, sharing every Position the parent already owns (those
// positions are never mutated after they are appended, so sharing them is
// safe). The search still sets ID, IsBounded and BoundedBy on a parse after
// it is built.
type Parse struct {
	Matrix             *meter.WordFormMatrix
	Config             *meter.Config
	Registry           *constraint.Registry
	Positions          []*Position
	NumSlotsPositioned int
	IsBounded          bool
	// BoundedBy is diagnostic only (spec.md §3): either the categorical
	// constraint name that disqualified this parse outright, or an
	// identifier of the parse(s) that harmonically bound it.
	BoundedBy []string
	// ID is a small, search-assigned identifier used only to populate
	// BoundedBy with something more readable than a pointer.
	ID int
}

// New starts an empty parse over matrix, to be grown with Extend/Branch.
func New(matrix *meter.WordFormMatrix, cfg *meter.Config, reg *constraint.Registry) *Parse {
	return &Parse{Matrix: matrix, Config: cfg, Registry: reg}
}

// Clone returns a shallow copy of p: a new Positions slice backed by the
// same Position values, so appending to the clone never affects p.
func (p *Parse) Clone() *Parse {
	positions := make([]*Position, len(p.Positions))
	copy(positions, p.Positions)

	return &Parse{
		Matrix:             p.Matrix,
		Config:             p.Config,
		Registry:           p.Registry,
		Positions:          positions,
		NumSlotsPositioned: p.NumSlotsPositioned,
		IsBounded:          p.IsBounded,
		BoundedBy:          append([]string(nil), p.BoundedBy...),
	}
}

// IsComplete reports whether every syllable in the matrix has been placed.
func (p *Parse) IsComplete() bool {
	return p.NumSlotsPositioned == p.Matrix.Len()
}

// Extend appends one new position of the given shape and returns the
// resulting parse. It returns (nil, nil) — not an error — when the shape
// simply does not apply here: it would repeat the previous position's
// meter value, or there are not enough syllables left to fill it. It
// returns a non-nil error only for a genuine configuration fault
// (a constraint named in cfg but not registered, or one that returned the
// wrong number of violation flags).
func (p *Parse) Extend(shape meter.Shape) (*Parse, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	if len(p.Positions) > 0 && p.Positions[len(p.Positions)-1].MeterVal == shape.Val() {
		return nil, nil
	}

	remaining := p.Matrix.Len() - p.NumSlotsPositioned
	if shape.Len() > remaining {
		return nil, nil
	}

	slots := make([]*syllable.Syllable, shape.Len())
	for i := 0; i < shape.Len(); i++ {
		slots[i] = p.Matrix.At(p.NumSlotsPositioned + i)
	}

	ctx := p.buildContext(shape.Val(), slots)

	pos, err := newPosition(shape.Val(), slots, ctx, p.Registry, p.Config)
	if err != nil {
		return nil, err
	}

	next := p.Clone()
	next.Positions = append(next.Positions, pos)
	next.NumSlotsPositioned += shape.Len()

	if name, ok := firstCategoricalViolation(pos, p.Config); ok {
		next.IsBounded = true
		next.BoundedBy = append(append([]string(nil), next.BoundedBy...), name)
	}

	return next, nil
}

// firstCategoricalViolation returns the first categorical constraint name
// (in cfg's declared order) that fired anywhere on pos, if any.
func firstCategoricalViolation(pos *Position, cfg *meter.Config) (string, bool) {
	for _, name := range cfg.CategoricalConstraints {
		for _, f := range pos.Viold[name] {
			if f != 0 {
				return name, true
			}
		}
	}

	return "", false
}

func (p *Parse) buildContext(meterVal byte, slots []*syllable.Syllable) constraint.PositionContext {
	ctx := constraint.PositionContext{
		MeterVal:            meterVal,
		Slots:               slots,
		SecondaryStressMode: p.Config.SecondaryStressMode,
		MaxSlots:            p.Config.MaxForVal(meterVal),
	}

	if len(p.Positions) > 0 {
		prev := p.Positions[len(p.Positions)-1]
		ctx.HasPrev = true
		ctx.PrevMeterVal = prev.MeterVal
		ctx.PrevLastSlot = prev.Slots[len(prev.Slots)-1]
	}

	nextIdx := p.NumSlotsPositioned + len(slots)
	if nextIdx < p.Matrix.Len() {
		ctx.HasNext = true
		ctx.NextSlot = p.Matrix.At(nextIdx)
	}

	return ctx
}

// Branch extends p by every configured shape that could legally follow its
// last position — or, when p has no positions yet, by every configured
// shape (branching the line's very first position). It returns two lists:
// live, the unbounded children a search should keep extending, and
// retained, children that came back categorically bounded. A categorically
// bounded parse is still carried to completion — spec.md §8 scenario 4
// requires a complete, ranked representative even when every candidate is
// disqualified — but once p itself is already bounded, Branch stops
// fanning out into every alternative and follows just the first shape that
// fits, since every continuation of a bounded parse is bounded too (spec.md
// §4.2's "short-circuit further extension" is this single-path collapse,
// not an outright drop; harmonic bounding, not categorical, is what drops a
// partial — see pkg/search's boundSameLength). A shape that simply doesn't
// fit here (wrong alternation, not enough syllables left) contributes
// nothing to either list; that is not an error, it's spec.md §4.3's "no
// child can extend a partial" case.
func (p *Parse) Branch() (live, retained []*Parse, err error) {
	var shapes []meter.Shape

	if len(p.Positions) == 0 {
		shapes = p.Config.Shapes
	} else {
		shapes = p.Config.ShapesStartingWith(p.Positions[len(p.Positions)-1].MeterVal)
	}

	for _, shape := range shapes {
		next, extendErr := p.Extend(shape)
		if extendErr != nil {
			return nil, nil, extendErr
		}

		if next == nil {
			continue
		}

		if next.IsBounded {
			retained = append(retained, next)
		} else {
			live = append(live, next)
		}

		if p.IsBounded {
			break
		}
	}

	return live, retained, nil
}

// ViolationBag returns the multiset of constraint names violated anywhere
// in this parse, one occurrence per position that constraint fired on
// (spec.md §6's violation_multiset, the basis of harmonic bounding).
func (p *Parse) ViolationBag() *util.Bag[string] {
	bag := util.NewBag[string]()

	for _, pos := range p.Positions {
		for _, name := range pos.ViolationNames() {
			bag.Add(name)
		}
	}

	return bag
}

// Score sums every position's weighted violation score.
func (p *Parse) Score() float64 {
	var total float64

	for _, pos := range p.Positions {
		total += pos.Score(p.Config)
	}

	return total
}

// CanCompare reports whether p and other may be placed in a bounding
// relation: both must meet the configured minimum slot count, and either
// both must be complete or both must have positioned the same number of
// slots (comparing a 2-slot partial against a 6-slot partial would be
// meaningless).
func (p *Parse) CanCompare(other *Parse) bool {
	if min := p.Config.MinBoundingSlots; min > 0 {
		if p.NumSlotsPositioned < min || other.NumSlotsPositioned < min {
			return false
		}
	}

	if p.IsComplete() && other.IsComplete() {
		return true
	}

	return p.NumSlotsPositioned == other.NumSlotsPositioned
}

// MeterStr renders the parse's scansion as a string of '+' (strong) and
// '-' (weak) characters, one per syllable.
func (p *Parse) MeterStr() string {
	var sb strings.Builder

	for _, pos := range p.Positions {
		ch := byte('-')
		if pos.IsProminent() {
			ch = '+'
		}

		for range pos.Slots {
			sb.WriteByte(ch)
		}
	}

	return sb.String()
}

// StressStr renders the underlying syllables' lexical stress as a string of
// '+'/'-' characters, independent of how the meter scanned them.
func (p *Parse) StressStr(mode syllable.SecondaryStressMode) string {
	var sb strings.Builder

	for _, pos := range p.Positions {
		for _, s := range pos.Slots {
			if s.IsStressed(mode) {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('-')
			}
		}
	}

	return sb.String()
}

// MeterInts is MeterStr as 0/1 integers, one per syllable; FootType uses it
// to classify rising vs. falling meters.
func (p *Parse) MeterInts() []int {
	out := make([]int, 0, p.NumSlotsPositioned)

	for _, pos := range p.Positions {
		v := 0
		if pos.IsProminent() {
			v = 1
		}

		for range pos.Slots {
			out = append(out, v)
		}
	}

	return out
}

// NumStressedSylls counts syllables carrying lexical stress under mode,
// independent of where the meter placed them.
func (p *Parse) NumStressedSylls(mode syllable.SecondaryStressMode) int {
	n := 0

	for _, pos := range p.Positions {
		for _, s := range pos.Slots {
			if s.IsStressed(mode) {
				n++
			}
		}
	}

	return n
}

// AveragePositionSize is the mean slot count across this parse's positions.
func (p *Parse) AveragePositionSize() float64 {
	if len(p.Positions) == 0 {
		return 0
	}

	total := 0
	for _, pos := range p.Positions {
		total += pos.Len()
	}

	return float64(total) / float64(len(p.Positions))
}
