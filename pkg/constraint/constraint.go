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

// Package constraint defines the pure, named functions that score one
// meter position, and the ordered registry a search engine draws them from.
// Constraints never reach into a parent parse (spec.md §9's required
// re-architecture): everything they need arrives in a PositionContext
// built fresh at the moment a position is appended.
package constraint

import (
	"fmt"

	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// PositionContext is everything a constraint may look at to score one
// ParsePosition. It is assembled once, at append time, by the caller (see
// pkg/parse) and passed by value — constraints are pure functions of their
// arguments, never of ambient parse state.
type PositionContext struct {
	// MeterVal is the position's own meter value ('w' or 's').
	MeterVal byte
	// Slots are this position's syllables, in reading order.
	Slots []*syllable.Syllable
	// HasPrev reports whether a previous position exists in this parse.
	HasPrev bool
	// PrevMeterVal is the previous position's meter value, valid only when
	// HasPrev.
	PrevMeterVal byte
	// PrevLastSlot is the last syllable of the previous position, valid
	// only when HasPrev. Used by boundary constraints (word_bridge) that
	// need to look one slot back without the position owning a pointer to
	// its predecessor.
	PrevLastSlot *syllable.Syllable
	// HasNext reports whether a syllable follows this position's last slot
	// in the underlying WordFormMatrix. The matrix is fully known before
	// any position is ever built, so a constraint may look one slot ahead
	// without requiring the next ParsePosition to exist yet.
	HasNext bool
	// NextSlot is the syllable immediately following this position's last
	// slot in the matrix, valid only when HasNext.
	NextSlot *syllable.Syllable
	// MaxSlots is the configured slot cap for positions of MeterVal
	// (meter.Config.MaxW or MaxS, whichever applies).
	MaxSlots int
	// SecondaryStressMode resolves how Secondary-stressed syllables are
	// treated (spec.md §9's first open question).
	SecondaryStressMode syllable.SecondaryStressMode
}

// Func is a pure constraint: given a position's context, return one 0/1
// flag per slot. The returned slice's length must equal len(ctx.Slots);
// any other length is a fatal ConstraintArityMismatch (spec.md §4.1),
// raised by the caller that invokes the constraint (see pkg/parse), not by
// the constraint itself.
type Func func(ctx PositionContext) []uint8

// Registry is an ordered collection of named constraints, the way the
// teacher's schema keeps its constraints in declaration order for
// reproducible iteration (see DESIGN.md). Registration order is
// evaluation order, which spec.md §5 requires to be deterministic.
type Registry struct {
	names []string
	funcs map[string]Func
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a named constraint. Registering the same name twice
// replaces the previous function but keeps its original position in
// evaluation order.
func (r *Registry) Register(name string, fn Func) {
	if _, exists := r.funcs[name]; !exists {
		r.names = append(r.names, name)
	}

	r.funcs[name] = fn
}

// Names returns every registered constraint name, in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Lookup returns the function registered under name, or false if none is.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// BindConfig cross-checks a meter.Config's constraint names and categorical
// subset against this registry: every name meter.Config lists must
// actually be registered. This is the cross-package half of spec.md §7's
// "constraint named in weights but not registered" / configuration-error
// class that meter.Config.Validate cannot check on its own (meter does not
// import constraint: constraint already imports meter).
func (r *Registry) BindConfig(cfg *meter.Config) error {
	var missing []string

	for _, name := range cfg.ConstraintNames {
		if _, ok := r.funcs[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("constraint(s) named in meter config but not registered: %v", missing)
}

// DefaultRegistry returns a fresh Registry holding every built-in
// constraint from the library (w_peak, w_stress, s_unstress, foot_size,
// word_bridge / strong_edge), in the order spec.md §4.1 lists them.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(WPeak, wPeak)
	r.Register(WStress, wStress)
	r.Register(SUnstress, sUnstress)
	r.Register(FootSize, footSize)
	r.Register(WordBridge, wordBridge)
	r.Register(StrongEdge, wordBridge)

	return r
}
