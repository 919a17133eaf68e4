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
	"math"
	"sort"

	"github.com/alusilo/go-prosodic/pkg/syllable"
)

// Config is an immutable bundle describing a metrical scheme: which
// position shapes are allowed, how many slots a position may absorb, which
// constraints apply and with what weight, and the handful of tie-break
// policies spec.md §9 leaves as configuration rather than fixed behavior.
//
// Config only performs structural self-checks (Validate, below); whether
// every named constraint actually exists in a constraint.Registry is a
// cross-package concern resolved when a search.Engine is constructed from a
// Config and a Registry together (see pkg/search), matching spec.md §7's
// split between "empty shape set" style structural errors (fatal here) and
// "constraint named in weights but not registered" (fatal at Engine
// construction).
type Config struct {
	// Shapes lists every allowed position shape.
	Shapes []Shape
	// MaxW is the maximum number of slots a w position may absorb.
	MaxW int
	// MaxS is the maximum number of slots an s position may absorb.
	MaxS int
	// ConstraintNames lists every scalar-weighted constraint to evaluate,
	// in registration/evaluation order (determinism matters — spec.md §5).
	ConstraintNames []string
	// Weights maps a constraint name to its scalar weight. A name absent
	// here defaults to weight 1.0.
	Weights map[string]float64
	// CategoricalConstraints is the subset of ConstraintNames whose any
	// violation disqualifies (bounds) a parse outright.
	CategoricalConstraints []string
	// SecondaryStressMode resolves spec.md §9's first open question.
	SecondaryStressMode syllable.SecondaryStressMode
	// PreferRising resolves spec.md §9's second open question: whether the
	// first-position-prominence tie-break favors a rising (iambic-style)
	// first position.
	PreferRising bool
	// ResolveOptionality records whether the upstream pipeline spawns
	// separate matrices per ambiguous stress reading. The core never acts
	// on this itself (matrix fan-out is an external-pipeline concern per
	// spec.md §2), it is only carried through so a caller can tell how a
	// loaded Config expects to be used.
	ResolveOptionality bool
	// MinBoundingSlots gates harmonic bounding comparisons to parses that
	// have positioned at least this many syllables (SPEC_FULL.md §10,
	// grounded on the original parser's can_compare(min_slots=4)). Zero
	// means spec.md §4.3's literal same-prefix-length rule applies
	// unmodified.
	MinBoundingSlots int
	// MaxPartials caps the number of live partial parses considered at
	// each BFS round; non-positive means unbounded. See pkg/search for the
	// truncation policy and its logging.
	MaxPartials int
}

// DefaultConfig returns a Config with spec.md's stated defaults
// (max_w=max_s=2, prefer_rising=true, resolve_optionality=true) and no
// constraints registered; callers add shapes/constraints before use.
func DefaultConfig() *Config {
	return &Config{
		MaxW:                2,
		MaxS:                2,
		Weights:             make(map[string]float64),
		PreferRising:        true,
		ResolveOptionality:  true,
		SecondaryStressMode: syllable.SecondaryAsStressed,
	}
}

// Weight returns the configured weight for a constraint name, defaulting to
// 1.0 when unspecified (spec.md §3).
func (c *Config) Weight(name string) float64 {
	if w, ok := c.Weights[name]; ok {
		return w
	}

	return 1.0
}

// IsCategorical reports whether name is in the categorical subset.
func (c *Config) IsCategorical(name string) bool {
	for _, n := range c.CategoricalConstraints {
		if n == name {
			return true
		}
	}

	return false
}

// MaxForVal returns the configured slot cap for positions of the given
// meter value.
func (c *Config) MaxForVal(val byte) int {
	if val == Strong {
		return c.MaxS
	}

	return c.MaxW
}

// ShapesStartingWith returns, in declared order, every allowed shape whose
// meter value differs from exclude — i.e. the candidate shapes a position
// following one of meter value exclude may legally take (spec.md §4.2's
// branch operation, and the adjacency invariant of spec.md §3).
func (c *Config) ShapesStartingWith(exclude byte) []Shape {
	out := make([]Shape, 0, len(c.Shapes))

	for _, s := range c.Shapes {
		if s.Val() != exclude {
			out = append(out, s)
		}
	}

	return out
}

// Validate performs every structural, construction-time check spec.md §7
// classifies as a configuration error, accumulating every problem found
// (grounded on the teacher's Consistent(schema) []error convention — see
// DESIGN.md) rather than stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Shapes) == 0 {
		errs = append(errs, fmt.Errorf("meter config declares no position shapes"))
	}

	hasW, hasS := false, false

	for _, s := range c.Shapes {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}

		switch s.Val() {
		case Weak:
			hasW = true
		case Strong:
			hasS = true
		}
	}

	if len(c.Shapes) > 0 && !hasW {
		errs = append(errs, fmt.Errorf("meter config must include at least one w-shape"))
	}

	if len(c.Shapes) > 0 && !hasS {
		errs = append(errs, fmt.Errorf("meter config must include at least one s-shape"))
	}

	if c.MaxW < 1 {
		errs = append(errs, fmt.Errorf("max_w must be at least 1, got %d", c.MaxW))
	}

	if c.MaxS < 1 {
		errs = append(errs, fmt.Errorf("max_s must be at least 1, got %d", c.MaxS))
	}

	names := make(map[string]bool, len(c.ConstraintNames))
	for _, n := range c.ConstraintNames {
		names[n] = true
	}

	for _, n := range c.CategoricalConstraints {
		if !names[n] {
			errs = append(errs, fmt.Errorf("categorical constraint %q is not in the constraint list", n))
		}
	}

	for name, w := range c.Weights {
		if !names[name] {
			errs = append(errs, fmt.Errorf("weight given for constraint %q, which is not in the constraint list", name))
		}

		if math.IsNaN(w) || math.IsInf(w, 0) {
			errs = append(errs, fmt.Errorf("weight for constraint %q must be finite, got %v", name, w))
		} else if w < 0 {
			errs = append(errs, fmt.Errorf("weight for constraint %q must be non-negative, got %v", name, w))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return &ConfigError{Problems: errs}
}

// ConfigError wraps every problem Validate found. Its Error() presents them
// sorted for reproducible messages.
type ConfigError struct {
	Problems []error
}

func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}

	sort.Strings(msgs)

	out := "meter configuration is invalid:"
	for _, m := range msgs {
		out += "\n  - " + m
	}

	return out
}

// Unwrap exposes the individual problems for errors.Is/As-style inspection.
func (e *ConfigError) Unwrap() []error {
	return e.Problems
}
