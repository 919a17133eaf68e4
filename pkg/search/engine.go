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

// Package search runs the breadth-first extend/bound/rank loop (spec.md
// §4.3) over one WordFormMatrix at a time. The loop itself is sequential
// per line — spec.md §5 fixes this — but an Engine can drive many lines
// concurrently through ScanLines, grounded on the teacher's bounded
// worker-pool convention (see pkg/util.RunOrdered).
package search

import (
	"context"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/alusilo/go-prosodic/pkg/constraint"
	"github.com/alusilo/go-prosodic/pkg/meter"
	"github.com/alusilo/go-prosodic/pkg/parse"
	"github.com/alusilo/go-prosodic/pkg/prosodyerr"
	"github.com/alusilo/go-prosodic/pkg/util"
)

// Engine binds a meter configuration to a constraint registry and runs the
// search loop over WordFormMatrix values. Binding happens once, at
// construction, so every configuration fault — a name in cfg not present
// in reg — surfaces before any line is scanned (spec.md §7).
type Engine struct {
	Config   *meter.Config
	Registry *constraint.Registry
	// Workers caps how many lines ScanLines processes concurrently. 1 runs
	// sequentially; 0 or less uses runtime.GOMAXPROCS workers.
	Workers int
}

// NewEngine validates cfg, cross-checks it against reg, and returns a ready
// Engine. A structural problem in cfg, or a constraint name cfg lists that
// reg does not have, is reported as prosodyerr.MeterMisconfigured.
func NewEngine(cfg *meter.Config, reg *constraint.Registry) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &prosodyerr.MeterMisconfigured{Reason: err}
	}

	if err := reg.BindConfig(cfg); err != nil {
		return nil, &prosodyerr.MeterMisconfigured{Reason: err}
	}

	return &Engine{Config: cfg, Registry: reg, Workers: 1}, nil
}

// ScanLine runs the full extend/bound/rank loop over one matrix and
// returns its Result. An empty Result.Parses is spec.md §4.3's
// UnparseableLine case — a normal outcome, not an error. ScanLine returns
// an error only when a constraint misbehaves (wrong arity), which
// NewEngine's binding step should already have ruled out.
func (e *Engine) ScanLine(matrix *meter.WordFormMatrix) (*Result, error) {
	var nextID int

	newID := func() int {
		nextID++
		return nextID
	}

	seed := parse.New(matrix, e.Config, e.Registry)
	seed.ID = newID()

	frontier := []*parse.Parse{seed}

	var complete []*parse.Parse

	for len(frontier) > 0 {
		var children []*parse.Parse

		for _, p := range frontier {
			live, retained, err := p.Branch()
			if err != nil {
				return nil, err
			}

			for _, c := range retained {
				c.ID = newID()
				children = append(children, c)
			}

			for _, c := range live {
				c.ID = newID()
				children = append(children, c)
			}
		}

		if cap := e.Config.MaxPartials; cap > 0 && len(children) > cap {
			log.WithFields(log.Fields{"live": len(children), "cap": cap}).
				Debug("search: truncating live partial parses")
			children = children[:cap]
		}

		boundSameLength(children)

		// A bounded child is pruned from the working set but retained for
		// reporting (spec.md §4.3): it stays in the frontier so it can
		// still reach completion, but Branch degenerates a bounded parse
		// to a single continuation rather than fanning out further.
		var survivors []*parse.Parse

		for _, c := range children {
			if c.IsComplete() {
				complete = append(complete, c)
			} else {
				survivors = append(survivors, c)
			}
		}

		frontier = survivors
	}

	boundSameLength(complete)

	sort.SliceStable(complete, func(i, j int) bool {
		return parse.Less(complete[i], complete[j], e.Config, e.Config.SecondaryStressMode)
	})

	ambig := 0

	for _, p := range complete {
		if !p.IsBounded {
			ambig++
		}
	}

	return &Result{Parses: complete, Ambiguity: ambig}, nil
}

// boundSameLength applies harmonic bounding pairwise across every parse in
// ps that shares the same positioned-slot count (spec.md §4.3 steps 3/4:
// bounding only ever compares same-prefix-length parses).
func boundSameLength(ps []*parse.Parse) {
	groups := make(map[int][]*parse.Parse)

	for _, p := range ps {
		groups[p.NumSlotsPositioned] = append(groups[p.NumSlotsPositioned], p)
	}

	for _, group := range groups {
		for i := range group {
			for j := range group {
				if i == j || !group[i].CanCompare(group[j]) {
					continue
				}

				if group[i].BoundingRelation(group[j]) == parse.Bounds {
					group[j].IsBounded = true
					group[j].BoundedBy = append(group[j].BoundedBy, strconv.Itoa(group[i].ID))
				}
			}
		}
	}
}

// ScanLines runs ScanLine over every matrix in lines, in order, using up to
// e.Workers goroutines (grounded on pkg/util.RunOrdered's bounded worker
// pool). Results preserve lines' input order regardless of completion
// order; a line whose scan errors yields a nil Result at its index.
func (e *Engine) ScanLines(ctx context.Context, lines []*meter.WordFormMatrix) []*Result {
	return util.RunOrdered(ctx, lines, e.Workers, func(m *meter.WordFormMatrix) *Result {
		r, err := e.ScanLine(m)
		if err != nil {
			log.WithError(err).Error("search: line scan failed")
			return nil
		}

		return r
	})
}
