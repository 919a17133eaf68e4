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

// Package prosodyerr carries the tagged-result error taxonomy spec.md §6/§7
// requires: MeterMisconfigured and ConstraintArityMismatch are programmer
// errors, fatal at construction or scoring time. UnparseableLine is
// deliberately not a type here — spec.md §7 classifies it as a normal,
// data-dependent outcome, represented as a plain field on a result value
// rather than as an error (see pkg/search.LineResult).
package prosodyerr

import "fmt"

// MeterMisconfigured reports a fatal configuration problem discovered at
// construction time: an empty shape set, a constraint named in weights but
// never registered, a categorical constraint outside the constraint list,
// and so on. Reason carries the underlying cause (often a
// *meter.ConfigError, which already aggregates everything structurally
// wrong at once — see DESIGN.md for why this mirrors the teacher's
// Consistent(schema) []error convention).
type MeterMisconfigured struct {
	Reason error
}

func (e *MeterMisconfigured) Error() string {
	return fmt.Sprintf("meter misconfigured: %v", e.Reason)
}

// Unwrap exposes Reason for errors.Is/As.
func (e *MeterMisconfigured) Unwrap() error {
	return e.Reason
}

// ConstraintArityMismatch reports that a registered constraint returned a
// violation vector whose length did not match the position it was scoring
// (spec.md §4.1: "Output length must equal the position's slot count; any
// other length is a fatal configuration error").
type ConstraintArityMismatch struct {
	// Constraint is the offending constraint's registered name.
	Constraint string
	// Shape is the position shape being scored when the mismatch occurred.
	Shape string
	// Expected is the number of slots the position has.
	Expected int
	// Actual is the length of the vector the constraint returned.
	Actual int
}

func (e *ConstraintArityMismatch) Error() string {
	return fmt.Sprintf(
		"constraint %q returned %d violation flags for position shape %q, expected %d",
		e.Constraint, e.Actual, e.Shape, e.Expected,
	)
}
