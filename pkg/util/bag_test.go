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
package util

import (
	"testing"

	"github.com/alusilo/go-prosodic/pkg/util/assert"
)

func TestBagCountsDuplicateInsertions(t *testing.T) {
	b := NewBag[string]()
	b.Add("w_stress")
	b.Add("w_stress")
	b.Add("s_unstress")

	assert.Equal(t, uint(2), b.Count("w_stress"))
	assert.Equal(t, uint(1), b.Count("s_unstress"))
	assert.Equal(t, uint(3), b.Size())
	assert.Equal(t, uint(2), b.Unique())
}

func TestBagEqualIgnoresInsertionOrder(t *testing.T) {
	a := NewBag[string]()
	a.Add("x")
	a.Add("y")
	a.Add("x")

	b := NewBag[string]()
	b.Add("y")
	b.Add("x")
	b.Add("x")

	assert.True(t, a.Equal(b))
}

func TestBagSubsetOfRequiresProperSubset(t *testing.T) {
	a := NewBag[string]()
	a.Add("x")

	b := a.Clone()

	assert.False(t, a.SubsetOf(b), "equal bags are not a proper subset of one another")

	b.Add("y")

	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
}

func TestBagSubsetOfRejectsStrictlyGreaterCount(t *testing.T) {
	a := NewBag[string]()
	a.Add("x")
	a.Add("x")

	b := NewBag[string]()
	b.Add("x")

	assert.False(t, a.SubsetOf(b))
}

func TestBagStringIsDeterministicRegardlessOfInsertionOrder(t *testing.T) {
	a := NewBag[string]()
	a.Add("w_stress")
	a.Add("s_unstress")

	b := NewBag[string]()
	b.Add("s_unstress")
	b.Add("w_stress")

	assert.Equal(t, a.String(), b.String())
}

func TestBagCloneIsIndependent(t *testing.T) {
	a := NewBag[string]()
	a.Add("x")

	clone := a.Clone()
	clone.Add("x")

	assert.Equal(t, uint(1), a.Count("x"))
	assert.Equal(t, uint(2), clone.Count("x"))
}
