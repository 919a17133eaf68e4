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

import "sort"

// StringSet is an array of unique, sorted strings (i.e. no duplicates).
// Used wherever this module needs a deterministic, reproducible ordering
// over a small set of constraint names (e.g. a ParsePosition's
// violation_set) — map iteration order is not good enough, since spec
// reproducibility requires identical output across runs.
type StringSet []string

// NewStringSet returns an empty sorted set.
func NewStringSet() StringSet {
	return StringSet{}
}

// Contains returns true if name is a member of this set.
func (s StringSet) Contains(name string) bool {
	i := sort.SearchStrings(s, name)
	return i < len(s) && s[i] == name
}

// Insert name into this set, returning the (possibly unchanged) set. No-op
// if name is already present.
func (s StringSet) Insert(name string) StringSet {
	i := sort.SearchStrings(s, name)
	if i < len(s) && s[i] == name {
		return s
	}

	ndata := make(StringSet, len(s)+1)
	copy(ndata, s[:i])
	ndata[i] = name
	copy(ndata[i+1:], s[i:])

	return ndata
}

// Union merges other into this set, returning the combined sorted set.
func (s StringSet) Union(other StringSet) StringSet {
	out := s
	for _, name := range other {
		out = out.Insert(name)
	}

	return out
}
