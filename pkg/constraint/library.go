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
package constraint

import "github.com/alusilo/go-prosodic/pkg/syllable"

// Stable constraint names, used in weight tables and in reported output.
// WordBridge and StrongEdge name the very same constraint: spec.md §4.1
// lists it under both, so both are registered against wordBridge.
const (
	WPeak      = "w_peak"
	WStress    = "w_stress"
	SUnstress  = "s_unstress"
	FootSize   = "foot_size"
	WordBridge = "word_bridge"
	StrongEdge = "strong_edge"
)

// leftNeighbor returns the syllable immediately to the left of slot index i
// within the position's own reading order, falling back to the previous
// position's last slot when i is the position's first slot.
func leftNeighbor(ctx PositionContext, i int) (*syllable.Syllable, bool) {
	if i > 0 {
		return ctx.Slots[i-1], true
	}

	if ctx.HasPrev && ctx.PrevLastSlot != nil {
		return ctx.PrevLastSlot, true
	}

	return nil, false
}

// rightNeighbor returns the syllable immediately to the right of slot index
// i, falling back to the matrix lookahead slot when i is the position's
// last slot.
func rightNeighbor(ctx PositionContext, i int) (*syllable.Syllable, bool) {
	if i < len(ctx.Slots)-1 {
		return ctx.Slots[i+1], true
	}

	if ctx.HasNext && ctx.NextSlot != nil {
		return ctx.NextSlot, true
	}

	return nil, false
}

// sameWord reports whether a and b belong to the same word token. A nil
// neighbor never counts as the same word.
func sameWord(a, b *syllable.Syllable) bool {
	return a != nil && b != nil && a.WordTokenID == b.WordTokenID
}

// wPeak flags a stressed syllable in a w slot that forms a local stress
// peak: every same-word neighbour it actually has (left, right, or both) is
// itself not stressed. A syllable at a word edge is judged only on the
// side(s) where a same-word neighbour exists.
func wPeak(ctx PositionContext) []uint8 {
	out := make([]uint8, len(ctx.Slots))

	if ctx.MeterVal != 'w' {
		return out
	}

	for i, slot := range ctx.Slots {
		if !slot.IsStressed(ctx.SecondaryStressMode) {
			continue
		}

		isPeak := true

		if left, ok := leftNeighbor(ctx, i); ok && sameWord(left, slot) && left.IsStressed(ctx.SecondaryStressMode) {
			isPeak = false
		}

		if right, ok := rightNeighbor(ctx, i); ok && sameWord(right, slot) && right.IsStressed(ctx.SecondaryStressMode) {
			isPeak = false
		}

		if isPeak {
			out[i] = 1
		}
	}

	return out
}

// wStress flags every stressed syllable landing in a w slot, with no regard
// to its neighbours. This is the coarser of the two peak constraints:
// w_peak flags a stressed w slot only when it is a local stress maximum,
// w_stress flags it either way.
func wStress(ctx PositionContext) []uint8 {
	out := make([]uint8, len(ctx.Slots))

	if ctx.MeterVal != 'w' {
		return out
	}

	for i, slot := range ctx.Slots {
		if slot.IsStressed(ctx.SecondaryStressMode) {
			out[i] = 1
		}
	}

	return out
}

// sUnstress flags an unstressed syllable landing in a s slot, unless the
// syllable's word-class marks it inherently weak (a monosyllabic function
// word is exempt: it is expected to land in strong position unstressed).
func sUnstress(ctx PositionContext) []uint8 {
	out := make([]uint8, len(ctx.Slots))

	if ctx.MeterVal != 's' {
		return out
	}

	for i, slot := range ctx.Slots {
		if slot.IsUnstressed(ctx.SecondaryStressMode) && !slot.IsWeak {
			out[i] = 1
		}
	}

	return out
}

// footSize flags every slot of a position whose syllable count exceeds the
// configured cap for its meter value (meter.Config.MaxW / MaxS).
func footSize(ctx PositionContext) []uint8 {
	out := make([]uint8, len(ctx.Slots))

	if len(ctx.Slots) <= ctx.MaxSlots {
		return out
	}

	for i := range out {
		out[i] = 1
	}

	return out
}

// wordBridge flags a s position whose first slot begins mid-word while the
// w position immediately preceding it ended a different word. That shape
// means a single word started earlier still, was interrupted by an
// intervening w position belonging to another word entirely, and only now
// resumes — an awkward foot boundary spec.md §4.1 disallows.
func wordBridge(ctx PositionContext) []uint8 {
	out := make([]uint8, len(ctx.Slots))

	if ctx.MeterVal != 's' || len(ctx.Slots) == 0 || !ctx.HasPrev || ctx.PrevMeterVal != 'w' {
		return out
	}

	first := ctx.Slots[0]
	if ctx.PrevLastSlot == nil || !ctx.PrevLastSlot.IsLastInWord() {
		return out
	}

	if !first.IsFirstInWord() && first.WordTokenID != ctx.PrevLastSlot.WordTokenID {
		out[0] = 1
	}

	return out
}
