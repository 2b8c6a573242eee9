// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitboard

import "github.com/corvidchess/corvid/pkg/square"

// KingAttacks[s], KnightAttacks[s] are the precomputed leaper attack
// sets, built once at init from the single-step shift primitives.
var (
	KingAttacks   [square.N]Board
	KnightAttacks [square.N]Board

	// PawnAttacks[c][s] is the set of squares a color-c pawn on s
	// attacks (diagonal captures only, not the push).
	PawnAttacks [2][square.N]Board
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		b := Square(s)

		KingAttacks[s] = b.North() | b.South() | b.East() | b.West() |
			b.NorthEast() | b.NorthWest() | b.SouthEast() | b.SouthWest()

		KnightAttacks[s] = knightAttacks(b)

		PawnAttacks[0][s] = b.NorthEast() | b.NorthWest()
		PawnAttacks[1][s] = b.SouthEast() | b.SouthWest()
	}
}

// knightAttacks computes the knight-move targets from a singleton b by
// composing two orthogonal single steps of differing length, masking
// file wraparound on each leg.
func knightAttacks(b Board) Board {
	l1 := (b &^ FileA) >> 1
	l2 := (b &^ (FileA | FileB)) >> 2
	r1 := (b &^ FileH) << 1
	r2 := (b &^ (FileG | FileH)) << 2

	h1 := l1 | r1
	h2 := l2 | r2

	return (h1 << 16) | (h1 >> 16) | (h2 << 8) | (h2 >> 8)
}
